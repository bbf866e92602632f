// Package bridge relays a cloud pub/sub feed into serial command
// lines for the rig and republishes the acknowledgements. It only
// honors the wire contract: one ASCII command per newline-terminated
// line, each answered with OK.
package bridge

import (
	"bufio"
	"context"
	"io"

	"github.com/golang/glog"

	fx "github.com/robotalks/rig.go/pkg/framework"
	"github.com/robotalks/rig.go/pkg/link"
)

// Default topics, relative to the queue's topic prefix.
const (
	DefaultCmdTopic = "cmd"
	DefaultAckTopic = "ack"
)

// Bridge forwards command payloads from the queue to the serial
// port and replies from the port back to the queue.
type Bridge struct {
	Queue    *Queue
	Port     io.ReadWriteCloser
	CmdTopic string
	AckTopic string
}

// New creates a Bridge with default topics.
func New(q *Queue, port io.ReadWriteCloser) *Bridge {
	return &Bridge{
		Queue:    q,
		Port:     port,
		CmdTopic: DefaultCmdTopic,
		AckTopic: DefaultAckTopic,
	}
}

// Run implements framework.Runnable.
func (b *Bridge) Run(ctx context.Context) error {
	sub := b.Queue.Sub(b.CmdTopic, func(topic string, payload []byte) {
		line, ok := NormalizeLine(payload)
		if !ok {
			glog.Warningf("dropping unusable payload (%d bytes)", len(payload))
			return
		}
		if _, err := b.Port.Write(append([]byte(line), '\n')); err != nil {
			glog.Errorf("serial write: %v", err)
		}
	})
	defer sub.Unsub()

	return fx.RunWithContextCloser(ctx, b.Port, func() error {
		scanner := bufio.NewScanner(b.Port)
		for scanner.Scan() {
			b.Queue.Pub(b.AckTopic, []byte(scanner.Text()))
		}
		return scanner.Err()
	})
}

// NormalizeLine extracts the first line of a payload, trims the
// terminator, and bounds it to the rig's receive buffer. Empty
// payloads are unusable.
func NormalizeLine(payload []byte) (string, bool) {
	line := string(payload)
	for i := 0; i < len(line); i++ {
		if line[i] == '\n' {
			line = line[:i]
			break
		}
	}
	for len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	if len(line) > link.RXBufSize-1 {
		line = line[:link.RXBufSize-1]
	}
	return line, line != ""
}
