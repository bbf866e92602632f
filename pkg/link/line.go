// Package link provides the serial line seam between the
// asynchronous receive path and the cooperative control loop.
//
// The receive path models the hardware interrupt: it accumulates
// bytes into a line buffer and exposes data to the loop only as
// fully formed, newline-terminated lines through a single-slot
// mailbox. Partial lines are never visible and only the latest
// complete line matters.
package link

import (
	"context"
	"io"
	"sync"
)

// RXBufSize is the receive buffer capacity. A line holds at most
// RXBufSize-1 bytes; longer lines are truncated by discarding the
// excess until the next newline.
const RXBufSize = 64

// Mailbox is a single-slot latest-line handoff between the receive
// path (producer) and the control loop (consumer). Put overwrites
// any undelivered line.
type Mailbox struct {
	lock  sync.Mutex
	line  string
	ready bool
}

// Put deposits a complete line, replacing any pending one.
func (m *Mailbox) Put(line string) {
	m.lock.Lock()
	m.line, m.ready = line, true
	m.lock.Unlock()
}

// Take copies and clears the pending line, if any.
func (m *Mailbox) Take() (string, bool) {
	m.lock.Lock()
	line, ok := m.line, m.ready
	m.line, m.ready = "", false
	m.lock.Unlock()
	return line, ok
}

// Receiver assembles lines from a byte stream into a Mailbox.
type Receiver struct {
	Reader io.Reader
	Box    *Mailbox

	buf      [RXBufSize - 1]byte
	used     int
	overflow bool
}

// NewReceiver creates a Receiver.
func NewReceiver(r io.Reader, box *Mailbox) *Receiver {
	return &Receiver{Reader: r, Box: box}
}

// Run implements framework.Runnable. It returns the reader error
// (io.EOF included) once the stream ends.
func (r *Receiver) Run(ctx context.Context) error {
	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			n, err := r.Reader.Read(buf)
			if n > 0 {
				r.feed(buf[0])
			}
			if err != nil {
				return err
			}
		}
	}
}

func (r *Receiver) feed(b byte) {
	switch b {
	case '\r':
		// ignored, tolerate CRLF terminators
	case '\n':
		r.Box.Put(string(r.buf[:r.used]))
		r.used, r.overflow = 0, false
	default:
		if r.overflow {
			return
		}
		if r.used == len(r.buf) {
			// keep what fits, drop the rest until the newline
			r.overflow = true
			return
		}
		r.buf[r.used] = b
		r.used++
	}
}
