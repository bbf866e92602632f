package main

//go-build: CGO_ENABLED=0

import (
	"errors"
	"flag"
	"io"
	"net"

	"github.com/golang/glog"
	"go.bug.st/serial"

	"github.com/robotalks/rig.go/pkg/bridge"
	fx "github.com/robotalks/rig.go/pkg/framework"
)

var (
	brokerURL string
	device    string
	baud      int
	dialAddr  string
	cmdTopic  string
	ackTopic  string
)

func init() {
	flag.StringVar(&brokerURL, "broker", "mqtt://127.0.0.1:1883/rig/", "MQTT broker URL with topic prefix.")
	flag.StringVar(&device, "device", "", "Serial device of the rig command link.")
	flag.IntVar(&baud, "baud", 115200, "Serial baud rate.")
	flag.StringVar(&dialAddr, "addr", "", "TCP address of the rig command link (bench use).")
	flag.StringVar(&cmdTopic, "cmd-topic", bridge.DefaultCmdTopic, "Topic carrying command lines.")
	flag.StringVar(&ackTopic, "ack-topic", bridge.DefaultAckTopic, "Topic receiving acknowledgements.")
}

func main() {
	flag.Parse()

	queue, err := bridge.NewQueueFromURL(brokerURL)
	if err != nil {
		glog.Exitf("broker URL: %v", err)
	}
	token := queue.Connect()
	token.Wait()
	if err = token.Error(); err != nil {
		glog.Exitf("connect broker: %v", err)
	}
	defer queue.Close()

	port, err := openPort()
	if err != nil {
		glog.Exitf("open link: %v", err)
	}

	b := bridge.New(queue, port)
	b.CmdTopic, b.AckTopic = cmdTopic, ackTopic

	runner := fx.NewRunner().HandleSignals()
	runner.Go(fx.NamedRun("bridge", b))
	if err = runner.Wait(); err != nil {
		glog.Exit(err)
	}
}

func openPort() (io.ReadWriteCloser, error) {
	if dialAddr != "" {
		return net.Dial("tcp", dialAddr)
	}
	if device == "" {
		return nil, errors.New("one of -device or -addr is required")
	}
	return serial.Open(device, &serial.Mode{BaudRate: baud})
}
