package main

//go-build: CGO_ENABLED=0

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"
	"go.bug.st/serial"
)

var (
	device   string
	baud     int
	dialAddr string
	evalOnly bool
)

func init() {
	flag.StringVar(&device, "device", "", "Serial device of the rig command link.")
	flag.IntVar(&baud, "baud", 115200, "Serial baud rate.")
	flag.StringVar(&dialAddr, "addr", "", "TCP address of the rig command link (bench use).")
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
}

// console sends command lines to the rig and reads replies.
type console struct {
	port io.ReadWriteCloser
	rd   *bufio.Reader
}

func (cs *console) send(line string) (string, error) {
	if _, err := cs.port.Write([]byte(line + "\n")); err != nil {
		return "", err
	}
	reply, err := cs.rd.ReadString('\n')
	if err != nil {
		return "", err
	}
	for len(reply) > 0 && (reply[len(reply)-1] == '\n' || reply[len(reply)-1] == '\r') {
		reply = reply[:len(reply)-1]
	}
	return reply, nil
}

func channelCmd(cs *console, name string, channel byte, min, max int, help string) *ishell.Cmd {
	return &ishell.Cmd{
		Name: name,
		Help: help,
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("VALUE required"))
				return
			}
			val, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("invalid VALUE: %v", err))
				return
			}
			if val < min || val > max {
				c.Printf("note: %d outside [%d,%d], the rig will clamp\n", val, min, max)
			}
			reply, err := cs.send(fmt.Sprintf("%c%d", channel, val))
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(reply)
		},
	}
}

func main() {
	flag.Parse()

	port, err := openPort()
	if err != nil {
		log.Fatalln(err)
	}
	defer port.Close()
	cs := &console{port: port, rd: bufio.NewReader(port)}

	shell := ishell.New()
	shell.SetPrompt("rig > ")
	shell.AddCmd(channelCmd(cs, "steer", 'd', 0, 60, "STEPS(0-60)"))
	shell.AddCmd(channelCmd(cs, "base", 'b', 0, 180, "DEGREES(0-180)"))
	shell.AddCmd(channelCmd(cs, "arm", 'e', 0, 180, "DEGREES(0-180)"))
	shell.AddCmd(channelCmd(cs, "motor", 'p', -10, 10, "SPEED(-10..10), 0 coasts"))
	shell.AddCmd(&ishell.Cmd{
		Name: "raw",
		Help: "LINE - send a raw command line",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("LINE required"))
				return
			}
			reply, err := cs.send(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(reply)
		},
	})

	if args := flag.Args(); len(args) > 0 {
		if err = shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if evalOnly {
		log.Fatalln("command expected")
	}
	shell.Run()
}

func openPort() (io.ReadWriteCloser, error) {
	if dialAddr != "" {
		return net.DialTimeout("tcp", dialAddr, 5*time.Second)
	}
	if device == "" {
		return nil, errors.New("one of -device or -addr is required")
	}
	return serial.Open(device, &serial.Mode{BaudRate: baud})
}
