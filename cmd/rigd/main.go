package main

//go-build: CGO_ENABLED=0

import (
	"errors"
	"flag"
	"io"
	"net"

	"github.com/golang/glog"
	"go.bug.st/serial"

	fx "github.com/robotalks/rig.go/pkg/framework"
	"github.com/robotalks/rig.go/pkg/hal/sim"
	"github.com/robotalks/rig.go/pkg/link"
	"github.com/robotalks/rig.go/pkg/rig"
)

var (
	configPath string
	device     string
	listenAddr string
	storeImage string
)

func init() {
	flag.StringVar(&configPath, "config", "", "Path to YAML config file.")
	flag.StringVar(&device, "device", "", "Serial device of the command link.")
	flag.StringVar(&listenAddr, "listen", "", "TCP listen address of the command link (bench use).")
	flag.StringVar(&storeImage, "store-image", "", "File image backing the preset store.")
}

func main() {
	flag.Parse()

	conf := rig.NewConfig()
	if configPath != "" {
		var err error
		if conf, err = rig.LoadConfig(configPath); err != nil {
			glog.Exitf("load config: %v", err)
		}
	}
	if device != "" {
		conf.Serial.Device, conf.Serial.Listen = device, ""
	}
	if listenAddr != "" {
		conf.Serial.Listen, conf.Serial.Device = listenAddr, ""
	}
	if storeImage != "" {
		conf.Store.Image = storeImage
	}

	port, err := openPort(conf)
	if err != nil {
		glog.Exitf("open link: %v", err)
	}

	r := sim.NewRig(rig.NumSlots * rig.SlotBytes)
	if conf.Store.Image != "" {
		if err = r.Store.LoadImage(conf.Store.Image); err != nil {
			glog.Exitf("load store image: %v", err)
		}
	}
	hw := &rig.Hardware{
		Sampler:      &r.Pots,
		Steer:        &r.Steer,
		Base:         &r.Base,
		Arm:          &r.Arm,
		Motor:        &r.Motor,
		ModeButton:   &r.ModeButton,
		ActionButton: &r.ActionButton,
		LEDA:         &r.LEDA,
		LEDB:         &r.LEDB,
		Store:        &r.Store,
	}

	var box link.Mailbox
	loop := fx.NewLoop()
	loop.Interval = conf.TickInterval()
	loop.Add(rig.NewSupervisor(hw, &box, port)).
		AddRunnable(fx.NamedRun("rx", link.NewReceiver(port, &box)))

	runner := fx.NewRunner().HandleSignals()
	runner.Go(fx.NamedRun("loop", loop))
	err = runner.Wait()

	if conf.Store.Image != "" {
		if saveErr := r.Store.SaveImage(conf.Store.Image); saveErr != nil {
			glog.Errorf("save store image: %v", saveErr)
		}
	}
	if err != nil {
		glog.Exit(err)
	}
}

func openPort(conf *rig.Config) (io.ReadWriteCloser, error) {
	if conf.Serial.Listen != "" {
		ln, err := net.Listen("tcp", conf.Serial.Listen)
		if err != nil {
			return nil, err
		}
		defer ln.Close()
		glog.Infof("waiting for command link on %s", conf.Serial.Listen)
		return ln.Accept()
	}
	if conf.Serial.Device == "" {
		return nil, errors.New("one of -device or -listen is required")
	}
	return serial.Open(conf.Serial.Device, &serial.Mode{BaudRate: conf.Serial.Baud})
}
