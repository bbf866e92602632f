package rig

import (
	"io"

	fx "github.com/robotalks/rig.go/pkg/framework"
	"github.com/robotalks/rig.go/pkg/link"
)

// RemoteState is the live target applied in Remote mode. It holds
// its last value indefinitely; there is no timeout or heartbeat.
type RemoteState struct {
	SteerPulse uint16
	BasePulse  uint16
	ArmPulse   uint16
	Motor      MotorState
}

// Supervisor owns the mode state machine, the slot cursors and the
// per-mode behavior, and runs one cooperative tick per loop
// iteration. It is the only entity holding mutable control state.
type Supervisor struct {
	HW  *Hardware
	Box *link.Mailbox
	Out io.Writer

	mode     Mode
	saveSlot int
	playSlot int
	remote   RemoteState

	modeEdge   *EdgeDetector
	actionEdge *EdgeDetector
	blinker    Blinker
}

// NewSupervisor creates a Supervisor starting in Manual mode.
func NewSupervisor(hw *Hardware, box *link.Mailbox, out io.Writer) *Supervisor {
	s := &Supervisor{
		HW:         hw,
		Box:        box,
		Out:        out,
		modeEdge:   NewEdgeDetector(hw.ModeButton),
		actionEdge: NewEdgeDetector(hw.ActionButton),
		remote:     remoteFromLive(hw),
	}
	s.applyModeLEDs()
	return s
}

// AddToLoop implements framework.LoopAdder.
func (s *Supervisor) AddToLoop(l *fx.Loop) {
	l.AddController(fx.StageControl, s)
}

// Control implements framework.Controller.
func (s *Supervisor) Control(fx.ControlContext) error {
	s.Tick()
	return nil
}

// Tick runs one scheduler tick: poll the mode button, dispatch to
// the active mode, advance the blink overlay.
func (s *Supervisor) Tick() {
	if s.modeEdge.Detect() {
		s.cycleMode()
	}
	switch s.mode {
	case ModeManual:
		s.manualTick()
	case ModePlayback:
		s.playbackTick()
	case ModeRemote:
		s.remoteTick()
	}
	s.blinker.Tick()
}

// Mode reports the active mode.
func (s *Supervisor) Mode() Mode {
	return s.mode
}

// Slots reports the save and play cursors.
func (s *Supervisor) Slots() (save, play int) {
	return s.saveSlot, s.playSlot
}

// Remote reports the current remote target.
func (s *Supervisor) Remote() RemoteState {
	return s.remote
}

func (s *Supervisor) cycleMode() {
	s.mode = s.mode.Next()
	s.saveSlot, s.playSlot = 0, 0
	if s.mode == ModeRemote {
		// seed the targets from live state so the first ticks
		// re-drive the actuators where they already are
		s.remote = remoteFromLive(s.HW)
	}
	s.applyModeLEDs()
}

// Mode indicator: Manual lights A, Playback lights B, Remote both.
func (s *Supervisor) applyModeLEDs() {
	s.HW.LEDA.Set(s.mode == ModeManual || s.mode == ModeRemote)
	s.HW.LEDB.Set(s.mode == ModePlayback || s.mode == ModeRemote)
}

func (s *Supervisor) manualTick() {
	hw := s.HW
	hw.Steer.SetPulse(potToPulse(averagedSample(hw.Sampler, PotSteer), SteerPulseMin, SteerPulseMax))
	hw.Base.SetPulse(potToPulse(averagedSample(hw.Sampler, PotBase), BasePulseMin, BasePulseMax))
	hw.Arm.SetPulse(potToPulse(averagedSample(hw.Sampler, PotArm), ArmPulseMin, ArmPulseMax))
	driveMotor(hw, motorFromPot(averagedSample(hw.Sampler, PotMotor)))

	if s.actionEdge.Detect() {
		SavePreset(hw.Store, s.saveSlot, Snapshot(hw))
		s.blinker.Start(hw.LEDA, 1)
		s.saveSlot = (s.saveSlot + 1) % NumSlots
	}
}

func (s *Supervisor) playbackTick() {
	if !s.actionEdge.Detect() {
		return
	}
	LoadPreset(s.HW.Store, s.playSlot).Apply(s.HW)
	// slot indicator: slot 0 flashes once, slot 3 four times
	s.blinker.Start(s.HW.LEDB, s.playSlot+1)
	s.playSlot = (s.playSlot + 1) % NumSlots
}

func (s *Supervisor) remoteTick() {
	if line, ok := s.Box.Take(); ok {
		if cmd, err := ParseCommand(line); err == nil {
			s.applyCommand(cmd)
		}
		// the protocol has no NACK: every line is acknowledged
		io.WriteString(s.Out, "OK\n")
	}
	// idempotent re-drive guards against transient actuator resets
	s.HW.Steer.SetPulse(s.remote.SteerPulse)
	s.HW.Base.SetPulse(s.remote.BasePulse)
	s.HW.Arm.SetPulse(s.remote.ArmPulse)
}

func (s *Supervisor) applyCommand(cmd Command) {
	switch cmd.Channel {
	case ChannelSteer:
		s.remote.SteerPulse = cmd.SteerPulse()
	case ChannelBase:
		s.remote.BasePulse = cmd.BasePulse()
	case ChannelArm:
		s.remote.ArmPulse = cmd.ArmPulse()
	case ChannelMotor:
		// the motor duty register persists hardware-side, so it is
		// driven once here instead of every tick
		s.remote.Motor = cmd.MotorState()
		driveMotor(s.HW, s.remote.Motor)
	}
}

func driveMotor(hw *Hardware, st MotorState) {
	if st.Duty == 0 {
		hw.Motor.Coast()
	} else {
		hw.Motor.Drive(st.Direction, st.Duty)
	}
}

func remoteFromLive(hw *Hardware) RemoteState {
	dir, duty := hw.Motor.State()
	return RemoteState{
		SteerPulse: hw.Steer.Pulse(),
		BasePulse:  hw.Base.Pulse(),
		ArmPulse:   hw.Arm.Pulse(),
		Motor:      MotorState{Direction: dir, Duty: duty},
	}
}
