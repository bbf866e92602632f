package rig

import (
	"errors"

	"github.com/robotalks/rig.go/pkg/hal"
)

// Channel identifies the actuator a command line targets, encoded
// as the first byte of the line.
type Channel byte

// Channel ids.
const (
	ChannelSteer Channel = 'd'
	ChannelBase  Channel = 'b'
	ChannelArm   Channel = 'e'
	ChannelMotor Channel = 'p'
)

// ErrUnknownChannel indicates a line with an unrecognized channel
// id. The protocol still acknowledges such lines with OK.
var ErrUnknownChannel = errors.New("unknown channel")

// Command is one decoded protocol line.
type Command struct {
	Channel Channel
	Value   int
}

// ParseCommand decodes a line (without terminator) into a Command.
// The value is parsed permissively: leading decimal digits after
// an optional sign, anything else reads as 0.
func ParseCommand(line string) (Command, error) {
	if len(line) == 0 {
		return Command{}, ErrUnknownChannel
	}
	ch := Channel(line[0])
	switch ch {
	case ChannelSteer, ChannelBase, ChannelArm, ChannelMotor:
	default:
		return Command{}, ErrUnknownChannel
	}
	return Command{Channel: ch, Value: parseLeadingInt(line[1:])}, nil
}

func parseLeadingInt(s string) int {
	i, neg := 0, false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	v := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + int(s[i]-'0')
	}
	if neg {
		return -v
	}
	return v
}

// Input domains per channel. Out-of-range values clamp, they are
// never rejected.
const (
	steerStepMax  = 60
	angleMax      = 180
	motorStepMax  = 10
	motorStepDuty = 25
)

// SteerPulse maps a steer command (steps 0-60) onto the steer
// servo range. All command arithmetic is truncating integer math.
func (c Command) SteerPulse() uint16 {
	v := clampInt(c.Value, 0, steerStepMax)
	return uint16(SteerPulseMin + v*(SteerPulseMax-SteerPulseMin)/steerStepMax)
}

// BasePulse maps a base command (degrees 0-180) onto the base
// servo range. Negative values floor to 0.
func (c Command) BasePulse() uint16 {
	v := clampInt(c.Value, 0, angleMax)
	return uint16(BasePulseMin + v*(BasePulseMax-BasePulseMin)/angleMax)
}

// ArmPulse maps an arm command (degrees 0-180) onto the arm
// servo range.
func (c Command) ArmPulse() uint16 {
	v := clampInt(c.Value, 0, angleMax)
	return uint16(ArmPulseMin + v*(ArmPulseMax-ArmPulseMin)/angleMax)
}

// MotorState maps a motor command (-10..10) to direction and
// duty. Value 0 coasts.
func (c Command) MotorState() MotorState {
	v := clampInt(c.Value, -motorStepMax, motorStepMax)
	switch {
	case v > 0:
		return MotorState{Direction: hal.MotorForward, Duty: uint8(motorStepDuty * v)}
	case v < 0:
		return MotorState{Direction: hal.MotorReverse, Duty: uint8(motorStepDuty * -v)}
	}
	return MotorState{}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
