package rig

import (
	"github.com/robotalks/rig.go/pkg/hal"
)

// Actuator pulse ranges in microseconds. The steer servo has a
// narrower physical range than the generic driver used for the
// base; the arm shares the generic driver but is limited further
// by the linkage.
const (
	SteerPulseMin = 3000
	SteerPulseMax = 5000
	BasePulseMin  = 1000
	BasePulseMax  = 5000
	ArmPulseMin   = 1000
	ArmPulseMax   = 2500
)

// Hardware bundles the peripherals the supervisor drives.
type Hardware struct {
	Sampler hal.AnalogSampler

	Steer hal.ServoActuator
	Base  hal.ServoActuator
	Arm   hal.ServoActuator
	Motor hal.MotorActuator

	ModeButton   hal.InputPin
	ActionButton hal.InputPin

	LEDA hal.LED
	LEDB hal.LED

	Store hal.Store
}
