package rig

import (
	"github.com/robotalks/rig.go/pkg/hal"
)

// Analog channel assignment of the four pots.
const (
	PotSteer = 0
	PotBase  = 1
	PotArm   = 2
	PotMotor = 3
)

const (
	adcMax     = 1023
	potSamples = 4
)

// Motor dead-band geometry around the pot center: coast within
// potDeadBand counts of center, full duty within potRailMargin
// counts of either rail, linear in between.
const (
	potCenter     = 512
	potDeadBand   = 8
	potRailMargin = 5
)

// averagedSample suppresses pot noise by averaging four raw reads.
func averagedSample(s hal.AnalogSampler, channel int) int {
	sum := 0
	for i := 0; i < potSamples; i++ {
		sum += s.Sample(channel)
	}
	return sum / potSamples
}

// potToPulse linearly maps a raw 0-1023 value onto a pulse range.
func potToPulse(v, min, max int) uint16 {
	return uint16(min + v*(max-min)/adcMax)
}

// motorFromPot maps the motor pot through the symmetric dead-band.
func motorFromPot(v int) MotorState {
	const (
		fwdStart = potCenter + potDeadBand
		fwdFull  = adcMax - potRailMargin
		revStart = potCenter - potDeadBand
		revFull  = potRailMargin
	)
	switch {
	case v > fwdStart:
		duty := 255
		if v < fwdFull {
			duty = (v - fwdStart) * 255 / (fwdFull - fwdStart)
		}
		return MotorState{Direction: hal.MotorForward, Duty: uint8(duty)}
	case v < revStart:
		duty := 255
		if v > revFull {
			duty = (revStart - v) * 255 / (revStart - revFull)
		}
		return MotorState{Direction: hal.MotorReverse, Duty: uint8(duty)}
	}
	return MotorState{}
}
