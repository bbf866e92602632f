// Package sim provides an in-memory implementation of the hal
// capabilities, used by the bench daemon and the tests.
package sim

import (
	"github.com/robotalks/rig.go/pkg/hal"
)

// Servo records the last written pulse width.
type Servo struct {
	pulse uint16
}

// SetPulse implements hal.ServoActuator.
func (s *Servo) SetPulse(us uint16) { s.pulse = us }

// Pulse implements hal.ServoActuator.
func (s *Servo) Pulse() uint16 { return s.pulse }

// Motor records the last commanded drive state.
type Motor struct {
	dir     hal.MotorDirection
	duty    uint8
	coasted bool
}

// Drive implements hal.MotorActuator.
func (m *Motor) Drive(dir hal.MotorDirection, duty uint8) {
	m.dir, m.duty, m.coasted = dir, duty, false
}

// Coast implements hal.MotorActuator.
func (m *Motor) Coast() {
	m.duty, m.coasted = 0, true
}

// State implements hal.MotorActuator.
func (m *Motor) State() (hal.MotorDirection, uint8) {
	return m.dir, m.duty
}

// Coasting reports whether both direction lines are released.
func (m *Motor) Coasting() bool { return m.coasted }

// Pin is a digital input with a settable level. The zero value
// reads high, matching a released active-low button.
type Pin struct {
	low bool
}

// Get implements hal.InputPin.
func (p *Pin) Get() bool { return !p.low }

// Press pulls the pin low.
func (p *Pin) Press() { p.low = true }

// Release lets the pin float high.
func (p *Pin) Release() { p.low = false }

// LED is an indicator which counts toggles for inspection.
type LED struct {
	on      bool
	toggles int
}

// Set implements hal.LED.
func (l *LED) Set(on bool) { l.on = on }

// Toggle implements hal.LED.
func (l *LED) Toggle() {
	l.on = !l.on
	l.toggles++
}

// On reports the LED state.
func (l *LED) On() bool { return l.on }

// Toggles reports how many times Toggle was called.
func (l *LED) Toggles() int { return l.toggles }

// Pots simulates the analog sampler with one value per channel.
type Pots struct {
	values map[int]int
}

// SetValue sets the raw 0-1023 value of a channel.
func (p *Pots) SetValue(channel, v int) {
	if p.values == nil {
		p.values = make(map[int]int)
	}
	p.values[channel] = v
}

// Sample implements hal.AnalogSampler.
func (p *Pots) Sample(channel int) int {
	return p.values[channel]
}

// Rig bundles a complete set of simulated peripherals.
type Rig struct {
	Pots         Pots
	Steer        Servo
	Base         Servo
	Arm          Servo
	Motor        Motor
	ModeButton   Pin
	ActionButton Pin
	LEDA         LED
	LEDB         LED
	Store        WordStore
}

// NewRig creates a rig with the given non-volatile capacity in bytes.
func NewRig(storeSize int) *Rig {
	r := &Rig{}
	r.Store.init(storeSize)
	return r
}
