// Package hal defines the peripheral capabilities the control
// supervisor drives. Implementations are register-level wrappers
// (or simulations, see hal/sim) and carry no coordination logic.
package hal

// AnalogSampler performs one blocking read of an analog channel.
// Values are on the raw 0-1023 scale.
type AnalogSampler interface {
	Sample(channel int) int
}

// ServoActuator sets an absolute pulse width in microseconds.
// Pulse reports the last written value so live state can be
// snapshotted without a readback path to the hardware.
type ServoActuator interface {
	SetPulse(us uint16)
	Pulse() uint16
}

// MotorDirection selects the driven direction of the DC motor.
type MotorDirection int

// Motor directions.
const (
	MotorForward MotorDirection = iota
	MotorReverse
)

// MotorActuator drives the DC motor with a direction and a duty
// value 0-255. Coast releases both direction lines.
type MotorActuator interface {
	Drive(dir MotorDirection, duty uint8)
	Coast()
	// State reports the last commanded direction and duty.
	// Duty is 0 after Coast.
	State() (MotorDirection, uint8)
}

// InputPin reads a raw digital level. Buttons are wired active-low:
// true is released, false is pressed.
type InputPin interface {
	Get() bool
}

// LED controls one indicator.
type LED interface {
	Set(on bool)
	Toggle()
}

// Store reads and writes 16-bit words in non-volatile storage
// addressed by byte offset. Writes block until complete and are
// assumed to succeed.
type Store interface {
	ReadWord(addr int) uint16
	WriteWord(addr int, v uint16)
}
