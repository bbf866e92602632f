package rig

import (
	"github.com/robotalks/rig.go/pkg/hal"
)

// NumSlots is the number of preset slots in non-volatile storage.
const NumSlots = 4

// Slot layout: four 16-bit words per slot, in field order steer
// pulse, base pulse, arm pulse, packed motor word.
const (
	slotWords = 4
	SlotBytes = slotWords * 2
)

// armStep is the storage resolution of the arm pulse width; the
// stored value truncates to a multiple of it.
const armStep = 64

// MotorState is the motor half of a preset. Duty 0 means coast
// with both direction lines released.
type MotorState struct {
	Direction hal.MotorDirection
	Duty      uint8
}

// Preset is one captured hardware snapshot. It is immutable once
// written: created by Snapshot, consumed by Apply.
type Preset struct {
	SteerPulse uint16
	BasePulse  uint16
	ArmPulse   uint16
	Motor      MotorState
}

// Snapshot captures the live actuator state.
func Snapshot(hw *Hardware) Preset {
	dir, duty := hw.Motor.State()
	return Preset{
		SteerPulse: hw.Steer.Pulse(),
		BasePulse:  hw.Base.Pulse(),
		ArmPulse:   hw.Arm.Pulse(),
		Motor:      MotorState{Direction: dir, Duty: duty},
	}
}

// Apply replays the preset to the actuators. The arm pulse is
// clamped to its valid range; the other fields are always produced
// by Snapshot and trusted for range.
func (p Preset) Apply(hw *Hardware) {
	hw.Steer.SetPulse(p.SteerPulse)
	hw.Base.SetPulse(p.BasePulse)
	arm := p.ArmPulse
	if arm < ArmPulseMin {
		arm = ArmPulseMin
	}
	if arm > ArmPulseMax {
		arm = ArmPulseMax
	}
	hw.Arm.SetPulse(arm)
	driveMotor(hw, p.Motor)
}

// encode packs the preset into its storage record. The packed
// motor word carries direction in the high byte and duty in the
// low byte; the packed form exists only at this edge.
func (p Preset) encode() [slotWords]uint16 {
	return [slotWords]uint16{
		p.SteerPulse,
		p.BasePulse,
		p.ArmPulse / armStep * armStep,
		uint16(p.Motor.Direction)<<8 | uint16(p.Motor.Duty),
	}
}

func decodePreset(w [slotWords]uint16) Preset {
	return Preset{
		SteerPulse: w[0],
		BasePulse:  w[1],
		ArmPulse:   w[2],
		Motor: MotorState{
			Direction: hal.MotorDirection(w[3] >> 8),
			Duty:      uint8(w[3]),
		},
	}
}

// SavePreset writes the preset to a slot, skipping words whose
// stored value is unchanged to bound erase-cycle wear. slot must
// be below NumSlots; the cursors guarantee that.
func SavePreset(store hal.Store, slot int, p Preset) {
	words := p.encode()
	for i, w := range words {
		addr := slot*SlotBytes + i*2
		if store.ReadWord(addr) != w {
			store.WriteWord(addr, w)
		}
	}
}

// LoadPreset reads the preset stored in a slot.
func LoadPreset(store hal.Store, slot int) Preset {
	var words [slotWords]uint16
	for i := range words {
		words[i] = store.ReadWord(slot*SlotBytes + i*2)
	}
	return decodePreset(words)
}
