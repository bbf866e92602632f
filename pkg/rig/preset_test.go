package rig

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/rig.go/pkg/hal"
	"github.com/robotalks/rig.go/pkg/hal/sim"
)

func TestPresetRoundTrip(t *testing.T) {
	r, hw := newTestHardware()
	hw.Steer.SetPulse(4321)
	hw.Base.SetPulse(2222)
	hw.Arm.SetPulse(2047)
	hw.Motor.Drive(hal.MotorForward, 123)

	p := Snapshot(hw)
	SavePreset(hw.Store, 2, p)
	loaded := LoadPreset(hw.Store, 2)

	require.Equal(t, p.SteerPulse, loaded.SteerPulse)
	require.Equal(t, p.BasePulse, loaded.BasePulse)
	require.Equal(t, p.Motor, loaded.Motor)
	// the arm pulse persists at 64us resolution
	require.True(t, loaded.ArmPulse <= p.ArmPulse)
	require.True(t, p.ArmPulse-loaded.ArmPulse < 64)
	require.Equal(t, uint16(1984), loaded.ArmPulse)

	loaded.Apply(hw)
	require.Equal(t, uint16(4321), r.Steer.Pulse())
	require.Equal(t, uint16(2222), r.Base.Pulse())
	require.Equal(t, uint16(1984), r.Arm.Pulse())
	dir, duty := r.Motor.State()
	require.Equal(t, hal.MotorForward, dir)
	require.Equal(t, uint8(123), duty)
}

func TestSaveSkipsUnchangedWords(t *testing.T) {
	r, hw := newTestHardware()
	hw.Steer.SetPulse(3500)
	hw.Base.SetPulse(1500)
	hw.Arm.SetPulse(2048)
	hw.Motor.Drive(hal.MotorReverse, 200)

	p := Snapshot(hw)
	SavePreset(hw.Store, 0, p)
	writes := r.Store.Writes()
	require.Equal(t, 4, writes)

	// identical preset performs zero physical writes
	SavePreset(hw.Store, 0, p)
	require.Equal(t, writes, r.Store.Writes())

	// a single changed field writes exactly one word
	p.BasePulse = 1501
	SavePreset(hw.Store, 0, p)
	require.Equal(t, writes+1, r.Store.Writes())
}

func TestApplyClampsStoredArm(t *testing.T) {
	testCases := []struct {
		name   string
		stored uint16
		expect uint16
	}{
		{name: "above range", stored: 60000, expect: 2500},
		{name: "below range", stored: 128, expect: 1000},
		{name: "in range", stored: 2496, expect: 2496},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, hw := newTestHardware()
			// hand-edit the stored arm word; Apply must not trust it
			r.Store.WriteWord(1*SlotBytes+4, tc.stored)
			LoadPreset(hw.Store, 1).Apply(hw)
			require.Equal(t, tc.expect, r.Arm.Pulse())
		})
	}
}

func TestMotorPackedWord(t *testing.T) {
	_, hw := newTestHardware()
	hw.Motor.Drive(hal.MotorReverse, 250)
	SavePreset(hw.Store, 3, Snapshot(hw))

	word := hw.Store.ReadWord(3*SlotBytes + 6)
	require.Equal(t, uint16(1)<<8|250, word)

	loaded := LoadPreset(hw.Store, 3)
	require.Equal(t, MotorState{Direction: hal.MotorReverse, Duty: 250}, loaded.Motor)
}

func newTestHardware() (*sim.Rig, *Hardware) {
	r := sim.NewRig(NumSlots * SlotBytes)
	hw := &Hardware{
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
	return r, hw
}
