package rig

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/rig.go/pkg/hal"
	"github.com/robotalks/rig.go/pkg/hal/sim"
)

func TestPotToPulse(t *testing.T) {
	testCases := []struct {
		v, min, max int
		expect      uint16
	}{
		{0, SteerPulseMin, SteerPulseMax, 3000},
		{1023, SteerPulseMin, SteerPulseMax, 5000},
		{512, BasePulseMin, BasePulseMax, 3002},
		{0, ArmPulseMin, ArmPulseMax, 1000},
		{1023, ArmPulseMin, ArmPulseMax, 2500},
		{100, ArmPulseMin, ArmPulseMax, 1146},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expect, potToPulse(tc.v, tc.min, tc.max), "pot %d on [%d,%d]", tc.v, tc.min, tc.max)
	}
}

func TestMotorFromPot(t *testing.T) {
	testCases := []struct {
		name   string
		v      int
		expect MotorState
	}{
		{name: "center coasts", v: 512, expect: MotorState{}},
		{name: "dead-band high edge", v: 520, expect: MotorState{}},
		{name: "dead-band low edge", v: 504, expect: MotorState{}},
		{name: "just above dead-band", v: 521, expect: MotorState{Direction: hal.MotorForward, Duty: 0}},
		{name: "forward midway", v: 769, expect: MotorState{Direction: hal.MotorForward, Duty: 127}},
		{name: "forward saturation", v: 1018, expect: MotorState{Direction: hal.MotorForward, Duty: 255}},
		{name: "forward rail", v: 1023, expect: MotorState{Direction: hal.MotorForward, Duty: 255}},
		{name: "just below dead-band", v: 503, expect: MotorState{Direction: hal.MotorReverse, Duty: 0}},
		{name: "reverse midway", v: 254, expect: MotorState{Direction: hal.MotorReverse, Duty: 127}},
		{name: "reverse saturation", v: 5, expect: MotorState{Direction: hal.MotorReverse, Duty: 255}},
		{name: "reverse rail", v: 0, expect: MotorState{Direction: hal.MotorReverse, Duty: 255}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, motorFromPot(tc.v))
		})
	}
}

func TestAveragedSample(t *testing.T) {
	var pots sim.Pots
	pots.SetValue(PotSteer, 700)
	require.Equal(t, 700, averagedSample(&pots, PotSteer))
	require.Equal(t, 0, averagedSample(&pots, PotBase))
}
