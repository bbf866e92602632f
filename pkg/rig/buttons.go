package rig

import (
	"github.com/robotalks/rig.go/pkg/hal"
)

// EdgeDetector turns raw digital pin levels into one-shot
// falling-edge events. Buttons are active-low, so a press is a
// high-to-low transition. No extra debounce filtering: the 20 ms
// scheduler tick already exceeds typical mechanical bounce.
type EdgeDetector struct {
	pin  hal.InputPin
	last bool
}

// NewEdgeDetector creates a detector with the stored level
// initialized to released.
func NewEdgeDetector(pin hal.InputPin) *EdgeDetector {
	return &EdgeDetector{pin: pin, last: true}
}

// Detect reports whether the level fell since the last call. The
// stored level is updated unconditionally.
func (e *EdgeDetector) Detect() bool {
	level := e.pin.Get()
	fell := e.last && !level
	e.last = level
	return fell
}
