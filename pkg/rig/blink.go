package rig

import (
	"github.com/robotalks/rig.go/pkg/hal"
)

// Flash timing in scheduler ticks: one visible flash is 5 ticks
// on, 5 ticks off.
const (
	flashTicks     = 10
	flashHalfTicks = 5
)

// Blinker schedules a bounded number of LED flashes without
// blocking the loop. At most one job is active; Start replaces
// any in-flight job (last writer wins, no queue).
type Blinker struct {
	led       hal.LED
	remaining int
}

// Start schedules count flashes on led.
func (b *Blinker) Start(led hal.LED, count int) {
	b.led, b.remaining = led, count*flashTicks
}

// Tick advances the active job by one scheduler tick. The LED is
// left in whatever state the last toggle produced; callers must
// not rely on it being off afterwards.
func (b *Blinker) Tick() {
	if b.remaining == 0 {
		return
	}
	if b.remaining%flashHalfTicks == 0 {
		b.led.Toggle()
	}
	b.remaining--
}

// Active reports whether a job is in flight.
func (b *Blinker) Active() bool {
	return b.remaining > 0
}
