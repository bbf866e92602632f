// Package rig implements the control supervisor for a small
// articulated rig: three operating modes, a line-oriented command
// protocol and preset persistence, driven one tick at a time by a
// cooperative loop.
package rig

// Mode is the active operating mode of the supervisor.
type Mode int

// Operating modes, cycled Manual -> Playback -> Remote by the
// mode button.
const (
	ModeManual Mode = iota
	ModePlayback
	ModeRemote

	modeCount
)

// Next returns the mode following m in the cycle.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	case ModePlayback:
		return "playback"
	case ModeRemote:
		return "remote"
	}
	return "unknown"
}
