// Package state defines the engine's loop phase for diagnostics.
package state

// LoopPhase represents where the engine is in its scene cycle
type LoopPhase int

const (
	PhaseBoot LoopPhase = iota
	PhaseInterval
	PhaseNormal
	PhaseEnded
)

// String returns the string representation of the loop phase
func (p LoopPhase) String() string {
	switch p {
	case PhaseBoot:
		return "Boot"
	case PhaseInterval:
		return "Interval"
	case PhaseNormal:
		return "Normal"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}
