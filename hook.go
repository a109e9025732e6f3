package declutter

import "time"

// Phase identifies a stage of the extraction pipeline.
type Phase string

// Phase constants, reported in this order.
const (
	PhaseFilter      Phase = "filter"
	PhaseSelect      Phase = "select"
	PhaseMaterialize Phase = "materialize"
)

// PhaseEvent describes a completed phase.
type PhaseEvent struct {
	Phase    Phase
	Duration time.Duration

	// Nodes is the number of mirror nodes the phase produced or considered.
	Nodes int

	// Score is the top candidate's score. It is set from PhaseSelect on.
	Score float64
}

// Hook is called at the end of every phase of an extraction.
type Hook func(PhaseEvent)
