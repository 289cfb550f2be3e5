package app

import "github.com/google/uuid"

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCounting
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCounting:
		return "counting"
	case PhaseCompleted:
		return "completed"
	}

	return "unknown"
}

type OutcomeKind int

const (
	// Start pressed before any randomization.
	OutcomeIgnored OutcomeKind = iota
	OutcomeStarted
	// Stop pressed before the countdown expired.
	OutcomeImpatient
	OutcomePerfect
	OutcomeDeviation
	OutcomeRandomized
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeStarted:
		return "started"
	case OutcomeImpatient:
		return "impatient"
	case OutcomePerfect:
		return "perfect"
	case OutcomeDeviation:
		return "deviation"
	case OutcomeRandomized:
		return "randomized"
	}

	return "unknown"
}

type Outcome struct {
	Kind OutcomeKind

	// Text to show to the player, empty for OutcomeIgnored and OutcomeStarted.
	Message string

	// Chosen delay in seconds, set for OutcomeRandomized.
	Delay float64

	// Signed elapsed - delay in seconds, set for OutcomePerfect and OutcomeDeviation.
	Difference float64

	// The round the outcome belongs to, uuid.Nil for OutcomeIgnored and OutcomeRandomized.
	RoundID uuid.UUID
}

// Whether the outcome finishes a round.
func (o Outcome) Finished() bool {
	return o.Kind == OutcomeImpatient || o.Kind == OutcomePerfect || o.Kind == OutcomeDeviation
}
