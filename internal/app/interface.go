package app

// Game is the state of one player's session. Implementations are
// goroutine-safe; the completion callback may be called from any goroutine.
type Game interface {
	// Chooses a new delay and allows starting a countdown.
	Randomize() (Outcome, error)

	// Start/Stop button action, its meaning depends on Phase().
	StartStop() (Outcome, error)

	Phase() Phase
	AllowStart() bool

	// Registers a func called once per round when its countdown expires.
	OnCountdownCompleted(func())
}
