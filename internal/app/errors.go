package app

import "errors"

var (
	// The random source failed to produce a value.
	ErrRandomization = errors.New("randomization failed")

	// A popup could not be constructed or shown.
	ErrPopupDisplay = errors.New("popup display failed")

	ErrRoundInProgress = errors.New("round is in progress")
)
