package random

import "errors"

var (
	ErrEmptyWeightsSlice = errors.New("empty weights slice")

	ErrNegativeWeight = errors.New("negative weight")

	ErrNonPositiveWeightsSum = errors.New("weights sum is not positive")

	ErrInvalidRange = errors.New("invalid range")

	ErrSource = errors.New("random source failure")
)
