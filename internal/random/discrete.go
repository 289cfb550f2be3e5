package random

import (
	"math"
	"sort"
)

// Discrete chooses an index with probability proportional to its weight.
type Discrete struct {
	// intervals[i] is the upper bound of the section of value i.
	intervals  []float64
	weightsSum float64
	randSource Source
}

func NewDiscrete(randSource Source, weights []float64) (*Discrete, error) {
	if len(weights) <= 0 {
		return nil, ErrEmptyWeightsSlice
	}

	res := &Discrete{
		intervals:  make([]float64, len(weights)),
		randSource: randSource,
	}

	for i, weight := range weights {
		if weight < 0 {
			return nil, ErrNegativeWeight
		}

		res.weightsSum += weight

		res.intervals[i] = res.weightsSum
	}

	if res.weightsSum <= 0 {
		return nil, ErrNonPositiveWeightsSum
	}

	return res, nil
}

// Returns a Discrete over n equally probable values.
func NewUniformDiscrete(randSource Source, n int) (*Discrete, error) {
	if n <= 0 {
		return nil, ErrEmptyWeightsSlice
	}

	weights := make([]float64, n)

	for i := range weights {
		weights[i] = 1
	}

	return NewDiscrete(randSource, weights)
}

func (rv *Discrete) Len() int {
	return len(rv.intervals)
}

func (rv *Discrete) Get() (int, error) {
	num, err := rv.randSource.Uint64()

	if err != nil {
		return 0, err
	}

	point := float64(num) * rv.weightsSum / float64(math.MaxUint64)

	//first section whose upper bound is strictly above the point,
	//so zero-weight sections are never chosen
	valueIndex := sort.Search(len(rv.intervals), func(i int) bool {
		return rv.intervals[i] > point
	})

	//float64(math.MaxUint64) rounds up, the point can reach weightsSum
	if valueIndex >= len(rv.intervals) {
		valueIndex = len(rv.intervals) - 1

		for valueIndex > 0 && rv.intervals[valueIndex] == rv.intervals[valueIndex-1] {
			valueIndex--
		}
	}

	return valueIndex, nil
}
