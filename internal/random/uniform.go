package random

// Float64 returns a value in [0, 1) built from the top 53 bits of a draw.
func Float64(src Source) (float64, error) {
	num, err := src.Uint64()

	if err != nil {
		return 0, err
	}

	return float64(num>>11) / (1 << 53), nil
}

// Uniform returns a value in [low, high).
func Uniform(src Source, low, high float64) (float64, error) {
	if !(low < high) {
		return 0, ErrInvalidRange
	}

	f, err := Float64(src)

	if err != nil {
		return 0, err
	}

	res := low + f*(high-low)

	//rounding can land exactly on high
	if res >= high {
		res = low
	}

	return res, nil
}
