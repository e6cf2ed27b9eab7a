package types

import (
	"errors"
	"math"
)

var (
	ErrCounterOverflow  = errors.New("counter overflow")
	ErrCounterUnderflow = errors.New("counter underflow")
	ErrScoreOverflow    = errors.New("score overflow")
)

// Counter covers the unsigned counter widths used by entities.
type Counter interface {
	~uint16 | ~uint32
}

// AddCounter increments a counter, failing on wrap-around.
func AddCounter[T Counter](value, delta T) (T, error) {
	sum := value + delta
	if sum < value {
		return 0, ErrCounterOverflow
	}

	return sum, nil
}

// SubCounter decrements a counter, failing on underflow.
func SubCounter[T Counter](value, delta T) (T, error) {
	if delta > value {
		return 0, ErrCounterUnderflow
	}

	return value - delta, nil
}

// AddScore applies a signed diff to a content score with range checking.
func AddScore(score int32, diff int16) (int32, error) {
	sum := int64(score) + int64(diff)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return 0, ErrScoreOverflow
	}

	return int32(sum), nil
}

// SubScore removes a previously applied signed diff from a content score.
func SubScore(score int32, diff int16) (int32, error) {
	sum := int64(score) - int64(diff)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return 0, ErrScoreOverflow
	}

	return int32(sum), nil
}
