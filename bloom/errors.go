package bloom

import "errors"

var (
	ErrInvalidExpectedItems     = errors.New("bloom: expected items must be greater than zero")
	ErrInvalidFalsePositiveRate = errors.New("bloom: false positive rate must be in (0, 1)")
	ErrFilterTooLarge           = errors.New("bloom: bit vector too large")
)
