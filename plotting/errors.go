package plotting

import "errors"

var (
	// ErrShape indicates an empty signal matrix or inconsistent firing data.
	ErrShape = errors.New("plotting: input data is empty or inconsistently shaped")
	// ErrInvalidParameter indicates a non-positive sampling frequency,
	// signal length or column count.
	ErrInvalidParameter = errors.New("plotting: invalid parameter")
)
