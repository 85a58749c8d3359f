package preprocessing

import "errors"

var (
	// ErrShape indicates an input matrix without at least one channel row
	// and one sample column.
	ErrShape = errors.New("preprocessing: signal matrix must have at least one channel and one sample")
	// ErrInvalidParameter indicates a negative extension factor or an
	// invalid regularization constant.
	ErrInvalidParameter = errors.New("preprocessing: invalid parameter")
	// ErrNumericalInstability indicates that the whitening transform could
	// not be computed without producing non-finite values.
	ErrNumericalInstability = errors.New("preprocessing: whitening is numerically unstable")
)
