package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Extend augments the signal x with r time-delayed copies of every channel.
//
// Given x with shape (nChannels, nSamples), the result has shape
// (nChannels*(r+1), nSamples). Row block 0 is x unchanged; row block k,
// for 1 <= k <= r, holds x delayed by k samples with the first k columns
// set to zero where no history is available. Extend(x, 0) returns a copy
// equal to x, so calling code can always route through Extend.
func Extend(x mat.Matrix, r int) (*mat.Dense, error) {
	if r < 0 {
		return nil, fmt.Errorf("%w: extension factor r = %d must be non-negative", ErrInvalidParameter, r)
	}
	nChannels, nSamples, err := signalDims(x)
	if err != nil {
		return nil, err
	}

	xExt := mat.NewDense(nChannels*(r+1), nSamples, nil)
	for row := 0; row < nChannels; row++ {
		for col := 0; col < nSamples; col++ {
			xExt.Set(row, col, x.At(row, col))
		}
	}
	for k := 1; k <= r; k++ {
		startRow := nChannels * k
		// Columns before k stay zero; column col of the delayed block
		// observes the signal k samples in the past.
		for row := 0; row < nChannels; row++ {
			for col := k; col < nSamples; col++ {
				xExt.Set(startRow+row, col, x.At(row, col-k))
			}
		}
	}
	return xExt, nil
}

// signalDims validates the channels-by-samples contract of x.
func signalDims(x mat.Matrix) (nChannels, nSamples int, err error) {
	if x == nil {
		return 0, 0, fmt.Errorf("%w: signal matrix is nil", ErrShape)
	}
	nChannels, nSamples = x.Dims()
	if nChannels < 1 || nSamples < 1 {
		return 0, 0, fmt.Errorf("%w: got shape (%d, %d)", ErrShape, nChannels, nSamples)
	}
	return nChannels, nSamples, nil
}
