package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/nihil21/hyser-decomposition/gonumext"
)

// DefaultEpsilon is the regularization constant added to every
// eigenvalue of the covariance matrix before inversion, guarding
// against rank deficiency of dense electrode grids.
const DefaultEpsilon = 1e-10

// Whiten applies the symmetric whitening transform to x using
// DefaultEpsilon. See WhitenWithEpsilon.
func Whiten(x mat.Matrix) (xWhite, whiteMtx *mat.Dense, err error) {
	return WhitenWithEpsilon(x, DefaultEpsilon)
}

// WhitenWithEpsilon decorrelates the channels of x and normalizes their
// variance, so that the sample covariance of the result is approximately
// the identity matrix.
//
// The signal is centered per channel and its unbiased sample covariance
// (normalized by nSamples-1) is eigendecomposed into an orthonormal
// basis V and eigenvalues lambda. The whitening matrix is the symmetric
// transform
//
//	W = V diag(1/sqrt(lambda+eps)) Vᵀ
//
// which, unlike PCA or Cholesky whitening, stays as close as possible to
// the original channel basis and so preserves the spatial layout of the
// electrode grid. The whitened signal is W times the centered signal;
// both are returned, since downstream separation stages need W to map
// their results back to sensor space.
//
// eps must be non-negative and finite. A covariance matrix so ill
// conditioned that the transform turns out non-finite is reported as
// ErrNumericalInstability rather than propagated as NaN or Inf.
func WhitenWithEpsilon(x mat.Matrix, eps float64) (xWhite, whiteMtx *mat.Dense, err error) {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, nil, fmt.Errorf("%w: eps = %g must be non-negative and finite", ErrInvalidParameter, eps)
	}
	nChannels, nSamples, err := signalDims(x)
	if err != nil {
		return nil, nil, err
	}

	// Center each channel over the sample axis.
	xCenter := mat.NewDense(nChannels, nSamples, nil)
	for row := 0; row < nChannels; row++ {
		var mean float64
		for col := 0; col < nSamples; col++ {
			mean += x.At(row, col)
		}
		mean /= float64(nSamples)
		for col := 0; col < nSamples; col++ {
			xCenter.Set(row, col, x.At(row, col)-mean)
		}
	}

	// Channel-by-channel covariance; stat expects observations on rows.
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, xCenter.T(), nil)

	var eig mat.EigenSym
	if ok := eig.Factorize(&cov, true); !ok {
		return nil, nil, fmt.Errorf("%w: eigendecomposition of the covariance matrix failed", ErrNumericalInstability)
	}
	eigVals := eig.Values(nil)
	var eigVecs mat.Dense
	eig.VectorsTo(&eigVecs)

	invSqrt := make([]float64, nChannels)
	for index, lambda := range eigVals {
		invSqrt[index] = 1. / math.Sqrt(lambda+eps)
	}

	var vd mat.Dense
	vd.Mul(&eigVecs, mat.NewDiagDense(nChannels, invSqrt))
	whiteMtx = mat.NewDense(nChannels, nChannels, nil)
	whiteMtx.Mul(&vd, eigVecs.T())

	xWhite = mat.NewDense(nChannels, nSamples, nil)
	xWhite.Mul(whiteMtx, xCenter)

	if gonumext.HasNaNOrInf(whiteMtx) || gonumext.HasNaNOrInf(xWhite) {
		return nil, nil, fmt.Errorf("%w: transform produced non-finite values (eps = %g)", ErrNumericalInstability, eps)
	}
	return xWhite, whiteMtx, nil
}
