package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nihil21/hyser-decomposition/gonumext"
)

// randomSignal draws a (nChannels, nSamples) matrix of independent
// Gaussian channels with the given standard deviations.
func randomSignal(nChannels, nSamples int, sigma []float64, seed uint64) *mat.Dense {
	src := rand.NewSource(seed)
	x := mat.NewDense(nChannels, nSamples, nil)
	for row := 0; row < nChannels; row++ {
		dist := distuv.Normal{Mu: 0, Sigma: sigma[row], Src: src}
		for col := 0; col < nSamples; col++ {
			x.Set(row, col, dist.Rand())
		}
	}
	return x
}

func TestWhitenSymmetric(t *testing.T) {
	x := randomSignal(4, 2000, []float64{1, 2, 0.5, 3}, 1)
	_, whiteMtx, err := Whiten(x)
	require.NoError(t, err)

	m, n := whiteMtx.Dims()
	require.Equal(t, 4, m)
	require.Equal(t, 4, n)
	assert.True(t, mat.EqualApprox(whiteMtx, whiteMtx.T(), 1e-10))
}

func TestWhitenIdentityCovariance(t *testing.T) {
	const nChannels, nSamples = 4, 5000
	x := randomSignal(nChannels, nSamples, []float64{1, 2, 0.5, 3}, 2)

	xWhite, _, err := Whiten(x)
	require.NoError(t, err)

	m, n := xWhite.Dims()
	require.Equal(t, nChannels, m)
	require.Equal(t, nSamples, n)

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, xWhite.T(), nil)
	assert.True(t, mat.EqualApprox(&cov, gonumext.Eye(nChannels, nChannels, 0), 1e-4),
		"whitened covariance %v", mat.Formatted(&cov))
}

func TestWhitenUncorrelatedUnitVariance(t *testing.T) {
	// For an already white input the transform is close to identity.
	const nChannels, nSamples = 2, 20000
	x := randomSignal(nChannels, nSamples, []float64{1, 1}, 3)

	xWhite, whiteMtx, err := Whiten(x)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(whiteMtx, gonumext.Eye(nChannels, nChannels, 0), 0.1),
		"whitening matrix %v", mat.Formatted(whiteMtx))

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, xWhite.T(), nil)
	assert.True(t, mat.EqualApprox(&cov, gonumext.Eye(nChannels, nChannels, 0), 1e-4))
}

func TestWhitenDegenerateInput(t *testing.T) {
	// Two perfectly correlated channels make the covariance singular; the
	// eps regularizer must keep every output entry finite.
	const nSamples = 500
	x := mat.NewDense(2, nSamples, nil)
	for col := 0; col < nSamples; col++ {
		v := math.Sin(float64(col) * 0.05)
		x.Set(0, col, v)
		x.Set(1, col, v)
	}

	xWhite, whiteMtx, err := Whiten(x)
	require.NoError(t, err)
	assert.False(t, gonumext.HasNaNOrInf(xWhite))
	assert.False(t, gonumext.HasNaNOrInf(whiteMtx))
	assert.True(t, mat.EqualApprox(whiteMtx, whiteMtx.T(), 1e-10))
}

func TestWhitenDeterminism(t *testing.T) {
	// Distinct channel scales keep the eigenvalues non-degenerate, so the
	// eigenvector basis carries no rotational ambiguity.
	const nChannels, nSamples = 3, 300
	x := mat.NewDense(nChannels, nSamples, nil)
	for row := 0; row < nChannels; row++ {
		scale := float64(row + 1)
		for col := 0; col < nSamples; col++ {
			x.Set(row, col, scale*math.Sin(float64(col)*0.1+scale))
		}
	}

	xWhite1, whiteMtx1, err := Whiten(x)
	require.NoError(t, err)
	xWhite2, whiteMtx2, err := Whiten(x)
	require.NoError(t, err)

	assert.True(t, mat.Equal(xWhite1, xWhite2))
	assert.True(t, mat.Equal(whiteMtx1, whiteMtx2))
}

func TestWhitenPreservesInput(t *testing.T) {
	x := randomSignal(3, 400, []float64{1, 2, 3}, 4)
	var before mat.Dense
	before.CloneFrom(x)

	_, _, err := Whiten(x)
	require.NoError(t, err)
	assert.True(t, mat.Equal(&before, x))
}

func TestWhitenInvalidEpsilon(t *testing.T) {
	x := randomSignal(2, 100, []float64{1, 1}, 5)
	for _, eps := range []float64{-1e-10, math.NaN(), math.Inf(1)} {
		_, _, err := WhitenWithEpsilon(x, eps)
		assert.ErrorIs(t, err, ErrInvalidParameter, "eps = %v", eps)
	}
}

func TestWhitenBadShape(t *testing.T) {
	_, _, err := Whiten(nil)
	require.ErrorIs(t, err, ErrShape)

	var empty mat.Dense
	_, _, err = Whiten(&empty)
	require.ErrorIs(t, err, ErrShape)
}

func TestWhitenSingleSample(t *testing.T) {
	// One sample leaves the covariance estimator undefined; the result
	// must surface as an instability error, never as silent NaNs.
	x := mat.NewDense(3, 1, []float64{1, 2, 3})
	_, _, err := Whiten(x)
	require.ErrorIs(t, err, ErrNumericalInstability)
}
