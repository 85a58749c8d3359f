// Package hyser is the entry point for conditioning high-density sEMG
// recordings ahead of blind-source-separation decomposition into
// motor-unit firing sequences. It ties the dataset loaders to the
// preprocessing stage; the decomposition algorithm itself consumes the
// preconditioned output and lives outside this module.
package hyser

import (
	"gonum.org/v1/gonum/mat"

	"github.com/nihil21/hyser-decomposition/preprocessing"
)

// Preconditioner bundles the parameters of the preprocessing stage:
// time-delay channel extension followed by symmetric whitening.
// The zero value applies no extension and the default regularization.
// A Preconditioner holds no state across calls and is safe for
// concurrent use on independent inputs.
type Preconditioner struct {
	// ExtensionFactor is the number of delayed copies appended per
	// channel before whitening.
	ExtensionFactor int
	// Epsilon regularizes the covariance eigenvalues during whitening;
	// zero means preprocessing.DefaultEpsilon.
	Epsilon float64
}

// Preconditioned is the output of the preprocessing stage. The whitening
// matrix is kept alongside the signal because downstream separation
// stages need it to map their results back to sensor space.
type Preconditioned struct {
	// Extended is the delay-embedded signal, prior to whitening.
	Extended *mat.Dense
	// Whitened is the extended signal after symmetric whitening.
	Whitened *mat.Dense
	// WhiteningMatrix is the symmetric transform that produced Whitened.
	WhiteningMatrix *mat.Dense
}

// Precondition runs channel extension and whitening on the
// channels-by-samples signal matrix x.
func (p Preconditioner) Precondition(x mat.Matrix) (*Preconditioned, error) {
	eps := p.Epsilon
	if eps == 0 {
		eps = preprocessing.DefaultEpsilon
	}
	xExt, err := preprocessing.Extend(x, p.ExtensionFactor)
	if err != nil {
		return nil, err
	}
	xWhite, whiteMtx, err := preprocessing.WhitenWithEpsilon(xExt, eps)
	if err != nil {
		return nil, err
	}
	return &Preconditioned{
		Extended:        xExt,
		Whitened:        xWhite,
		WhiteningMatrix: whiteMtx,
	}, nil
}
