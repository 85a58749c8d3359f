package plotting

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// matrixGrid adapts a matrix to the heatmap grid interface, with row 0
// at the bottom of the plot.
type matrixGrid struct {
	m mat.Matrix
}

func (g matrixGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g matrixGrid) Z(c, r int) float64 { return g.m.At(r, c) }

func (g matrixGrid) X(c int) float64 { return float64(c) }

func (g matrixGrid) Y(r int) float64 { return float64(r) }

// Correlation renders a heatmap of the channel correlation matrix of the
// channels-by-samples matrix a and saves it to path.
func Correlation(a mat.Matrix, title, path string) error {
	if _, _, err := signalDims(a); err != nil {
		return err
	}

	// Channels are the variables, so observations go on rows.
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, a.T(), nil)

	h := plotter.NewHeatMap(matrixGrid{&corr}, moreland.SmoothBlueRed().Palette(255))
	h.Min, h.Max = -1, 1

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Channel"
	p.Y.Label.Text = "Channel"
	p.Add(h)
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, path)
}
