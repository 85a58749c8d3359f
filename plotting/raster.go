package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// MotorUnitFirings holds the discharge pattern of a single motor unit.
// Times are discharge instants in seconds; Rates, when present, carry
// the instantaneous firing rate at each discharge and must have the same
// length as Times.
type MotorUnitFirings struct {
	Times []float64
	Rates []float64
}

// FiringRaster renders a raster of motor-unit discharges (time on the x
// axis, unit index on the y axis) and saves it to path. sigLen, in
// seconds, fixes the x-axis range. When firing rates are provided for
// every unit, each discharge glyph is colored by its rate.
func FiringRaster(firings []MotorUnitFirings, sigLen float64, title, path string) error {
	if sigLen <= 0 {
		return fmt.Errorf("%w: signal length sigLen = %g must be positive", ErrInvalidParameter, sigLen)
	}
	if len(firings) == 0 {
		return fmt.Errorf("%w: no motor units", ErrShape)
	}

	var (
		xys   plotter.XYs
		rates []float64
	)
	haveRates := true
	for unit, f := range firings {
		if f.Rates != nil && len(f.Rates) != len(f.Times) {
			return fmt.Errorf("%w: unit %d has %d rates for %d firing times",
				ErrShape, unit, len(f.Rates), len(f.Times))
		}
		if f.Rates == nil {
			haveRates = false
		}
		for i, t := range f.Times {
			xys = append(xys, plotter.XY{X: t, Y: float64(unit)})
			if f.Rates != nil {
				rates = append(rates, f.Rates[i])
			}
		}
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	if haveRates && len(rates) > 0 {
		colorByRate(scatter, rates)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Firing time [s]"
	p.Y.Label.Text = "MU index"
	p.X.Min, p.X.Max = 0, sigLen
	p.Y.Min, p.Y.Max = -1, float64(len(firings))
	p.Add(scatter)
	return p.Save(16*vg.Centimeter, 8*vg.Centimeter, path)
}

// colorByRate maps each discharge glyph onto a diverging palette
// according to its firing rate.
func colorByRate(scatter *plotter.Scatter, rates []float64) {
	minRate, maxRate := rates[0], rates[0]
	for _, r := range rates[1:] {
		if r < minRate {
			minRate = r
		}
		if r > maxRate {
			maxRate = r
		}
	}
	colors := moreland.SmoothBlueRed().Palette(255).Colors()
	base := scatter.GlyphStyle
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		style := base
		index := 0
		if maxRate > minRate {
			index = int((rates[i] - minRate) / (maxRate - minRate) * float64(len(colors)-1))
		}
		style.Color = colors[index]
		return style
	}
}
