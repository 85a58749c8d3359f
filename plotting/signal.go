package plotting

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	subplotWidth  = 12 * vg.Centimeter
	subplotHeight = 5 * vg.Centimeter
)

// Signal renders one line plot per channel of s on a cols-wide grid and
// writes the result as a PNG image to path. The x axis is in seconds,
// derived from the sampling frequency fs.
func Signal(s mat.Matrix, fs float64, cols int, path string) error {
	if fs <= 0 {
		return fmt.Errorf("%w: sampling frequency fs = %g must be positive", ErrInvalidParameter, fs)
	}
	if cols < 1 {
		return fmt.Errorf("%w: cols = %d must be at least 1", ErrInvalidParameter, cols)
	}
	nChannels, nSamples, err := signalDims(s)
	if err != nil {
		return err
	}

	rows := (nChannels + cols - 1) / cols
	plots := make([][]*plot.Plot, rows)
	for row := range plots {
		plots[row] = make([]*plot.Plot, cols)
	}
	for channel := 0; channel < nChannels; channel++ {
		xys := make(plotter.XYs, nSamples)
		for col := 0; col < nSamples; col++ {
			xys[col].X = float64(col) / fs
			xys[col].Y = s.At(channel, col)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("plotting: channel %d: %w", channel, err)
		}

		p := plot.New()
		p.Title.Text = fmt.Sprintf("Channel %d", channel)
		p.X.Label.Text = "Time [s]"
		p.Add(line)
		plots[channel/cols][channel%cols] = p
	}

	img := vgimg.New(vg.Length(cols)*subplotWidth, vg.Length(rows)*subplotHeight)
	canvases := plot.Align(plots, draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}, draw.New(img))
	for row := range plots {
		for col := range plots[row] {
			if plots[row][col] != nil {
				plots[row][col].Draw(canvases[row][col])
			}
		}
	}
	return savePNG(img, path)
}

func savePNG(img *vgimg.Canvas, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	defer file.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(file); err != nil {
		return fmt.Errorf("plotting: write %s: %w", path, err)
	}
	return nil
}

// signalDims validates the channels-by-samples contract of s.
func signalDims(s mat.Matrix) (nChannels, nSamples int, err error) {
	if s == nil {
		return 0, 0, fmt.Errorf("%w: signal matrix is nil", ErrShape)
	}
	nChannels, nSamples = s.Dims()
	if nChannels < 1 || nSamples < 1 {
		return 0, 0, fmt.Errorf("%w: got shape (%d, %d)", ErrShape, nChannels, nSamples)
	}
	return nChannels, nSamples, nil
}
