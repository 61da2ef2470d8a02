// Package render draws grouped box plots of generated datasets.
package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rtreharne/fishdata/internal/domain"
)

// BoxPlot builds a plot with one box per group, in group order, with the
// variable on the Y axis.
func BoxPlot(ds *domain.Dataset) (*plot.Plot, error) {
	if ds.Len() == 0 {
		return nil, fmt.Errorf("cannot plot an empty dataset")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s by Group", ds.Variable)
	p.Y.Label.Text = ds.Variable

	groups := ds.Groups()
	for i, g := range groups {
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(ds.GroupValues(g)))
		if err != nil {
			return nil, fmt.Errorf("failed to build box for group %s: %w", g, err)
		}
		p.Add(box)
	}
	p.NominalX(groups...)

	return p, nil
}

// SaveBoxPlot renders the dataset as a box plot and writes it to path. The
// image format follows the file extension; the canvas is 8x6 inches.
func SaveBoxPlot(ds *domain.Dataset, path string) error {
	p, err := BoxPlot(ds)
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
