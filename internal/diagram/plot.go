package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/openstructure/mkappa/internal/solver"
)

// ExportMKappaCurve plots the positive and negative branches of a
// moment-curvature curve to filename (PNG, SVG, or PDF inferred from the
// extension).
func ExportMKappaCurve(positive, negative []solver.Point, filename string) error {
	p := plot.New()
	p.Title.Text = "Moment-Curvature Curve"
	p.X.Label.Text = "Curvature (1/mm)"
	p.Y.Label.Text = "Moment"

	if len(positive) > 0 {
		line, err := plotter.NewLine(pointsToXYs(positive))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 200, A: 255}
		p.Add(line)
		p.Legend.Add("positive", line)
	}
	if len(negative) > 0 {
		line, err := plotter.NewLine(pointsToXYs(negative))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.RGBA{R: 200, G: 60, B: 0, A: 255}
		p.Add(line)
		p.Legend.Add("negative", line)
	}

	zeroLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: p.Y.Min}, {X: 0, Y: p.Y.Max}})
	if err == nil {
		zeroLine.LineStyle.Color = color.Gray{Y: 180}
		zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(zeroLine)
	}

	return savePlot(p, filename)
}

func pointsToXYs(pts []solver.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.Kappa, Y: pt.Moment}
	}
	return xys
}

// ExportStrainProfile plots the given strain samples against their depths
// (depths and strains are index-aligned, ordered from top to bottom).
func ExportStrainProfile(depths, strains []float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Strain Distribution"
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Depth from top"

	if len(depths) > 0 {
		p.Y.Min = depths[len(depths)-1]
		p.Y.Max = depths[0]
	}

	xys := make(plotter.XYs, len(depths))
	for i := range depths {
		xys[i] = plotter.XY{X: strains[i], Y: depths[i]}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 120, B: 0, A: 255}
	p.Add(line)

	zeroLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: p.Y.Min}, {X: 0, Y: p.Y.Max}})
	if err == nil {
		zeroLine.LineStyle.Color = color.Gray{Y: 160}
		zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(zeroLine)
	}

	return savePlot(p, filename)
}

// ExportDeflectedShape plots deflection against position along the beam.
func ExportDeflectedShape(positions, deflections []float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Deflected Shape"
	p.X.Label.Text = "Position"
	p.Y.Label.Text = "Deflection"

	xys := make(plotter.XYs, len(positions))
	for i := range positions {
		xys[i] = plotter.XY{X: positions[i], Y: deflections[i]}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 120, G: 0, B: 120, A: 255}
	p.Add(line)

	return savePlot(p, filename)
}

func savePlot(p *plot.Plot, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
