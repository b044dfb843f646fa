package report

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/goframe/internal/model"
)

// PlotOptions controls the deformed shape export.
type PlotOptions struct {
	// Plane is the projection plane: "xz" (default), "xy" or "yz".
	Plane string

	// Scale multiplies the displacements. Zero picks a scale that makes
	// the largest translation 10% of the model extent.
	Scale float64

	Title string
}

// axes returns the coordinate indices for the horizontal and vertical plot axes.
func (o PlotOptions) axes() (int, int, error) {
	switch strings.ToLower(o.Plane) {
	case "", "xz":
		return 0, 2, nil
	case "xy":
		return 0, 1, nil
	case "yz":
		return 1, 2, nil
	}
	return 0, 0, fmt.Errorf("unknown plane %q (use xz, xy or yz)", o.Plane)
}

// AutoScale returns the displacement scale that makes the largest nodal
// translation a tenth of the model extent.
func AutoScale(s *model.Structure, u mat.Vector) float64 {
	var extent, peak float64
	if len(s.Nodes) == 0 {
		return 1
	}
	lo, hi := s.Nodes[0].Position(), s.Nodes[0].Position()
	for _, n := range s.Nodes {
		p := n.Position()
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
		base := n.Index * model.DofsPerNode
		var d float64
		for k := 0; k < 3; k++ {
			d += u.AtVec(base+k) * u.AtVec(base+k)
		}
		peak = math.Max(peak, math.Sqrt(d))
	}
	for k := 0; k < 3; k++ {
		extent = math.Max(extent, hi[k]-lo[k])
	}
	if peak == 0 || extent == 0 {
		return 1
	}
	return 0.1 * extent / peak
}

// ExportDeformedShape exports the undeformed and deformed structure,
// projected on a coordinate plane, to an image file
func ExportDeformedShape(s *model.Structure, u mat.Vector, opts PlotOptions, filename string) error {
	h, v, err := opts.axes()
	if err != nil {
		return err
	}
	if u.Len() != s.DofCount() {
		return fmt.Errorf("displacement vector has %d entries, structure has %d DOFs", u.Len(), s.DofCount())
	}
	scale := opts.Scale
	if scale == 0 {
		scale = AutoScale(s, u)
	}

	names := "XYZ"
	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf("Deformed Shape (scale ×%.3g)", scale)
	}
	p.X.Label.Text = fmt.Sprintf("%c (m)", names[h])
	p.Y.Label.Text = fmt.Sprintf("%c (m)", names[v])
	p.Add(plotter.NewGrid())

	point := func(n *model.Node, factor float64) plotter.XY {
		pos := n.Position()
		base := n.Index * model.DofsPerNode
		return plotter.XY{
			X: pos[h] + factor*u.AtVec(base+h),
			Y: pos[v] + factor*u.AtVec(base+v),
		}
	}

	for _, m := range s.Members {
		// Undeformed member
		orig, err := plotter.NewLine(plotter.XYs{point(m.From, 0), point(m.To, 0)})
		if err != nil {
			return err
		}
		orig.LineStyle.Width = vg.Points(1)
		orig.LineStyle.Color = color.Gray{Y: 150}
		orig.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(orig)

		// Deformed member, straight between displaced ends
		def, err := plotter.NewLine(plotter.XYs{point(m.From, scale), point(m.To, scale)})
		if err != nil {
			return err
		}
		def.LineStyle.Width = vg.Points(2)
		def.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		p.Add(def)
	}

	// Supports
	var supports plotter.XYs
	for _, n := range s.Nodes {
		if !n.Support.IsFree() {
			supports = append(supports, point(n, 0))
		}
	}
	if len(supports) > 0 {
		sc, err := plotter.NewScatter(supports)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		sc.GlyphStyle.Radius = vg.Points(5)
		sc.GlyphStyle.Shape = draw.TriangleGlyph{}
		p.Add(sc)
	}

	// Node labels at deformed positions
	labels := plotter.XYLabels{}
	for _, n := range s.Nodes {
		labels.XYs = append(labels.XYs, point(n, scale))
		labels.Labels = append(labels.Labels, n.ID)
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(l)

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
