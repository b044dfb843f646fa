package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/goframe/internal/analysis"
	"github.com/alexiusacademia/goframe/internal/model"
)

func solved(t *testing.T) (*model.Structure, *analysis.Result) {
	t.Helper()
	s := model.NewStructure("frame")
	a, _ := s.AddNode("A", 0, 0, 0, model.Fixed)
	b, _ := s.AddNode("B", 0, 0, 3, model.Free)
	c, _ := s.AddNode("C", 4, 0, 3, model.Pinned)
	steel := &model.Material{Name: "steel", E: 210e6, G: 81e6, Density: 7.85, Fy: 275e3, GammaM: 1}
	sec := &model.CrossSection{Name: "rhs", Area: 4e-3, Iy: 2e-5, Iz: 1e-5, It: 2.5e-5, Wy: 2e-4, Wz: 1.3e-4}
	_, err := s.AddMember("COL", a, b, steel, sec, model.Beam)
	require.NoError(t, err)
	_, err = s.AddMember("BEAM", b, c, steel, sec, model.Beam)
	require.NoError(t, err)

	lc := model.NewLoadCase("wind")
	lc.AddPointLoad(b, model.Load{5})
	lc.DisplacementBounds[b] = 1e-6
	require.NoError(t, s.AddLoadCase(lc))

	opts := analysis.DefaultOptions()
	opts.Solver = analysis.ConjugateGradient
	opts.Tolerance = 1e-8
	opts.MaxIterations = 500
	res, err := analysis.Solve(s, lc, opts)
	require.NoError(t, err)
	return s, res
}

func TestSummaryBox(t *testing.T) {
	box := SummaryBox("RESULTS", []string{"short", "a much longer line"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
	assert.Contains(t, box, "a much longer line")
}

func TestTextTables(t *testing.T) {
	s, res := solved(t)
	members := analysis.MemberForces(s, res.Displacements)

	var buf bytes.Buffer
	Header(&buf, "FRAME")
	Model(&buf, s)
	Nodes(&buf, s)
	Members(&buf, s)
	Solution(&buf, res)
	Displacements(&buf, s, res)
	MemberForces(&buf, members)
	Reactions(&buf, analysis.Reactions(s, res))
	Checks(&buf, analysis.CheckAll(members))
	lc, _ := s.LoadCase("wind")
	Bounds(&buf, analysis.CheckBounds(lc, res))

	out := buf.String()
	for _, want := range []string{
		"FRAME", "MODEL", "Free DOFs:", "COL", "BEAM",
		"Iterations:", "NODAL DISPLACEMENTS", "SUPPORT REACTIONS",
		"MEMBER CHECKS", "DISPLACEMENT BOUNDS EXCEEDED", "111000",
	} {
		assert.Contains(t, out, want)
	}
}

func TestBoundsWritesNothingWithoutViolations(t *testing.T) {
	var buf bytes.Buffer
	Bounds(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestConvergence(t *testing.T) {
	_, res := solved(t)
	require.NotEmpty(t, res.History)

	chart := Convergence(res.History, 1e-8)
	assert.Contains(t, chart, "iterations")
	assert.Greater(t, strings.Count(chart, "\n"), 5)

	assert.Empty(t, Convergence(nil, 1e-3))
}

func TestAutoScale(t *testing.T) {
	s, res := solved(t)
	scale := AutoScale(s, res.Displacements)
	_, peak := res.MaxTranslation(s)
	assert.InDelta(t, 0.4, scale*peak, 1e-9, "largest translation is 10% of the 4 m extent")

	assert.Equal(t, 1.0, AutoScale(s, mat.NewVecDense(s.DofCount(), nil)))
}

func TestExportDeformedShape(t *testing.T) {
	s, res := solved(t)
	dir := t.TempDir()

	for _, name := range []string{"frame.png", "frame.svg", "sub/frame.pdf"} {
		fname := filepath.Join(dir, name)
		require.NoError(t, ExportDeformedShape(s, res.Displacements, PlotOptions{Plane: "xz"}, fname))
		info, err := os.Stat(fname)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	// unknown extensions get .png appended
	require.NoError(t, ExportDeformedShape(s, res.Displacements, PlotOptions{Scale: 100}, filepath.Join(dir, "frame")))
	_, err := os.Stat(filepath.Join(dir, "frame.png"))
	assert.NoError(t, err)

	err = ExportDeformedShape(s, res.Displacements, PlotOptions{Plane: "xw"}, filepath.Join(dir, "bad.png"))
	assert.Error(t, err)

	err = ExportDeformedShape(s, mat.NewVecDense(3, nil), PlotOptions{}, filepath.Join(dir, "short.png"))
	assert.Error(t, err)
}
