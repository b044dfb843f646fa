// Package config reads analysis options from INI-style files:
//
//	[analysis]
//	method = linear-elastic
//	solver = cg
//	max-iterations = 200
//	tolerance = 1e-6
//	pivot-tolerance = 1e-12
//	accept-non-converged = false
//
// Keys that are not given keep their defaults.
package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/alexiusacademia/goframe/internal/analysis"
)

type analysisSection struct {
	Method             string
	Solver             string
	MaxIterations      int     `gcfg:"max-iterations"`
	Tolerance          float64 `gcfg:"tolerance"`
	PivotTolerance     float64 `gcfg:"pivot-tolerance"`
	AcceptNonConverged bool    `gcfg:"accept-non-converged"`
}

type fileConfig struct {
	Analysis analysisSection
}

func defaults() fileConfig {
	d := analysis.DefaultOptions()
	return fileConfig{Analysis: analysisSection{
		Method:             d.Method.String(),
		Solver:             d.Solver.String(),
		MaxIterations:      d.MaxIterations,
		Tolerance:          d.Tolerance,
		PivotTolerance:     d.PivotTolerance,
		AcceptNonConverged: d.AcceptNonConverged,
	}}
}

// Load reads options from a file.
func Load(fname string) (analysis.Options, error) {
	fc := defaults()
	if err := gcfg.ReadFileInto(&fc, fname); err != nil {
		return analysis.Options{}, fmt.Errorf("reading %s: %w", fname, err)
	}
	return fc.options()
}

// Parse reads options from the text of a config file.
func Parse(text string) (analysis.Options, error) {
	fc := defaults()
	if err := gcfg.ReadStringInto(&fc, text); err != nil {
		return analysis.Options{}, err
	}
	return fc.options()
}

func (fc fileConfig) options() (analysis.Options, error) {
	a := fc.Analysis
	method, err := analysis.ParseMethod(a.Method)
	if err != nil {
		return analysis.Options{}, err
	}
	kind, err := analysis.ParseSolver(a.Solver)
	if err != nil {
		return analysis.Options{}, err
	}
	opts := analysis.Options{
		Method:             method,
		Solver:             kind,
		MaxIterations:      a.MaxIterations,
		Tolerance:          a.Tolerance,
		PivotTolerance:     a.PivotTolerance,
		AcceptNonConverged: a.AcceptNonConverged,
	}
	if err := opts.Validate(); err != nil {
		return analysis.Options{}, err
	}
	return opts, nil
}
