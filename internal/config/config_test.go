package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goframe/internal/analysis"
)

func TestParseDefaults(t *testing.T) {
	opts, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, analysis.DefaultOptions(), opts)
}

func TestParse(t *testing.T) {
	opts, err := Parse(`
; iterative solve with a tight tolerance
[analysis]
method = th2
solver = cg
max-iterations = 500
tolerance = 1e-8
accept-non-converged = true
`)
	require.NoError(t, err)

	assert.Equal(t, analysis.Theory2ndOrder, opts.Method)
	assert.Equal(t, analysis.ConjugateGradient, opts.Solver)
	assert.Equal(t, 500, opts.MaxIterations)
	assert.Equal(t, 1e-8, opts.Tolerance)
	assert.True(t, opts.AcceptNonConverged)
	// not given
	assert.Equal(t, analysis.DefaultOptions().PivotTolerance, opts.PivotTolerance)
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown solver":   "[analysis]\nsolver = lu\n",
		"bad tolerance":    "[analysis]\ntolerance = 2\n",
		"zero iterations":  "[analysis]\nmax-iterations = 0\n",
		"unknown variable": "[analysis]\nthreads = 4\n",
		"not a number":     "[analysis]\ntolerance = small\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(text)
			assert.Error(t, err)
		})
	}

	_, err := Parse("[analysis]\ntolerance = 2\n")
	assert.ErrorIs(t, err, analysis.ErrInvalidOptions)
}

func TestLoad(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "goframe.ini")
	require.NoError(t, os.WriteFile(fname, []byte("[analysis]\nsolver = cholesky\n"), 0644))

	opts, err := Load(fname)
	require.NoError(t, err)
	assert.Equal(t, analysis.Cholesky, opts.Solver)

	_, err = Load(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
