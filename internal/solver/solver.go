// Package solver provides dense linear solvers for the reduced stiffness
// system K·u = f of a supported structure.
package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solver solves A·x = b for a symmetric matrix A.
type Solver interface {
	Solve(a mat.Matrix, b mat.Vector) (*Result, error)
}

// Result holds the outputs of a solve.
type Result struct {
	X *mat.VecDense

	// Reduced is the row-reduced coefficient matrix left by Gauss-Jordan
	// elimination (the identity for a successful solve). Nil for other solvers.
	Reduced *mat.Dense

	Converged  bool
	Iterations int

	// Residual is the relative residual norm ‖b − A·x‖/‖b‖.
	Residual float64

	// History is the relative residual after each iteration (iterative
	// solvers only).
	History []float64
}

// checkDims rejects non-square matrices, empty systems and mismatched
// right-hand sides before any numerical work.
func checkDims(a mat.Matrix, b mat.Vector) (int, error) {
	r, c := a.Dims()
	n := b.Len()
	if r != c || r == 0 || n != r {
		return 0, &DimensionError{Rows: r, Cols: c, VecLen: n}
	}
	return r, nil
}

// residual returns ‖b − A·x‖/‖b‖, or ‖b − A·x‖ when b is zero.
func residual(a mat.Matrix, x, b mat.Vector) float64 {
	var r mat.VecDense
	r.MulVec(a, x)
	r.SubVec(b, &r)
	rn := mat.Norm(&r, 2)
	if bn := mat.Norm(b, 2); bn > 0 {
		return rn / bn
	}
	return rn
}

func allFinite(s []float64) bool {
	return !floats.HasNaN(s) && !math.IsInf(floats.Max(s), 1) && !math.IsInf(floats.Min(s), -1)
}
