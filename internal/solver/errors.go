package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors for linear solves.
var (
	// ErrDimensionMismatch indicates a non-square matrix, an empty system or a
	// right-hand side whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")

	// ErrNotConverged indicates that an iterative solve exhausted its
	// iteration budget before meeting its tolerance.
	ErrNotConverged = errors.New("solver: not converged")

	// ErrSingular indicates a zero or near-zero pivot, typically an
	// insufficiently supported structure.
	ErrSingular = errors.New("solver: singular matrix")

	// ErrNonFinite indicates that the solution contains NaN or Inf entries.
	ErrNonFinite = errors.New("solver: non-finite solution")
)

// DimensionError reports the offending dimensions of a rejected system.
type DimensionError struct {
	Rows, Cols int
	VecLen     int
}

func (e *DimensionError) Error() string {
	if e.Rows != e.Cols {
		return fmt.Sprintf("solver: matrix is not square: %dx%d", e.Rows, e.Cols)
	}
	if e.Rows == 0 {
		return "solver: empty system"
	}
	return fmt.Sprintf("solver: vector length %d does not match matrix order %d", e.VecLen, e.Rows)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// ConvergenceError reports the state of an iterative solve that stopped
// before reaching its tolerance.
type ConvergenceError struct {
	Iterations int
	Residual   float64 // relative residual norm ‖r‖/‖r₀‖
	Tolerance  float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("solver: not converged after %d iterations: relative residual %.3e > tolerance %.3e",
		e.Iterations, e.Residual, e.Tolerance)
}

func (e *ConvergenceError) Unwrap() error { return ErrNotConverged }

// PivotError reports the row at which elimination met an unusable pivot.
type PivotError struct {
	Row   int
	Pivot float64
	Limit float64
}

func (e *PivotError) Error() string {
	return fmt.Sprintf("solver: pivot %.3e at row %d is below %.3e; the structure may be unstable or insufficiently supported",
		e.Pivot, e.Row, e.Limit)
}

func (e *PivotError) Unwrap() error { return ErrSingular }
