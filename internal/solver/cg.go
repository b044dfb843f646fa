package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Default conjugate gradient settings.
const (
	DefaultMaxIterations = 60
	DefaultTolerance     = 0.001

	// refreshInterval is the cadence at which the residual is recomputed
	// from b − A·x instead of the incremental update.
	refreshInterval = 10
)

// ConjugateGradient is an unpreconditioned conjugate gradient solver for
// symmetric positive-definite systems.
type ConjugateGradient struct {
	// MaxIterations caps the number of iterations (> 0).
	MaxIterations int

	// Tolerance is the relative residual target ‖r‖/‖r₀‖, in (0, 1).
	Tolerance float64
}

// Solve iterates from x₀ = 0. When the iteration budget is exhausted the
// result is returned together with a *ConvergenceError.
func (cg ConjugateGradient) Solve(a mat.Matrix, b mat.Vector) (*Result, error) {
	n, err := checkDims(a, b)
	if err != nil {
		return nil, err
	}
	maxIter := cg.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	tol := cg.Tolerance
	if !(tol > 0 && tol < 1) {
		tol = DefaultTolerance
	}

	x := mat.NewVecDense(n, nil)
	r := mat.NewVecDense(n, nil)
	r.CopyVec(b) // r = b − A·x₀ with x₀ = 0
	d := mat.NewVecDense(n, nil)
	d.CopyVec(r)
	q := mat.NewVecDense(n, nil)

	deltaNew := mat.Dot(r, r)
	delta0 := deltaNew
	limit := tol * tol * delta0

	var history []float64
	i := 0
	for i < maxIter && deltaNew > limit {
		q.MulVec(a, d)
		dq := mat.Dot(d, q)
		if !(dq > 0) {
			// A is not positive definite along d
			break
		}
		alpha := deltaNew / dq
		x.AddScaledVec(x, alpha, d)

		if i%refreshInterval == 0 {
			r.MulVec(a, x)
			r.SubVec(b, r)
		} else {
			r.AddScaledVec(r, -alpha, q)
		}

		deltaOld := deltaNew
		deltaNew = mat.Dot(r, r)
		beta := deltaNew / deltaOld
		d.AddScaledVec(r, beta, d)
		history = append(history, math.Sqrt(deltaNew/delta0))
		i++
	}

	if !allFinite(x.RawVector().Data) {
		return nil, ErrNonFinite
	}

	rel := 0.0
	if delta0 > 0 {
		rel = math.Sqrt(deltaNew / delta0)
	}
	res := &Result{
		X:          x,
		Converged:  deltaNew <= limit,
		Iterations: i,
		Residual:   rel,
		History:    history,
	}
	if !res.Converged {
		return res, &ConvergenceError{Iterations: i, Residual: rel, Tolerance: tol}
	}
	return res, nil
}
