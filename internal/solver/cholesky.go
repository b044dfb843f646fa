package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Cholesky is a direct solver based on gonum's Cholesky factorization.
// Only the upper triangle of A is read.
type Cholesky struct{}

// Solve factorizes A = UᵀU and solves by substitution. A matrix that is
// not positive definite is reported as ErrSingular.
func (Cholesky) Solve(a mat.Matrix, b mat.Vector) (*Result, error) {
	n, err := checkDims(a, b)
	if err != nil {
		return nil, err
	}

	sym, ok := a.(mat.Symmetric)
	if !ok {
		s := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				s.SetSym(i, j, a.At(i, j))
			}
		}
		sym = s
	}

	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return nil, fmt.Errorf("%w: matrix is not positive definite", ErrSingular)
	}

	x := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(x, b); err != nil {
		// gonum reports a poorly conditioned factorization as mat.Condition
		if _, isCond := err.(mat.Condition); !isCond {
			return nil, err
		}
	}
	if !allFinite(x.RawVector().Data) {
		return nil, ErrNonFinite
	}

	return &Result{
		X:         x,
		Converged: true,
		Residual:  residual(a, x, b),
	}, nil
}
