package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultPivotTolerance is the default relative pivot threshold.
const DefaultPivotTolerance = 1e-12

// GaussJordan is a direct solver using full Gauss-Jordan elimination
// without row exchanges.
type GaussJordan struct {
	// PivotTolerance rejects pivots whose magnitude is at most
	// PivotTolerance·max|A[i,i]|. Zero disables the check, in which case a
	// vanishing pivot surfaces as ErrNonFinite.
	PivotTolerance float64
}

// Solve reduces the augmented matrix [A|b] to [I|x].
func (g GaussJordan) Solve(a mat.Matrix, b mat.Vector) (*Result, error) {
	n, err := checkDims(a, b)
	if err != nil {
		return nil, err
	}

	m := mat.NewDense(n, n+1, nil)
	var maxDiag float64
	for i := 0; i < n; i++ {
		row := m.RawRowView(i)
		for j := 0; j < n; j++ {
			row[j] = a.At(i, j)
		}
		row[n] = b.AtVec(i)
		maxDiag = math.Max(maxDiag, math.Abs(row[i]))
	}
	limit := g.PivotTolerance * maxDiag

	// forward elimination
	for i := 0; i < n; i++ {
		pivotRow := m.RawRowView(i)
		pivot := pivotRow[i]
		if g.PivotTolerance > 0 && !(math.Abs(pivot) > limit) {
			return nil, &PivotError{Row: i, Pivot: pivot, Limit: limit}
		}
		for j := i + 1; j < n; j++ {
			row := m.RawRowView(j)
			if row[i] == 0 {
				continue
			}
			c := -row[i] / pivot
			floats.AddScaled(row[i:], c, pivotRow[i:])
			row[i] = 0
		}
	}

	// normalization
	for i := 0; i < n; i++ {
		row := m.RawRowView(i)
		p := row[i]
		if p == 1 {
			continue
		}
		for k := i; k <= n; k++ {
			row[k] /= p
		}
	}

	// backward elimination
	for i := n - 1; i > 0; i-- {
		pivotRow := m.RawRowView(i)
		for j := i - 1; j >= 0; j-- {
			row := m.RawRowView(j)
			if row[i] == 0 {
				continue
			}
			c := -row[i]
			floats.AddScaled(row[i:], c, pivotRow[i:])
			row[i] = 0
		}
	}

	x := mat.NewVecDense(n, mat.Col(nil, n, m))
	if !allFinite(x.RawVector().Data) {
		return nil, ErrNonFinite
	}

	return &Result{
		X:         x,
		Reduced:   mat.DenseCopyOf(m.Slice(0, n, 0, n)),
		Converged: true,
		Residual:  residual(a, x, b),
	}, nil
}
