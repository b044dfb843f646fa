package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/goframe/internal/solver"
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid analysis options")

// Method selects the structural analysis theory.
type Method int

const (
	// LinearElastic is first-order linear elastic analysis.
	LinearElastic Method = iota
	// Theory2ndOrder is second-order analysis. It is not implemented and
	// falls back to LinearElastic with a warning.
	Theory2ndOrder
)

func (m Method) String() string {
	switch m {
	case LinearElastic:
		return "linear-elastic"
	case Theory2ndOrder:
		return "2nd-order"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod accepts the CLI and config spellings of a method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear", "linear-elastic", "linearelastic", "th1", "1st-order":
		return LinearElastic, nil
	case "2nd-order", "second-order", "theory2ndorder", "th2":
		return Theory2ndOrder, nil
	}
	return LinearElastic, fmt.Errorf("%w: unknown method %q", ErrInvalidOptions, s)
}

// SolverKind selects the linear solver.
type SolverKind int

const (
	// Direct is Gauss-Jordan elimination.
	Direct SolverKind = iota
	// ConjugateGradient is the iterative conjugate gradient method.
	ConjugateGradient
	// Cholesky is a direct Cholesky factorization.
	Cholesky
)

func (k SolverKind) String() string {
	switch k {
	case Direct:
		return "direct"
	case ConjugateGradient:
		return "cg"
	case Cholesky:
		return "cholesky"
	}
	return fmt.Sprintf("SolverKind(%d)", int(k))
}

// SolverKinds lists every available solver.
var SolverKinds = []SolverKind{Direct, ConjugateGradient, Cholesky}

// ParseSolver accepts the CLI and config spellings of a solver.
func ParseSolver(s string) (SolverKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct", "gauss-jordan", "gaussjordan", "gj":
		return Direct, nil
	case "cg", "conjugate-gradient", "conjugategradient", "iterative":
		return ConjugateGradient, nil
	case "cholesky", "chol":
		return Cholesky, nil
	}
	return Direct, fmt.Errorf("%w: unknown solver %q", ErrInvalidOptions, s)
}

// Options configures a solve. Build it with DefaultOptions and override
// fields as needed.
type Options struct {
	// Method is the requested analysis theory. Default LinearElastic.
	Method Method

	// Solver selects the linear solver. Default Direct.
	Solver SolverKind

	// MaxIterations caps conjugate gradient iterations. Default 60, must be > 0.
	MaxIterations int

	// Tolerance is the conjugate gradient relative residual target.
	// Default 0.001, must be in (0, 1).
	Tolerance float64

	// PivotTolerance is the relative pivot threshold of the direct solver.
	// Default 1e-12, must be >= 0; 0 disables the check.
	PivotTolerance float64

	// AcceptNonConverged keeps a conjugate gradient solution that missed
	// its tolerance, reporting a warning instead of an error. Default false.
	AcceptNonConverged bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Method:         LinearElastic,
		Solver:         Direct,
		MaxIterations:  solver.DefaultMaxIterations,
		Tolerance:      solver.DefaultTolerance,
		PivotTolerance: solver.DefaultPivotTolerance,
	}
}

// Validate checks the option ranges.
func (o Options) Validate() error {
	switch o.Method {
	case LinearElastic, Theory2ndOrder:
	default:
		return fmt.Errorf("%w: unknown method %d", ErrInvalidOptions, int(o.Method))
	}
	switch o.Solver {
	case Direct, ConjugateGradient, Cholesky:
	default:
		return fmt.Errorf("%w: unknown solver %d", ErrInvalidOptions, int(o.Solver))
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidOptions, o.MaxIterations)
	}
	if !(o.Tolerance > 0 && o.Tolerance < 1) {
		return fmt.Errorf("%w: tolerance must be in (0, 1), got %g", ErrInvalidOptions, o.Tolerance)
	}
	if o.PivotTolerance < 0 {
		return fmt.Errorf("%w: pivot tolerance must not be negative, got %g", ErrInvalidOptions, o.PivotTolerance)
	}
	return nil
}

// NewSolver returns the linear solver selected by the options.
func (o Options) NewSolver() solver.Solver {
	switch o.Solver {
	case ConjugateGradient:
		return solver.ConjugateGradient{MaxIterations: o.MaxIterations, Tolerance: o.Tolerance}
	case Cholesky:
		return solver.Cholesky{}
	default:
		return solver.GaussJordan{PivotTolerance: o.PivotTolerance}
	}
}
