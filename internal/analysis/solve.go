package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/goframe/internal/model"
	"github.com/alexiusacademia/goframe/internal/solver"
)

// Result holds the solution of one load case.
type Result struct {
	LoadCase string

	Requested Method // method asked for
	Method    Method // method actually used
	Solver    SolverKind

	// Displacements is the full displacement vector ordered by node index
	// then ux, uy, uz, rx, ry, rz. Fixed DOFs are zero.
	Displacements *mat.VecDense

	// Reduced is the solution over the free DOFs.
	Reduced *mat.VecDense

	// Loads is the full load vector including self-weight.
	Loads *mat.VecDense

	Converged  bool
	Iterations int
	Residual   float64
	History    []float64 // relative residual per CG iteration

	Warnings []string
}

// Fallback reports whether the requested method was replaced.
func (r *Result) Fallback() bool {
	return r.Requested != r.Method
}

// NodeDisplacement returns the six displacements of a node.
func (r *Result) NodeDisplacement(n *model.Node) model.Load {
	var d model.Load
	base := n.Index * model.DofsPerNode
	for k := range d {
		d[k] = r.Displacements.AtVec(base + k)
	}
	return d
}

// MaxTranslation returns the node with the largest translational
// displacement magnitude and that magnitude.
func (r *Result) MaxTranslation(s *model.Structure) (*model.Node, float64) {
	var (
		node *model.Node
		peak float64
	)
	for _, n := range s.Nodes {
		d := r.NodeDisplacement(n)
		v := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
		if node == nil || v > peak {
			node, peak = n, v
		}
	}
	return node, peak
}

// Solve assembles and solves one load case.
//
// Only linear elastic analysis is implemented. Any other requested method
// is solved as LinearElastic and reported through Result.Method and a
// warning.
func Solve(s *model.Structure, lc *model.LoadCase, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if lc == nil {
		return nil, fmt.Errorf("%w: nil load case", model.ErrUnknownLoadCase)
	}

	res := &Result{
		LoadCase:  lc.Name,
		Requested: opts.Method,
		Method:    LinearElastic,
		Solver:    opts.Solver,
	}
	if res.Fallback() {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%s analysis is not implemented; solved as %s", opts.Method, LinearElastic))
	}
	res.Loads = LoadVector(s, lc)

	if s.ReducedDofCount() == 0 {
		if err := checkNumbering(s); err != nil {
			return nil, err
		}
		res.Displacements = mat.NewVecDense(s.DofCount(), nil)
		res.Converged = true
		res.Warnings = append(res.Warnings, "all degrees of freedom are fixed")
		return res, nil
	}

	sys, err := Assemble(s, lc)
	if err != nil {
		return nil, err
	}

	sr, err := opts.NewSolver().Solve(sys.K, sys.F)
	if err != nil {
		var ce *solver.ConvergenceError
		if !(errors.As(err, &ce) && opts.AcceptNonConverged && sr != nil) {
			return nil, fmt.Errorf("load case %q: %w", lc.Name, err)
		}
		res.Warnings = append(res.Warnings, ce.Error())
	}

	res.Reduced = sr.X
	res.Displacements = Expand(s, sr.X)
	res.Converged = sr.Converged
	res.Iterations = sr.Iterations
	res.Residual = sr.Residual
	res.History = sr.History
	return res, nil
}

// Run solves the named load cases strictly in order. An empty list solves
// every load case of the structure.
func Run(s *model.Structure, names []string, opts Options) ([]*Result, error) {
	if len(names) == 0 {
		names = s.LoadCaseNames()
	}
	results := make([]*Result, 0, len(names))
	for _, name := range names {
		lc, err := s.LoadCase(name)
		if err != nil {
			return results, err
		}
		res, err := Solve(s, lc, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
