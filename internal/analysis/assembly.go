package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/goframe/internal/element"
	"github.com/alexiusacademia/goframe/internal/model"
)

// System is the reduced linear system K·u = f over the free DOFs.
type System struct {
	K *mat.SymDense
	F *mat.VecDense
}

// accumulator collects element contributions into the reduced system.
// It is owned by a single assembly and indexed by reduced DOF number.
type accumulator struct {
	k *mat.SymDense
	f *mat.VecDense
}

func newAccumulator(n int) *accumulator {
	return &accumulator{
		k: mat.NewSymDense(n, nil),
		f: mat.NewVecDense(n, nil),
	}
}

// addStiffness scatter-adds an element matrix. Rows or columns at fixed
// DOFs are dropped. Each unordered DOF pair is added once, into the upper
// triangle.
func (a *accumulator) addStiffness(dofs [element.Size]model.DofIndex, ke mat.Matrix) {
	for i, di := range dofs {
		ri, ok := di.Get()
		if !ok {
			continue
		}
		for j, dj := range dofs {
			rj, ok := dj.Get()
			if !ok || rj < ri {
				continue
			}
			a.k.SetSym(ri, rj, a.k.At(ri, rj)+ke.At(i, j))
		}
	}
}

// Assemble builds the reduced stiffness matrix and load vector of a load case.
func Assemble(s *model.Structure, lc *model.LoadCase) (*System, error) {
	if err := checkNumbering(s); err != nil {
		return nil, err
	}
	n := s.ReducedDofCount()
	if n == 0 {
		return nil, fmt.Errorf("structure %q has no free degrees of freedom", s.Name)
	}

	acc := newAccumulator(n)
	for _, m := range s.Members {
		e := element.New(m)
		acc.addStiffness(e.ReducedDofs, e.GlobalStiffness())
	}
	Reduce(s, LoadVector(s, lc), acc.f)

	return &System{K: acc.k, F: acc.f}, nil
}

// checkNumbering verifies that the stored reduced numbering matches the
// current supports.
func checkNumbering(s *model.Structure) error {
	next := 0
	for _, n := range s.Nodes {
		for k, fixed := range n.Support {
			r, ok := n.Reduced[k].Get()
			if fixed == ok || (ok && r != next) {
				return fmt.Errorf("node %q: stale DOF numbering, call Renumber after changing supports", n.ID)
			}
			if ok {
				next++
			}
		}
	}
	if next != s.ReducedDofCount() {
		return fmt.Errorf("reduced DOF count %d does not match %d free DOFs", s.ReducedDofCount(), next)
	}
	return nil
}

// LoadVector builds the full load vector (6 per node) from the point loads
// and self-weight of a load case. Self-weight is lumped half to each end
// node in global −Z.
func LoadVector(s *model.Structure, lc *model.LoadCase) *mat.VecDense {
	f := mat.NewVecDense(s.DofCount(), nil)
	for n, load := range lc.PointLoads {
		base := n.Index * model.DofsPerNode
		for k, v := range load {
			f.SetVec(base+k, f.AtVec(base+k)+v)
		}
	}

	if lc.SelfWeight != 0 {
		for _, m := range s.Members {
			half := 0.5 * lc.SelfWeight * m.Weight(s.Gravity)
			for _, n := range [2]*model.Node{m.From, m.To} {
				dof := n.Index*model.DofsPerNode + 2
				f.SetVec(dof, f.AtVec(dof)-half)
			}
		}
	}
	return f
}

// Reduce copies the entries of a full vector at free DOFs into dst, which
// must have length ReducedDofCount.
func Reduce(s *model.Structure, full mat.Vector, dst *mat.VecDense) {
	for _, n := range s.Nodes {
		for k, d := range n.Reduced {
			if r, ok := d.Get(); ok {
				dst.SetVec(r, full.AtVec(n.Index*model.DofsPerNode+k))
			}
		}
	}
}

// Expand scatters a reduced solution into a full displacement vector.
// Fixed DOFs are zero.
func Expand(s *model.Structure, reduced mat.Vector) *mat.VecDense {
	u := mat.NewVecDense(s.DofCount(), nil)
	for _, n := range s.Nodes {
		for k, d := range n.Reduced {
			if r, ok := d.Get(); ok {
				u.SetVec(n.Index*model.DofsPerNode+k, reduced.AtVec(r))
			}
		}
	}
	return u
}
