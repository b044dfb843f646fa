// Package element implements the frame element formulations: local
// stiffness, coordinate transformation, DOF maps and displacement recovery.
package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/goframe/internal/model"
)

// Size is the number of element DOFs: six at each end.
const Size = 2 * model.DofsPerNode

// Kind identifies the element formulation.
type Kind int

const (
	// Axial elements couple only the axial DOFs of both ends.
	Axial Kind = iota
	// Beam elements couple axial, bending in two planes and torsion.
	Beam
)

func (k Kind) String() string {
	switch k {
	case Axial:
		return "axial"
	case Beam:
		return "beam"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Element is the numerical object derived from one member. It is built per
// solve and not stored on the member.
type Element struct {
	Kind   Kind
	Member *model.Member

	K0 *mat.Dense // local stiffness [12][12]
	T  *mat.Dense // global-to-local transformation [12][12]

	GlobalDofs  [Size]int
	ReducedDofs [Size]model.DofIndex
}

// New builds the element formulation matching the member type.
func New(m *model.Member) *Element {
	e := &Element{
		Member: m,
		T:      transformation(m),
	}
	switch m.Kind {
	case model.Axial:
		e.Kind = Axial
		e.K0 = axialStiffness(m)
	default:
		e.Kind = Beam
		e.K0 = beamStiffness(m)
	}
	e.GlobalDofs = globalDofs(m)
	e.ReducedDofs = reducedDofs(m)
	return e
}

// globalDofs lists the six DOFs of the From node followed by the six of
// the To node.
func globalDofs(m *model.Member) [Size]int {
	var dofs [Size]int
	from, to := m.From.GlobalDofs(), m.To.GlobalDofs()
	copy(dofs[:model.DofsPerNode], from[:])
	copy(dofs[model.DofsPerNode:], to[:])
	return dofs
}

func reducedDofs(m *model.Member) [Size]model.DofIndex {
	var dofs [Size]model.DofIndex
	copy(dofs[:model.DofsPerNode], m.From.Reduced[:])
	copy(dofs[model.DofsPerNode:], m.To.Reduced[:])
	return dofs
}

// transformation tiles the member's 3x3 direction cosines four times
// along the diagonal.
func transformation(m *model.Member) *mat.Dense {
	t := mat.NewDense(Size, Size, nil)
	for k := 0; k < 4; k++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				t.Set(3*k+i, 3*k+j, m.T[i][j])
			}
		}
	}
	return t
}

// GlobalStiffness returns Tᵀ·K0·T.
func (e *Element) GlobalStiffness() *mat.Dense {
	k := mat.NewDense(Size, Size, nil)
	k.Product(e.T.T(), e.K0, e.T)
	return k
}

// Global extracts the element's 12 global displacements from the full
// displacement vector.
func (e *Element) Global(u mat.Vector) *mat.VecDense {
	ue := mat.NewVecDense(Size, nil)
	for i, dof := range e.GlobalDofs {
		ue.SetVec(i, u.AtVec(dof))
	}
	return ue
}

// LocalDisplacements recovers member-local displacements from the full
// displacement vector. Axial elements return the axial displacement of
// each end (2 entries); beam elements return all 12 local DOFs.
func (e *Element) LocalDisplacements(u mat.Vector) []float64 {
	switch e.Kind {
	case Axial:
		ex := e.Member.T[0]
		var ul [2]float64
		for end := 0; end < 2; end++ {
			base := e.GlobalDofs[end*model.DofsPerNode]
			for i := 0; i < 3; i++ {
				ul[end] += ex[i] * u.AtVec(base+i)
			}
		}
		return ul[:]
	default:
		var ul mat.VecDense
		ul.MulVec(e.T, e.Global(u))
		return ul.RawVector().Data
	}
}

// LocalForces returns the 12 member-end forces in local axes, K0·T·uₑ.
// Sign convention: forces act on the member ends, so a tension member has
// N = −f[0] = f[6] > 0.
func (e *Element) LocalForces(u mat.Vector) []float64 {
	var ul, f mat.VecDense
	ul.MulVec(e.T, e.Global(u))
	f.MulVec(e.K0, &ul)
	return f.RawVector().Data
}

// GlobalForces returns the 12 member-end forces in global axes, Kₑ·uₑ.
func (e *Element) GlobalForces(u mat.Vector) []float64 {
	var f mat.VecDense
	f.MulVec(e.GlobalStiffness(), e.Global(u))
	return f.RawVector().Data
}
