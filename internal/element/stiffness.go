package element

import (
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/goframe/internal/model"
)

// Local DOF order at each end: ux, uy, uz, rx, ry, rz.
const (
	ux = iota
	uy
	uz
	rx
	ry
	rz
)

// axialStiffness embeds the 2x2 bar stiffness EA/L in a 12x12 matrix.
func axialStiffness(m *model.Member) *mat.Dense {
	k := mat.NewDense(Size, Size, nil)
	ea := m.Material.E * m.Section.Area / m.Length
	i, j := ux, model.DofsPerNode+ux
	k.Set(i, i, ea)
	k.Set(j, j, ea)
	k.Set(i, j, -ea)
	k.Set(j, i, -ea)
	return k
}

// beamStiffness builds the Euler-Bernoulli 3D frame stiffness. The upper
// triangle is set from the closed-form terms and copied to the lower one,
// so the result is exactly symmetric.
func beamStiffness(m *model.Member) *mat.Dense {
	var (
		l   = m.Length
		l2  = l * l
		l3  = l2 * l
		ea  = m.Material.E * m.Section.Area
		eiy = m.Material.E * m.Section.Iy
		eiz = m.Material.E * m.Section.Iz
		git = m.Material.G * m.Section.It
	)
	const b = model.DofsPerNode // offset of the To node

	k := mat.NewDense(Size, Size, nil)
	set := k.Set

	// axial
	set(ux, ux, ea/l)
	set(ux, b+ux, -ea/l)
	set(b+ux, b+ux, ea/l)

	// torsion
	set(rx, rx, git/l)
	set(rx, b+rx, -git/l)
	set(b+rx, b+rx, git/l)

	// bending in the local x-y plane (uy, rz) about z
	set(uy, uy, 12*eiz/l3)
	set(uy, rz, 6*eiz/l2)
	set(uy, b+uy, -12*eiz/l3)
	set(uy, b+rz, 6*eiz/l2)
	set(rz, rz, 4*eiz/l)
	set(rz, b+uy, -6*eiz/l2)
	set(rz, b+rz, 2*eiz/l)
	set(b+uy, b+uy, 12*eiz/l3)
	set(b+uy, b+rz, -6*eiz/l2)
	set(b+rz, b+rz, 4*eiz/l)

	// bending in the local x-z plane (uz, ry) about y; a positive ry
	// lowers uz, hence the opposite sign of the coupling terms
	set(uz, uz, 12*eiy/l3)
	set(uz, ry, -6*eiy/l2)
	set(uz, b+uz, -12*eiy/l3)
	set(uz, b+ry, -6*eiy/l2)
	set(ry, ry, 4*eiy/l)
	set(ry, b+uz, 6*eiy/l2)
	set(ry, b+ry, 2*eiy/l)
	set(b+uz, b+uz, 12*eiy/l3)
	set(b+uz, b+ry, 6*eiy/l2)
	set(b+ry, b+ry, 4*eiy/l)

	// mirror
	for i := 0; i < Size; i++ {
		for j := i + 1; j < Size; j++ {
			k.Set(j, i, k.At(i, j))
		}
	}
	return k
}
