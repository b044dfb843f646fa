package model

import "math"

// parallelTol is the tolerance to detect members parallel to the
// orientation vector.
const parallelTol = 1e-9

// Update computes the member length and its direction-cosine matrix from
// the current node positions and orientation.
func (m *Member) Update() error {
	if m.From == nil || m.To == nil {
		return invalid("member %q must reference two nodes", m.ID)
	}
	if m.From == m.To {
		return invalid("member %q connects node %q to itself", m.ID, m.From.ID)
	}

	var ex [3]float64
	a, b := m.From.Position(), m.To.Position()
	for i := range ex {
		ex[i] = b[i] - a[i]
	}
	m.Length = norm(ex)
	if m.Length == 0 {
		return invalid("member %q has zero length", m.ID)
	}
	for i := range ex {
		ex[i] /= m.Length
	}

	ref := m.Orientation
	if norm(ref) == 0 {
		ref = [3]float64{0, 0, 1}
		if math.Abs(ex[2]) > 1-parallelTol {
			// vertical member
			ref = [3]float64{1, 0, 0}
		}
	}

	// local z is the part of the reference vector orthogonal to the member axis
	d := dot(ref, ex)
	var ez [3]float64
	for i := range ez {
		ez[i] = ref[i] - d*ex[i]
	}
	nz := norm(ez)
	if nz < parallelTol*norm(ref) {
		return invalid("member %q is parallel to its orientation vector", m.ID)
	}
	for i := range ez {
		ez[i] /= nz
	}
	ey := cross(ez, ex)

	m.T = [3][3]float64{ex, ey, ez}
	return nil
}

// Direction returns the unit vector from the From node to the To node.
func (m *Member) Direction() [3]float64 {
	return m.T[0]
}

// Weight returns the member's own weight for gravity g.
func (m *Member) Weight(g float64) float64 {
	if m.Material == nil || m.Section == nil {
		return 0
	}
	return m.Material.Density * m.Section.Area * m.Length * g
}

func (m *Member) validate() error {
	if m.Material == nil {
		return invalid("member %q has no material", m.ID)
	}
	if m.Section == nil {
		return invalid("member %q has no cross-section", m.ID)
	}
	if m.Material.E <= 0 {
		return invalid("member %q: elastic modulus must be positive, got %g", m.ID, m.Material.E)
	}
	if m.Section.Area <= 0 {
		return invalid("member %q: section area must be positive, got %g", m.ID, m.Section.Area)
	}
	if m.Kind == Beam {
		if m.Material.G <= 0 {
			return invalid("member %q: shear modulus must be positive, got %g", m.ID, m.Material.G)
		}
		if m.Section.Iy <= 0 || m.Section.Iz <= 0 || m.Section.It <= 0 {
			return invalid("member %q: Iy, Iz and It must be positive for beams", m.ID)
		}
	}
	if m.Length <= 0 {
		return invalid("member %q has zero length", m.ID)
	}
	return nil
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func norm(a [3]float64) float64 {
	return math.Sqrt(dot(a, a))
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
