package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DofsPerNode is the number of degrees of freedom of a 3D frame node:
// three translations (ux, uy, uz) followed by three rotations (rx, ry, rz).
const DofsPerNode = 6

// DofNames labels the six nodal degrees of freedom in order.
var DofNames = [DofsPerNode]string{"ux", "uy", "uz", "rx", "ry", "rz"}

// Support is the fixity mask of a node. A true entry means the
// corresponding degree of freedom is fixed.
type Support [DofsPerNode]bool

// Common support conditions
var (
	Free   = Support{}
	Pinned = Support{true, true, true, false, false, false}
	Fixed  = Support{true, true, true, true, true, true}
)

// IsFree reports whether no degree of freedom is fixed.
func (s Support) IsFree() bool {
	return s == Free
}

// FixedCount returns the number of fixed degrees of freedom.
func (s Support) FixedCount() int {
	n := 0
	for _, f := range s {
		if f {
			n++
		}
	}
	return n
}

// String returns the support as a six character code, e.g. "111000".
func (s Support) String() string {
	var sb strings.Builder
	for _, f := range s {
		if f {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseSupport accepts a named condition ("free", "pinned", "fixed") or a
// six character code of 0/1 (or f/x) in DOF order.
func ParseSupport(code string) (Support, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "", "free":
		return Free, nil
	case "pinned", "pin", "hinged":
		return Pinned, nil
	case "fixed", "clamped":
		return Fixed, nil
	}

	var s Support
	if len(code) != DofsPerNode {
		return s, fmt.Errorf("invalid support code %q: want 6 characters or one of free/pinned/fixed", code)
	}
	for i, c := range strings.ToLower(code) {
		switch c {
		case '1', 'x', 't':
			s[i] = true
		case '0', 'f', '-':
		default:
			return s, fmt.Errorf("invalid support code %q: unexpected %q at position %d", code, c, i+1)
		}
	}
	return s, nil
}

// UnmarshalJSON accepts either a string code or an array of six booleans.
func (s *Support) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err == nil {
		parsed, err := ParseSupport(code)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var flags []bool
	if err := json.Unmarshal(data, &flags); err != nil {
		return fmt.Errorf("support must be a string code or an array of 6 booleans")
	}
	if len(flags) != DofsPerNode {
		return fmt.Errorf("support array must have 6 entries, got %d", len(flags))
	}
	copy(s[:], flags)
	return nil
}

// MarshalJSON writes the support as its six character code.
func (s Support) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// DofIndex is an optional index into the reduced system. The zero value is
// absent, which marks a degree of freedom that is fixed and therefore not
// part of the solve.
type DofIndex struct {
	index int
	valid bool
}

// At returns a present reduced index.
func At(i int) DofIndex {
	return DofIndex{index: i, valid: true}
}

// Absent is the reduced index of a fixed degree of freedom.
var Absent = DofIndex{}

// Get returns the index and whether it is present.
func (d DofIndex) Get() (int, bool) {
	return d.index, d.valid
}

// Valid reports whether the index is present.
func (d DofIndex) Valid() bool {
	return d.valid
}

// String returns the index, or "-" when absent.
func (d DofIndex) String() string {
	if !d.valid {
		return "-"
	}
	return fmt.Sprintf("%d", d.index)
}

// Node is a structural joint.
type Node struct {
	ID      string
	X, Y, Z float64
	Support Support

	// Index is the position of the node in the structure. Global DOFs of
	// the node are Index*6 .. Index*6+5.
	Index int

	// Reduced holds the reduced-system index of each DOF, absent for fixed DOFs.
	Reduced [DofsPerNode]DofIndex
}

// GlobalDofs returns the six global DOF indices of the node.
func (n *Node) GlobalDofs() [DofsPerNode]int {
	var dofs [DofsPerNode]int
	for k := range dofs {
		dofs[k] = n.Index*DofsPerNode + k
	}
	return dofs
}

// Position returns the node coordinates.
func (n *Node) Position() [3]float64 {
	return [3]float64{n.X, n.Y, n.Z}
}

// Material holds the linear elastic and strength properties of a member.
// Any consistent unit system may be used; the catalogue uses kN, m and t.
type Material struct {
	Name    string  `json:"name"`
	Density float64 `json:"density"` // mass density (t/m³)
	E       float64 `json:"e"`       // elastic modulus (kN/m²)
	G       float64 `json:"g"`       // shear modulus (kN/m²)
	Fy      float64 `json:"fy"`      // characteristic strength (kN/m²)
	GammaM  float64 `json:"gamma_m"` // partial safety factor
}

// DesignStrength returns fy/γM. A zero safety factor is treated as 1.
func (m *Material) DesignStrength() float64 {
	if m.GammaM <= 0 {
		return m.Fy
	}
	return m.Fy / m.GammaM
}

// CrossSection holds the section constants used by the elements.
type CrossSection struct {
	Name string  `json:"name"`
	Area float64 `json:"area"` // m²
	Iy   float64 `json:"iy"`   // second moment about local y (m⁴)
	Iz   float64 `json:"iz"`   // second moment about local z (m⁴)
	It   float64 `json:"it"`   // torsional constant (m⁴)
	Wy   float64 `json:"wy"`   // elastic section modulus about local y (m³)
	Wz   float64 `json:"wz"`   // elastic section modulus about local z (m³)
}

// MemberKind selects the element formulation of a member.
type MemberKind int

const (
	// Beam members carry axial force, shear, bending and torsion.
	Beam MemberKind = iota
	// Axial members (bars, truss members) carry axial force only.
	Axial
)

func (k MemberKind) String() string {
	switch k {
	case Axial:
		return "axial"
	default:
		return "beam"
	}
}

// ParseMemberKind accepts "beam" (or empty) and "axial"/"truss"/"bar".
func ParseMemberKind(s string) (MemberKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "beam", "frame":
		return Beam, nil
	case "axial", "truss", "bar", "rod":
		return Axial, nil
	}
	return Beam, fmt.Errorf("unknown member type %q", s)
}

// Member is a two-node line element. It references shared nodes,
// material and cross-section owned by the structure.
type Member struct {
	ID       string
	From, To *Node
	Material *Material
	Section  *CrossSection
	Kind     MemberKind

	// Orientation is a vector in the local x-z plane. A zero vector selects
	// global Z, or global X for vertical members.
	Orientation [3]float64

	// Derived by Update
	Length float64
	T      [3][3]float64 // rows are the local x, y, z axes in global coordinates
}

// Load is a point load on a node: three forces and three moments.
type Load [DofsPerNode]float64

// LoadCase groups point loads and a self-weight factor.
type LoadCase struct {
	Name     string
	Category string

	// SelfWeight scales the structure's own weight. Zero means no self-weight.
	SelfWeight float64

	PointLoads map[*Node]Load

	// DisplacementBounds are admissible displacement magnitudes per node.
	// They are not used by the solver.
	DisplacementBounds map[*Node]float64
}

// NewLoadCase creates an empty load case.
func NewLoadCase(name string) *LoadCase {
	return &LoadCase{
		Name:               name,
		PointLoads:         make(map[*Node]Load),
		DisplacementBounds: make(map[*Node]float64),
	}
}

// AddPointLoad adds a load to a node, summing with any existing load.
func (lc *LoadCase) AddPointLoad(n *Node, load Load) {
	if lc.PointLoads == nil {
		lc.PointLoads = make(map[*Node]Load)
	}
	cur := lc.PointLoads[n]
	for k := range cur {
		cur[k] += load[k]
	}
	lc.PointLoads[n] = cur
}

// Combination is a named set of factors applied to load cases.
type Combination struct {
	Name    string             `json:"name"`
	Factors map[string]float64 `json:"factors"`
}

// ValidationError represents a structure validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
