package model

import (
	"errors"
	"fmt"
)

// ErrUnknownLoadCase is returned when a load case name is not defined.
var ErrUnknownLoadCase = errors.New("unknown load case")

// DefaultGravity is the gravitational acceleration used for self-weight (m/s²).
const DefaultGravity = 9.81

// Structure owns the nodes, members and load cases of a frame model.
type Structure struct {
	Name    string
	Gravity float64

	Nodes     []*Node
	Members   []*Member
	LoadCases []*LoadCase

	Materials    map[string]*Material
	Sections     map[string]*CrossSection
	Combinations []Combination

	nodesByID map[string]*Node
	reduced   int
}

// NewStructure creates an empty structure.
func NewStructure(name string) *Structure {
	return &Structure{
		Name:      name,
		Gravity:   DefaultGravity,
		Materials: make(map[string]*Material),
		Sections:  make(map[string]*CrossSection),
		nodesByID: make(map[string]*Node),
	}
}

// AddNode appends a node and numbers its degrees of freedom.
func (s *Structure) AddNode(id string, x, y, z float64, support Support) (*Node, error) {
	if s.nodesByID == nil {
		s.nodesByID = make(map[string]*Node)
	}
	if id == "" {
		id = fmt.Sprintf("N%d", len(s.Nodes)+1)
	}
	if _, ok := s.nodesByID[id]; ok {
		return nil, invalid("duplicate node id %q", id)
	}

	n := &Node{ID: id, X: x, Y: y, Z: z, Support: support, Index: len(s.Nodes)}
	s.Nodes = append(s.Nodes, n)
	s.nodesByID[id] = n
	s.numberNode(n)
	return n, nil
}

// Node returns the node with the given id.
func (s *Structure) Node(id string) (*Node, bool) {
	n, ok := s.nodesByID[id]
	return n, ok
}

// SetSupport changes the fixity of a node and renumbers the reduced system.
func (s *Structure) SetSupport(n *Node, support Support) {
	n.Support = support
	s.Renumber()
}

// Renumber recomputes node indices and the reduced DOF numbering.
// It must be called after nodes or supports are modified directly.
func (s *Structure) Renumber() {
	s.reduced = 0
	for i, n := range s.Nodes {
		n.Index = i
		s.numberNode(n)
	}
}

func (s *Structure) numberNode(n *Node) {
	for k, fixed := range n.Support {
		if fixed {
			n.Reduced[k] = Absent
			continue
		}
		n.Reduced[k] = At(s.reduced)
		s.reduced++
	}
}

// DofCount returns the size of the full displacement vector.
func (s *Structure) DofCount() int {
	return len(s.Nodes) * DofsPerNode
}

// ReducedDofCount returns the number of free degrees of freedom.
func (s *Structure) ReducedDofCount() int {
	return s.reduced
}

// AddMember connects two nodes and computes the member geometry.
func (s *Structure) AddMember(id string, from, to *Node, mat *Material, sec *CrossSection, kind MemberKind) (*Member, error) {
	if id == "" {
		id = fmt.Sprintf("M%d", len(s.Members)+1)
	}
	m := &Member{ID: id, From: from, To: to, Material: mat, Section: sec, Kind: kind}
	if err := m.Update(); err != nil {
		return nil, err
	}
	s.Members = append(s.Members, m)
	return m, nil
}

// AddLoadCase registers a load case. Names must be unique.
func (s *Structure) AddLoadCase(lc *LoadCase) error {
	if lc.Name == "" {
		return invalid("load case must have a name")
	}
	if _, err := s.LoadCase(lc.Name); err == nil {
		return invalid("duplicate load case %q", lc.Name)
	}
	s.LoadCases = append(s.LoadCases, lc)
	return nil
}

// LoadCase returns the load case with the given name.
func (s *Structure) LoadCase(name string) (*LoadCase, error) {
	for _, lc := range s.LoadCases {
		if lc.Name == name {
			return lc, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLoadCase, name)
}

// LoadCaseNames returns the names of all load cases in definition order.
func (s *Structure) LoadCaseNames() []string {
	names := make([]string, len(s.LoadCases))
	for i, lc := range s.LoadCases {
		names[i] = lc.Name
	}
	return names
}

// Weight returns the total self-weight of all members (unfactored).
func (s *Structure) Weight() float64 {
	var w float64
	for _, m := range s.Members {
		w += m.Weight(s.Gravity)
	}
	return w
}

// Validate checks that the structure can be assembled.
func (s *Structure) Validate() error {
	if len(s.Nodes) == 0 {
		return invalid("structure must have at least one node")
	}
	if len(s.Members) == 0 {
		return invalid("structure must have at least one member")
	}

	supported := false
	for _, n := range s.Nodes {
		if !n.Support.IsFree() {
			supported = true
			break
		}
	}
	if !supported {
		return invalid("structure has no supports")
	}

	for _, m := range s.Members {
		if err := m.validate(); err != nil {
			return err
		}
	}
	return nil
}
