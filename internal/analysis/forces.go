package analysis

import (
	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/goframe/internal/element"
	"github.com/alexiusacademia/goframe/internal/model"
)

// SectionForces are internal forces at a member end in local axes.
// N is positive in tension.
type SectionForces struct {
	N, Vy, Vz float64
	Mt        float64
	My, Mz    float64
}

// MemberResult holds the recovered state of one member.
type MemberResult struct {
	Member *model.Member

	// LocalDisplacements: 2 axial entries for axial members, 12 for beams.
	LocalDisplacements []float64

	// EndForces are the 12 local forces acting on the member ends.
	EndForces []float64

	Start, End SectionForces
}

// MemberForces recovers local displacements and forces of every member
// from a full displacement vector.
func MemberForces(s *model.Structure, u mat.Vector) []MemberResult {
	results := make([]MemberResult, len(s.Members))
	for i, m := range s.Members {
		e := element.New(m)
		f := e.LocalForces(u)
		results[i] = MemberResult{
			Member:             m,
			LocalDisplacements: e.LocalDisplacements(u),
			EndForces:          f,
			Start: SectionForces{
				N: -f[0], Vy: -f[1], Vz: -f[2],
				Mt: -f[3], My: -f[4], Mz: -f[5],
			},
			End: SectionForces{
				N: f[6], Vy: f[7], Vz: f[8],
				Mt: f[9], My: f[10], Mz: f[11],
			},
		}
	}
	return results
}

// Reaction is the support reaction of a node. Components at free DOFs are zero.
type Reaction struct {
	Node   *model.Node
	Values model.Load
}

// Reactions computes R = K·u − f at every fixed DOF.
func Reactions(s *model.Structure, res *Result) []Reaction {
	internal := make([]float64, s.DofCount())
	for _, m := range s.Members {
		e := element.New(m)
		for i, f := range e.GlobalForces(res.Displacements) {
			internal[e.GlobalDofs[i]] += f
		}
	}

	var reactions []Reaction
	for _, n := range s.Nodes {
		if n.Support.IsFree() {
			continue
		}
		r := Reaction{Node: n}
		base := n.Index * model.DofsPerNode
		for k, fixed := range n.Support {
			if fixed {
				r.Values[k] = internal[base+k] - res.Loads.AtVec(base+k)
			}
		}
		reactions = append(reactions, r)
	}
	return reactions
}
