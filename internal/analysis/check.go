package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/goframe/internal/model"
)

// CheckResult holds the stress check of one member
type CheckResult struct {
	Member *model.Member

	// Governing end: "start" or "end"
	At string

	// Stresses (kN/m²)
	Axial    float64 // |N|/A
	BendingY float64 // |My|/Wy
	BendingZ float64 // |Mz|/Wz
	Stress   float64 // sum of the above
	Strength float64 // fy/γM

	Utilization float64

	// Status
	IsAdequate bool
	Message    string
}

// CheckMember compares the elastic normal stress at both member ends with
// the design strength of the material.
func CheckMember(r MemberResult) CheckResult {
	m := r.Member
	res := CheckResult{Member: m, Strength: m.Material.DesignStrength()}

	for _, end := range []struct {
		name string
		f    SectionForces
	}{{"start", r.Start}, {"end", r.End}} {
		axial := math.Abs(end.f.N) / m.Section.Area
		var by, bz float64
		if m.Kind == model.Beam {
			if m.Section.Wy > 0 {
				by = math.Abs(end.f.My) / m.Section.Wy
			}
			if m.Section.Wz > 0 {
				bz = math.Abs(end.f.Mz) / m.Section.Wz
			}
		}
		if sigma := axial + by + bz; res.At == "" || sigma > res.Stress {
			res.At = end.name
			res.Axial, res.BendingY, res.BendingZ, res.Stress = axial, by, bz, sigma
		}
	}

	if res.Strength <= 0 {
		res.Message = "No strength defined for material " + m.Material.Name
		return res
	}
	res.Utilization = res.Stress / res.Strength
	res.IsAdequate = res.Utilization <= 1

	if res.IsAdequate {
		res.Message = fmt.Sprintf("OK - utilization %.1f%%", 100*res.Utilization)
	} else {
		res.Message = fmt.Sprintf("OVERSTRESSED - utilization %.1f%%", 100*res.Utilization)
	}
	if m.Kind == model.Beam && (m.Section.Wy <= 0 || m.Section.Wz <= 0) {
		res.Message += " | WARNING: section modulus missing, bending stress ignored"
	}
	return res
}

// CheckAll checks every member.
func CheckAll(members []MemberResult) []CheckResult {
	checks := make([]CheckResult, len(members))
	for i, r := range members {
		checks[i] = CheckMember(r)
	}
	return checks
}

// BoundViolation is a node whose displacement exceeds its bound.
type BoundViolation struct {
	Node         *model.Node
	Displacement float64
	Limit        float64
}

// CheckBounds compares translational displacement magnitudes with the
// displacement bounds of the load case.
func CheckBounds(lc *model.LoadCase, res *Result) []BoundViolation {
	var out []BoundViolation
	for n, limit := range lc.DisplacementBounds {
		d := res.NodeDisplacement(n)
		v := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
		if v > limit {
			out = append(out, BoundViolation{Node: n, Displacement: v, Limit: limit})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Node.Index < out[j].Node.Index })
	return out
}
