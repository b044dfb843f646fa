package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/analysis"
	"github.com/alexiusacademia/goframe/internal/model"
)

const rule = "───────────────────────────────────────────────────────────────"

// Header writes a boxed report title.
func Header(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)
}

// Section writes a section heading followed by a rule.
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintln(w, rule)
}

// SummaryBox creates a summary box for results
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// Model writes the structure summary and DOF numbering.
func Model(w io.Writer, s *model.Structure) {
	Section(w, "MODEL")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Nodes:\t%d\n", len(s.Nodes))
	fmt.Fprintf(tw, "  Members:\t%d\n", len(s.Members))
	fmt.Fprintf(tw, "  Load cases:\t%d\n", len(s.LoadCases))
	fmt.Fprintf(tw, "  Total DOFs:\t%d\n", s.DofCount())
	fmt.Fprintf(tw, "  Free DOFs:\t%d\n", s.ReducedDofCount())
	fmt.Fprintf(tw, "  Self-weight:\t%.3f kN\n", s.Weight())
	tw.Flush()
	fmt.Fprintln(w)
}

// Nodes writes the node table with supports and reduced DOF numbers.
func Nodes(w io.Writer, s *model.Structure) {
	Section(w, "NODES")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Node\tX\tY\tZ\tSupport\tReduced DOFs\n")
	for _, n := range s.Nodes {
		dofs := make([]string, len(n.Reduced))
		for k, d := range n.Reduced {
			dofs[k] = d.String()
		}
		fmt.Fprintf(tw, "  %s\t%.3f\t%.3f\t%.3f\t%s\t%s\n", n.ID, n.X, n.Y, n.Z, n.Support, strings.Join(dofs, " "))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// Members writes the member table.
func Members(w io.Writer, s *model.Structure) {
	Section(w, "MEMBERS")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Member\tFrom\tTo\tType\tL (m)\tMaterial\tSection\n")
	for _, m := range s.Members {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%.3f\t%s\t%s\n",
			m.ID, m.From.ID, m.To.ID, m.Kind, m.Length, m.Material.Name, m.Section.Name)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// Solution writes solver statistics and warnings of a result.
func Solution(w io.Writer, res *analysis.Result) {
	Section(w, "SOLUTION")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Load case:\t%s\n", res.LoadCase)
	fmt.Fprintf(tw, "  Method:\t%s", res.Method)
	if res.Fallback() {
		fmt.Fprintf(tw, " ⚠ (requested %s)", res.Requested)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "  Solver:\t%s\n", res.Solver)
	if res.Solver == analysis.ConjugateGradient {
		fmt.Fprintf(tw, "  Iterations:\t%d\n", res.Iterations)
	}
	status := "✓"
	if !res.Converged {
		status = "⚠ not converged"
	}
	fmt.Fprintf(tw, "  Relative residual:\t%.3e %s\n", res.Residual, status)
	tw.Flush()
	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "  WARNING: %s\n", warning)
	}
	fmt.Fprintln(w)
}

// Displacements writes the nodal displacement table.
func Displacements(w io.Writer, s *model.Structure, res *analysis.Result) {
	Section(w, "NODAL DISPLACEMENTS")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "  Node\tux\tuy\tuz\trx\try\trz\t\n")
	for _, n := range s.Nodes {
		d := res.NodeDisplacement(n)
		fmt.Fprintf(tw, "  %s\t%.4e\t%.4e\t%.4e\t%.4e\t%.4e\t%.4e\t\n", n.ID, d[0], d[1], d[2], d[3], d[4], d[5])
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// MemberForces writes the section forces at both member ends.
func MemberForces(w io.Writer, members []analysis.MemberResult) {
	Section(w, "MEMBER END FORCES (local axes, N > 0 tension)")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "  Member\tEnd\tN\tVy\tVz\tMt\tMy\tMz\t\n")
	for _, r := range members {
		for _, end := range []struct {
			name string
			f    analysis.SectionForces
		}{{"start", r.Start}, {"end", r.End}} {
			fmt.Fprintf(tw, "  %s\t%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
				r.Member.ID, end.name, end.f.N, end.f.Vy, end.f.Vz, end.f.Mt, end.f.My, end.f.Mz)
		}
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// Reactions writes the support reactions.
func Reactions(w io.Writer, reactions []analysis.Reaction) {
	Section(w, "SUPPORT REACTIONS")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "  Node\tFx\tFy\tFz\tMx\tMy\tMz\t\n")
	var sum model.Load
	for _, r := range reactions {
		v := r.Values
		fmt.Fprintf(tw, "  %s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n", r.Node.ID, v[0], v[1], v[2], v[3], v[4], v[5])
		for k := range sum {
			sum[k] += v[k]
		}
	}
	fmt.Fprintf(tw, "  Σ\t%.3f\t%.3f\t%.3f\t\t\t\t\n", sum[0], sum[1], sum[2])
	tw.Flush()
	fmt.Fprintln(w)
}

// Checks writes the member utilization table.
func Checks(w io.Writer, checks []analysis.CheckResult) {
	Section(w, "MEMBER CHECKS")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Member\tAt\tσ (kN/m²)\tf_d (kN/m²)\tη\tStatus\n")
	for _, c := range checks {
		mark := "✓"
		if !c.IsAdequate {
			mark = "⚠"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%.1f\t%.1f\t%.3f\t%s %s\n",
			c.Member.ID, c.At, c.Stress, c.Strength, c.Utilization, mark, c.Message)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// Bounds writes displacement bound violations.
func Bounds(w io.Writer, violations []analysis.BoundViolation) {
	if len(violations) == 0 {
		return
	}
	Section(w, "DISPLACEMENT BOUNDS EXCEEDED")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, v := range violations {
		fmt.Fprintf(tw, "  %s\t|u| = %.4e\tlimit %.4e ⚠\n", v.Node.ID, v.Displacement, v.Limit)
	}
	tw.Flush()
	fmt.Fprintln(w)
}
