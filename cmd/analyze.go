package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goframe/internal/analysis"
	"github.com/alexiusacademia/goframe/internal/combination"
	"github.com/alexiusacademia/goframe/internal/config"
	"github.com/alexiusacademia/goframe/internal/model"
	"github.com/alexiusacademia/goframe/internal/report"
	"github.com/spf13/cobra"
)

var (
	analyzeFile      string
	analyzeLoadCases []string
	analyzeConfig    string

	// Solver options
	analyzeMethod    string
	analyzeSolver    string
	analyzeMaxIter   int
	analyzeTol       float64
	analyzePivotTol  float64
	analyzeAccept    bool
	analyzeTemplates string

	// Output options
	analyzeCheck       bool
	analyzeConvergence bool
	analyzeOutput      string
	analyzePlane       string
	analyzeScale       float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a 3D frame defined in a JSON file",
	Long: `Assemble and solve the stiffness system of a frame for one or more
load cases and report displacements, member end forces and reactions.

Units are kN, m and t (density). Self-weight uses g = 9.81 m/s² unless the
file sets "gravity".

Options are resolved in order: defaults, --config file, then flags.

Example JSON file:
{
  "name": "Portal frame",
  "materials": [{"name": "steel", "grade": "S275"}],
  "sections": [{"name": "col", "shape": "rhs", "b": 0.2, "h": 0.2, "t": 0.01}],
  "nodes": [
    {"id": "A", "x": 0, "y": 0, "z": 0, "support": "fixed"},
    {"id": "B", "x": 0, "y": 0, "z": 4},
    {"id": "C", "x": 6, "y": 0, "z": 4},
    {"id": "D", "x": 6, "y": 0, "z": 0, "support": "fixed"}
  ],
  "members": [
    {"id": "C1", "from": "A", "to": "B", "material": "steel", "section": "col"},
    {"id": "B1", "from": "B", "to": "C", "material": "steel", "section": "col"},
    {"id": "C2", "from": "C", "to": "D", "material": "steel", "section": "col"}
  ],
  "load_cases": [
    {"name": "dead", "category": "dead", "self_weight": 1},
    {"name": "wind", "category": "wind",
     "point_loads": [{"node": "B", "load": [10, 0, 0, 0, 0, 0]}]}
  ],
  "combinations": [{"name": "ULS", "factors": {"dead": 1.35, "wind": 1.5}}]
}

Examples:
  # Analyze all load cases with the direct solver
  goframe analyze --file portal.json

  # Conjugate gradient with a tighter tolerance on one load case
  goframe analyze -f portal.json -l wind --solver cg --tol 1e-8 --max-iter 500

  # Add NSCP strength combinations, check members and export the deformed shape
  goframe analyze -f portal.json --templates strength --check -o out/portal.png`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "JSON file with the structure definition [required]")
	analyzeCmd.Flags().StringSliceVarP(&analyzeLoadCases, "loadcase", "l", nil, "Load cases to solve, in order (default all)")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "INI file with [analysis] options")

	// Solver flags
	analyzeCmd.Flags().StringVarP(&analyzeMethod, "method", "m", "linear-elastic", "Analysis method: linear-elastic or 2nd-order")
	analyzeCmd.Flags().StringVarP(&analyzeSolver, "solver", "s", "direct", "Linear solver: direct, cg or cholesky")
	analyzeCmd.Flags().IntVar(&analyzeMaxIter, "max-iter", 60, "Maximum conjugate gradient iterations")
	analyzeCmd.Flags().Float64Var(&analyzeTol, "tol", 0.001, "Conjugate gradient relative residual tolerance")
	analyzeCmd.Flags().Float64Var(&analyzePivotTol, "pivot-tol", 1e-12, "Relative pivot tolerance of the direct solver (0 disables)")
	analyzeCmd.Flags().BoolVar(&analyzeAccept, "accept-non-converged", false, "Keep conjugate gradient results that missed the tolerance")
	analyzeCmd.Flags().StringVar(&analyzeTemplates, "templates", "", "Generate combinations from load categories: strength or gravity")

	// Output flags
	analyzeCmd.Flags().BoolVar(&analyzeCheck, "check", false, "Check member stresses against the design strength")
	analyzeCmd.Flags().BoolVar(&analyzeConvergence, "convergence", false, "Chart the conjugate gradient residual history")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Export the deformed shape (png, svg or pdf)")
	analyzeCmd.Flags().StringVar(&analyzePlane, "plane", "xz", "Projection plane of the deformed shape: xz, xy or yz")
	analyzeCmd.Flags().Float64Var(&analyzeScale, "scale", 0, "Displacement scale of the deformed shape (0 = automatic)")

	analyzeCmd.MarkFlagRequired("file")
}

// analysisOptions merges defaults, the optional config file and the flags
// set on the command line.
func analysisOptions(cmd *cobra.Command, configFile string) (analysis.Options, error) {
	opts := analysis.DefaultOptions()
	if configFile != "" {
		var err error
		if opts, err = config.Load(configFile); err != nil {
			return opts, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		m, err := analysis.ParseMethod(analyzeMethod)
		if err != nil {
			return opts, err
		}
		opts.Method = m
	}
	if flags.Changed("solver") {
		k, err := analysis.ParseSolver(analyzeSolver)
		if err != nil {
			return opts, err
		}
		opts.Solver = k
	}
	if flags.Changed("max-iter") {
		opts.MaxIterations = analyzeMaxIter
	}
	if flags.Changed("tol") {
		opts.Tolerance = analyzeTol
	}
	if flags.Changed("pivot-tol") {
		opts.PivotTolerance = analyzePivotTol
	}
	if flags.Changed("accept-non-converged") {
		opts.AcceptNonConverged = analyzeAccept
	}
	return opts, opts.Validate()
}

// loadStructure reads the file and registers its combinations, plus the
// combinations generated from a template table when requested.
func loadStructure(file, templates string) (*model.Structure, error) {
	s, err := model.LoadFromFile(file)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(templates) {
	case "":
	case "strength":
		s.Combinations = append(s.Combinations, combination.FromTemplates(s, combination.Strength, "U")...)
	case "gravity":
		s.Combinations = append(s.Combinations, combination.FromTemplates(s, combination.Gravity, "G")...)
	default:
		return nil, fmt.Errorf("unknown combination templates %q (use strength or gravity)", templates)
	}
	if err := combination.Expand(s); err != nil {
		return nil, err
	}
	return s, nil
}

func runAnalyze(cmd *cobra.Command, args []string) {
	opts, err := analysisOptions(cmd, analyzeConfig)
	if err != nil {
		fail("in options", err)
	}

	s, err := loadStructure(analyzeFile, analyzeTemplates)
	if err != nil {
		fail("loading structure", err)
	}

	results, err := analysis.Run(s, analyzeLoadCases, opts)
	if err != nil {
		fail("in analysis", err)
	}

	out := os.Stdout
	title := "3D FRAME ANALYSIS"
	if s.Name != "" {
		title += " - " + strings.ToUpper(s.Name)
	}
	report.Header(out, title)
	report.Model(out, s)
	report.Members(out, s)

	var summary []string
	for _, res := range results {
		fmt.Fprintf(out, "▶ LOAD CASE %q\n\n", res.LoadCase)
		report.Solution(out, res)
		if analyzeConvergence && len(res.History) > 0 {
			report.Section(out, "CONVERGENCE")
			fmt.Fprintln(out, report.Convergence(res.History, opts.Tolerance))
			fmt.Fprintln(out)
		}
		report.Displacements(out, s, res)

		members := analysis.MemberForces(s, res.Displacements)
		report.MemberForces(out, members)
		report.Reactions(out, analysis.Reactions(s, res))

		lc, _ := s.LoadCase(res.LoadCase)
		report.Bounds(out, analysis.CheckBounds(lc, res))

		node, peak := res.MaxTranslation(s)
		line := fmt.Sprintf("%s: max |u| = %.4e m at %s", res.LoadCase, peak, node.ID)
		if analyzeCheck {
			checks := analysis.CheckAll(members)
			report.Checks(out, checks)
			if g := governing(checks); g != nil {
				line += fmt.Sprintf(", η = %.3f (%s)", g.Utilization, g.Member.ID)
			}
		}
		summary = append(summary, line)

		if analyzeOutput != "" {
			filename := plotFilename(analyzeOutput, res.LoadCase, len(results))
			plotOpts := report.PlotOptions{
				Plane: analyzePlane,
				Scale: analyzeScale,
				Title: fmt.Sprintf("Deformed Shape - %s", res.LoadCase),
			}
			if err := report.ExportDeformedShape(s, res.Displacements, plotOpts, filename); err != nil {
				fmt.Fprintf(out, "  WARNING: could not export deformed shape: %v\n\n", err)
			} else {
				fmt.Fprintf(out, "  Deformed shape exported to: %s\n\n", filename)
			}
		}
	}

	fmt.Print(report.SummaryBox("RESULTS SUMMARY", summary))
	fmt.Println()
}

func governing(checks []analysis.CheckResult) *analysis.CheckResult {
	var g *analysis.CheckResult
	for i := range checks {
		if g == nil || checks[i].Utilization > g.Utilization {
			g = &checks[i]
		}
	}
	return g
}

// plotFilename inserts the load case name before the extension when more
// than one load case is plotted.
func plotFilename(output, loadCase string, count int) string {
	if count <= 1 {
		return output
	}
	ext := filepath.Ext(output)
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, loadCase)
	return strings.TrimSuffix(output, ext) + "_" + safe + ext
}
