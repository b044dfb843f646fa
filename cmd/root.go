package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goframe/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goframe",
	Short: "3D Frame Analysis Tool",
	Long: `goframe - Go 3D Frame Analyzer

A CLI tool for the linear elastic analysis of spatial frames and trusses
using the direct stiffness method.

This tool helps structural engineers perform:
  - Nodal displacement and support reaction analysis
  - Member end force recovery in local axes
  - Stress checks against the design strength of the material
  - Load combinations and self-weight
  - Solver comparison (Gauss-Jordan, conjugate gradient, Cholesky)

Structures are described in JSON files; see 'goframe analyze --help'.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goframe v%-47s║\n", version.Version)
		fmt.Println("  ║   Go 3D Frame Analyzer                                    ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the linear elastic analysis of 3D frames")
		fmt.Println("  using the direct stiffness method.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Beam and axial (truss) members with arbitrary orientation")
		fmt.Println("    • Self-weight, point loads and load combinations")
		fmt.Println("    • Direct, conjugate gradient and Cholesky solvers")
		fmt.Println("    • Member stress checks and deformed shape plots")
		fmt.Println()
		fmt.Println("  Use 'goframe --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fail prints an error and exits with a non-zero status.
func fail(context string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
