package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/material"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the built-in material grades",
	Long: `List the material grades that can be referenced by "grade" in a
structure file. Values are in kN/m² and t/m³.

Example:
  goframe materials`,
	Run: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("MATERIAL GRADES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade\tClass\tE (kN/m²)\tG (kN/m²)\tρ (t/m³)\tfy (kN/m²)\tγM\tDescription\n")
	fmt.Fprintf(w, "  ─────\t─────\t─────────\t─────────\t────────\t──────────\t──\t───────────\n")
	for _, g := range material.All() {
		fmt.Fprintf(w, "  %s\t%s\t%.4g\t%.4g\t%.2f\t%.4g\t%.2f\t%s\n",
			g.Name, g.Class, g.E, g.G, g.Density, g.Fy, g.GammaM, g.Description)
	}
	w.Flush()
	fmt.Println()
}
