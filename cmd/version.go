package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goframe",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goframe %s\n", version.String())
		fmt.Println("3D Linear Elastic Frame Analysis Tool")
		fmt.Println("Direct stiffness method with direct and iterative solvers")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
