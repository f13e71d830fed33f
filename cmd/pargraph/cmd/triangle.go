package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargraph/algo/triangle"
)

var triangleCmd = &cobra.Command{
	Use:   "triangle",
	Short: "Count triangles in a symmetric graph",
	RunE:  runTriangle,
}

func init() {
	rootCmd.AddCommand(triangleCmd)
}

func runTriangle(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	count, err := triangle.Compute(g)
	if err != nil {
		return err
	}

	fmt.Println(count)
	return nil
}
