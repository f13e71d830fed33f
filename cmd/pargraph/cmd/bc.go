package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargraph/algo/bc"
	"github.com/katalvlaran/pargraph/runtime"
)

var bcRoot uint32

var bcCmd = &cobra.Command{
	Use:   "bc",
	Short: "Single-source betweenness centrality (Brandes)",
	RunE:  runBC,
}

func init() {
	rootCmd.AddCommand(bcCmd)
	bcCmd.Flags().Uint32VarP(&bcRoot, "root", "r", 0, "root vertex id")
}

func runBC(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	res, err := bc.Compute(g, runtime.VId(bcRoot))
	if err != nil {
		return err
	}

	for v, d := range res.Dependencies {
		fmt.Printf("%d\t%.6f\n", v, d)
	}
	if verbose {
		fmt.Printf("rounds: %d\n", res.Rounds)
	}
	return nil
}
