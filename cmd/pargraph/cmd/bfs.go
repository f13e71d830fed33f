package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargraph/algo/bfs"
	"github.com/katalvlaran/pargraph/runtime"
)

var bfsRoot uint32

var bfsCmd = &cobra.Command{
	Use:   "bfs",
	Short: "Breadth-first search from a root vertex",
	RunE:  runBFS,
}

func init() {
	rootCmd.AddCommand(bfsCmd)
	bfsCmd.Flags().Uint32VarP(&bfsRoot, "root", "r", 0, "root vertex id")
}

func runBFS(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	res, err := bfs.Compute(g, runtime.VId(bfsRoot))
	if err != nil {
		return err
	}

	for v, p := range res.Parents {
		fmt.Printf("%d\t%d\n", v, p)
	}
	if verbose {
		fmt.Printf("rounds: %d\n", len(res.RoundSizes))
	}
	return nil
}
