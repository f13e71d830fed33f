package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargraph/algo/pagerank"
)

var (
	prMaxIters int
	prDamping  float64
	prEpsilon  float64
)

var pagerankCmd = &cobra.Command{
	Use:   "pagerank",
	Short: "Iterative PageRank",
	RunE:  runPageRank,
}

func init() {
	rootCmd.AddCommand(pagerankCmd)
	pagerankCmd.Flags().IntVar(&prMaxIters, "maxiters", 100, "maximum number of iterations")
	pagerankCmd.Flags().Float64Var(&prDamping, "damping", 0.85, "damping factor")
	pagerankCmd.Flags().Float64Var(&prEpsilon, "epsilon", 1e-7, "L1 convergence threshold")
}

func runPageRank(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	res, err := pagerank.Compute(g,
		pagerank.WithMaxIters(prMaxIters),
		pagerank.WithDamping(prDamping),
		pagerank.WithEpsilon(prEpsilon),
	)
	if err != nil {
		return err
	}

	for v, p := range res.P {
		fmt.Printf("%d\t%.9f\n", v, p)
	}
	if verbose {
		fmt.Printf("iterations: %d converged: %v\n", res.Iterations, res.Converged)
	}
	return nil
}
