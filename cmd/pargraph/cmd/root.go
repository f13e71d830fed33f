package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargraph/graph"
	"github.com/katalvlaran/pargraph/ioadj"
)

var (
	inputPath string
	binary    bool
	symmetric bool
	verbose   bool
)

// rootCmd is the base command; each algorithm lives in its own
// subcommand file and registers itself via init().
var rootCmd = &cobra.Command{
	Use:   "pargraph",
	Short: "Run parallel graph algorithms over an on-disk graph",
	Long: `pargraph loads a graph via the text AdjacencyGraph format or the
three-file binary form and runs one of the bundled algorithm drivers
(bfs, bc, pagerank, triangle) over it.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "input graph file (required)")
	rootCmd.PersistentFlags().BoolVar(&binary, "binary", false, "read the three-file binary form (base path, no extension) instead of text")
	rootCmd.PersistentFlags().BoolVarP(&symmetric, "symmetric", "s", false, "the input already lists every edge in both directions")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print graph size and round/iteration information")
	rootCmd.MarkPersistentFlagRequired("input")
}

// loadGraph opens inputPath and parses it per the --binary flag,
// printing a one-line size summary when --verbose is set.
func loadGraph() (*graph.Graph, error) {
	var (
		g   *graph.Graph
		err error
	)
	if binary {
		g, err = ioadj.LoadBinary(inputPath, symmetric)
	} else {
		f, ferr := os.Open(inputPath)
		if ferr != nil {
			return nil, fmt.Errorf("pargraph: opening %s: %w", inputPath, ferr)
		}
		defer f.Close()
		g, err = ioadj.LoadText(f, symmetric)
	}
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "loaded graph: n=%d m=%d weighted=%v symmetric=%v\n", g.N(), g.M(), g.Weighted(), g.Symmetric())
	}
	return g, nil
}
