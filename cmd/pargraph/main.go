// Command pargraph runs the bfs/bc/pagerank/triangle drivers over a
// graph loaded from disk.
package main

import "github.com/katalvlaran/pargraph/cmd/pargraph/cmd"

func main() {
	cmd.Execute()
}
