// Command classics runs demonstration scenarios for the data structures in
// this module: min-heap, adjacency-matrix graph with BFS, and the small
// fixed-capacity containers.
//
//	classics run                    # every demo with the built-in scenario
//	classics heap --scenario s.yaml # heap demo from a YAML scenario
//	CLASSICS_LOG_LEVEL=debug classics graph
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
