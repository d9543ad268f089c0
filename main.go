// Command patrol simulates a guard walking a grid and reports how many
// distinct cells the guard covers and how many single extra obstacles would
// trap it in an endless loop.
//
//	....#.....
//	.........#
//	..........
//	..#.......
//	.......#..
//	..........
//	.#..^.....
//	........#.
//	#.........
//	......#...
//
// For the layout above patrol prints 41 and 6.
//
// Under the hood:
//
//	grid/      points, headings, obstacle sets and the text grid parser
//	patrol/    the walk, loop detection and the candidate-obstacle search
//	cmd/       cobra commands: solve, watch, config, version
//
//	go install github.com/katalvlaran/patrol@latest
package main

import (
	"os"

	"github.com/katalvlaran/patrol/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
