// Command hanoigraph reads a generalized Tower of Hanoi puzzle from stdin
// and writes a minimum-length move sequence to stdout.
//
// Input:  numDisks numPegs start[0..numDisks) goal[0..numDisks)
// Output: the move count, then one "from to" line per move (1-based pegs).
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hanoigraph/stategraph"
	"github.com/katalvlaran/hanoigraph/textio"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hanoigraph:", err)
		os.Exit(1)
	}
}

func run() error {
	p, err := textio.ReadPuzzle(os.Stdin)
	if err != nil {
		return err
	}

	g, err := stategraph.New(p.NumDisks, p.NumPegs)
	if err != nil {
		return err
	}
	if _, err = g.Explore(p.Start, p.Goal); err != nil {
		return err
	}
	moves, err := g.MovesTo(p.Goal)
	if err != nil {
		return err
	}

	return textio.WriteSolution(os.Stdout, moves)
}
