// Package textio reads and writes the reference textual puzzle encoding:
// whitespace-or-newline-delimited integers, 1-based peg numbering on the
// wire, converted to the solver's 0-based form.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/hanoigraph/stategraph"
)

// ReadPuzzle decodes one puzzle from r:
//
//	numDisks numPegs start[0..numDisks) goal[0..numDisks)
//
// Tokens may be separated by any whitespace, including newlines. Counts
// are checked for positivity here so the configuration slices can be
// sized safely; peg-range validation is the solver's job and happens in
// stategraph before any search work. Returns ErrUnexpectedEOF, ErrBadToken,
// ErrCounts, or the reader's error.
func ReadPuzzle(r io.Reader) (Puzzle, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("textio: read puzzle: %w", err)
			}
			return 0, ErrUnexpectedEOF
		}
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadToken, sc.Text())
		}
		return n, nil
	}

	var p Puzzle
	var err error
	if p.NumDisks, err = next(); err != nil {
		return Puzzle{}, err
	}
	if p.NumPegs, err = next(); err != nil {
		return Puzzle{}, err
	}
	if p.NumDisks < 1 || p.NumPegs < 1 {
		return Puzzle{}, fmt.Errorf("%w: got %d disks, %d pegs", ErrCounts, p.NumDisks, p.NumPegs)
	}

	p.Start = make(stategraph.Config, p.NumDisks)
	p.Goal = make(stategraph.Config, p.NumDisks)
	for i := range p.Start {
		peg, err := next()
		if err != nil {
			return Puzzle{}, err
		}
		p.Start[i] = peg - 1 // wire is 1-based
	}
	for i := range p.Goal {
		peg, err := next()
		if err != nil {
			return Puzzle{}, err
		}
		p.Goal[i] = peg - 1
	}

	return p, nil
}

// WriteSolution renders the solution to w: one line with the move count,
// then one `from to` line per move in 1-based peg numbering.
func WriteSolution(w io.Writer, moves []stategraph.Move) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(moves)); err != nil {
		return fmt.Errorf("textio: write solution: %w", err)
	}
	for _, mv := range moves {
		if _, err := fmt.Fprintf(bw, "%d %d\n", mv.From, mv.To); err != nil {
			return fmt.Errorf("textio: write solution: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("textio: write solution: %w", err)
	}

	return nil
}
