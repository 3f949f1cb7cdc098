// Package textio is the thin I/O collaborator around the stategraph
// solver: it decodes puzzle instances from the reference textual encoding
// and renders solutions back to text.
//
// Wire format
//
//	numDisks numPegs start[0..numDisks) goal[0..numDisks)
//
//	All fields are integers separated by arbitrary whitespace (spaces or
//	newlines). Peg numbers are 1-based on the wire and converted to the
//	solver's 0-based indices on read.
//
// Output format
//
//	One line holding the move count, then one line per move with the
//	1-based source and destination peg separated by a space.
//
// Validation split
//
//	ReadPuzzle rejects syntactic problems (missing or non-integer tokens,
//	non-positive counts); semantic range checks on the configurations are
//	deliberately left to stategraph.New and Explore so every malformed
//	input fails fast through a single validation path before any search.
//
// Errors
//
//   - ErrUnexpectedEOF  input ended before all fields were read
//   - ErrBadToken       a token is not an integer
//   - ErrCounts         disk or peg count not positive
package textio
