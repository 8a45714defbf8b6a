// Package square defines the board coordinate system for the chess engine:
// the File and Rank enumerations and the 64 squares derived from their
// cross-product.
//
// Every (File, Rank) pair built from the declared constants is a valid
// square; there are no invalid combinations and no runtime failure modes
// outside of notation parsing. The package holds no state, so all
// functions are safe for concurrent use.
package square

import (
	"errors"
	"fmt"
)

// ErrInvalidSquare indicates a string that does not name a board square.
var ErrInvalidSquare = errors.New("square: invalid square")

// Count is the number of squares on a chessboard.
const Count = FileCount * RankCount

// Square is a single cell on the board, identified by its File and Rank.
// The zero value is a1. Squares are comparable; two squares are equal
// exactly when both coordinates match.
type Square struct {
	File File
	Rank Rank
}

// New returns the square at the given file and rank.
func New(f File, r Rank) Square {
	return Square{File: f, Rank: r}
}

// Squares returns all 64 squares in rank-major, file-minor order: for
// each rank One through Eight, that rank paired with each file A through
// H. This order is a documented contract, pinned by tests: element 0 is
// a1, element 63 is h8, and for every i, Squares()[i].Index() == i.
// Each call returns a fresh slice owned by the caller.
func Squares() []Square {
	all := make([]Square, 0, Count)
	for _, r := range Ranks() {
		for _, f := range Files() {
			all = append(all, Square{File: f, Rank: r})
		}
	}
	return all
}

// Index returns the little-endian rank-file index of the square:
// a1=0, b1=1, ..., h1=7, a2=8, ..., h8=63. This is the bit position
// used by the bitboard package and matches the mapping used by
// github.com/notnil/chess.
func (s Square) Index() int {
	return int(s.Rank)*FileCount + int(s.File)
}

// At returns the square with the given little-endian rank-file index,
// reporting whether the index is within 0..63.
func At(index int) (Square, bool) {
	if index < 0 || index >= Count {
		return Square{}, false
	}
	return Square{File: File(index % FileCount), Rank: Rank(index / FileCount)}, true
}

// Valid reports whether both coordinates are declared enumeration values.
// Squares built from the exported constants are always valid.
func (s Square) Valid() bool {
	return s.File.Valid() && s.Rank.Valid()
}

// String returns the algebraic notation for the square, such as "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "?"
	}
	return s.File.String() + s.Rank.String()
}

// Parse converts algebraic notation such as "e4" into a Square.
// The file letter may be upper or lower case. The returned error wraps
// ErrInvalidSquare and, where applicable, ErrInvalidFile or
// ErrInvalidRank.
func Parse(notation string) (Square, error) {
	if len(notation) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, notation)
	}
	f, err := ParseFile(notation[0])
	if err != nil {
		return Square{}, fmt.Errorf("%w: %q: %w", ErrInvalidSquare, notation, err)
	}
	r, err := ParseRank(notation[1])
	if err != nil {
		return Square{}, fmt.Errorf("%w: %q: %w", ErrInvalidSquare, notation, err)
	}
	return Square{File: f, Rank: r}, nil
}

// Offset returns the square displaced df files to the right and dr ranks
// up, reporting whether the destination is still on the board. This is
// the bounds-checked primitive that adjacency, diagonal and knight-offset
// arithmetic build on.
func (s Square) Offset(df, dr int) (Square, bool) {
	f, ok := s.File.Offset(df)
	if !ok {
		return Square{}, false
	}
	r, ok := s.Rank.Offset(dr)
	if !ok {
		return Square{}, false
	}
	return Square{File: f, Rank: r}, true
}
