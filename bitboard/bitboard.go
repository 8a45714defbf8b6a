// Package bitboard implements the uint64 board-set representation used
// throughout the engine. Bit i corresponds to the square with
// little-endian rank-file index i: bit 0 is a1, bit 63 is h8.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/dev0Guy/ChessGame/square"
)

// Bitboard is a set of squares packed into a uint64.
type Bitboard uint64

const (
	// Empty is the bitboard with no squares set.
	Empty Bitboard = 0

	// Universe is the bitboard with all 64 squares set.
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF
)

// fileA is the mask of the a-file; the other file masks are shifts of it.
const fileA Bitboard = 0x0101010101010101

// rankOne is the mask of the first rank.
const rankOne Bitboard = 0x00000000000000FF

// FileMask returns the bitboard with all 8 squares of the given file set.
// An invalid file yields Empty.
func FileMask(f square.File) Bitboard {
	if !f.Valid() {
		return Empty
	}
	return fileA << Bitboard(f)
}

// RankMask returns the bitboard with all 8 squares of the given rank set.
// An invalid rank yields Empty.
func RankMask(r square.Rank) Bitboard {
	if !r.Valid() {
		return Empty
	}
	return rankOne << (square.FileCount * Bitboard(r))
}

// SquareMask returns the bitboard with only the given square set. It is
// the intersection of the square's file and rank masks.
func SquareMask(s square.Square) Bitboard {
	if !s.Valid() {
		return Empty
	}
	return 1 << Bitboard(s.Index())
}

// Has reports whether the square is in the set.
func (b Bitboard) Has(s square.Square) bool {
	return b&SquareMask(s) != 0
}

// With returns the set with the square added.
func (b Bitboard) With(s square.Square) Bitboard {
	return b | SquareMask(s)
}

// Without returns the set with the square removed.
func (b Bitboard) Without(s square.Square) Bitboard {
	return b &^ SquareMask(s)
}

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Squares returns the squares in the set in ascending index order
// (a1 first, h8 last).
func (b Bitboard) Squares() []square.Square {
	out := make([]square.Square, 0, b.Count())
	for v := b; v != 0; v &= v - 1 {
		s, _ := square.At(bits.TrailingZeros64(uint64(v)))
		out = append(out, s)
	}
	return out
}

// String renders the set as an 8x8 grid with rank 8 at the top, matching
// the board as seen from White's side. Occupied squares print as "X".
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := square.RankCount - 1; rank >= 0; rank-- {
		for file := 0; file < square.FileCount; file++ {
			if b&(1<<(rank*square.FileCount+file)) != 0 {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte('\n')
	}
	sb.WriteString("a b c d e f g h\n")
	return sb.String()
}
