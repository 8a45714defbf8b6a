// Package interop converts between this module's coordinates and the
// types of github.com/notnil/chess, so the coordinate layer composes
// with code already built on that library.
//
// Both representations use the little-endian rank-file mapping
// (a1=0 .. h8=63), so conversions are index-preserving.
package interop

import (
	"github.com/notnil/chess"

	"github.com/dev0Guy/ChessGame/square"
)

// ToChess converts a square to its notnil/chess equivalent.
func ToChess(s square.Square) chess.Square {
	return chess.Square(s.Index())
}

// FromChess converts a notnil/chess square, reporting whether it maps
// onto the board (chess.NoSquare does not).
func FromChess(cs chess.Square) (square.Square, bool) {
	return square.At(int(cs))
}
