package bitboard

import "github.com/dev0Guy/ChessGame/square"

// knightSteps are the 8 (file, rank) displacements of a knight hop.
var knightSteps = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// Adjacent returns the squares one step away from s in any of the 8
// directions, orthogonal and diagonal. Steps that leave the board are
// absent from the mask, so a corner square has 3 neighbours and a
// central square has 8.
func Adjacent(s square.Square) Bitboard {
	var b Bitboard
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			if n, ok := s.Offset(df, dr); ok {
				b |= SquareMask(n)
			}
		}
	}
	return b
}

// KnightOffsets returns the squares a knight hop away from s. As with
// Adjacent, off-board destinations are simply absent.
func KnightOffsets(s square.Square) Bitboard {
	var b Bitboard
	for _, step := range knightSteps {
		if n, ok := s.Offset(step[0], step[1]); ok {
			b |= SquareMask(n)
		}
	}
	return b
}
