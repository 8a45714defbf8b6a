package interop

import (
	"testing"

	"github.com/notnil/chess"

	"github.com/dev0Guy/ChessGame/square"
)

func TestToChess_KnownSquares(t *testing.T) {
	tests := []struct {
		square square.Square
		want   chess.Square
	}{
		{square.New(square.FileA, square.RankOne), chess.A1},
		{square.New(square.FileH, square.RankOne), chess.H1},
		{square.New(square.FileE, square.RankFour), chess.E4},
		{square.New(square.FileH, square.RankEight), chess.H8},
	}

	for _, tt := range tests {
		if got := ToChess(tt.square); got != tt.want {
			t.Errorf("ToChess(%v) = %v, want %v", tt.square, got, tt.want)
		}
	}
}

func TestRoundTrip_AllSquares(t *testing.T) {
	for _, s := range square.Squares() {
		cs := ToChess(s)
		if cs.String() != s.String() {
			t.Errorf("notation mismatch for %v: notnil/chess says %q", s, cs.String())
		}

		back, ok := FromChess(cs)
		if !ok {
			t.Fatalf("FromChess(ToChess(%v)) ok = false", s)
		}
		if back != s {
			t.Errorf("round trip of %v = %v", s, back)
		}
	}
}

func TestFromChess_NoSquare(t *testing.T) {
	if _, ok := FromChess(chess.NoSquare); ok {
		t.Error("FromChess(NoSquare) ok = true, want false")
	}
}
