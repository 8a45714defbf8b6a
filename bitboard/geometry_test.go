package bitboard

import (
	"testing"

	"github.com/dev0Guy/ChessGame/square"
)

func TestAdjacent(t *testing.T) {
	tests := []struct {
		name      string
		square    square.Square
		wantCount int
	}{
		{"corner a1", square.New(square.FileA, square.RankOne), 3},
		{"corner h8", square.New(square.FileH, square.RankEight), 3},
		{"edge a4", square.New(square.FileA, square.RankFour), 5},
		{"edge e1", square.New(square.FileE, square.RankOne), 5},
		{"center e4", square.New(square.FileE, square.RankFour), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Adjacent(tt.square)
			if got.Count() != tt.wantCount {
				t.Errorf("Adjacent(%v).Count() = %d, want %d", tt.square, got.Count(), tt.wantCount)
			}
			if got.Has(tt.square) {
				t.Errorf("Adjacent(%v) contains the square itself", tt.square)
			}
		})
	}
}

func TestAdjacent_ExactNeighbours(t *testing.T) {
	a1 := square.New(square.FileA, square.RankOne)

	want := Empty.
		With(square.New(square.FileA, square.RankTwo)).
		With(square.New(square.FileB, square.RankOne)).
		With(square.New(square.FileB, square.RankTwo))
	if got := Adjacent(a1); got != want {
		t.Errorf("Adjacent(a1) = %#x, want %#x", got, want)
	}
}

func TestKnightOffsets(t *testing.T) {
	tests := []struct {
		name      string
		square    square.Square
		wantCount int
	}{
		{"corner a1", square.New(square.FileA, square.RankOne), 2},
		{"corner h1", square.New(square.FileH, square.RankOne), 2},
		{"near-corner b2", square.New(square.FileB, square.RankTwo), 4},
		{"center e4", square.New(square.FileE, square.RankFour), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KnightOffsets(tt.square)
			if got.Count() != tt.wantCount {
				t.Errorf("KnightOffsets(%v).Count() = %d, want %d", tt.square, got.Count(), tt.wantCount)
			}
		})
	}
}

func TestKnightOffsets_ExactHops(t *testing.T) {
	a1 := square.New(square.FileA, square.RankOne)

	want := Empty.
		With(square.New(square.FileB, square.RankThree)).
		With(square.New(square.FileC, square.RankTwo))
	if got := KnightOffsets(a1); got != want {
		t.Errorf("KnightOffsets(a1) = %#x, want %#x", got, want)
	}
}
