package square

import (
	"errors"
	"fmt"
)

// ErrInvalidRank indicates a character that does not name a board rank.
var ErrInvalidRank = errors.New("square: invalid rank")

// Rank is one of the 8 horizontal rows of the board, RankOne (bottom,
// White's back rank) through RankEight (top). As with File, the declared
// order is contractual and defines bottom-to-top board orientation.
type Rank int8

const (
	RankOne Rank = iota
	RankTwo
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
)

// RankCount is the number of ranks on a chessboard.
const RankCount = 8

// Ranks returns the 8 ranks in declared order, One through Eight.
// Each call returns a fresh slice owned by the caller.
func Ranks() []Rank {
	return []Rank{RankOne, RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven, RankEight}
}

// Valid reports whether r is one of the 8 declared ranks.
func (r Rank) Valid() bool {
	return r >= RankOne && r <= RankEight
}

// String returns the algebraic digit for the rank ("1".."8").
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rune('1' + r))
}

// ParseRank converts an algebraic rank digit into a Rank.
func ParseRank(c byte) (Rank, error) {
	if c < '1' || c > '8' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, c)
	}
	return Rank(c - '1'), nil
}

// Offset returns the rank n rows up (negative n moves down) and reports
// whether the result is still on the board.
func (r Rank) Offset(n int) (Rank, bool) {
	o := int(r) + n
	if o < int(RankOne) || o > int(RankEight) {
		return 0, false
	}
	return Rank(o), true
}
