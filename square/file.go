package square

import (
	"errors"
	"fmt"
)

// ErrInvalidFile indicates a character that does not name a board file.
var ErrInvalidFile = errors.New("square: invalid file")

// File is one of the 8 vertical columns of the board, FileA (leftmost,
// the a-file) through FileH (rightmost). The declared order is part of
// the package contract: consumers may rely on FileA < FileB < ... < FileH
// for lateral distance and adjacency arithmetic.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileCount is the number of files on a chessboard.
const FileCount = 8

// Files returns the 8 files in declared order, A through H.
// Each call returns a fresh slice owned by the caller.
func Files() []File {
	return []File{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
}

// Valid reports whether f is one of the 8 declared files.
func (f File) Valid() bool {
	return f >= FileA && f <= FileH
}

// String returns the lower-case algebraic letter for the file ("a".."h").
func (f File) String() string {
	if !f.Valid() {
		return "?"
	}
	return string(rune('a' + f))
}

// ParseFile converts an algebraic file letter into a File.
// Both cases are accepted: 'a' and 'A' name FileA.
func ParseFile(c byte) (File, error) {
	switch {
	case c >= 'a' && c <= 'h':
		return File(c - 'a'), nil
	case c >= 'A' && c <= 'H':
		return File(c - 'A'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFile, c)
}

// Offset returns the file n columns to the right (negative n moves left)
// and reports whether the result is still on the board.
func (f File) Offset(n int) (File, bool) {
	o := int(f) + n
	if o < int(FileA) || o > int(FileH) {
		return 0, false
	}
	return File(o), true
}
