// Package main provides the chessgame CLI tool for inspecting the board
// coordinate system: enumerating squares and rendering bitboard masks.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
