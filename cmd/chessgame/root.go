package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "chessgame",
	Short: "Inspect the chess board coordinate system",
	Long: `Chessgame is a CLI tool for inspecting the board coordinate layer
of the engine: the file and rank enumerations, the 64 squares derived
from their cross-product, and the bitboard masks built on top of them.

Examples:
  # List all 64 squares in enumeration order
  chessgame squares

  # Render the bitboard mask of a square, file or rank
  chessgame show e4
  chessgame show a
  chessgame show 4`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newLogger returns a development logger when --verbose is set and a
// no-op logger otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
