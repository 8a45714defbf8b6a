package main

import (
	"fmt"

	"github.com/spf13/cobra"

	chessgame "github.com/dev0Guy/ChessGame"
	"github.com/dev0Guy/ChessGame/bitboard"
	"github.com/dev0Guy/ChessGame/square"
)

var showCmd = &cobra.Command{
	Use:   "show [square|file|rank]",
	Short: "Render the bitboard mask for a square, file or rank",
	Long: `Render the bitboard mask for a target as an 8x8 grid, rank 8 at the
top. The target is a square in algebraic notation ("e4"), a file letter
("a".."h") or a rank digit ("1".."8").

Examples:
  chessgame show e4
  chessgame show a
  chessgame show 4
  chessgame show e4 --adjacent
  chessgame show e4 --knight`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var (
	showAdjacent bool
	showKnight   bool
)

func init() {
	showCmd.Flags().BoolVar(&showAdjacent, "adjacent", false, "render the adjacency mask of a square")
	showCmd.Flags().BoolVar(&showKnight, "knight", false, "render the knight-offset mask of a square")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	target := args[0]

	if len(target) == 1 {
		if showAdjacent || showKnight {
			return fmt.Errorf("--adjacent and --knight apply to squares only")
		}
		return showLine(target[0])
	}

	grid := chessgame.New(chessgame.WithLogger(newLogger()))
	sq, err := grid.Parse(target)
	if err != nil {
		return fmt.Errorf("parsing target: %w", err)
	}

	switch {
	case showAdjacent:
		fmt.Print(bitboard.Adjacent(sq))
	case showKnight:
		fmt.Print(bitboard.KnightOffsets(sq))
	default:
		fmt.Print(bitboard.SquareMask(sq))
	}
	return nil
}

// showLine renders a whole file or rank from its single-character name.
func showLine(c byte) error {
	if f, err := square.ParseFile(c); err == nil {
		fmt.Print(bitboard.FileMask(f))
		return nil
	}
	r, err := square.ParseRank(c)
	if err != nil {
		return fmt.Errorf("target %q is neither a file nor a rank", c)
	}
	fmt.Print(bitboard.RankMask(r))
	return nil
}
