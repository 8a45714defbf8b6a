package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	chessgame "github.com/dev0Guy/ChessGame"
)

var squaresCmd = &cobra.Command{
	Use:   "squares",
	Short: "List all 64 squares in enumeration order",
	Long: `List the 64 squares in the documented enumeration order: rank-major,
file-minor, so a1 is first and h8 is last. The position of each square
in this listing equals its bitboard index.`,
	Args: cobra.NoArgs,
	RunE: runSquares,
}

var (
	squaresJSON    bool
	squaresIndexes bool
)

func init() {
	squaresCmd.Flags().BoolVar(&squaresJSON, "json", false, "output squares as a JSON array")
	squaresCmd.Flags().BoolVar(&squaresIndexes, "indexes", false, "prefix each square with its bitboard index")
	rootCmd.AddCommand(squaresCmd)
}

func runSquares(cmd *cobra.Command, args []string) error {
	grid := chessgame.New(chessgame.WithLogger(newLogger()))
	all := grid.Squares()

	if squaresJSON {
		names := make([]string, len(all))
		for i, sq := range all {
			names[i] = sq.String()
		}
		out, err := json.Marshal(names)
		if err != nil {
			return fmt.Errorf("encoding squares: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, sq := range all {
		if squaresIndexes {
			fmt.Printf("%2d %s\n", sq.Index(), sq)
		} else {
			fmt.Println(sq)
		}
	}
	return nil
}
