// Package chessgame provides the coordinate and board-representation
// layer for a chess engine: the File and Rank enumerations, the 64
// squares derived from their cross-product, and bitboard masks over
// them.
//
// The pure core lives in the square and bitboard packages and has no
// dependencies. This package adds the Grid, an embeddable handle that
// exposes the same operations with logging and metrics for applications
// that want observability.
//
// Example usage:
//
//	grid := chessgame.New(
//	    chessgame.WithLogger(logger),
//	)
//
//	for _, sq := range grid.Squares() {
//	    fmt.Println(sq)
//	}
//
//	sq, err := grid.Parse("e4")
//	if err != nil {
//	    log.Fatal(err)
//	}
package chessgame

import (
	"go.uber.org/zap"

	"github.com/dev0Guy/ChessGame/internal/stats"
	"github.com/dev0Guy/ChessGame/square"
)

// Grid provides observable access to the board coordinate system.
// A Grid is stateless apart from its logger and collector, holds no
// resources, and is safe for concurrent use by multiple goroutines.
type Grid struct {
	stats  stats.Collector
	logger *zap.Logger
}

// New creates a new Grid with the given options.
// If no options are provided, logging and metrics are no-ops.
func New(opts ...Option) *Grid {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	g := &Grid{
		stats:  cfg.stats,
		logger: cfg.logger,
	}

	g.logger.Debug("grid initialized")

	return g
}

// Files returns the 8 files in declared order, A through H.
func (g *Grid) Files() []square.File {
	g.stats.IncCounter(stats.MetricEnumerations, 1)
	return square.Files()
}

// Ranks returns the 8 ranks in declared order, One through Eight.
func (g *Grid) Ranks() []square.Rank {
	g.stats.IncCounter(stats.MetricEnumerations, 1)
	return square.Ranks()
}

// Squares returns all 64 squares in the documented rank-major,
// file-minor order. See square.Squares for the ordering contract.
func (g *Grid) Squares() []square.Square {
	g.stats.IncCounter(stats.MetricEnumerations, 1)
	return square.Squares()
}

// Parse converts algebraic notation such as "e4" into a square.
// The returned error wraps square.ErrInvalidSquare on malformed input.
func (g *Grid) Parse(notation string) (square.Square, error) {
	g.stats.IncCounter(stats.MetricParses, 1)

	sq, err := square.Parse(notation)
	if err != nil {
		g.stats.IncCounter(stats.MetricParseErrors, 1)
		g.logger.Debug("parse failed", zap.String("notation", notation), zap.Error(err))
		return square.Square{}, err
	}

	g.logger.Debug("parsed square",
		zap.String("notation", notation),
		zap.Int("index", sq.Index()),
	)
	return sq, nil
}
