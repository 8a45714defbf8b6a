// Package gridfx provides an fx module for a chessgame Grid.
package gridfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	chessgame "github.com/dev0Guy/ChessGame"
	"github.com/dev0Guy/ChessGame/internal/stats"
	"github.com/dev0Guy/ChessGame/internal/stats/logger"
)

// Module provides a Grid wired with logging and a logger-backed stats
// collector. Requires a *zap.Logger to be provided.
var Module = fx.Module("chessgrid",
	fx.Provide(
		newStatsCollector,
		newGrid,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("chessgame.stats"))
}

// Params holds dependencies for creating the grid.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
}

func newGrid(p Params) *chessgame.Grid {
	return chessgame.New(
		chessgame.WithStats(p.Collector),
		chessgame.WithLogger(p.Logger.Named("chessgame")),
	)
}
