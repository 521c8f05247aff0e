package game

import (
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raymaze/internal/logger"
	"chosenoffset.com/raymaze/internal/world"
	"chosenoffset.com/raymaze/internal/world/gen"
)

// BuildWorld generates the grid for cfg and indexes its walls.
func BuildWorld(cfg gen.Config) *world.Model {
	log := logger.WithComponent("world")
	start := time.Now()

	grid, stats := gen.NewGenerator(cfg).Generate()
	model := world.NewModel(grid)

	log.WithFields(logrus.Fields{
		"seed":     cfg.Seed,
		"width":    grid.Width,
		"height":   grid.Height,
		"rooms":    stats.Rooms,
		"floor":    stats.FloorCells,
		"repaired": stats.RepairedPockets,
		"pruned":   stats.PrunedCells,
		"elapsed":  time.Since(start).Round(time.Millisecond),
	}).Info("world generated")
	return model
}
