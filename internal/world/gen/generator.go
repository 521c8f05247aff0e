// Package gen procedurally generates the maze-like world grid: carved rooms
// and corridors smoothed by a cellular automaton, a guaranteed spawn area, a
// navigation lattice, and a connectivity repair pass that leaves every floor
// cell reachable from spawn.
package gen

import (
	"math"
	"math/rand"
	"time"

	"chosenoffset.com/raymaze/internal/world"
)

const (
	smoothingPasses   = 3
	spawnRadius       = 7
	spawnCorridorHalf = 2
	spawnPadHalf      = 2
	latticeDivisions  = 8
	corridorTurnOdds  = 0.1
	branchDigOdds     = 0.08
	tunnelJitterOdds  = 0.3
	minRoomAttempts   = 80
	areaPerRoom       = 1700
	roomMargin        = 8
)

// Config holds generation parameters.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"` // 0 = use current time
}

// DefaultConfig returns the standard 516x516 world.
func DefaultConfig() Config {
	return Config{Width: 516, Height: 516, Seed: 42}
}

// Stats summarizes what the repair passes had to do.
type Stats struct {
	Rooms           int
	Corridors       int
	RepairedPockets int
	PrunedCells     int
	FloorCells      int
}

// Generator carves a world grid. It is deterministic for a fixed seed.
type Generator struct {
	width, height int
	rng           *rand.Rand
	grid          *world.Grid
	centers       []world.Point
	stats         Stats
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		width:  cfg.Width,
		height: cfg.Height,
		rng:    rand.New(rand.NewSource(ResolveSeed(cfg.Seed))),
	}
}

// ResolveSeed returns seed, or a clock-derived seed when seed is zero.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	if s := time.Now().UnixNano(); s != 0 {
		return s
	}
	return 1
}

// Generate is shorthand for NewGenerator(Config{...}).Generate().
func Generate(width, height int, seed int64) *world.Grid {
	g, _ := NewGenerator(Config{Width: width, Height: height, Seed: seed}).Generate()
	return g
}

// Generate builds a new grid and reports repair statistics.
func (g *Generator) Generate() (*world.Grid, Stats) {
	g.grid = world.NewGrid(g.width, g.height)
	g.centers = g.centers[:0]
	g.stats = Stats{}
	if g.width == 0 || g.height == 0 {
		return g.grid, g.stats
	}

	// Step 1: rooms
	g.carveRooms()

	// Step 2: corridors out of room centers
	g.carveCorridors()

	// Step 3: smoothing
	for i := 0; i < smoothingPasses; i++ {
		g.smooth()
	}

	// Step 4: spawn area with outward corridors
	center := g.ensureSpawnArea()

	// Step 5: lattice scaffolding
	g.buildNavigationLattice(center)

	// Step 6: connect stranded pockets
	mask, reachable := g.grid.Reachable(center.X, center.Y)
	if len(reachable) == 0 {
		g.grid.Set(center.X, center.Y, world.Floor)
		mask, reachable = g.grid.Reachable(center.X, center.Y)
	}
	g.connectUnreachable(mask, reachable, center)

	// Step 7: prune anything still unreachable
	mask, _ = g.grid.Reachable(center.X, center.Y)
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if g.grid.IsFloor(x, y) && !mask[y*g.width+x] {
				g.grid.Set(x, y, world.Wall)
				g.stats.PrunedCells++
			}
		}
	}

	// Step 8: seal the border
	g.sealBorder()

	// The spawn pad touches the spawn cell, so it stays connected.
	g.clearSpawnPad(center)

	g.stats.FloorCells = g.grid.FloorCount()
	return g.grid, g.stats
}

// intRange returns a uniform int in [lo, hi], or lo when the range is empty.
func (g *Generator) intRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) interior(x, y int) bool {
	return x > 0 && x < g.width-1 && y > 0 && y < g.height-1
}

func (g *Generator) carve(x, y int) {
	if g.interior(x, y) {
		g.grid.Set(x, y, world.Floor)
	}
}

func (g *Generator) carveRooms() {
	attempts := g.width * g.height / areaPerRoom
	if attempts < minRoomAttempts {
		attempts = minRoomAttempts
	}
	for i := 0; i < attempts; i++ {
		cx := g.intRange(roomMargin, g.width-roomMargin-1)
		cy := g.intRange(roomMargin, g.height-roomMargin-1)
		if g.rng.Float64() < 0.6 {
			g.carveEllipse(cx, cy, g.intRange(5, 13), g.intRange(4, 11))
		} else {
			g.carveRectangle(cx, cy, g.intRange(4, 12), g.intRange(4, 12))
		}
		g.centers = append(g.centers, world.Point{X: cx, Y: cy})
	}
	g.stats.Rooms = attempts
}

func (g *Generator) carveEllipse(cx, cy, rx, ry int) {
	rxSq := max(1, rx*rx)
	rySq := max(1, ry*ry)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if dx*dx*rySq+dy*dy*rxSq <= rxSq*rySq {
				g.carve(cx+dx, cy+dy)
			}
		}
	}
}

func (g *Generator) carveRectangle(cx, cy, halfW, halfH int) {
	for y := cy - halfH; y <= cy+halfH; y++ {
		for x := cx - halfW; x <= cx+halfW; x++ {
			g.carve(x, y)
		}
	}
}

var directions = [4]world.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

func (g *Generator) randomDirection() world.Point {
	return directions[g.rng.Intn(len(directions))]
}

func (g *Generator) carveCorridors() {
	count := len(g.centers) * 2
	for i := 0; i < count; i++ {
		start := g.centers[g.rng.Intn(len(g.centers))]
		x, y := start.X, start.Y
		dir := g.randomDirection()
		length := g.intRange(18, 64)
		half := 1
		if g.rng.Float64() >= 0.75 {
			half = 2
		}
		for step := 0; step < length; step++ {
			if x <= 1 || x >= g.width-2 || y <= 1 || y >= g.height-2 {
				break
			}
			g.carve(x, y)
			for off := 1; off <= half; off++ {
				if dir.X != 0 {
					g.carve(x, y+off)
					g.carve(x, y-off)
				} else {
					g.carve(x+off, y)
					g.carve(x-off, y)
				}
			}
			if g.rng.Float64() < corridorTurnOdds {
				dir = g.randomDirection()
			}
			x += dir.X
			y += dir.Y
		}
	}
	g.stats.Corridors = count
}

// smooth runs one cellular-automaton pass against a snapshot of the grid.
func (g *Generator) smooth() {
	prev := g.grid.Clone()
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			floors := 0
			for oy := -1; oy <= 1; oy++ {
				for ox := -1; ox <= 1; ox++ {
					if (ox != 0 || oy != 0) && prev.IsFloor(x+ox, y+oy) {
						floors++
					}
				}
			}
			if prev.IsFloor(x, y) {
				if floors < 2 {
					g.grid.Set(x, y, world.Wall)
				}
			} else if floors >= 5 {
				g.grid.Set(x, y, world.Floor)
			}
		}
	}
}

// carveWide stamps a (2r+1)-square of floor centered on (x, y).
func (g *Generator) carveWide(x, y, radius int) {
	radius = max(0, radius)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			g.carve(x+dx, y+dy)
		}
	}
}

// carveLine rasterizes a straight line as a run of square stamps.
func (g *Generator) carveLine(x0, y0, x1, y1, radius int) {
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		g.carveWide(x0, y0, radius)
		return
	}
	for step := 0; step <= steps; step++ {
		t := float64(step) / float64(steps)
		x := int(math.RoundToEven(float64(x0) + float64(x1-x0)*t))
		y := int(math.RoundToEven(float64(y0) + float64(y1-y0)*t))
		if x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1 {
			g.carveWide(x, y, radius)
		}
	}
}

func (g *Generator) ensureSpawnArea() world.Point {
	c := world.Point{X: g.width / 2, Y: g.height / 2}
	for dy := -spawnRadius; dy <= spawnRadius; dy++ {
		py := c.Y + dy
		if py <= 1 || py >= g.height-2 {
			continue
		}
		for dx := -spawnRadius; dx <= spawnRadius; dx++ {
			px := c.X + dx
			if px <= 1 || px >= g.width-2 {
				continue
			}
			if dx*dx+dy*dy <= spawnRadius*spawnRadius {
				g.grid.Set(px, py, world.Floor)
			}
		}
	}
	for _, d := range directions {
		g.digSpawnCorridor(c, d)
	}
	return c
}

// digSpawnCorridor walks outward from the spawn center until it rejoins
// existing floor beyond the spawn disk or reaches the border.
func (g *Generator) digSpawnCorridor(c, d world.Point) {
	x, y := c.X, c.Y
	maxSteps := max(g.width, g.height)
	for step := 1; step < maxSteps; step++ {
		x += d.X
		y += d.Y
		if !g.interior(x, y) {
			return
		}
		wasFloor := g.grid.IsFloor(x, y)
		g.carveWide(x, y, spawnCorridorHalf)
		if wasFloor && step > spawnRadius+4 {
			return
		}
		if g.rng.Float64() < branchDigOdds {
			turn := g.randomDirection()
			tx, ty := x+turn.X, y+turn.Y
			if g.interior(tx, ty) {
				g.carveWide(tx, ty, spawnCorridorHalf)
			}
		}
	}
}

func (g *Generator) buildNavigationLattice(c world.Point) {
	for i := 2; i < latticeDivisions; i += 2 {
		x := i * g.width / latticeDivisions
		g.carveLine(x, 1, x, g.height-2, 1)
		y := i * g.height / latticeDivisions
		g.carveLine(1, y, g.width-2, y, 1)
	}
	targets := []world.Point{
		{X: 1, Y: 1},
		{X: g.width - 2, Y: 1},
		{X: 1, Y: g.height - 2},
		{X: g.width - 2, Y: g.height - 2},
		{X: g.width / 2, Y: 1},
		{X: g.width / 2, Y: g.height - 2},
		{X: 1, Y: g.height / 2},
		{X: g.width - 2, Y: g.height / 2},
	}
	for _, t := range targets {
		g.carveLine(c.X, c.Y, t.X, t.Y, 2)
	}
}

func (g *Generator) sealBorder() {
	for x := 0; x < g.width; x++ {
		g.grid.Set(x, 0, world.Wall)
		g.grid.Set(x, g.height-1, world.Wall)
	}
	for y := 0; y < g.height; y++ {
		g.grid.Set(0, y, world.Wall)
		g.grid.Set(g.width-1, y, world.Wall)
	}
}

// clearSpawnPad forces a small square around spawn to floor, clipped to the
// interior so the border stays sealed.
func (g *Generator) clearSpawnPad(c world.Point) {
	for dy := -spawnPadHalf; dy <= spawnPadHalf; dy++ {
		for dx := -spawnPadHalf; dx <= spawnPadHalf; dx++ {
			g.carve(c.X+dx, c.Y+dy)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
