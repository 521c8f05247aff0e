package world

// WallIndex is the set of wall cell coordinates.
type WallIndex map[Point]struct{}

// Model is the generated grid plus its derived wall index. It is read-only
// once built.
type Model struct {
	grid  *Grid
	walls WallIndex
}

// NewModel indexes every wall cell of g.
func NewModel(g *Grid) *Model {
	walls := make(WallIndex, g.Width*g.Height-g.FloorCount())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == Wall {
				walls[Point{x, y}] = struct{}{}
			}
		}
	}
	return &Model{grid: g, walls: walls}
}

// IsWall reports whether the world position (x, y) is inside a wall.
// Anything outside the map counts as wall.
func (m *Model) IsWall(x, y float64) bool {
	if x < 0 || y < 0 || x >= float64(m.grid.Width) || y >= float64(m.grid.Height) {
		return true
	}
	return m.IsWallCell(int(x), int(y))
}

// IsWallCell is IsWall for integer cells.
func (m *Model) IsWallCell(x, y int) bool {
	if !m.grid.InBounds(x, y) {
		return true
	}
	_, ok := m.walls[Point{x, y}]
	return ok
}

// Size returns the map dimensions in cells.
func (m *Model) Size() (width, height int) {
	return m.grid.Width, m.grid.Height
}

// Grid returns the underlying tile grid.
func (m *Model) Grid() *Grid {
	return m.grid
}

// Spawn returns the player spawn position: the center of the middle cell.
func (m *Model) Spawn() (x, y float64) {
	return float64(m.grid.Width/2) + 0.5, float64(m.grid.Height/2) + 0.5
}
