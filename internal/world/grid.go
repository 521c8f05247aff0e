// Package world holds the static tile map and the wall lookup every other
// component queries for collision and visibility.
package world

import (
	"fmt"
	"strings"
)

// Tile is the content of one grid cell.
type Tile uint8

const (
	Wall Tile = iota
	Floor
)

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Grid is a Width x Height tile map stored row-major.
type Grid struct {
	Width  int
	Height int
	cells  []Tile
}

// NewGrid creates a grid filled with walls.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Tile, width*height), // Wall is the zero value
	}
}

// ParseGrid builds a grid from rows of '1' (wall) and '0' (floor) characters.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty map")
	}
	width := len(rows[0])
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, len(row), width)
		}
		for x, ch := range row {
			switch ch {
			case '1', '#':
				g.Set(x, y, Wall)
			case '0', '.':
				g.Set(x, y, Floor)
			default:
				return nil, fmt.Errorf("unknown tile %q at (%d, %d)", ch, x, y)
			}
		}
	}
	return g, nil
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at (x, y). Out-of-bounds cells read as Wall.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.Width+x]
}

// Set writes a tile. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = t
}

// IsFloor reports whether (x, y) is an in-bounds floor cell.
func (g *Grid) IsFloor(x, y int) bool {
	return g.At(x, y) == Floor
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, cells: make([]Tile, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// FloorCount returns the number of floor cells.
func (g *Grid) FloorCount() int {
	n := 0
	for _, t := range g.cells {
		if t == Floor {
			n++
		}
	}
	return n
}

// Rows renders the grid as '1'/'0' strings, one per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == Wall {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

var cardinals = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Reachable flood-fills 4-connected floor cells from (sx, sy).
// The returned mask is indexed y*Width+x; cells lists the visited cells in
// BFS order. A start cell that is out of bounds or a wall yields nothing.
func (g *Grid) Reachable(sx, sy int) (mask []bool, cells []Point) {
	mask = make([]bool, g.Width*g.Height)
	if !g.IsFloor(sx, sy) {
		return mask, nil
	}
	mask[sy*g.Width+sx] = true
	cells = append(cells, Point{sx, sy})
	g.floodFrom(cells, mask, &cells)
	return mask, cells
}

// Extend continues a flood fill from (sx, sy) into floor cells not yet in
// mask, appending newly visited cells to cells.
func (g *Grid) Extend(sx, sy int, mask []bool, cells *[]Point) {
	if !g.IsFloor(sx, sy) || mask[sy*g.Width+sx] {
		return
	}
	mask[sy*g.Width+sx] = true
	start := len(*cells)
	*cells = append(*cells, Point{sx, sy})
	g.floodFrom((*cells)[start:], mask, cells)
}

// floodFrom runs a BFS seeded with queue. The queue is kept separate from
// the output slice so appends to out never alias it.
func (g *Grid) floodFrom(seed []Point, mask []bool, out *[]Point) {
	queue := make([]Point, len(seed))
	copy(queue, seed)
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		for _, d := range cardinals {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !g.IsFloor(nx, ny) {
				continue
			}
			idx := ny*g.Width + nx
			if mask[idx] {
				continue
			}
			mask[idx] = true
			n := Point{nx, ny}
			*out = append(*out, n)
			queue = append(queue, n)
		}
	}
}
