package gen

import (
	"chosenoffset.com/raymaze/internal/world"
)

// connectUnreachable tunnels every floor component that the spawn flood fill
// did not reach back into the reachable region. mask and reachable are
// updated in place as components are joined.
func (g *Generator) connectUnreachable(mask []bool, reachable []world.Point, center world.Point) {
	seen := make([]bool, g.width*g.height)
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			idx := y*g.width + x
			if !g.grid.IsFloor(x, y) || mask[idx] || seen[idx] {
				continue
			}
			component := g.collectComponent(x, y, mask, seen)
			if len(component) == 0 || len(reachable) == 0 {
				continue
			}
			target := nearest(component, center)
			from := nearest(reachable, target)
			g.carveTunnel(from, target)
			g.grid.Extend(target.X, target.Y, mask, &reachable)
			g.stats.RepairedPockets++
		}
	}
}

// collectComponent gathers the interior floor component containing (x, y)
// that is not yet reachable.
func (g *Generator) collectComponent(x, y int, mask, seen []bool) []world.Point {
	seen[y*g.width+x] = true
	queue := []world.Point{{X: x, Y: y}}
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		for _, d := range directions {
			nx, ny := p.X+d.X, p.Y+d.Y
			if nx < 1 || nx >= g.width-1 || ny < 1 || ny >= g.height-1 {
				continue
			}
			idx := ny*g.width + nx
			if !g.grid.IsFloor(nx, ny) || mask[idx] || seen[idx] {
				continue
			}
			seen[idx] = true
			queue = append(queue, world.Point{X: nx, Y: ny})
		}
	}
	return queue
}

// nearest returns the cell in cells closest to p by Euclidean distance.
// Ties keep the earliest cell.
func nearest(cells []world.Point, p world.Point) world.Point {
	best := cells[0]
	bestDist := distSq(best, p)
	for _, c := range cells[1:] {
		if d := distSq(c, p); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func distSq(a, b world.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// carveTunnel walks greedily from start to end, preferring the axis with the
// larger remaining gap, with occasional single-cell side jitter. The walk
// is capped at width+height steps.
func (g *Generator) carveTunnel(start, end world.Point) {
	x, y := start.X, start.Y
	g.carveWide(x, y, 1)
	maxSteps := g.width + g.height
	for steps := 0; (x != end.X || y != end.Y) && steps < maxSteps; steps++ {
		horizontal := abs(end.X-x) > abs(end.Y-y)
		switch {
		case horizontal && x != end.X:
			x += sign(end.X - x)
		case y != end.Y:
			y += sign(end.Y - y)
		case x != end.X:
			x += sign(end.X - x)
		}
		g.carveWide(x, y, 1)
		if g.rng.Float64() < tunnelJitterOdds && x != end.X {
			g.carveWide(x+sign(end.X-x), y, 0)
		}
		if g.rng.Float64() < tunnelJitterOdds && y != end.Y {
			g.carveWide(x, y+sign(end.Y-y), 0)
		}
	}
	g.carveWide(end.X, end.Y, 1)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
