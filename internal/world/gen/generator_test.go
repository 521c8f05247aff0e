package gen

import (
	"testing"

	"chosenoffset.com/raymaze/internal/world"
)

func assertFullyReachable(t *testing.T, g *world.Grid) {
	t.Helper()
	cx, cy := g.Width/2, g.Height/2
	_, cells := g.Reachable(cx, cy)
	if len(cells) != g.FloorCount() {
		t.Fatalf("reachable %d cells from spawn, grid has %d floor cells", len(cells), g.FloorCount())
	}
}

func assertSealedBorder(t *testing.T, g *world.Grid) {
	t.Helper()
	for x := 0; x < g.Width; x++ {
		if g.IsFloor(x, 0) || g.IsFloor(x, g.Height-1) {
			t.Fatalf("border column %d is open", x)
		}
	}
	for y := 0; y < g.Height; y++ {
		if g.IsFloor(0, y) || g.IsFloor(g.Width-1, y) {
			t.Fatalf("border row %d is open", y)
		}
	}
}

func TestGenerateSmallGridSpawnArea(t *testing.T) {
	g := Generate(20, 20, 7)

	cx, cy := 10, 10
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if !g.IsFloor(cx+dx, cy+dy) {
				t.Errorf("expected floor at (%d, %d)", cx+dx, cy+dy)
			}
		}
	}
	assertFullyReachable(t, g)
}

func TestGenerateConnectivityAcrossSeeds(t *testing.T) {
	sizes := []struct{ w, h int }{
		{20, 20},
		{40, 30},
		{64, 64},
		{97, 53},
	}
	for _, size := range sizes {
		for seed := int64(1); seed <= 6; seed++ {
			g := Generate(size.w, size.h, seed)
			if g.Width != size.w || g.Height != size.h {
				t.Fatalf("got %dx%d grid, want %dx%d", g.Width, g.Height, size.w, size.h)
			}
			assertFullyReachable(t, g)
			assertSealedBorder(t, g)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(48, 48, 1234)
	b := Generate(48, 48, 1234)
	ra, rb := a.Rows(), b.Rows()
	for y := range ra {
		if ra[y] != rb[y] {
			t.Fatalf("row %d differs between runs with the same seed", y)
		}
	}

	c := Generate(48, 48, 4321)
	same := true
	for y, row := range c.Rows() {
		if row != ra[y] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical maps")
	}
}

func TestGenerateDegenerateSizes(t *testing.T) {
	for _, size := range []struct{ w, h int }{{0, 0}, {1, 1}, {3, 3}, {5, 4}, {9, 9}} {
		g := Generate(size.w, size.h, 3)
		assertSealedBorder(t, g)
		assertFullyReachable(t, g)
	}
}

func TestGenerateStats(t *testing.T) {
	grid, stats := NewGenerator(Config{Width: 64, Height: 64, Seed: 99}).Generate()
	if stats.Rooms != minRoomAttempts {
		t.Errorf("expected %d room attempts on a small map, got %d", minRoomAttempts, stats.Rooms)
	}
	if stats.Corridors != stats.Rooms*2 {
		t.Errorf("expected %d corridors, got %d", stats.Rooms*2, stats.Corridors)
	}
	if stats.FloorCells != grid.FloorCount() {
		t.Errorf("stats report %d floor cells, grid has %d", stats.FloorCells, grid.FloorCount())
	}
}

func TestConnectUnreachableJoinsIslands(t *testing.T) {
	rows := []string{
		"111111111111",
		"100011111101",
		"100011111111",
		"100011111111",
		"111111111111",
		"111111111111",
		"111111100111",
		"111111100111",
		"111111111111",
	}
	grid, err := world.ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	g := NewGenerator(Config{Width: grid.Width, Height: grid.Height, Seed: 5})
	g.grid = grid

	spawn := world.Point{X: 2, Y: 2}
	mask, reachable := grid.Reachable(spawn.X, spawn.Y)
	g.connectUnreachable(mask, reachable, spawn)

	if g.stats.RepairedPockets != 2 {
		t.Errorf("expected 2 repaired pockets, got %d", g.stats.RepairedPockets)
	}
	_, cells := grid.Reachable(spawn.X, spawn.Y)
	if len(cells) != grid.FloorCount() {
		t.Fatalf("after repair %d of %d floor cells reachable", len(cells), grid.FloorCount())
	}
}

func TestCarveTunnelReachesTarget(t *testing.T) {
	g := NewGenerator(Config{Width: 30, Height: 30, Seed: 11})
	g.grid = world.NewGrid(30, 30)

	start := world.Point{X: 3, Y: 4}
	end := world.Point{X: 25, Y: 22}
	g.carveTunnel(start, end)

	mask, _ := g.grid.Reachable(start.X, start.Y)
	if !mask[end.Y*g.width+end.X] {
		t.Fatal("tunnel does not connect start and end")
	}
}

func TestResolveSeed(t *testing.T) {
	if got := ResolveSeed(7); got != 7 {
		t.Errorf("ResolveSeed(7) = %d", got)
	}
	if got := ResolveSeed(0); got == 0 {
		t.Error("ResolveSeed(0) stayed zero")
	}
}
