package raycast

import (
	"errors"
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"chosenoffset.com/raymaze/internal/sim"
	"chosenoffset.com/raymaze/internal/world"
	"chosenoffset.com/raymaze/internal/world/gen"
)

// boxWorld returns a w×h map with a solid border, an empty interior and
// the given extra walls.
func boxWorld(w, h int, walls ...world.Point) *world.Model {
	g := world.NewGrid(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			g.Set(x, y, world.Floor)
		}
	}
	for _, p := range walls {
		g.Set(p.X, p.Y, world.Wall)
	}
	return world.NewModel(g)
}

func newRaycaster(m *world.Model) *Raycaster {
	r := New(DefaultConfig(), 1200, 800)
	r.Configure(m, nil)
	return r
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestCastRayHitsWallAhead(t *testing.T) {
	r := newRaycaster(boxWorld(20, 20, world.Point{X: 15, Y: 10}))

	hit := r.CastRay(10.5, 10.5, 0)

	if hit.Side != 0 || hit.MapX != 15 || hit.MapY != 10 {
		t.Fatalf("hit = %+v, want side 0 at (15, 10)", hit)
	}
	if math.Abs(hit.Distance-4.5) > 1e-6 {
		t.Errorf("Distance = %v, want 4.5", hit.Distance)
	}
}

func TestCastRaySideOne(t *testing.T) {
	r := newRaycaster(boxWorld(20, 20, world.Point{X: 10, Y: 13}))

	hit := r.CastRay(10.5, 10.5, math.Pi/2)

	if hit.Side != 1 || hit.MapX != 10 || hit.MapY != 13 {
		t.Fatalf("hit = %+v, want side 1 at (10, 13)", hit)
	}
	if math.Abs(hit.Distance-2.5) > 1e-6 {
		t.Errorf("Distance = %v, want 2.5", hit.Distance)
	}
}

func TestCastRayStaysInBounds(t *testing.T) {
	g := gen.Generate(48, 40, 11)
	m := world.NewModel(g)
	r := newRaycaster(m)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 2000; i++ {
		px := 1 + rng.Float64()*46
		py := 1 + rng.Float64()*38
		angle := rng.Float64() * 2 * math.Pi
		hit := r.CastRay(px, py, angle)

		if hit.Distance < 0 || hit.Distance > r.MaxDepth() {
			t.Fatalf("ray from (%.2f, %.2f) at %.3f: distance %v outside [0, %v]", px, py, angle, hit.Distance, r.MaxDepth())
		}
		if hit.Distance == r.MaxDepth() {
			continue
		}
		if !g.InBounds(hit.MapX, hit.MapY) || g.IsFloor(hit.MapX, hit.MapY) {
			t.Fatalf("ray from (%.2f, %.2f) at %.3f: hit %+v is not a wall cell", px, py, angle, hit)
		}
	}
}

func TestCastRayMaxDepthSentinel(t *testing.T) {
	g := world.NewGrid(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			g.Set(x, y, world.Floor)
		}
	}
	r := newRaycaster(world.NewModel(g))

	hit := r.CastRay(5.5, 5.5, 0.3)

	if hit.Distance != r.MaxDepth() || hit.Side != 0 {
		t.Errorf("hit = %+v, want the max-depth sentinel", hit)
	}
}

func TestUnconfiguredPanics(t *testing.T) {
	r := New(DefaultConfig(), 320, 200)
	ops := map[string]func(){
		"CastRay": func() { r.CastRay(1, 1, 0) },
		"Project": func() { r.Project(Pose{}, 2, 2) },
		"Render":  func() { r.Render(image.NewRGBA(image.Rect(0, 0, 320, 200)), Pose{}) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, ErrNotConfigured) {
					t.Errorf("recovered %v, want ErrNotConfigured", err)
				}
			}()
			op()
		})
	}
}

func TestProject(t *testing.T) {
	r := newRaycaster(boxWorld(20, 20, world.Point{X: 8, Y: 5}))
	pose := Pose{X: 5.5, Y: 10.5, Angle: 0}

	tests := []struct {
		name   string
		tx, ty float64
		ok     bool
		dist   float64
		x      int
	}{
		{"straight ahead", 8.5, 10.5, true, 3, 600},
		{"behind", 2.5, 10.5, false, 0, 0},
		{"outside field of view", 5.5, 14.5, false, 0, 0},
		{"on the camera", 5.5, 10.5, false, 0, 0},
		{"against the far wall", 19.02, 10.5, true, 13.52, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, x, ok := r.Project(pose, tt.tx, tt.ty)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if math.Abs(dist-tt.dist) > 1e-9 || x != tt.x {
				t.Errorf("Project = (%v, %d), want (%v, %d)", dist, x, tt.dist, tt.x)
			}
		})
	}
}

func TestProjectOccludedByWall(t *testing.T) {
	r := newRaycaster(boxWorld(20, 20, world.Point{X: 8, Y: 10}))
	if _, _, ok := r.Project(Pose{X: 5.5, Y: 10.5}, 12.5, 10.5); ok {
		t.Error("target behind a wall was projected")
	}
}

func TestProjectOffCentre(t *testing.T) {
	r := newRaycaster(boxWorld(20, 20))
	_, left, ok := r.Project(Pose{X: 5.5, Y: 10.5}, 9.5, 9.5)
	if !ok {
		t.Fatal("target not projected")
	}
	_, right, _ := r.Project(Pose{X: 5.5, Y: 10.5}, 9.5, 11.5)
	if left >= 600 || right <= 600 {
		t.Errorf("columns = %d, %d; want either side of 600", left, right)
	}
}

func TestBillboardsSortedFarToNear(t *testing.T) {
	r := newRaycaster(boxWorld(30, 20))
	frame := solid(8, 8, color.RGBA{255, 255, 255, 255})
	r.SetSprites(Sprites{
		Enemy:     solid(96, 96, color.RGBA{200, 0, 0, 255}),
		Body:      []image.Image{frame, frame},
		Trail:     []image.Image{frame},
		Explosion: []image.Image{frame, frame, frame},
	})
	pose := Pose{X: 2.5, Y: 10.5}
	ents := Entities{
		Enemies: []sim.Enemy{
			{Pos: sim.Vec{X: 5.5, Y: 10.5}},
			{Pos: sim.Vec{X: 8.5, Y: 10.2}},
		},
		Projectiles: []sim.Projectile{
			{Pos: sim.Vec{X: 10.5, Y: 10.8}, Dir: sim.Vec{X: 1}, Owner: sim.OwnerEnemy},
		},
		Explosions: []sim.Explosion{
			{Pos: sim.Vec{X: 12.5, Y: 10.5}, Start: 0.9},
			{Pos: sim.Vec{X: 10.5, Y: 10.5}, Start: 0},
		},
		ExplosionDuration: 0.45,
	}

	got := r.Billboards(pose, ents, 1.0)

	wantKinds := []Kind{KindExplosion, KindTrail, KindProjectile, KindEnemy, KindEnemy}
	if len(got) != len(wantKinds) {
		t.Fatalf("got %d billboards, want %d", len(got), len(wantKinds))
	}
	for i, b := range got {
		if b.Kind != wantKinds[i] {
			t.Errorf("billboard %d kind = %v, want %v", i, b.Kind, wantKinds[i])
		}
		if i > 0 && b.Distance > got[i-1].Distance {
			t.Errorf("billboard %d nearer sprite drawn first", i)
		}
	}
	if d := got[1].Distance - got[2].Distance; math.Abs(d-0.2) > 1e-9 {
		t.Errorf("trail sits %.3f behind its body, want 0.2", d)
	}
	if got[2].Width != 42 {
		t.Errorf("projectile size = %v, want clamped to 42", got[2].Width)
	}
}

func TestEnemyBillboardScale(t *testing.T) {
	r := newRaycaster(boxWorld(30, 20))
	r.SetSprites(Sprites{Enemy: solid(96, 96, color.RGBA{200, 0, 0, 255})})
	pose := Pose{X: 2.5, Y: 10.5}

	near := r.Billboards(pose, Entities{Enemies: []sim.Enemy{{Pos: sim.Vec{X: 3.0, Y: 10.5}}}}, 0)
	far := r.Billboards(pose, Entities{Enemies: []sim.Enemy{{Pos: sim.Vec{X: 27.5, Y: 10.5}}}}, 0)

	if near[0].Width != 240 {
		t.Errorf("near width = %v, want 96×2.5", near[0].Width)
	}
	if far[0].Width != 48 {
		t.Errorf("far width = %v, want 96×0.5", far[0].Width)
	}
}

func TestColumnHeightClamped(t *testing.T) {
	r := newRaycaster(boxWorld(10, 10))
	if h := r.ColumnHeight(0); h != 800 {
		t.Errorf("ColumnHeight(0) = %d, want 800", h)
	}
	if h := r.ColumnHeight(1e6); h != 30 {
		t.Errorf("ColumnHeight(far) = %d, want 30", h)
	}
	if a, b := r.ColumnHeight(2), r.ColumnHeight(4); a <= b {
		t.Errorf("nearer wall %d not taller than farther %d", a, b)
	}
}

func TestRenderDrawsSkyAndWalls(t *testing.T) {
	m := boxWorld(20, 20)
	r := New(DefaultConfig(), 80, 60)
	r.Configure(m, nil)
	dst := image.NewRGBA(image.Rect(0, 0, 80, 60))

	r.Render(dst, Pose{X: 10.5, Y: 10.5})

	if got := dst.RGBAAt(0, 0); got != SkyColor {
		t.Errorf("top-left = %v, want sky %v", got, SkyColor)
	}
	mid := dst.RGBAAt(40, 30)
	if mid == SkyColor || mid == FloorColor {
		t.Errorf("centre pixel %v is not a wall", mid)
	}
	if top, bottom := dst.RGBAAt(40, 31), dst.RGBAAt(40, 58); bottom.R > top.R {
		t.Errorf("gradient brightened the bottom: %v vs %v", bottom, top)
	}
}

func TestRenderTexturedFloor(t *testing.T) {
	m := boxWorld(20, 20)
	r := New(DefaultConfig(), 80, 60)
	r.Configure(m, solid(4, 4, color.RGBA{200, 100, 50, 255}))
	dst := image.NewRGBA(image.Rect(0, 0, 80, 60))

	r.Render(dst, Pose{X: 10.5, Y: 10.5})

	if got := dst.RGBAAt(0, 0); got == SkyColor {
		t.Error("ceiling not drawn from the tile palette")
	}
	if got := dst.RGBAAt(0, 59); got.R <= got.B {
		t.Errorf("floor %v does not carry the tile colour", got)
	}
}

func TestTintedKeepsTransparency(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(1, 0, color.RGBA{100, 100, 100, 255})

	out := tinted(src, playerTint, tintAlpha)

	if got := out.RGBAAt(0, 0); got.A != 0 || got.R != 0 {
		t.Errorf("transparent pixel became %v", got)
	}
	if got := out.RGBAAt(1, 0); got.R < 159 || got.R > 160 || got.B != 121 || got.A != 255 {
		t.Errorf("tinted pixel = %v, want about (160, 132, 121)", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	for _, a := range []float64{0, 1, -1, 3 * math.Pi, -3 * math.Pi, 10, -math.Pi - 1e-17} {
		n := normalizeAngle(a)
		if n < -math.Pi || n >= math.Pi {
			t.Errorf("normalizeAngle(%v) = %v, outside [-π, π)", a, n)
		}
		if d := math.Mod(math.Abs(n-a), 2*math.Pi); d > 1e-9 && 2*math.Pi-d > 1e-9 {
			t.Errorf("normalizeAngle(%v) = %v, not the same direction", a, n)
		}
	}
}
