// Package raycast renders the first-person view of a grid world: a
// perspective floor and ceiling, DDA-cast wall columns, distance-sorted
// billboards and a zoomable minimap.
package raycast

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raymaze/internal/logger"
	"chosenoffset.com/raymaze/internal/render/lighting"
	"chosenoffset.com/raymaze/internal/world"
)

// ErrNotConfigured is the panic value of any operation on a Raycaster that
// has no world.
var ErrNotConfigured = errors.New("raycast: raycaster not configured with a world")

const (
	// axisEpsilon replaces near-zero ray direction components.
	axisEpsilon = 1e-6
	// minDepth keeps projected distances away from zero.
	minDepth = 1e-4
	// occlusionTolerance lets a billboard sit slightly behind the wall
	// face it stands against.
	occlusionTolerance = 0.05
)

// Pose is the camera position and heading.
type Pose struct {
	X, Y  float64
	Angle float64
}

// Hit is the result of casting one ray.
type Hit struct {
	Distance float64
	Side     int // 0 when an x grid line was crossed last, 1 for y
	MapX     int
	MapY     int
}

// Raycaster is a renderer context for one screen size. Configure must be
// called before anything is cast or drawn.
type Raycaster struct {
	cfg   Config
	light lighting.Model
	log   *logrus.Entry

	width, height int
	halfW, halfH  int
	halfFOV       float64
	numRays       int
	deltaAngle    float64
	projPlane     float64
	columnWidth   int
	gradient      []uint8

	world    *world.Model
	maxDepth float64
	maxSteps int

	palette        []color.RGBA
	tileW, tileH   int
	sprites        Sprites
	tintedBodies   [2][]image.Image
	enemyBaseWidth int
}

// New returns an unconfigured raycaster for a width×height screen.
func New(cfg Config, width, height int) *Raycaster {
	r := &Raycaster{
		cfg:    cfg,
		light:  lighting.DefaultModel(),
		log:    logger.WithComponent("raycast"),
		width:  width,
		height: height,
		halfW:  width / 2,
		halfH:  height / 2,
	}
	fov := cfg.FOVDegrees * math.Pi / 180
	r.halfFOV = fov / 2
	r.numRays = max(1, width/2)
	r.deltaAngle = fov / float64(r.numRays)
	r.projPlane = float64(r.halfW) / math.Tan(r.halfFOV)
	r.columnWidth = max(1, width/r.numRays)

	r.gradient = make([]uint8, height)
	for y := range r.gradient {
		r.gradient[y] = r.light.Gradient(y, height)
	}
	return r
}

// Configure attaches the world and an optional floor tile texture. A nil
// tile leaves the floor and ceiling flat.
func (r *Raycaster) Configure(m *world.Model, tile image.Image) {
	r.world = m
	w, h := m.Size()
	r.maxDepth = math.Hypot(float64(w), float64(h))
	r.maxSteps = int(r.maxDepth)
	r.setTile(tile)

	r.log.WithFields(logrus.Fields{
		"width":     w,
		"height":    h,
		"max_depth": r.maxDepth,
		"rays":      r.numRays,
		"textured":  r.palette != nil,
	}).Debug("raycaster configured")
}

// NumRays returns how many wall columns are cast per frame.
func (r *Raycaster) NumRays() int {
	return r.numRays
}

// MaxDepth returns the distance reported when a ray hits nothing.
func (r *Raycaster) MaxDepth() float64 {
	r.mustBeConfigured()
	return r.maxDepth
}

func (r *Raycaster) mustBeConfigured() {
	if r.world == nil {
		panic(ErrNotConfigured)
	}
}

// setTile samples tile into the row-major floor palette.
func (r *Raycaster) setTile(tile image.Image) {
	r.palette, r.tileW, r.tileH = nil, 0, 0
	if tile == nil {
		return
	}
	b := tile.Bounds()
	if b.Empty() {
		return
	}
	r.tileW, r.tileH = b.Dx(), b.Dy()
	r.palette = make([]color.RGBA, 0, r.tileW*r.tileH)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(tile.At(x, y)).(color.RGBA)
			c.A = 255
			r.palette = append(r.palette, c)
		}
	}
}

// sampleTile returns the floor colour under world position (wx, wy),
// repeating the tile once per cell.
func (r *Raycaster) sampleTile(wx, wy float64) color.RGBA {
	if r.palette == nil {
		return FallbackTile
	}
	fx := wx - math.Floor(wx)
	fy := wy - math.Floor(wy)
	tx := int(fx*float64(r.tileW)) % r.tileW
	ty := int(fy*float64(r.tileH)) % r.tileH
	return r.palette[ty*r.tileW+tx]
}

// CastRay walks the grid from (px, py) along angle with a DDA and returns
// the first wall struck. Leaving the map or exhausting the step budget
// yields a hit at MaxDepth with side 0 and the last visited cell.
func (r *Raycaster) CastRay(px, py, angle float64) Hit {
	r.mustBeConfigured()
	sin, cos := math.Sincos(angle)
	if math.Abs(sin) <= axisEpsilon {
		sin = axisEpsilon
	}
	if math.Abs(cos) <= axisEpsilon {
		cos = axisEpsilon
	}

	mapX, mapY := int(px), int(py)
	deltaX := math.Abs(1 / cos)
	deltaY := math.Abs(1 / sin)

	var stepX, stepY int
	var sideX, sideY float64
	if cos > 0 {
		stepX = 1
		sideX = (float64(mapX) + 1 - px) * deltaX
	} else {
		stepX = -1
		sideX = (px - float64(mapX)) * deltaX
	}
	if sin > 0 {
		stepY = 1
		sideY = (float64(mapY) + 1 - py) * deltaY
	} else {
		stepY = -1
		sideY = (py - float64(mapY)) * deltaY
	}

	w, h := r.world.Size()
	for i := 0; i < r.maxSteps; i++ {
		var dist float64
		var side int
		if sideX < sideY {
			mapX += stepX
			dist = sideX
			sideX += deltaX
		} else {
			mapY += stepY
			dist = sideY
			sideY += deltaY
			side = 1
		}
		if mapX < 0 || mapX >= w || mapY < 0 || mapY >= h {
			break
		}
		if r.world.IsWallCell(mapX, mapY) {
			return Hit{Distance: dist, Side: side, MapX: mapX, MapY: mapY}
		}
	}
	return Hit{Distance: r.maxDepth, MapX: mapX, MapY: mapY}
}

// Project places a billboard at (tx, ty) on screen. It returns the distance
// to the target and the screen column of its centre, or false when the
// target is outside the field of view, on top of the camera or hidden
// behind a wall. Occlusion compares against the raw ray distance.
func (r *Raycaster) Project(pose Pose, tx, ty float64) (dist float64, screenX int, ok bool) {
	r.mustBeConfigured()
	dx, dy := tx-pose.X, ty-pose.Y
	diff := normalizeAngle(math.Atan2(dy, dx) - pose.Angle)
	if math.Abs(diff) > r.halfFOV {
		return 0, 0, false
	}
	dist = math.Hypot(dx, dy)
	if dist <= minDepth {
		return 0, 0, false
	}
	if wall := r.CastRay(pose.X, pose.Y, pose.Angle+diff).Distance; wall < dist-occlusionTolerance {
		return 0, 0, false
	}
	return dist, int(float64(r.halfW) + math.Tan(diff)*r.projPlane), true
}

// normalizeAngle maps a into [-π, π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a - math.Pi
}
