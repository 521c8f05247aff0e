package raycast

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"chosenoffset.com/raymaze/internal/render/raster"
	"chosenoffset.com/raymaze/internal/sim"
	"chosenoffset.com/raymaze/internal/world"
)

const (
	facingLineLength  = 24.0
	minimapMinHalfPix = 8
)

var (
	markerPlayer     = color.RGBA{250, 200, 80, 255}
	markerShotPlayer = color.RGBA{255, 120, 80, 255}
	markerShotEnemy  = color.RGBA{80, 180, 255, 255}
	markerExplosion  = color.RGBA{255, 200, 140, 255}
	markerEnemy      = color.RGBA{220, 70, 70, 255}
	minimapShade     = color.RGBA{0, 0, 0, 130}
	minimapBorder    = color.NRGBA{255, 255, 255, 40}
)

// Minimap is a pre-rendered top-down texture of the walls, cropped around
// the player and scaled to a fixed square each frame.
type Minimap struct {
	base    *image.RGBA
	scale   int
	size    int
	overlay *image.RGBA
	canvas  *image.RGBA
}

// NewMinimap renders the wall texture for g at scale pixels per cell and
// prepares a size×size output.
func NewMinimap(g *world.Grid, scale, size int) *Minimap {
	scale = max(1, scale)
	base := image.NewRGBA(image.Rect(0, 0, g.Width*scale, g.Height*scale))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsFloor(x, y) {
				continue
			}
			c := minimapWall
			if (x+y)%4 == 0 {
				c = minimapAccent
			}
			fill(base, image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale), c)
		}
	}

	overlay := image.NewRGBA(image.Rect(0, 0, size, size))
	raster.FillRect(overlay, overlay.Bounds(), minimapShade)
	raster.StrokeRect(overlay, overlay.Bounds(), 2, minimapBorder)

	return &Minimap{
		base:    base,
		scale:   scale,
		size:    size,
		overlay: overlay,
		canvas:  image.NewRGBA(image.Rect(0, 0, size, size)),
	}
}

// Base returns the full-resolution wall texture.
func (m *Minimap) Base() *image.RGBA {
	return m.base
}

// View returns the texture window shown for a player at (px, py) with zoom
// cells across. The window is square, at least 16 pixels wide and shifted
// to stay inside the texture.
func (m *Minimap) View(px, py, zoom float64) image.Rectangle {
	cx := int(px * float64(m.scale))
	cy := int(py * float64(m.scale))
	half := max(minimapMinHalfPix, int(zoom*float64(m.scale))/2)

	bounds := m.base.Bounds()
	w := min(2*half, bounds.Dx())
	h := min(2*half, bounds.Dy())
	x := min(max(cx-half, bounds.Min.X), bounds.Max.X-w)
	y := min(max(cy-half, bounds.Min.Y), bounds.Max.Y-h)
	return image.Rect(x, y, x+w, y+h)
}

// ToScreen maps a world position into minimap pixels for the given view,
// pinning positions outside the view to its edge.
func (m *Minimap) ToScreen(view image.Rectangle, wx, wy float64) (int, int) {
	sx := (wx*float64(m.scale) - float64(view.Min.X)) / float64(view.Dx())
	sy := (wy*float64(m.scale) - float64(view.Min.Y)) / float64(view.Dy())
	return int(clamp(sx, 0, 1) * float64(m.size)), int(clamp(sy, 0, 1) * float64(m.size))
}

// Draw composes the minimap for pose and ents and blits it onto dst with
// its top-left corner at at.
func (m *Minimap) Draw(dst *image.RGBA, at image.Point, pose Pose, ents Entities, zoom float64) {
	view := m.View(pose.X, pose.Y, zoom)
	c := m.canvas
	clear(c.Pix)
	draw.NearestNeighbor.Scale(c, c.Bounds(), m.base, view, draw.Src, nil)

	px, py := m.ToScreen(view, pose.X, pose.Y)
	raster.FillCircle(c, float32(px), float32(py), 4, markerPlayer)
	fx := px + int(math.Cos(pose.Angle)*facingLineLength)
	fy := py + int(math.Sin(pose.Angle)*facingLineLength)
	raster.StrokeLine(c, float32(px), float32(py), float32(fx), float32(fy), 2, markerPlayer)

	for _, p := range ents.Projectiles {
		clr := markerShotEnemy
		if p.Owner == sim.OwnerPlayer {
			clr = markerShotPlayer
		}
		x, y := m.ToScreen(view, p.Pos.X, p.Pos.Y)
		raster.FillCircle(c, float32(x), float32(y), 3, clr)
	}
	for _, e := range ents.Explosions {
		x, y := m.ToScreen(view, e.Pos.X, e.Pos.Y)
		raster.StrokeCircle(c, float32(x), float32(y), 6, 1, markerExplosion)
	}
	for _, e := range ents.Enemies {
		x, y := m.ToScreen(view, e.Pos.X, e.Pos.Y)
		raster.FillCircle(c, float32(x), float32(y), 5, markerEnemy)
	}

	draw.Draw(c, c.Bounds(), m.overlay, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(c.Bounds().Size())}, c, image.Point{}, draw.Over)
}

// Offset returns where the minimap sits on a width×height screen: the
// bottom-right corner, margin pixels in.
func (m *Minimap) Offset(width, height, margin int) image.Point {
	return image.Pt(width-m.size-margin, height-m.size-margin)
}
