// Package raster draws shapes and text onto a software framebuffer. It is
// the CPU counterpart of the vector and text helpers a GPU backend offers.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const circleSegments = 32

// Face is the font used for all text.
var Face font.Face = basicfont.Face7x13

// FillRect fills r with clr, blending by clr's alpha.
func FillRect(dst draw.Image, r image.Rectangle, clr color.Color) {
	draw.Draw(dst, r, image.NewUniform(clr), image.Point{}, draw.Over)
}

// StrokeRect draws the outline of r, width pixels thick, inside r.
func StrokeRect(dst draw.Image, r image.Rectangle, width int, clr color.Color) {
	if width <= 0 || r.Empty() {
		return
	}
	width = min(width, r.Dx()/2+1, r.Dy()/2+1)
	FillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), clr)
	FillRect(dst, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), clr)
	FillRect(dst, image.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width), clr)
	FillRect(dst, image.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width), clr)
}

// FillCircle draws a filled, anti-aliased circle centred on (x, y).
func FillCircle(dst draw.Image, x, y, radius float32, clr color.Color) {
	if radius <= 0 {
		return
	}
	z, origin := newRasterizer(x, y, radius+1)
	circlePath(z, x-origin.X, y-origin.Y, radius, false)
	paint(dst, z, origin, clr)
}

// StrokeCircle draws a ring of the given stroke width whose outer edge is
// radius from (x, y).
func StrokeCircle(dst draw.Image, x, y, radius, strokeWidth float32, clr color.Color) {
	if radius <= 0 || strokeWidth <= 0 {
		return
	}
	z, origin := newRasterizer(x, y, radius+1)
	circlePath(z, x-origin.X, y-origin.Y, radius, false)
	if inner := radius - strokeWidth; inner > 0 {
		circlePath(z, x-origin.X, y-origin.Y, inner, true)
	}
	paint(dst, z, origin, clr)
}

// StrokeLine draws a straight segment of the given width.
func StrokeLine(dst draw.Image, x0, y0, x1, y1, width float32, clr color.Color) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 || width <= 0 {
		return
	}
	// Unit normal scaled to half the width.
	nx, ny := -dy/length*width/2, dx/length*width/2

	minX := min(x0, x1) - width
	minY := min(y0, y1) - width
	w := int(math.Ceil(float64(max(x0, x1)+width-minX))) + 1
	h := int(math.Ceil(float64(max(y0, y1)+width-minY))) + 1
	origin := point{float32(math.Floor(float64(minX))), float32(math.Floor(float64(minY)))}

	z := vector.NewRasterizer(w, h)
	z.MoveTo(x0+nx-origin.X, y0+ny-origin.Y)
	z.LineTo(x1+nx-origin.X, y1+ny-origin.Y)
	z.LineTo(x1-nx-origin.X, y1-ny-origin.Y)
	z.LineTo(x0-nx-origin.X, y0-ny-origin.Y)
	z.ClosePath()
	paint(dst, z, origin, clr)
}

// DrawText draws str with its baseline at y and its left edge at x.
func DrawText(dst draw.Image, str string, x, y int, clr color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(clr),
		Face: Face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(str)
}

// MeasureText returns the advance width and line height of str.
func MeasureText(str string) (width, height int) {
	m := Face.Metrics()
	return font.MeasureString(Face, str).Ceil(), (m.Ascent + m.Descent).Ceil()
}

type point struct{ X, Y float32 }

// newRasterizer returns a rasterizer covering the square of half-size
// extent around (x, y), and the top-left corner of that square.
func newRasterizer(x, y, extent float32) (*vector.Rasterizer, point) {
	origin := point{float32(math.Floor(float64(x - extent))), float32(math.Floor(float64(y - extent)))}
	size := int(math.Ceil(float64(2*extent))) + 2
	return vector.NewRasterizer(size, size), origin
}

// circlePath appends a closed polygon approximating a circle. Reversed
// circles wind the other way and cut holes.
func circlePath(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	for i := 0; i <= circleSegments; i++ {
		t := 2 * math.Pi * float64(i) / circleSegments
		if reverse {
			t = -t
		}
		px := cx + r*float32(math.Cos(t))
		py := cy + r*float32(math.Sin(t))
		if i == 0 {
			z.MoveTo(px, py)
		} else {
			z.LineTo(px, py)
		}
	}
	z.ClosePath()
}

// paint fills the rasterized coverage with clr. Coverage goes through an
// alpha mask so DrawMask can clip shapes that cross the frame edge.
func paint(dst draw.Image, z *vector.Rasterizer, origin point, clr color.Color) {
	mask := image.NewAlpha(z.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	at := image.Pt(int(origin.X), int(origin.Y))
	r := image.Rectangle{Min: at, Max: at.Add(z.Size())}
	draw.DrawMask(dst, r, image.NewUniform(clr), image.Point{}, mask, image.Point{}, draw.Over)
}
