// Package lighting holds the shading rules of the first-person view:
// distance falloff for walls and floor, the ceiling tint and the ambient
// darkening gradient.
package lighting

import (
	"image/color"
	"math"
)

// Model holds the lighting constants of a scene.
type Model struct {
	Ambient     float64 // lowest light a wall receives
	Falloff     float64 // k in 1/(1+d·k)
	SideFactor  float64 // extra darkening of y-side walls
	FloorMin    float64
	FloorMax    float64
	GradientMax float64 // gradient strength at the bottom row, 0-255
}

// DefaultModel returns the standard lighting.
func DefaultModel() Model {
	return Model{
		Ambient:     0.18,
		Falloff:     0.05,
		SideFactor:  0.6,
		FloorMin:    0.2,
		FloorMax:    1.0,
		GradientMax: 120,
	}
}

// Wall returns the light factor for a wall column at dist. side is the
// axis the ray crossed last; side 1 walls are darker to fake a second light
// direction.
func (m Model) Wall(dist float64, side int) float64 {
	light := clamp(1/(1+dist*m.Falloff), m.Ambient, 1)
	if side == 1 {
		light *= m.SideFactor
	}
	return light
}

// Floor returns the light factor for a floor row rowDist units away.
func (m Model) Floor(rowDist float64) float64 {
	return clamp(1.2/(rowDist*0.1+0.4), m.FloorMin, m.FloorMax)
}

// Gradient returns how much to subtract from each channel on row y of a
// screen height rows tall. The overlay is black at alpha 120·y/height,
// subtracted with the alpha weighting applied.
func (m Model) Gradient(y, height int) uint8 {
	if height <= 0 {
		return 0
	}
	strength := math.Floor(m.GradientMax * float64(y) / float64(height))
	return uint8(clamp(strength*0.5, 0, 255))
}

// Scale multiplies the colour channels by f, truncating like integer
// pixel math does.
func Scale(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: channel(float64(c.R) * f),
		G: channel(float64(c.G) * f),
		B: channel(float64(c.B) * f),
		A: c.A,
	}
}

// Ceiling derives the ceiling colour mirrored from a shaded floor colour.
func Ceiling(floor color.RGBA) color.RGBA {
	return color.RGBA{
		R: channel(float64(floor.R)*0.6 + 30),
		G: channel(float64(floor.G)*0.7 + 40),
		B: channel(float64(floor.B)*0.9 + 50),
		A: 255,
	}
}

// Darken subtracts amount from the colour channels of RGBA pixel data,
// saturating at zero and leaving alpha alone.
func Darken(pix []byte, amount uint8) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = sub(pix[i], amount)
		pix[i+1] = sub(pix[i+1], amount)
		pix[i+2] = sub(pix[i+2], amount)
	}
}

// Add brightens the premultiplied colour c by tint, weighted by alpha/255
// and by c's own opacity. Channels saturate at c.A.
func Add(c, tint color.RGBA, alpha uint8) color.RGBA {
	k := float64(alpha) / 255 * float64(c.A) / 255
	limit := float64(c.A)
	return color.RGBA{
		R: uint8(math.Min(float64(c.R)+float64(tint.R)*k, limit)),
		G: uint8(math.Min(float64(c.G)+float64(tint.G)*k, limit)),
		B: uint8(math.Min(float64(c.B)+float64(tint.B)*k, limit)),
		A: c.A,
	}
}

func sub(v, d uint8) uint8 {
	if d >= v {
		return 0
	}
	return v - d
}

func channel(v float64) uint8 {
	return uint8(clamp(v, 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
