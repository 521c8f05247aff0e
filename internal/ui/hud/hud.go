// Package hud draws the in-game overlay: health bar, crosshair and FPS
// readout.
package hud

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/raymaze/internal/render/raster"
)

const (
	barWidth    = 240
	barHeight   = 22
	margin      = 20
	crossArm    = 15
	fpsInsetX   = 120
	fpsBaseline = 32
)

var (
	barBackground = color.RGBA{50, 50, 60, 255}
	barBorder     = color.RGBA{180, 50, 60, 255}
	crosshair     = color.RGBA{220, 220, 220, 255}
	textColor     = color.RGBA{235, 235, 235, 255}
	textShadow    = color.RGBA{0, 0, 0, 160}
)

// State is what the overlay shows for one frame.
type State struct {
	Health    int
	MaxHealth int
	FPS       int
	Crosshair bool // hidden while the menu is open
}

// HUD draws the overlay for a screen of a given size.
type HUD struct {
	screenWidth  int
	screenHeight int
}

// New creates a HUD for a width×height screen.
func New(width, height int) *HUD {
	return &HUD{screenWidth: width, screenHeight: height}
}

// SetScreenSize updates the screen dimensions.
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Draw renders every HUD element.
func (h *HUD) Draw(dst *image.RGBA, s State) {
	h.drawHealthBar(dst, s.Health, s.MaxHealth)
	h.drawFPS(dst, s.FPS)
	if s.Crosshair {
		h.drawCrosshair(dst)
	}
}

// HealthBarRect is the outer rectangle of the health bar. It sits in the
// bottom-left corner, clear of the menu button and the minimap.
func (h *HUD) HealthBarRect() image.Rectangle {
	y := h.screenHeight - margin - barHeight
	return image.Rect(margin, y, margin+barWidth, y+barHeight)
}

// FillWidth returns how many pixels of the inner bar are filled.
func FillWidth(current, maximum, inner int) int {
	if maximum <= 0 || current <= 0 {
		return 0
	}
	ratio := float64(current) / float64(maximum)
	if ratio > 1 {
		ratio = 1
	}
	return int(float64(inner) * ratio)
}

// FillColor picks the bar colour by remaining health.
func FillColor(current, maximum int) color.RGBA {
	if maximum <= 0 {
		return color.RGBA{200, 50, 50, 255}
	}
	switch pct := float64(current) / float64(maximum); {
	case pct > 0.6:
		return color.RGBA{90, 200, 90, 255}
	case pct > 0.3:
		return color.RGBA{200, 180, 50, 255}
	default:
		return color.RGBA{200, 50, 50, 255}
	}
}

func (h *HUD) drawHealthBar(dst *image.RGBA, current, maximum int) {
	outer := h.HealthBarRect()
	raster.FillRect(dst, outer, barBackground)

	inner := outer.Inset(2)
	if w := FillWidth(current, maximum, inner.Dx()); w > 0 {
		fill := image.Rect(inner.Min.X, inner.Min.Y, inner.Min.X+w, inner.Max.Y)
		raster.FillRect(dst, fill, FillColor(current, maximum))
	}
	raster.StrokeRect(dst, outer, 2, barBorder)

	label := fmt.Sprintf("%d/%d", current, maximum)
	tw, _ := raster.MeasureText(label)
	drawShadowed(dst, label, outer.Min.X+(outer.Dx()-tw)/2, outer.Max.Y-6)
}

func (h *HUD) drawCrosshair(dst *image.RGBA) {
	cx, cy := float32(h.screenWidth/2), float32(h.screenHeight/2)
	raster.StrokeCircle(dst, cx, cy, 3, 1, crosshair)
	raster.StrokeLine(dst, cx-crossArm, cy, cx+crossArm, cy, 1, crosshair)
	raster.StrokeLine(dst, cx, cy-crossArm, cx, cy+crossArm, 1, crosshair)
}

func (h *HUD) drawFPS(dst *image.RGBA, fps int) {
	drawShadowed(dst, fmt.Sprintf("FPS: %d", fps), h.screenWidth-fpsInsetX, fpsBaseline)
}

// drawShadowed draws text with a shadow for readability.
func drawShadowed(dst *image.RGBA, text string, x, y int) {
	raster.DrawText(dst, text, x+1, y+1, textShadow)
	raster.DrawText(dst, text, x, y, textColor)
}
