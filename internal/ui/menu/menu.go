// Package menu implements the in-game settings overlay: a hamburger button
// that toggles a panel holding the mouse sensitivity slider.
package menu

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/raymaze/internal/render/raster"
)

// Config holds the sensitivity slider range.
type Config struct {
	SensitivityMin float64 `yaml:"sensitivity_min"`
	SensitivityMax float64 `yaml:"sensitivity_max"`
	DefaultSlider  float64 `yaml:"default_slider"` // 0..1
}

// DefaultConfig returns the standard slider range.
func DefaultConfig() Config {
	return Config{SensitivityMin: 0.0015, SensitivityMax: 0.008, DefaultSlider: 0.35}
}

// Widget geometry.
const (
	panelWidth     = 440
	panelHeight    = 320
	sliderInset    = 60
	sliderOffsetY  = 140
	sliderHeight   = 6
	handleSize     = 16
	hamburgerLineY = 9
)

var hamburger = image.Rect(20, 20, 20+46, 20+34)

var (
	buttonFill   = color.RGBA{40, 40, 50, 255}
	buttonIdle   = color.RGBA{200, 200, 200, 255}
	buttonHover  = color.RGBA{230, 230, 230, 255}
	buttonActive = color.RGBA{140, 220, 255, 255}
	panelFill    = color.RGBA{20, 20, 26, 240}
	panelBorder  = color.RGBA{80, 80, 110, 255}
	titleColor   = color.RGBA{230, 230, 240, 255}
	labelColor   = color.RGBA{200, 200, 210, 255}
	hintColor    = color.RGBA{140, 140, 155, 255}
	sliderTrack  = color.RGBA{80, 80, 90, 255}
	sliderKnob   = color.RGBA{180, 220, 255, 255}
)

// Pointer is the mouse state for one tick.
type Pointer struct {
	X, Y        int
	Pressed     bool
	JustPressed bool
}

// Menu holds the overlay state.
type Menu struct {
	cfg      Config
	width    int
	height   int
	open     bool
	dragging bool
	value    float64
}

// New creates a closed menu for a width×height screen.
func New(cfg Config, width, height int) *Menu {
	return &Menu{cfg: cfg, width: width, height: height, value: clamp01(cfg.DefaultSlider)}
}

// SetScreenSize updates the screen dimensions the panel is centred in.
func (m *Menu) SetScreenSize(width, height int) {
	m.width = width
	m.height = height
}

// Open reports whether the panel is showing.
func (m *Menu) Open() bool {
	return m.open
}

// Toggle opens or closes the panel and ends any slider drag.
func (m *Menu) Toggle() {
	m.open = !m.open
	m.dragging = false
}

// Dragging reports whether the slider handle is held.
func (m *Menu) Dragging() bool {
	return m.dragging
}

// Value returns the slider position in [0, 1].
func (m *Menu) Value() float64 {
	return m.value
}

// Sensitivity maps the slider position onto the configured range.
func (m *Menu) Sensitivity() float64 {
	return m.cfg.SensitivityMin + m.value*(m.cfg.SensitivityMax-m.cfg.SensitivityMin)
}

// HamburgerRect is the toggle button.
func (m *Menu) HamburgerRect() image.Rectangle {
	return hamburger
}

// PanelRect is the settings panel, centred on screen.
func (m *Menu) PanelRect() image.Rectangle {
	x := m.width/2 - panelWidth/2
	y := m.height/2 - 180
	return image.Rect(x, y, x+panelWidth, y+panelHeight)
}

// SliderRects returns the slider track and handle for the current value.
func (m *Menu) SliderRects() (bar, handle image.Rectangle) {
	p := m.PanelRect()
	bar = image.Rect(p.Min.X+sliderInset, p.Min.Y+sliderOffsetY, p.Max.X-sliderInset, p.Min.Y+sliderOffsetY+sliderHeight)
	hx := bar.Min.X + int(m.value*float64(bar.Dx()))
	handle = image.Rect(hx-handleSize/2, bar.Min.Y-6, hx+handleSize/2, bar.Min.Y-6+handleSize)
	return bar, handle
}

// Update applies one tick of pointer input and reports whether it changed
// anything: a toggle, a drag start or a slider move.
func (m *Menu) Update(p Pointer) bool {
	pt := image.Pt(p.X, p.Y)
	if !p.Pressed {
		m.dragging = false
	}
	if p.JustPressed {
		bar, handle := m.SliderRects()
		switch {
		case pt.In(hamburger):
			m.Toggle()
			return true
		case m.open && pt.In(handle):
			m.dragging = true
			return true
		case m.open && pt.In(bar):
			m.dragging = true
			m.setFromX(p.X)
			return true
		}
		return false
	}
	if m.dragging && m.open {
		m.setFromX(p.X)
		return true
	}
	return false
}

func (m *Menu) setFromX(x int) {
	bar, _ := m.SliderRects()
	m.value = clamp01(float64(x-bar.Min.X) / float64(bar.Dx()))
}

// Draw renders the button and, when open, the panel. zoom is shown as a
// read-only line under the slider.
func (m *Menu) Draw(dst *image.RGBA, cursor image.Point, zoom float64) {
	m.drawHamburger(dst, cursor.In(hamburger))
	if !m.open {
		return
	}

	p := m.PanelRect()
	raster.FillRect(dst, p, panelFill)
	raster.StrokeRect(dst, p, 2, panelBorder)

	ascent := raster.Face.Metrics().Ascent.Ceil()
	title := "Settings"
	tw, _ := raster.MeasureText(title)
	raster.DrawText(dst, title, p.Min.X+(p.Dx()-tw)/2, p.Min.Y+20+ascent, titleColor)

	bar, handle := m.SliderRects()
	raster.DrawText(dst, "Mouse sensitivity", bar.Min.X, bar.Min.Y-30+ascent, labelColor)
	raster.FillRect(dst, bar, sliderTrack)
	c := handle.Min.Add(handle.Size().Div(2))
	raster.FillCircle(dst, float32(c.X), float32(c.Y), handleSize/2, sliderKnob)
	raster.DrawText(dst, fmt.Sprintf("%.4f", m.Sensitivity()), bar.Min.X, bar.Min.Y+20+ascent, labelColor)

	raster.DrawText(dst, fmt.Sprintf("Minimap zoom: %.0f tiles", zoom), bar.Min.X, bar.Min.Y+60+ascent, labelColor)
	raster.DrawText(dst, "Ctrl+= / Ctrl+- to zoom, Esc to close", bar.Min.X, p.Max.Y-30, hintColor)
}

func (m *Menu) drawHamburger(dst *image.RGBA, hovered bool) {
	line := buttonIdle
	if hovered {
		line = buttonHover
	}
	if m.open {
		line = buttonActive
	}
	r := hamburger
	raster.FillRect(dst, r, buttonFill)
	for i := 0; i < 3; i++ {
		y := float32(r.Min.Y + 8 + i*hamburgerLineY)
		raster.StrokeLine(dst, float32(r.Min.X+8), y, float32(r.Max.X-8), y, 3, line)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
