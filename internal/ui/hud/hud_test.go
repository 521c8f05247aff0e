package hud

import (
	"image"
	"image/color"
	"testing"
)

func TestFillWidth(t *testing.T) {
	tests := []struct {
		name                string
		current, max, inner int
		want                int
	}{
		{"full", 100, 100, 236, 236},
		{"half", 50, 100, 236, 118},
		{"empty", 0, 100, 236, 0},
		{"negative", -5, 100, 236, 0},
		{"overheal", 150, 100, 236, 236},
		{"no max", 10, 0, 236, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FillWidth(tt.current, tt.max, tt.inner); got != tt.want {
				t.Errorf("FillWidth(%d, %d, %d) = %d, want %d", tt.current, tt.max, tt.inner, got, tt.want)
			}
		})
	}
}

func TestFillColorThresholds(t *testing.T) {
	green := FillColor(100, 100)
	yellow := FillColor(50, 100)
	red := FillColor(20, 100)
	if green == yellow || yellow == red || green == red {
		t.Fatalf("expected three distinct colours, got %v %v %v", green, yellow, red)
	}
}

func TestDrawHealthBar(t *testing.T) {
	const w, h = 400, 200
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	hud := New(w, h)
	hud.Draw(dst, State{Health: 50, MaxHealth: 100})

	bar := hud.HealthBarRect()
	if !bar.In(dst.Bounds()) {
		t.Fatalf("bar %v outside screen", bar)
	}
	inner := bar.Inset(2)
	// Left of the fill midpoint is coloured, right of it shows the background.
	filled := dst.RGBAAt(inner.Min.X+5, inner.Min.Y+2)
	if want := FillColor(50, 100); filled != want {
		t.Errorf("filled pixel = %v, want %v", filled, want)
	}
	empty := dst.RGBAAt(inner.Max.X-5, inner.Min.Y+2)
	if empty != barBackground {
		t.Errorf("unfilled pixel = %v, want %v", empty, barBackground)
	}
	if got := dst.RGBAAt(bar.Min.X, bar.Min.Y); got != barBorder {
		t.Errorf("border pixel = %v, want %v", got, barBorder)
	}
}

func TestCrosshairToggle(t *testing.T) {
	const w, h = 200, 100
	centre := func(on bool) color.RGBA {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		New(w, h).Draw(dst, State{Health: 1, MaxHealth: 1, Crosshair: on})
		return dst.RGBAAt(w/2+10, h/2)
	}
	if got := centre(false); got.A != 0 {
		t.Errorf("crosshair drawn while hidden: %v", got)
	}
	if got := centre(true); got.A == 0 {
		t.Error("crosshair arm missing")
	}
}
