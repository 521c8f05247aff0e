package raster

import (
	"image"
	"image/color"
	"testing"
)

var white = color.RGBA{255, 255, 255, 255}

func TestFillCircleCoversCentre(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	FillCircle(img, 20, 20, 6, white)

	if got := img.RGBAAt(20, 20); got.A < 250 {
		t.Errorf("centre = %v, want white", got)
	}
	if got := img.RGBAAt(30, 20); got.A != 0 {
		t.Errorf("outside pixel = %v, want untouched", got)
	}
}

func TestStrokeCircleLeavesHole(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	StrokeCircle(img, 20, 20, 8, 1, white)

	if got := img.RGBAAt(20, 20); got.A != 0 {
		t.Errorf("centre = %v, want transparent", got)
	}
	if got := img.RGBAAt(27, 20); got.A == 0 {
		t.Error("ring pixel not drawn")
	}
}

func TestShapesClipAtEdges(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	FillCircle(img, 0, 0, 5, white)
	FillCircle(img, 10, 10, 5, white)
	StrokeLine(img, -5, 5, 15, 5, 2, white)

	if got := img.RGBAAt(1, 1); got.A < 250 {
		t.Errorf("corner = %v, want white", got)
	}
	if got := img.RGBAAt(5, 5); got.A == 0 {
		t.Error("line not drawn across the frame")
	}
}

func TestStrokeRect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	StrokeRect(img, image.Rect(2, 2, 18, 18), 2, white)

	if got := img.RGBAAt(2, 10); got != white {
		t.Errorf("left edge = %v, want white", got)
	}
	if got := img.RGBAAt(10, 10); got.A != 0 {
		t.Errorf("interior = %v, want transparent", got)
	}
}

func TestMeasureAndDrawText(t *testing.T) {
	w, h := MeasureText("HP 100")
	if w != 6*7 || h <= 0 {
		t.Errorf("MeasureText = %d×%d, want 42 wide", w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, 60, 20))
	DrawText(img, "HP", 2, 14, white)
	drawn := false
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			drawn = true
			break
		}
	}
	if !drawn {
		t.Error("DrawText left the image empty")
	}
}
