package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"chosenoffset.com/raymaze/internal/render/raster"
)

// Palette holds the placeholder colours.
var Palette = struct {
	Fire      color.RGBA
	FireCore  color.RGBA
	Enemy     color.RGBA
	EnemyEye  color.RGBA
	Tile      color.RGBA
	TileSeam  color.RGBA
	Ember     color.RGBA
	EmberFade color.RGBA
}{
	Fire:      color.RGBA{255, 100, 100, 255},
	FireCore:  color.RGBA{255, 220, 160, 255},
	Enemy:     color.RGBA{220, 60, 60, 255},
	EnemyEye:  color.RGBA{255, 240, 200, 255},
	Tile:      color.RGBA{60, 60, 70, 255},
	TileSeam:  color.RGBA{90, 90, 110, 255},
	Ember:     color.RGBA{255, 170, 60, 255},
	EmberFade: color.RGBA{160, 60, 30, 255},
}

// PlaceholderTile draws a 64×64 floor tile crossed by two seams.
func PlaceholderTile() *image.RGBA {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(Palette.Tile), image.Point{}, draw.Src)
	raster.StrokeLine(img, 0, 0, size-1, size-1, 3, Palette.TileSeam)
	raster.StrokeLine(img, 0, size-1, size-1, 0, 3, Palette.TileSeam)
	return img
}

// PlaceholderEnemy draws a 64×64 red disc on a transparent background.
func PlaceholderEnemy() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	raster.FillCircle(img, 32, 32, 28, Palette.Enemy)
	raster.FillCircle(img, 23, 26, 4, Palette.EnemyEye)
	raster.FillCircle(img, 41, 26, 4, Palette.EnemyEye)
	return img
}

// PlaceholderFire returns the fallback projectile body, trail and explosion
// frames: plain discs, three body frames and four of each other kind.
func PlaceholderFire() (body, trail, burst []image.Image) {
	disc := CreateCircle(Palette.Fire, 15)
	return repeat(disc, 3), repeat(disc, 4), repeat(disc, 4)
}

func repeat(img *image.RGBA, n int) []image.Image {
	out := make([]image.Image, n)
	for i := range out {
		c := image.NewRGBA(img.Bounds())
		copy(c.Pix, img.Pix)
		out[i] = c
	}
	return out
}

// CreateCircle draws a filled disc of radius r centred in a FrameSize cell.
func CreateCircle(fill color.RGBA, r float32) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FrameSize, FrameSize))
	raster.FillCircle(img, FrameSize/2, FrameSize/2, r, fill)
	return img
}

// FireSheet draws a 10×10 cell sheet with animated frames at the cells the
// loader reads: pulsing fireballs for the body and expanding embers for the
// trail and explosion.
func FireSheet() *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, 10*FrameSize, 10*FrameSize))
	for i, c := range bodyCells {
		f := CreateCircle(Palette.Fire, 11+float32(i)*2)
		raster.FillCircle(f, FrameSize/2, FrameSize/2, 6+float32(i), Palette.FireCore)
		place(sheet, c, f)
	}
	for i, c := range burstCells {
		t := float64(i) / float64(len(burstCells)-1)
		f := image.NewRGBA(image.Rect(0, 0, FrameSize, FrameSize))
		outer := Lerp(Palette.Ember, Palette.EmberFade, t)
		raster.FillCircle(f, FrameSize/2, FrameSize/2, 8+float32(i)*2.5, outer)
		raster.StrokeCircle(f, FrameSize/2, FrameSize/2, 10+float32(i)*2, 2, Lighten(outer, 0.4))
		place(sheet, c, f)
	}
	return sheet
}

func place(sheet *image.RGBA, c Cell, frame image.Image) {
	r := image.Rect(c.Col*FrameSize, c.Row*FrameSize, (c.Col+1)*FrameSize, (c.Row+1)*FrameSize)
	draw.Draw(sheet, r, frame, image.Point{}, draw.Over)
}

// Lerp blends a toward b by t in [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

// SavePNG saves an image to a PNG file, creating parent directories.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// WriteDefaults writes placeholder art for every file cfg names, so the
// loader finds real files. It returns the paths written.
func WriteDefaults(cfg Config) ([]string, error) {
	files := []struct {
		name string
		img  image.Image
	}{
		{cfg.Tile, PlaceholderTile()},
		{cfg.FireSheet, FireSheet()},
	}
	if len(cfg.Enemy) > 0 {
		files = append(files, struct {
			name string
			img  image.Image
		}{cfg.Enemy[0], Resize(PlaceholderEnemy(), EnemySize, EnemySize)})
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(cfg.Dir, f.name)
		if filepath.Ext(path) != ".png" {
			return written, fmt.Errorf("write %s: placeholders are PNG only", path)
		}
		if err := SavePNG(f.img, path); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
