package assets

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// FrameSize is the edge length of one cell in a sprite sheet.
const FrameSize = 32

// ErrFrameOutOfBounds is returned when a sheet is too small for a frame.
var ErrFrameOutOfBounds = errors.New("assets: frame outside sprite sheet")

// Cell addresses one frame of a sprite sheet.
type Cell struct {
	Row, Col int
}

// Frames of the fire sheet.
var (
	bodyCells  = []Cell{{1, 2}, {1, 3}, {1, 4}}
	trailCells = []Cell{{9, 6}, {9, 7}, {9, 8}, {9, 9}}
	burstCells = []Cell{{9, 6}, {9, 7}, {9, 8}, {9, 9}}
)

// Frame copies one FrameSize cell out of sheet.
func Frame(sheet image.Image, c Cell) (*image.RGBA, error) {
	b := sheet.Bounds()
	r := image.Rect(c.Col*FrameSize, c.Row*FrameSize, (c.Col+1)*FrameSize, (c.Row+1)*FrameSize).Add(b.Min)
	if !r.In(b) {
		return nil, fmt.Errorf("%w: row %d col %d in %dx%d sheet", ErrFrameOutOfBounds, c.Row, c.Col, b.Dx(), b.Dy())
	}
	out := image.NewRGBA(image.Rect(0, 0, FrameSize, FrameSize))
	draw.Draw(out, out.Bounds(), sheet, r.Min, draw.Src)
	return out, nil
}

// Frames copies each cell out of sheet in order.
func Frames(sheet image.Image, cells []Cell) ([]image.Image, error) {
	out := make([]image.Image, 0, len(cells))
	for _, c := range cells {
		f, err := Frame(sheet, c)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func fireFrames(sheet image.Image) (body, trail, burst []image.Image, err error) {
	if body, err = Frames(sheet, bodyCells); err != nil {
		return nil, nil, nil, err
	}
	if trail, err = Frames(sheet, trailCells); err != nil {
		return nil, nil, nil, err
	}
	if burst, err = Frames(sheet, burstCells); err != nil {
		return nil, nil, nil, err
	}
	return body, trail, burst, nil
}
