package raycast

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"chosenoffset.com/raymaze/internal/render/lighting"
)

// Render draws the floor, ceiling, walls and ambient gradient for pose into
// dst, which must match the raycaster's screen size.
func (r *Raycaster) Render(dst *image.RGBA, pose Pose) {
	r.mustBeConfigured()
	r.drawFloorAndCeiling(dst, pose)
	r.drawWalls(dst, pose)
	r.applyGradient(dst)
}

func (r *Raycaster) drawFloorAndCeiling(dst *image.RGBA, pose Pose) {
	fill(dst, image.Rect(0, 0, r.width, r.halfH), SkyColor)
	fill(dst, image.Rect(0, r.halfH, r.width, r.height), FloorColor)
	if r.palette == nil {
		return
	}

	step := max(1, r.cfg.FloorPixelStep)
	dirY, dirX := math.Sincos(pose.Angle)
	planeScale := math.Tan(r.halfFOV)
	planeX, planeY := -dirY*planeScale, dirX*planeScale
	ray0X, ray0Y := dirX-planeX, dirY-planeY
	ray1X, ray1Y := dirX+planeX, dirY+planeY
	eye := float64(r.halfH)

	for y := r.halfH; y < r.height; y += step {
		rowDist := eye / math.Max(1, float64(y-r.halfH))
		wx := pose.X + rowDist*ray0X
		wy := pose.Y + rowDist*ray0Y
		stepX := rowDist * (ray1X - ray0X) / float64(r.width)
		stepY := rowDist * (ray1Y - ray0Y) / float64(r.width)
		rectH := min(step, r.height-y)
		shade := r.light.Floor(rowDist)
		mirrorY := r.height - y - rectH

		for x := 0; x < r.width; x += step {
			floor := lighting.Scale(r.sampleTile(wx, wy), shade)
			fill(dst, image.Rect(x, y, x+step, y+rectH), floor)
			if mirrorY >= 0 {
				fill(dst, image.Rect(x, mirrorY, x+step, mirrorY+rectH), lighting.Ceiling(floor))
			}
			wx += stepX * float64(step)
			wy += stepY * float64(step)
		}
	}
}

func (r *Raycaster) drawWalls(dst *image.RGBA, pose Pose) {
	start := pose.Angle - r.halfFOV
	for ray := 0; ray < r.numRays; ray++ {
		rayAngle := start + float64(ray)*r.deltaAngle
		hit := r.CastRay(pose.X, pose.Y, rayAngle)
		depth := math.Max(hit.Distance, minDepth) * math.Cos(pose.Angle-rayAngle)
		h := r.ColumnHeight(depth)
		x := ray * r.columnWidth
		top := r.halfH - h/2
		fill(dst, image.Rect(x, top, x+r.columnWidth, top+h), r.wallColor(hit, depth))
	}
}

// ColumnHeight returns the on-screen height of a wall slice at the
// fisheye-corrected distance depth.
func (r *Raycaster) ColumnHeight(depth float64) int {
	if depth < minDepth {
		depth = minDepth
	}
	h := math.Min(r.projPlane/depth, float64(r.height))
	return min(r.height, max(r.cfg.MinColumnHeight, int(h)))
}

func (r *Raycaster) wallColor(hit Hit, depth float64) color.RGBA {
	v := uint8(((hit.MapX + hit.MapY) % 3) * 8)
	base := color.RGBA{wallBase.R + v, wallBase.G + v, wallBase.B, 255}
	return lighting.Scale(base, r.light.Wall(depth, hit.Side))
}

// applyGradient darkens each row toward the bottom of the screen.
func (r *Raycaster) applyGradient(dst *image.RGBA) {
	b := dst.Bounds().Intersect(image.Rect(0, 0, r.width, r.height))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		d := r.gradient[y]
		if d == 0 {
			continue
		}
		lighting.Darken(dst.Pix[dst.PixOffset(b.Min.X, y):dst.PixOffset(b.Max.X, y)], d)
	}
}

func fill(dst *image.RGBA, rect image.Rectangle, c color.RGBA) {
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}
