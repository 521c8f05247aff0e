package raycast

import (
	"image"
	"image/color"
	"math"
	"sort"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"chosenoffset.com/raymaze/internal/render/lighting"
	"chosenoffset.com/raymaze/internal/sim"
)

// Sprites holds the billboard artwork. Any frame set may be empty, in which
// case that kind of billboard is skipped.
type Sprites struct {
	Enemy     image.Image
	Body      []image.Image
	Trail     []image.Image
	Explosion []image.Image
}

// Entities is the per-frame view of the simulation the sprite pass draws.
type Entities struct {
	Enemies           []sim.Enemy
	Projectiles       []sim.Projectile
	Explosions        []sim.Explosion
	ExplosionDuration float64
}

// Kind says what a billboard depicts.
type Kind int

const (
	KindEnemy Kind = iota
	KindProjectile
	KindTrail
	KindExplosion
)

// Billboard is one sprite placed on screen, ready to blit.
type Billboard struct {
	Kind     Kind
	Distance float64
	Image    image.Image
	CenterX  float64
	CenterY  float64
	Width    float64
	Height   float64
	Rotation float64 // degrees, counter-clockwise on screen
	Alpha    uint8
}

// SetSprites installs the billboard artwork and pre-tints the projectile
// bodies for each owner.
func (r *Raycaster) SetSprites(s Sprites) {
	r.sprites = s
	r.enemyBaseWidth = 0
	if s.Enemy != nil {
		r.enemyBaseWidth = s.Enemy.Bounds().Dx()
	}
	for owner, tint := range [2]color.RGBA{sim.OwnerPlayer: playerTint, sim.OwnerEnemy: enemyTint} {
		frames := make([]image.Image, len(s.Body))
		for i, f := range s.Body {
			frames[i] = tinted(f, tint, tintAlpha)
		}
		r.tintedBodies[owner] = frames
	}
}

// Billboards projects every visible entity and returns the sprites sorted
// far to near. Enemies, projectile bodies, trails and explosions share one
// ordering so nearer sprites always cover farther ones.
func (r *Raycaster) Billboards(pose Pose, ents Entities, now float64) []Billboard {
	r.mustBeConfigured()
	var out []Billboard
	out = r.enemyBillboards(out, pose, ents.Enemies, now)
	out = r.projectileBillboards(out, pose, ents.Projectiles, now)
	out = r.explosionBillboards(out, pose, ents.Explosions, ents.ExplosionDuration, now)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance > out[j].Distance
	})
	return out
}

// DrawEntities blits all visible billboards onto dst.
func (r *Raycaster) DrawEntities(dst *image.RGBA, pose Pose, ents Entities, now float64) {
	for _, b := range r.Billboards(pose, ents, now) {
		blit(dst, b)
	}
}

func (r *Raycaster) enemyBillboards(out []Billboard, pose Pose, enemies []sim.Enemy, now float64) []Billboard {
	if r.sprites.Enemy == nil {
		return out
	}
	for _, e := range enemies {
		dist, sx, ok := r.Project(pose, e.Pos.X, e.Pos.Y)
		if !ok {
			continue
		}
		dist = math.Max(dist, minDepth)
		scale := clamp(3/(dist+0.4), 0.5, 2.5)
		size := float64(int(float64(r.enemyBaseWidth) * scale))
		bob := math.Sin((now-e.SpawnTime)*2.4) * 6
		out = append(out, Billboard{
			Kind:     KindEnemy,
			Distance: dist,
			Image:    r.sprites.Enemy,
			CenterX:  float64(sx),
			CenterY:  float64(r.halfH) - 20 + bob,
			Width:    size,
			Height:   size,
			Alpha:    255,
		})
	}
	return out
}

func (r *Raycaster) projectileBillboards(out []Billboard, pose Pose, shots []sim.Projectile, now float64) []Billboard {
	trail := r.sprites.Trail
	for _, p := range shots {
		bodies := r.tintedBodies[p.Owner]
		if len(bodies) == 0 {
			continue
		}
		dist, sx, ok := r.Project(pose, p.Pos.X, p.Pos.Y)
		if !ok {
			continue
		}
		size := float64(min(160, max(42, int(320/dist))))
		life := math.Max(0, now-p.SpawnTime)
		rot := math.Atan2(p.Dir.Y, p.Dir.X)*180/math.Pi - 90

		if len(trail) > 0 {
			ts := float64(int(size * 1.5))
			out = append(out, Billboard{
				Kind:     KindTrail,
				Distance: dist + 0.2,
				Image:    trail[int(life*10)%len(trail)],
				CenterX:  float64(sx),
				CenterY:  float64(r.halfH) + 10,
				Width:    ts,
				Height:   ts,
				Rotation: rot,
				Alpha:    trailAlpha,
			})
		}
		out = append(out, Billboard{
			Kind:     KindProjectile,
			Distance: dist,
			Image:    bodies[int(life*8)%len(bodies)],
			CenterX:  float64(sx),
			CenterY:  float64(r.halfH),
			Width:    size,
			Height:   size,
			Rotation: rot,
			Alpha:    bodyAlpha,
		})
	}
	return out
}

func (r *Raycaster) explosionBillboards(out []Billboard, pose Pose, explosions []sim.Explosion, duration, now float64) []Billboard {
	frames := r.sprites.Explosion
	if len(frames) == 0 {
		return out
	}
	for _, e := range explosions {
		dist, sx, ok := r.Project(pose, e.Pos.X, e.Pos.Y)
		if !ok {
			continue
		}
		progress := e.Progress(now, duration)
		if progress >= 1 {
			continue
		}
		frame := min(int(progress*float64(len(frames))*1.4), len(frames)-1)
		size := float64(int(clamp(130+progress*220, 80, 260)))
		out = append(out, Billboard{
			Kind:     KindExplosion,
			Distance: dist,
			Image:    frames[max(0, frame)],
			CenterX:  float64(sx),
			CenterY:  float64(r.halfH),
			Width:    size,
			Height:   size,
			Alpha:    uint8(clamp(255*(1-progress), 0, 255)),
		})
	}
	return out
}

// blit scales b.Image to its billboard size, rotates it about its centre
// and composites it at (CenterX, CenterY).
func blit(dst *image.RGBA, b Billboard) {
	if b.Image == nil || b.Width <= 0 || b.Height <= 0 || b.Alpha == 0 {
		return
	}
	sr := b.Image.Bounds()
	if sr.Empty() {
		return
	}
	kx := b.Width / float64(sr.Dx())
	ky := b.Height / float64(sr.Dy())
	sin, cos := math.Sincos(b.Rotation * math.Pi / 180)

	// Screen y grows downward, so a counter-clockwise turn maps (x, y) to
	// (x cos + y sin, -x sin + y cos).
	a, bb := kx*cos, ky*sin
	d, e := -kx*sin, ky*cos
	cx := float64(sr.Min.X) + float64(sr.Dx())/2
	cy := float64(sr.Min.Y) + float64(sr.Dy())/2
	m := f64.Aff3{
		a, bb, b.CenterX - a*cx - bb*cy,
		d, e, b.CenterY - d*cx - e*cy,
	}

	var opts *draw.Options
	if b.Alpha < 255 {
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: b.Alpha})}
	}
	draw.ApproxBiLinear.Transform(dst, m, b.Image, sr, draw.Over, opts)
}

// tinted returns a copy of src with tint added to every visible pixel in
// proportion to that pixel's opacity. Transparent pixels stay transparent.
func tinted(src image.Image, tint color.RGBA, alpha uint8) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	for i := 0; i+3 < len(out.Pix); i += 4 {
		if out.Pix[i+3] == 0 {
			continue
		}
		c := lighting.Add(color.RGBA{out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3]}, tint, alpha)
		out.Pix[i], out.Pix[i+1], out.Pix[i+2] = c.R, c.G, c.B
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
