// Package assets loads the floor tile, enemy texture and fire sprite sheet,
// substituting drawn placeholders for anything missing or unreadable.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"chosenoffset.com/raymaze/internal/logger"
)

// EnemySize is the edge length every enemy texture is scaled to.
const EnemySize = 96

// Config names the asset files, relative to Dir.
type Config struct {
	Dir       string   `yaml:"dir"`
	FireSheet string   `yaml:"fire_sheet"`
	Enemy     []string `yaml:"enemy"` // tried in order
	Tile      string   `yaml:"tile"`
}

// DefaultConfig returns the standard asset layout.
func DefaultConfig() Config {
	return Config{
		Dir:       "materials",
		FireSheet: filepath.Join("fire", "fire.png"),
		Enemy:     []string{filepath.Join("enemy", "enemy.png"), filepath.Join("enemy", "enemy.jpg")},
		Tile:      filepath.Join("world", "tile.png"),
	}
}

// Set is everything the renderer draws from.
type Set struct {
	Tile      image.Image
	Enemy     image.Image
	Body      []image.Image
	Trail     []image.Image
	Explosion []image.Image
}

// Load reads every asset named by cfg. It never fails: each missing or
// broken file is logged and replaced with its placeholder.
func Load(cfg Config) *Set {
	log := logger.WithComponent("assets")
	set := &Set{}

	if img, err := decodeFile(filepath.Join(cfg.Dir, cfg.Tile)); err == nil {
		set.Tile = img
	} else {
		log.WithError(err).Warn("world tile texture missing, using placeholder")
		set.Tile = PlaceholderTile()
	}

	set.Enemy = loadEnemy(cfg, log)

	sheetPath := filepath.Join(cfg.Dir, cfg.FireSheet)
	sheet, err := decodeFile(sheetPath)
	if err == nil {
		set.Body, set.Trail, set.Explosion, err = fireFrames(sheet)
	}
	if err != nil {
		log.WithError(err).WithField("path", sheetPath).Warn("fire sprite sheet unusable, using placeholder circles")
		set.Body, set.Trail, set.Explosion = PlaceholderFire()
	}

	log.WithFields(logrus.Fields{
		"dir":        cfg.Dir,
		"body":       len(set.Body),
		"trail":      len(set.Trail),
		"explosions": len(set.Explosion),
	}).Info("assets loaded")
	return set
}

func loadEnemy(cfg Config, log *logrus.Entry) image.Image {
	for _, name := range cfg.Enemy {
		img, err := decodeFile(filepath.Join(cfg.Dir, name))
		if err != nil {
			log.WithError(err).Debug("enemy texture candidate skipped")
			continue
		}
		return Resize(img, EnemySize, EnemySize)
	}
	log.Warn("enemy texture not found, using placeholder")
	return Resize(PlaceholderEnemy(), EnemySize, EnemySize)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Resize scales img to w×h with a smooth filter.
func Resize(img image.Image, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}
