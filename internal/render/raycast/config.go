package raycast

import "image/color"

// Config holds the projection and minimap settings.
type Config struct {
	FOVDegrees      float64 `yaml:"fov_degrees"`
	FloorPixelStep  int     `yaml:"floor_pixel_step"`
	MinColumnHeight int     `yaml:"min_column_height"`

	MinimapSize         int     `yaml:"minimap_size"`
	MinimapTextureScale int     `yaml:"minimap_texture_scale"`
	MinimapMargin       int     `yaml:"minimap_margin"`
	ZoomDefault         float64 `yaml:"zoom_default"`
	ZoomMin             float64 `yaml:"zoom_min"`
	ZoomMax             float64 `yaml:"zoom_max"`
	ZoomStep            float64 `yaml:"zoom_step"`
}

// DefaultConfig returns the standard view settings.
func DefaultConfig() Config {
	return Config{
		FOVDegrees:      70,
		FloorPixelStep:  4,
		MinColumnHeight: 30,

		MinimapSize:         240,
		MinimapTextureScale: 2,
		MinimapMargin:       20,
		ZoomDefault:         70,
		ZoomMin:             30,
		ZoomMax:             140,
		ZoomStep:            10,
	}
}

// Scene colours.
var (
	SkyColor      = color.RGBA{22, 22, 28, 255}
	FloorColor    = color.RGBA{32, 32, 38, 255}
	FallbackTile  = color.RGBA{60, 60, 70, 255}
	wallBase      = color.RGBA{150, 170, 205, 255}
	playerTint    = color.RGBA{255, 140, 90, 255}
	enemyTint     = color.RGBA{90, 180, 255, 255}
	tintAlpha     = uint8(60)
	bodyAlpha     = uint8(235)
	trailAlpha    = uint8(210)
	minimapWall   = color.RGBA{70, 82, 102, 255}
	minimapAccent = color.RGBA{100, 115, 140, 255}
)
