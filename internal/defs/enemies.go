// internal/defs/enemies.go
package defs

import (
	"image/color"

	"github.com/Addison-Dalton/towder-defense-practice/internal/utils"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/geom"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
// Scale, speed and path offset are rolled from their ranges for every
// spawned enemy.
type EnemyDefinition struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Scale      utils.FloatRange `json:"scale"`
	Speed      utils.FloatRange `json:"speed"`
	PathOffset utils.FloatRange `json:"path_offset"`
	Hop        *HopDefinition   `json:"hop,omitempty"`
	Visuals    Visuals          `json:"visuals"`
}

// HopDefinition turns an enemy into a hopper. Empty curves fall back to the
// default arc and ease-in-out curves.
type HopDefinition struct {
	Height          utils.FloatRange `json:"height"`
	Delay           utils.FloatRange `json:"delay"`
	LandingAccuracy utils.FloatRange `json:"landing_accuracy"`
	FloorPercent    float64          `json:"floor_percent"`
	HeightCurve     []geom.Keyframe  `json:"height_curve,omitempty"`
	MovementCurve   []geom.Keyframe  `json:"movement_curve,omitempty"`
}

// Visuals contains parameters for drawing an enemy.
type Visuals struct {
	Color color.RGBA `json:"color"`
	Glyph string     `json:"glyph"`
}

// GlyphRune is the terminal glyph, 'e' when none is set.
func (v Visuals) GlyphRune() rune {
	for _, r := range v.Glyph {
		return r
	}
	return 'e'
}
