// pkg/render/projection.go
package render

import (
	"github.com/paulmach/orb"

	"github.com/Addison-Dalton/towder-defense-practice/pkg/geom"
)

// Projection maps the world ground plane to screen pixels, top-down.
// World +X is screen right, world +Z (north) is screen up and world Y
// (height) lifts a point towards the top of the screen.
type Projection struct {
	CenterX, CenterY float64 // screen position of the world origin
	TileSize         float64 // pixels per world unit
}

// NewProjection centers the world origin on a screen of the given size.
func NewProjection(screenWidth, screenHeight int, tileSize float64) Projection {
	return Projection{
		CenterX:  float64(screenWidth) / 2,
		CenterY:  float64(screenHeight) / 2,
		TileSize: tileSize,
	}
}

// ToScreen projects a world point, height included.
func (p Projection) ToScreen(v geom.Vec3) (float32, float32) {
	x := p.CenterX + v.X*p.TileSize
	y := p.CenterY - (v.Z+v.Y)*p.TileSize
	return float32(x), float32(y)
}

// GroundToScreen projects a world point onto the ground, ignoring height.
func (p Projection) GroundToScreen(v geom.Vec3) (float32, float32) {
	v.Y = 0
	return p.ToScreen(v)
}

// ToGround maps a screen pixel back to a ground-plane point (world X, world Z).
func (p Projection) ToGround(sx, sy int) orb.Point {
	return orb.Point{
		(float64(sx) - p.CenterX) / p.TileSize,
		(p.CenterY - float64(sy)) / p.TileSize,
	}
}
