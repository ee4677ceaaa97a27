// internal/component/content.go
package component

import "github.com/Addison-Dalton/towder-defense-practice/pkg/tilemap"

// DefaultTowerRange is the targeting radius given to new towers, in tiles.
const DefaultTowerRange = 1.5

// TileContent is the content of a plain tile: empty, destination, wall or
// spawn point. The origin factory is fixed at construction.
type TileContent struct {
	kind   tilemap.ContentType
	origin tilemap.ContentFactory
}

func NewTileContent(kind tilemap.ContentType, origin tilemap.ContentFactory) *TileContent {
	if origin == nil {
		panic("component: content without origin factory")
	}
	return &TileContent{kind: kind, origin: origin}
}

func (c *TileContent) Type() tilemap.ContentType { return c.kind }

func (c *TileContent) BlocksPath() bool {
	return c.kind == tilemap.ContentWall || c.kind == tilemap.ContentTower
}

func (c *TileContent) OnTick(float64) {}

func (c *TileContent) Recycle() { c.origin.Reclaim(c) }

// Origin returns the factory this content belongs to.
func (c *TileContent) Origin() tilemap.ContentFactory { return c.origin }

// Tower blocks the path and is ticked by the board every frame. Targeting
// and combat live outside the movement core; the tower only keeps time.
type Tower struct {
	TileContent
	TargetingRange float64
	Uptime         float64
}

func NewTower(origin tilemap.ContentFactory) *Tower {
	return &Tower{
		TileContent:    *NewTileContent(tilemap.ContentTower, origin),
		TargetingRange: DefaultTowerRange,
	}
}

func (t *Tower) OnTick(deltaTime float64) {
	t.Uptime += deltaTime
}

func (t *Tower) Recycle() { t.origin.Reclaim(t) }

// Reset prepares a pooled tower for reuse.
func (t *Tower) Reset() {
	t.Uptime = 0
	t.TargetingRange = DefaultTowerRange
}
