// internal/entity/content_factory.go
package entity

import (
	"github.com/Addison-Dalton/towder-defense-practice/internal/component"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/tilemap"
)

type originated interface {
	Origin() tilemap.ContentFactory
}

// ContentFactory creates tile contents and takes them back when a tile
// drops them. Reclaimed contents are pooled per type.
type ContentFactory struct {
	plain  map[tilemap.ContentType][]*component.TileContent
	towers []*component.Tower
	live   int
}

func NewContentFactory() *ContentFactory {
	return &ContentFactory{
		plain: make(map[tilemap.ContentType][]*component.TileContent),
	}
}

// Get returns content of the given type bound to this factory.
func (f *ContentFactory) Get(t tilemap.ContentType) tilemap.Content {
	switch t {
	case tilemap.ContentEmpty, tilemap.ContentDestination, tilemap.ContentWall, tilemap.ContentSpawnPoint:
		f.live++
		pool := f.plain[t]
		if n := len(pool); n > 0 {
			c := pool[n-1]
			f.plain[t] = pool[:n-1]
			return c
		}
		return component.NewTileContent(t, f)
	case tilemap.ContentTower:
		f.live++
		if n := len(f.towers); n > 0 {
			tower := f.towers[n-1]
			f.towers = f.towers[:n-1]
			tower.Reset()
			return tower
		}
		return component.NewTower(f)
	}
	panic("entity: unsupported content type " + t.String())
}

// Reclaim takes back content this factory created.
func (f *ContentFactory) Reclaim(c tilemap.Content) {
	o, ok := c.(originated)
	if !ok || o.Origin() != tilemap.ContentFactory(f) {
		panic("entity: wrong factory reclaimed")
	}
	f.live--
	switch v := c.(type) {
	case *component.Tower:
		f.towers = append(f.towers, v)
	case *component.TileContent:
		f.plain[v.Type()] = append(f.plain[v.Type()], v)
	}
}

// Live is the number of contents handed out and not yet reclaimed.
func (f *ContentFactory) Live() int { return f.live }
