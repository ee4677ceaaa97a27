// pkg/tilemap/content.go
package tilemap

// ContentType identifies what occupies a tile.
type ContentType int

const (
	ContentEmpty ContentType = iota
	ContentDestination
	ContentWall
	ContentTower
	ContentSpawnPoint
)

func (t ContentType) String() string {
	switch t {
	case ContentEmpty:
		return "empty"
	case ContentDestination:
		return "destination"
	case ContentWall:
		return "wall"
	case ContentTower:
		return "tower"
	case ContentSpawnPoint:
		return "spawn_point"
	}
	return "unknown"
}

// Content is whatever sits on a tile. A tile owns its content exclusively;
// replacing it calls Recycle on the old one.
type Content interface {
	Type() ContentType
	// BlocksPath reports whether the flow field may continue through the tile.
	BlocksPath() bool
	OnTick(deltaTime float64)
	// Recycle hands the content back to the factory it came from.
	Recycle()
}

// ContentFactory produces tile contents and takes them back.
type ContentFactory interface {
	Get(t ContentType) Content
	Reclaim(c Content)
}
