// pkg/tilemap/board.go
package tilemap

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/Addison-Dalton/towder-defense-practice/pkg/geom"
)

// Board owns the tile grid and the flow field toward its single destination.
type Board struct {
	width, height int
	tiles         []*Tile
	destination   *Tile
	factory       ContentFactory

	// Contents whose OnTick has work to do (towers).
	updating []Content

	searchFrontier []*Tile
	lastStats      PathStats
}

// NewBoard builds a width x height grid centered on the origin, fills it
// with empty content, puts the destination on the center index and computes
// the flow field.
func NewBoard(width, height int, factory ContentFactory) *Board {
	if width <= 0 || height <= 0 {
		panic("tilemap: board size must be positive")
	}
	if factory == nil {
		panic("tilemap: board needs a content factory")
	}

	b := &Board{
		width:          width,
		height:         height,
		tiles:          make([]*Tile, width*height),
		factory:        factory,
		searchFrontier: make([]*Tile, 0, width*height),
	}

	offsetX := float64(width-1) * 0.5
	offsetZ := float64(height-1) * 0.5
	for i, y := 0, 0; y < height; y++ {
		for x := 0; x < width; x, i = x+1, i+1 {
			tile := newTile(i, Coord{X: x, Y: y}, geom.Vec3{X: float64(x) - offsetX, Z: float64(y) - offsetZ})
			b.tiles[i] = tile

			if x > 0 {
				MakeEastWestNeighbors(tile, b.tiles[i-1])
			}
			if y > 0 {
				MakeNorthSouthNeighbors(tile, b.tiles[i-width])
			}

			// Checkerboard: alternative when x is even, negated on even rows.
			tile.IsAlternative = (x & 1) == 0
			if (y & 1) == 0 {
				tile.IsAlternative = !tile.IsAlternative
			}

			tile.SetContent(factory.Get(ContentEmpty))
		}
	}

	b.destination = b.tiles[len(b.tiles)/2]
	b.destination.SetContent(factory.Get(ContentDestination))
	b.FindPaths()
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Tiles returns the tiles in row-major order (index = x + y*width).
func (b *Board) Tiles() []*Tile { return b.tiles }

func (b *Board) Destination() *Tile { return b.destination }

// LastStats returns the result of the most recent FindPaths.
func (b *Board) LastStats() PathStats { return b.lastStats }

// Tile returns the tile at grid coordinate (x, y), nil when out of range.
func (b *Board) Tile(x, y int) *Tile {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil
	}
	return b.tiles[x+y*b.width]
}

// TileAt maps a ground-plane point (world X, world Z) to the tile under it.
func (b *Board) TileAt(p orb.Point) *Tile {
	x := int(math.Floor(p.X() + float64(b.width)*0.5))
	y := int(math.Floor(p.Y() + float64(b.height)*0.5))
	return b.Tile(x, y)
}

// Bounds is the ground-plane area covered by the board.
func (b *Board) Bounds() orb.Bound {
	hw, hh := float64(b.width)*0.5, float64(b.height)*0.5
	return orb.Bound{Min: orb.Point{-hw, -hh}, Max: orb.Point{hw, hh}}
}

// SetContent puts fresh content of type t on tile and recomputes the flow
// field when blocking changed. The destination tile cannot be replaced.
func (b *Board) SetContent(tile *Tile, t ContentType) bool {
	if tile == nil || tile == b.destination || t == ContentDestination {
		return false
	}
	if tile.Content().Type() == t {
		return false
	}
	wasBlocking := tile.BlocksPath()
	b.untrack(tile.Content())
	tile.SetContent(b.factory.Get(t))
	if t == ContentTower {
		b.updating = append(b.updating, tile.Content())
	}
	if wasBlocking != tile.BlocksPath() {
		b.FindPaths()
	}
	return true
}

// ToggleWall switches an empty tile to a wall and back.
func (b *Board) ToggleWall(tile *Tile) bool {
	return b.toggle(tile, ContentWall)
}

// ToggleTower switches an empty tile to a tower and back.
func (b *Board) ToggleTower(tile *Tile) bool {
	return b.toggle(tile, ContentTower)
}

// ToggleSpawnPoint switches an empty tile to a spawn point and back.
func (b *Board) ToggleSpawnPoint(tile *Tile) bool {
	return b.toggle(tile, ContentSpawnPoint)
}

func (b *Board) toggle(tile *Tile, t ContentType) bool {
	if tile == nil {
		return false
	}
	switch tile.Content().Type() {
	case t:
		return b.SetContent(tile, ContentEmpty)
	case ContentEmpty:
		return b.SetContent(tile, t)
	}
	return false
}

// SpawnPoints returns every tile holding a spawn point, in index order.
func (b *Board) SpawnPoints() []*Tile {
	var out []*Tile
	for _, tile := range b.tiles {
		if tile.Content().Type() == ContentSpawnPoint {
			out = append(out, tile)
		}
	}
	return out
}

// Update ticks contents that act on their own.
func (b *Board) Update(deltaTime float64) {
	for _, c := range b.updating {
		c.OnTick(deltaTime)
	}
}

func (b *Board) untrack(c Content) {
	for i, u := range b.updating {
		if u == c {
			last := len(b.updating) - 1
			b.updating[i] = b.updating[last]
			b.updating[last] = nil
			b.updating = b.updating[:last]
			return
		}
	}
}
