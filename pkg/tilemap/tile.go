// pkg/tilemap/tile.go
package tilemap

import (
	"math"

	"github.com/Addison-Dalton/towder-defense-practice/pkg/geom"
)

// Unreachable is the distance of a tile the flow field never reached.
const Unreachable = math.MaxInt

// Coord is an integer grid coordinate. X grows east, Y grows north.
type Coord struct {
	X, Y int
}

// Tile is one grid cell. Neighbor links are set once while the board is
// built; path fields are only written by the flow-field pass.
type Tile struct {
	index  int
	coord  Coord
	center geom.Vec3

	north, east, south, west *Tile

	content Content

	distance      int
	nextOnPath    *Tile
	pathDirection Direction
	exitPoint     geom.Vec3

	// IsAlternative flips the neighbor expansion order during the search.
	IsAlternative bool
}

func newTile(index int, coord Coord, center geom.Vec3) *Tile {
	return &Tile{
		index:    index,
		coord:    coord,
		center:   center,
		distance: Unreachable,
	}
}

// MakeEastWestNeighbors links two horizontally adjacent tiles.
func MakeEastWestNeighbors(east, west *Tile) {
	if west.east != nil || east.west != nil {
		panic("tilemap: redefined east/west neighbors")
	}
	west.east = east
	east.west = west
}

// MakeNorthSouthNeighbors links two vertically adjacent tiles.
func MakeNorthSouthNeighbors(north, south *Tile) {
	if north.south != nil || south.north != nil {
		panic("tilemap: redefined north/south neighbors")
	}
	north.south = south
	south.north = north
}

func (t *Tile) Index() int        { return t.index }
func (t *Tile) Coord() Coord      { return t.coord }
func (t *Tile) Center() geom.Vec3 { return t.center }

// Neighbor returns the linked tile in direction d, nil on the board edge.
func (t *Tile) Neighbor(d Direction) *Tile {
	switch d {
	case North:
		return t.north
	case East:
		return t.east
	case South:
		return t.south
	case West:
		return t.west
	}
	return nil
}

func (t *Tile) HasPath() bool       { return t.distance != Unreachable }
func (t *Tile) IsDestination() bool { return t.distance == 0 }

// Distance is the number of steps to the destination, Unreachable if none.
func (t *Tile) Distance() int { return t.distance }

func (t *Tile) NextTileOnPath() *Tile    { return t.nextOnPath }
func (t *Tile) PathDirection() Direction { return t.pathDirection }
func (t *Tile) ExitPoint() geom.Vec3     { return t.exitPoint }

func (t *Tile) Content() Content { return t.content }

// SetContent replaces the tile content and recycles the previous one.
func (t *Tile) SetContent(c Content) {
	if c == nil {
		panic("tilemap: nil assigned to content")
	}
	if t.content != nil {
		t.content.Recycle()
	}
	t.content = c
}

// BlocksPath reports whether the tile content stops the search.
func (t *Tile) BlocksPath() bool {
	return t.content != nil && t.content.BlocksPath()
}

func (t *Tile) ClearPath() {
	t.distance = Unreachable
	t.nextOnPath = nil
}

func (t *Tile) BecomeDestination() {
	t.distance = 0
	t.nextOnPath = nil
	t.exitPoint = t.center
}

func (t *Tile) GrowPathNorth() *Tile { return t.GrowPathTo(t.north, South) }
func (t *Tile) GrowPathEast() *Tile  { return t.GrowPathTo(t.east, West) }
func (t *Tile) GrowPathSouth() *Tile { return t.GrowPathTo(t.south, North) }
func (t *Tile) GrowPathWest() *Tile  { return t.GrowPathTo(t.west, East) }

// GrowPathTo hands the path on to neighbor, which will travel in direction
// to reach t. It returns the neighbor when the search may continue from it.
// A blocking neighbor still gets a path but is not returned.
func (t *Tile) GrowPathTo(neighbor *Tile, direction Direction) *Tile {
	if !t.HasPath() {
		panic("tilemap: growing path from a tile without a path")
	}
	if neighbor == nil || neighbor.HasPath() {
		return nil
	}
	neighbor.distance = t.distance + 1
	neighbor.nextOnPath = t
	neighbor.exitPoint = neighbor.center.Add(direction.HalfVector())
	neighbor.pathDirection = direction
	if neighbor.BlocksPath() {
		return nil
	}
	return neighbor
}

// PathIndicator returns the direction an arrow on this tile should point.
// The destination and pathless tiles have no indicator.
func (t *Tile) PathIndicator() (Direction, bool) {
	if t.nextOnPath == nil {
		return North, false
	}
	switch t.nextOnPath {
	case t.north:
		return North, true
	case t.east:
		return East, true
	case t.south:
		return South, true
	}
	return West, true
}
