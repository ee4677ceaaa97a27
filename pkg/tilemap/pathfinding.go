// pkg/tilemap/pathfinding.go
package tilemap

// PathStats summarizes one flow-field pass.
type PathStats struct {
	Reachable   int // walkable tiles with a path, destination included
	Unreachable int // walkable tiles the search never reached
	MaxDistance int
}

// FindPaths recomputes the flow field from scratch with a breadth-first
// search from the destination. Alternative tiles expand N, S, E, W and the
// rest W, E, S, N, which only changes how ties are broken.
func (b *Board) FindPaths() PathStats {
	for _, tile := range b.tiles {
		tile.ClearPath()
	}
	b.destination.BecomeDestination()

	frontier := append(b.searchFrontier[:0], b.destination)
	for head := 0; head < len(frontier); head++ {
		tile := frontier[head]
		var grown [4]*Tile
		if tile.IsAlternative {
			grown = [4]*Tile{tile.GrowPathNorth(), tile.GrowPathSouth(), tile.GrowPathEast(), tile.GrowPathWest()}
		} else {
			grown = [4]*Tile{tile.GrowPathWest(), tile.GrowPathEast(), tile.GrowPathSouth(), tile.GrowPathNorth()}
		}
		for _, next := range grown {
			if next != nil {
				frontier = append(frontier, next)
			}
		}
	}
	// keep the grown buffer, drop references
	clear(frontier)
	b.searchFrontier = frontier[:0]

	var stats PathStats
	for _, tile := range b.tiles {
		if tile.BlocksPath() {
			continue
		}
		if tile.HasPath() {
			stats.Reachable++
			if tile.distance > stats.MaxDistance {
				stats.MaxDistance = tile.distance
			}
		} else {
			stats.Unreachable++
		}
	}
	b.lastStats = stats
	return stats
}
