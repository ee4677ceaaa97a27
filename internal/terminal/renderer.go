// Package terminal draws the board and its enemies with tcell.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/paulmach/orb"

	"github.com/Addison-Dalton/towder-defense-practice/internal/defs"
	"github.com/Addison-Dalton/towder-defense-practice/internal/system"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/tilemap"
)

// CellWidth is how many terminal columns one tile takes.
const CellWidth = 2

var arrows = map[tilemap.Direction]rune{
	tilemap.North: '↑',
	tilemap.East:  '→',
	tilemap.South: '↓',
	tilemap.West:  '←',
}

// Renderer handles drawing the simulation to a tcell screen. North is up.
type Renderer struct {
	screen  tcell.Screen
	library defs.EnemyLibrary
}

func NewRenderer(screen tcell.Screen, library defs.EnemyLibrary) *Renderer {
	return &Renderer{screen: screen, library: library}
}

// Render draws the board, the enemies on top and status lines below.
func (r *Renderer) Render(board *tilemap.Board, enemies []system.EnemyView, status []string) {
	r.screen.Clear()

	for _, tile := range board.Tiles() {
		x, y := r.cell(board, tile.Coord())
		glyph, style := tileGlyph(tile)
		r.screen.SetContent(x, y, glyph, nil, style)
	}

	for _, e := range enemies {
		pos := e.Pose.ModelPosition()
		tile := board.TileAt(orb.Point{pos.X, pos.Z})
		if tile == nil {
			continue
		}
		x, y := r.cell(board, tile.Coord())
		glyph, style := 'e', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		if def, ok := r.library[e.Kind]; ok {
			glyph = def.Visuals.GlyphRune()
			c := def.Visuals.Color
			style = style.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		}
		if e.Resting {
			style = style.Bold(false).Dim(true)
		}
		r.screen.SetContent(x, y, glyph, nil, style)
	}

	for i, line := range status {
		r.RenderMessage(line, board.Height()+1+i)
	}
	r.screen.Show()
}

// RenderMessage writes msg at row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) cell(board *tilemap.Board, c tilemap.Coord) (int, int) {
	return c.X * CellWidth, board.Height() - 1 - c.Y
}

// TileAtCell maps a terminal cell back to the tile drawn there.
func TileAtCell(board *tilemap.Board, x, y int) *tilemap.Tile {
	if x < 0 || y < 0 {
		return nil
	}
	return board.Tile(x/CellWidth, board.Height()-1-y)
}

func tileGlyph(tile *tilemap.Tile) (rune, tcell.Style) {
	base := tcell.StyleDefault
	switch tile.Content().Type() {
	case tilemap.ContentWall:
		return '#', base.Foreground(tcell.ColorGray)
	case tilemap.ContentTower:
		return 'T', base.Foreground(tcell.ColorBlue).Bold(true)
	case tilemap.ContentDestination:
		return '@', base.Foreground(tcell.ColorRed).Bold(true)
	case tilemap.ContentSpawnPoint:
		return 'S', base.Foreground(tcell.ColorGreen).Bold(true)
	}
	if dir, ok := tile.PathIndicator(); ok {
		return arrows[dir], base.Foreground(tcell.ColorYellow)
	}
	return '?', base.Foreground(tcell.ColorDarkRed)
}
