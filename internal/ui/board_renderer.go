// internal/ui/board_renderer.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Addison-Dalton/towder-defense-practice/internal/config"
	"github.com/Addison-Dalton/towder-defense-practice/internal/defs"
	"github.com/Addison-Dalton/towder-defense-practice/internal/event"
	"github.com/Addison-Dalton/towder-defense-practice/internal/system"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/geom"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/render"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/tilemap"
)

// BoardRenderer рисует поле и врагов
type BoardRenderer struct {
	board      *tilemap.Board
	library    defs.EnemyLibrary
	projection render.Projection
	colors     render.BoardColors

	boardImage *ebiten.Image // предрендеренное поле
	dirty      bool
	ShowPaths  bool
}

func NewBoardRenderer(board *tilemap.Board, library defs.EnemyLibrary, projection render.Projection, eventDispatcher *event.Dispatcher) *BoardRenderer {
	r := &BoardRenderer{
		board:      board,
		library:    library,
		projection: projection,
		colors: render.BoardColors{
			Background:  config.BackgroundColor,
			Empty:       config.EmptyTileColor,
			Alternative: config.AlternativeColor,
			Wall:        config.WallColor,
			Tower:       config.TowerColor,
			SpawnPoint:  config.SpawnPointColor,
			Destination: config.DestinationColor,
			Arrow:       config.ArrowColor,
			Shadow:      config.ShadowColor,
			StrokeWidth: float32(config.StrokeWidth),
		},
		dirty:     true,
		ShowPaths: true,
	}
	eventDispatcher.Subscribe(event.ContentChanged, r)
	eventDispatcher.Subscribe(event.PathsRecomputed, r)
	return r
}

func (r *BoardRenderer) OnEvent(event.Event) {
	r.Invalidate()
}

// Invalidate makes the next Draw re-render the board image.
func (r *BoardRenderer) Invalidate() {
	r.dirty = true
}

func (r *BoardRenderer) Draw(screen *ebiten.Image, enemies []system.EnemyView) {
	if r.boardImage == nil {
		b := screen.Bounds()
		r.boardImage = ebiten.NewImage(b.Dx(), b.Dy())
	}
	if r.dirty {
		r.renderBoard()
		r.dirty = false
	}
	screen.DrawImage(r.boardImage, nil)

	for _, e := range enemies {
		r.drawEnemy(screen, e)
	}
}

func (r *BoardRenderer) renderBoard() {
	r.boardImage.Fill(r.colors.Background)
	size := float32(r.projection.TileSize)
	for _, tile := range r.board.Tiles() {
		cx, cy := r.projection.GroundToScreen(tile.Center())
		x, y := cx-size/2, cy-size/2

		fill := r.colors.Empty
		if tile.IsAlternative {
			fill = r.colors.Alternative
		}
		switch tile.Content().Type() {
		case tilemap.ContentWall:
			fill = r.colors.Wall
		case tilemap.ContentSpawnPoint:
			fill = render.DarkenColor(r.colors.SpawnPoint)
		case tilemap.ContentDestination:
			fill = render.DarkenColor(r.colors.Destination)
		}
		vector.DrawFilledRect(r.boardImage, x, y, size, size, fill, false)
		vector.StrokeRect(r.boardImage, x, y, size, size, 1, render.LightenColor(fill, 40), false)

		if tile.Content().Type() == tilemap.ContentTower {
			towerR := size * config.TowerRadiusFactor
			vector.DrawFilledCircle(r.boardImage, cx, cy, towerR+config.TowerStrokeWidth, config.TowerStrokeColor, true)
			vector.DrawFilledCircle(r.boardImage, cx, cy, towerR, r.colors.Tower, true)
		}
		if r.ShowPaths {
			r.drawArrow(tile)
		}
	}
}

func (r *BoardRenderer) drawArrow(tile *tilemap.Tile) {
	dir, ok := tile.PathIndicator()
	if !ok {
		return
	}
	half := dir.HalfVector().Scale(2 * config.ArrowLength)
	tail := tile.Center().Sub(half)
	head := tile.Center().Add(half)
	tx, ty := r.projection.GroundToScreen(tail)
	hx, hy := r.projection.GroundToScreen(head)
	vector.StrokeLine(r.boardImage, tx, ty, hx, hy, r.colors.StrokeWidth, r.colors.Arrow, true)

	// Наконечник: две короткие линии назад от острия.
	for _, side := range []tilemap.Direction{dir.RotateCW(), dir.RotateCCW()} {
		wing := head.Sub(half.Scale(0.5)).Add(side.HalfVector().Scale(config.ArrowLength * 0.6))
		wx, wy := r.projection.GroundToScreen(wing)
		vector.StrokeLine(r.boardImage, hx, hy, wx, wy, r.colors.StrokeWidth, r.colors.Arrow, true)
	}
}

func (r *BoardRenderer) drawEnemy(screen *ebiten.Image, e system.EnemyView) {
	pos := e.Pose.ModelPosition()
	radius := float32(r.projection.TileSize*config.EnemyRadiusFactor*e.Pose.Scale) * 0.5

	// Тень на земле, если враг в прыжке.
	if pos.Y > 0 {
		sx, sy := r.projection.GroundToScreen(pos)
		vector.DrawFilledCircle(screen, sx, sy, radius*config.HopShadowFactor, r.colors.Shadow, true)
	}

	var fill color.Color = config.DefaultEnemyColor
	if def, ok := r.library[e.Kind]; ok {
		fill = def.Visuals.Color
	}
	if e.Resting {
		fill = render.DarkenColor(toRGBA(fill))
	}
	x, y := r.projection.ToScreen(pos)
	vector.DrawFilledCircle(screen, x, y, radius+1, config.TowerStrokeColor, true)
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)

	forward := geom.Vec3{Z: float64(radius) / r.projection.TileSize}.RotateY(e.Pose.Yaw)
	fx, fy := r.projection.ToScreen(pos.Add(forward))
	vector.StrokeLine(screen, x, y, fx, fy, 2, config.TowerStrokeColor, true)
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
