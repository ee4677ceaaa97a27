// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Addison-Dalton/towder-defense-practice/internal/config"
)

// SpeedButton cycles the simulation speed multiplier.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	Multipliers   []float64
	CurrentState  int
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: config.SpeedButtonColors,
		Multipliers: config.SpeedMultipliers,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)
	fill := b.StateColors[b.CurrentState%len(b.StateColors)]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	b.drawTriangle(screen, b.X-width, b.X, height, fill)
	b.drawTriangle(screen, b.X-width+offset, b.X+offset, height, fill)
}

func (b *SpeedButton) drawTriangle(screen *ebiten.Image, left, tip, height float32, fill color.Color) {
	var path vector.Path
	path.MoveTo(left, b.Y-height/2)
	path.LineTo(tip, b.Y)
	path.LineTo(left, b.Y+height/2)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, bl, a := fill.RGBA()
	for i := range vs {
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(bl) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vector.StrokeLine(screen, left, b.Y-height/2, tip, b.Y, 1, config.TextLightColor, true)
	vector.StrokeLine(screen, tip, b.Y, left, b.Y+height/2, 1, config.TextLightColor, true)
	vector.StrokeLine(screen, left, b.Y+height/2, left, b.Y-height/2, 1, config.TextLightColor, true)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Используем круг для определения попадания, так как форма сложная
	dx := float64(float32(x) - b.X)
	dy := float64(float32(y) - b.Y)
	return math.Hypot(dx, dy) <= float64(b.Size*1.5)
}

// ToggleState switches to the next speed and returns its multiplier.
func (b *SpeedButton) ToggleState() float64 {
	b.CurrentState = (b.CurrentState + 1) % len(b.Multipliers)
	b.LastClickTime = time.Now()
	return b.Multiplier()
}

func (b *SpeedButton) Multiplier() float64 {
	return b.Multipliers[b.CurrentState]
}

var whiteImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)
}
