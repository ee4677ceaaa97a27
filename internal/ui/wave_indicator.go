// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/Addison-Dalton/towder-defense-practice/internal/component"
	"github.com/Addison-Dalton/towder-defense-practice/internal/config"
	"github.com/Addison-Dalton/towder-defense-practice/pkg/render"
)

// WaveIndicator отображает номер текущей волны римскими цифрами и полосу
// прогресса спавна под ним.
type WaveIndicator struct {
	X, Y             float32
	Face             font.Face
	Color            color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
}

func NewWaveIndicator(x, y float32) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Face:             basicfont.Face7x13,
		Color:            config.UIColorBlue,
		OutlineColor:     color.White,
		OutlineThickness: config.WaveOutlineWidth,
	}
}

// Draw does nothing when no wave is running.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave *component.Wave) {
	if wave == nil || wave.Number <= 0 {
		return
	}

	label := render.ToRoman(wave.Number)
	textColor := i.Color
	if wave.Number%config.BossWaveEvery == 0 {
		textColor = config.BossWaveColor
	}

	// Центрируем текст
	x := int(i.X) - len(label)*config.TextCharWidth/2
	y := int(i.Y)
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.Face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.Face, x, y, textColor)

	i.drawProgress(screen, wave)
}

func (i *WaveIndicator) drawProgress(screen *ebiten.Image, wave *component.Wave) {
	const border = 1
	barX := i.X - config.WaveBarWidth/2
	barY := i.Y + config.WaveBarOffsetY - config.WaveIndicatorY
	vector.StrokeRect(screen, barX, barY, config.WaveBarWidth, config.WaveBarHeight, border, color.White, true)

	total := wave.Spawned + wave.EnemiesToSpawn
	if total == 0 {
		return
	}
	fill := float32(wave.Spawned) / float32(total)
	width := (config.WaveBarWidth - border*2) * fill
	if width > 0 {
		vector.DrawFilledRect(screen, barX+border, barY+border, width, config.WaveBarHeight-border*2, config.WaveBarFillColor, true)
	}
}
