package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	TileSize     = 56.0 // pixels per board tile
	MaxDeltaTime = 0.06

	DefaultBoardWidth  = 11
	DefaultBoardHeight = 11

	ArrowLength       = 0.35 // in tiles
	EnemyRadiusFactor = 0.3  // of the tile size, times enemy scale
	HopShadowFactor   = 0.6
	TowerRadiusFactor = 0.3
	TowerStrokeWidth  = 2.0

	TextCharWidth = 7
	TextOffsetY   = 4

	SpeedButtonOffsetX = 80   // Отступ слева от края окна
	SpeedButtonY       = 30   // Позиция по Y
	SpeedButtonSize    = 18.0 // Размер кнопки

	WaveIndicatorY      = 24
	WaveBarWidth        = 118
	WaveBarHeight       = 12
	WaveBarOffsetY      = 34 // below the wave number
	WaveOutlineWidth    = 2
	BossWaveEvery       = 10

	StreamEveryNthTick = 2 // how often pose frames are published
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	EmptyTileColor    = color.RGBA{70, 100, 120, 220}
	AlternativeColor  = color.RGBA{62, 90, 110, 220}
	WallColor         = color.RGBA{128, 128, 128, 255}
	TowerColor        = color.RGBA{50, 100, 255, 255}
	SpawnPointColor   = color.RGBA{0, 255, 0, 255}
	DestinationColor  = color.RGBA{255, 0, 0, 255}
	ArrowColor        = color.RGBA{255, 255, 0, 128}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TowerStrokeColor  = color.RGBA{255, 255, 255, 255}
	ShadowColor       = color.RGBA{0, 0, 0, 90}
	DefaultEnemyColor = color.RGBA{0, 0, 0, 255}
	UIColorBlue       = color.RGBA{70, 130, 180, 255}
	BossWaveColor     = color.RGBA{220, 40, 40, 255}
	WaveBarFillColor  = color.RGBA{70, 100, 120, 220}
	StrokeWidth       = 2.0
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
