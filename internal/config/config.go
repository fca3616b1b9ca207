// internal/config/config.go
package config

import "image/color"

// Константы симуляции. Один тик — один кадр при FrameRate.
const (
	FrameRate = 60

	HPBarFrames          = 60  // сколько кадров видна полоска здоровья после попадания
	ProjectileSpeed      = 0.5 // tiles per frame
	SplashRadius         = 1.5 // tiles
	DefaultFireInterval  = 30  // frames
	DefaultMaxLevel      = 5
	DefaultBaseHP        = 10
	DefaultInitialFunds  = 100
	DefaultCoefficient   = 1.0
	MinSpeedMultiplier   = 0.1
	FlyingDamageModifier = 2
)

// Раскладка окна.
const (
	ScreenWidth  = 960
	ScreenHeight = 720
	TileSize     = 32.0
	MapOffsetX   = 16.0
	MapOffsetY   = 48.0
	PanelX       = 720

	MaxDeltaTime  = 0.06
	EnemyRadius   = 9.0
	UnitInset     = 4.0
	ProjRadius    = 3.0
	HPBarWidth    = 24.0
	HPBarHeight   = 3.0
	StrokeWidth   = 2.0
	TextCharWidth = 7
	TextOffsetY   = 4

	SpeedButtonX    = 650
	SpeedButtonY    = 24
	SpeedButtonSize = 18.0
	PauseButtonX    = 694
	PauseButtonY    = 24
	PauseButtonSize = 14.0
	IndicatorX      = 936
	IndicatorY      = 24
	IndicatorRadius = 12.0
	RangeIndicatorX = 880
	PanelWidth      = 224
	PanelTop        = 56
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{110, 110, 120, 255}
	PlaceableColor   = color.RGBA{70, 100, 120, 220}
	BlockedColor     = color.RGBA{150, 70, 70, 220}
	GoalColor        = color.RGBA{255, 0, 0, 255}
	GridLineColor    = color.RGBA{30, 30, 40, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	HPBarBackColor   = color.RGBA{60, 0, 0, 255}
	HPBarColor       = color.RGBA{50, 205, 50, 255}
	EnemyColor       = color.RGBA{0, 0, 0, 255}
	FlyingEnemyColor = color.RGBA{120, 60, 200, 255}
	SlowedColor      = color.RGBA{80, 160, 255, 255}
	ProjectileColor  = color.RGBA{255, 255, 0, 255}
	RangeColor       = color.RGBA{255, 255, 255, 40}
	HoverColor       = color.RGBA{255, 255, 255, 80}
	PreStartColor    = color.RGBA{194, 178, 128, 255}
	PlayingColor     = color.RGBA{50, 205, 50, 255}
	PauseButtonColor = color.RGBA{240, 240, 240, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 140}
	VictoryColor     = color.RGBA{70, 130, 180, 220}
	DefeatColor      = color.RGBA{220, 60, 60, 220}
	UnitColors       = []color.RGBA{
		{255, 50, 50, 255},  // melee
		{50, 255, 50, 255},  // archer
		{50, 100, 255, 255}, // mage
		{120, 220, 255, 255},
		{255, 215, 0, 255},
	}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
)
