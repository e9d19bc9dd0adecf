// internal/config/config.go
package config

import "image/color"

const (
	TargetFPS = 30

	GridWidth  = 48
	GridHeight = 24

	// NeverTicks stands in for "effectively never" wherever a rate is zero.
	NeverTicks = 999
	// UnbreakableHitFactor multiplies a blocker's hp when the attacker cannot hurt it at all.
	UnbreakableHitFactor = 999
	// ActionJitter is the total spread of the action timer (±5%).
	ActionJitter = 0.1

	PerturbDuration       = 20
	DamagePerturbDuration = 10

	StartingCash  = 100
	StartingStone = 20

	// Status effects.
	WeaknessMultiplier = 1.5
	SlowFactor         = 0.5
	PoisonDamage       = 2

	// Rocks.
	RockMineChance     = 0.1
	RockRestActs       = 10
	GoldOreIngotChance = 0.5
	GoldOreIngotValue  = 15

	// Enemy spawn zones spawn one straggler at this rate when nobody stands on them.
	SpawnZoneAPS = 0.025

	// Waves.
	WaveBasePoints      = 4.0
	WaveLinearPoints    = 2.0
	WaveQuadraticPoints = 0.75
	WaveBaseHeadcount   = 3
	WaveMaxHeadcount    = 40
	WaveMaxPulseSize    = 6
	PulseDelayStart     = 4 * TargetFPS
	PulseDelayFloor     = TargetFPS / 2
	PulseDelayDecay     = 0.9
	PulseDelayJitter    = 0.2
	WaveEndDelayTicks   = 15 * TargetFPS
	EliteWaveEvery      = 5
	BossWaveEvery       = 10

	// Blink period of construction markers, in ticks.
	MarkerBlinkTicks = TargetFPS / 3
)

// Screen layout of the graphical front end.
const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	CellWidth    = 16
	CellHeight   = 24
	BoardOffsetX = 24
	BoardOffsetY = 48
	FontSize     = 18
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	EmptyCellColor  = color.RGBA{85, 85, 85, 255}
	HUDColor        = color.RGBA{240, 240, 240, 255}
	SelectionColor  = color.RGBA{70, 130, 180, 120}
	RangeColor      = color.RGBA{220, 60, 60, 60}
)

// StoneItemValue is the stone credited for each delivered piece of stone.
const StoneItemValue = 1

// MaxDeltaTime caps the frame time handed to the state machine, in seconds.
const MaxDeltaTime = 0.1
