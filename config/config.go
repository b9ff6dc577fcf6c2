package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every entity is created on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values.
// Gameplay scalars are in world units (y-up), as the controller expects them.
type PlayerConfig struct {
	// Health
	Life float64

	// Movement
	MoveSpeed     float64 // units per second
	RunMultiplier float64
	JumpImpulse   float64 // upward impulse, units * mass per second

	// Ground sensing
	GroundSenseRadius float64
	GroundMask        []string

	// Death
	RemovalDelay float64 // seconds between death and removal

	// Body
	Mass            float64
	CollisionWidth  float64 // units
	CollisionHeight float64 // units

	// Lash reach, measured from the front edge of the body
	LashWidth  float64 // units
	LashHeight float64 // units
}

// HazardConfig contains damage dealt by each contact kind and how slash
// zones pulse.
type HazardConfig struct {
	HeavyMeleeDamage float64
	LightMeleeDamage float64
	ProjectileDamage float64

	// Slash zones are only dangerous for ActiveFrames out of every CycleFrames
	DefaultCycleFrames  int
	DefaultActiveFrames int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	PixelsPerUnit float64
	Gravity       float64 // units per second squared, downward
	MaxFallSpeed  float64 // units per second
}

// ProjectileConfig contains emitter projectile configuration
type ProjectileConfig struct {
	Speed           float64 // units per second
	Width           float64 // pixels
	Height          float64 // pixels
	DefaultInterval float64 // seconds between shots
}

// EmitterConfig contains projectile emitter configuration
type EmitterConfig struct {
	Health int // lash hits before the emitter breaks
	Width  float64
	Height float64
}

// GameOverConfig contains the lose panel configuration
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	Hint            string
	FadeSeconds     float32
}

// HUDConfig contains life bar layout
type HUDConfig struct {
	BarWidth  float32
	BarHeight float32
	Margin    float32
	FontSize  float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawHitboxes bool   // Outline every collision object
	LogEvents    bool   // Log animation events and contacts
	Level        string // Level file to load from the embedded levels
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Hazard HazardConfig
var Physics PhysicsConfig
var Projectile ProjectileConfig
var Emitter EmitterConfig
var GameOver GameOverConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Sand         = color.RGBA{R: 196, G: 164, B: 110, A: 255}
	Rock         = color.RGBA{R: 70, G: 62, B: 58, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 352,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		PixelsPerUnit: 32,
		Gravity:       9.81,
		MaxFallSpeed:  12,
	}

	Player = PlayerConfig{
		Life:              100,
		MoveSpeed:         0.9,
		RunMultiplier:     2,
		JumpImpulse:       6.5,
		GroundSenseRadius: 0.1,
		GroundMask:        []string{"ground"},
		RemovalDelay:      1,

		Mass:            1,
		CollisionWidth:  0.5,
		CollisionHeight: 1.2,

		LashWidth:  1.1,
		LashHeight: 0.4,
	}

	Hazard = HazardConfig{
		HeavyMeleeDamage: 10,
		LightMeleeDamage: 1,
		ProjectileDamage: 10,

		DefaultCycleFrames:  90, // 1.5 seconds at 60fps
		DefaultActiveFrames: 20,
	}

	Projectile = ProjectileConfig{
		Speed:           4,
		Width:           8,
		Height:          4,
		DefaultInterval: 3,
	}

	Emitter = EmitterConfig{
		Health: 3,
		Width:  24,
		Height: 24,
	}

	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{R: 40, G: 10, B: 10, A: 230},
		TitleColor:      LightRed,
		TextColor:       White,
		Title:           "YOU LOSE",
		Hint:            "Press Enter to try again",
		FadeSeconds:     0.6,
	}

	HUD = HUDConfig{
		BarWidth:  130,
		BarHeight: 13,
		Margin:    10,
		FontSize:  10,
	}

	Debug = DebugConfig{
		DrawHitboxes: false,
		LogEvents:    false,
		Level:        "cave.tmx",
	}
}

// ToPixels converts world units to pixels.
func ToPixels(units float64) float64 {
	return units * Physics.PixelsPerUnit
}

// ToUnits converts pixels to world units.
func ToUnits(px float64) float64 {
	return px / Physics.PixelsPerUnit
}

// DeltaTime is the fixed step of one update in seconds.
func DeltaTime() float64 {
	return 1.0 / float64(C.TPS)
}

// SecondsToFrames rounds a duration to whole update ticks.
func SecondsToFrames(seconds float64) int {
	return int(seconds*float64(C.TPS) + 0.5)
}
