package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/combattext/combattext"
)

// Config holds general demo configuration
type Config struct {
	Width  int
	Height int
	TPS    int // fixed update rate; floating text advances by 1/TPS per tick
}

// FloatingTextConfig controls how the host feeds the floating text manager
type FloatingTextConfig struct {
	TemplatesPath string // YAML or TOML template file; empty uses the embedded set
	Language      string // BCP 47 tag used to format numbers

	// Template names used for combat events
	DamageTemplate   string
	CriticalTemplate string
	HealTemplate     string
	MissTemplate     string

	SpawnHeight       float64 // world units above a target's feet
	SimulationOnStart bool    // start with the stress harness running
}

// TargetConfig describes the training dummies in the demo scene
type TargetConfig struct {
	Count       int
	RingRadius  float64 // world units
	HitInterval int     // frames between automatic hits
	MinDamage   int
	MaxDamage   int
	CritChance  float64
	HealChance  float64
	MissChance  float64
	CritScale   float64 // damage multiplier on critical hits

	HealthBarDuration int     // frames
	Radius            float32 // pixels, marker size
}

// CameraConfig contains the demo's orbiting perspective camera settings
type CameraConfig struct {
	FovY       float64 // degrees
	Distance   float64
	Height     float64
	OrbitSpeed float64 // radians per second
}

// LoggingConfig selects the zap logger flavor
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	ShowStats bool
}

// Global configuration instances
var C *Config
var FloatingText FloatingTextConfig
var Targets TargetConfig
var Camera CameraConfig
var Simulation combattext.SimulationSettings
var Logging LoggingConfig
var Debug DebugConfig

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Background   = color.RGBA{R: 24, G: 26, B: 33, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	FloatingText = FloatingTextConfig{
		Language:         "en",
		DamageTemplate:   "damage",
		CriticalTemplate: "critical",
		HealTemplate:     "heal",
		MissTemplate:     "miss",
		SpawnHeight:      1.8,
	}

	Targets = TargetConfig{
		Count:       5,
		RingRadius:  4,
		HitInterval: 45,
		MinDamage:   12,
		MaxDamage:   480,
		CritChance:  0.15,
		HealChance:  0.1,
		MissChance:  0.1,
		CritScale:   2.5,

		HealthBarDuration: 90,
		Radius:            6,
	}

	Camera = CameraConfig{
		FovY:       60,
		Distance:   10,
		Height:     4,
		OrbitSpeed: 0.15,
	}

	// The harness fills the ring the targets stand on.
	Simulation = combattext.DefaultSimulationSettings()
	Simulation.MinPosition = mgl64.Vec3{-6, 0, -6}
	Simulation.MaxPosition = mgl64.Vec3{6, 3, 6}
	Simulation.NewElementsInTick = 2

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}
}
