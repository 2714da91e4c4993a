package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// PlayerConfig contains all player controller tunables
type PlayerConfig struct {
	// Movement
	WalkSpeed          float64 `yaml:"walk_speed"` // units per second
	LookInNewDirection bool    `yaml:"look_in_new_direction"`
	SnapToNewDirection bool    `yaml:"snap_to_new_direction"` // false = slerp at TurningSpeed
	TurningSpeed       float64 `yaml:"turning_speed"`

	// Jump
	CanJump             bool       `yaml:"can_jump"`
	JumpForce           mgl64.Vec3 `yaml:"jump_force"`            // impulse applied on jump
	GroundRaycastLength float64    `yaml:"ground_raycast_length"` // how close the floor must be to count as grounded

	// Run
	CanRun   bool    `yaml:"can_run"`
	RunSpeed float64 `yaml:"run_speed"`

	// Crouch
	CanCrouch   bool    `yaml:"can_crouch"`
	CrouchSpeed float64 `yaml:"crouch_speed"`
	CrouchScale float64 `yaml:"crouch_scale"` // vertical scale multiplier while crouched

	// Use / action
	CanUse           bool    `yaml:"can_use"`
	UseRaycastLength float64 `yaml:"use_raycast_length"`

	// Body
	Mass        float64    `yaml:"mass"`
	HalfExtents mgl64.Vec3 `yaml:"half_extents"`
}

// HealthConfig contains the default health component tunables.
// Arena targets may override any of these per object.
type HealthConfig struct {
	MaxHealth     float64       `yaml:"max_health"`
	MinHealth     float64       `yaml:"min_health"` // health at or below which the object dies
	DestroyOption DestroyOption `yaml:"destroy_option"`
	DieDelay      float64       `yaml:"die_delay"` // seconds, delayed options only

	CurrentHealth  float64 `yaml:"current_health"`
	CanTakeDamage  bool    `yaml:"can_take_damage"`
	CanDie         bool    `yaml:"can_die"`
	CanBeDestroyed bool    `yaml:"can_be_destroyed"`

	// Recovery
	CanRecoverHealth      bool    `yaml:"can_recover_health"`
	RecoveryAmount        float64 `yaml:"recovery_amount"`
	RecoveryInterval      float64 `yaml:"recovery_interval"`     // seconds between recovery ticks
	NoHitBeforeHealing    bool    `yaml:"no_hit_before_healing"` // require a hit-free grace period before recovering
	NoHitTime             float64 `yaml:"no_hit_time"`
	CanSelfOverheal       bool    `yaml:"can_self_overheal"`
	CanOverhealExternally bool    `yaml:"can_overheal_externally"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"` // units/s^2 along Y (negative is down)
	MaxFallSpeed float64 `yaml:"max_fall_speed"`

	// Collision space
	PixelsPerUnit float64 `yaml:"pixels_per_unit"` // resolv units per world unit
	CellSize      int     `yaml:"cell_size"`       // resolv cell size in resolv units
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	// HUD dimensions
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64

	// Seconds for the displayed health to catch up with the real value
	HealthBarEaseSeconds float32

	// Colors (RGBA)
	HealthBarBgColor color.RGBA
	HealthBarFgColor color.RGBA
	HUDTextColor     color.RGBA
	SolidColor       color.RGBA
	PlayerColor      color.RGBA
	TargetColor      color.RGBA
	DisabledColor    color.RGBA
	UseRayColor      color.RGBA

	// Top-down view scale in screen pixels per world unit
	ViewScale float64

	// Font sizes
	HUDFontSize   float64
	DebugFontSize float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // draw collision footprints and probes
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // ticks per second; one tick is one frame and one fixed step
	Title  string
}

// DeltaTime returns the seconds covered by a single tick.
func (c *Config) DeltaTime() float64 {
	if c.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TPS)
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Health HealthConfig
var Physics PhysicsConfig
var UI UIConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DarkGrey  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
		TPS:    60,
		Title:  "groundwork",
	}

	Physics = DefaultPhysics()
	Player = DefaultPlayer()
	Health = DefaultHealth()

	UI = UIConfig{
		HealthBarWidth:       130,
		HealthBarHeight:      13,
		HealthBarMargin:      10,
		HealthBarEaseSeconds: 0.35,

		HealthBarBgColor: DarkGrey,
		HealthBarFgColor: Green,
		HUDTextColor:     White,
		SolidColor:       Grey,
		PlayerColor:      Blue,
		TargetColor:      Orange,
		DisabledColor:    color.RGBA{R: 70, G: 70, B: 70, A: 120},
		UseRayColor:      LightBlue,

		ViewScale: 24,

		HUDFontSize:   14,
		DebugFontSize: 10,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Debug = DebugConfig{
		Overlay: false,
	}
}

// DefaultPlayer returns the stock player controller tunables.
func DefaultPlayer() PlayerConfig {
	return PlayerConfig{
		WalkSpeed:          80.0,
		LookInNewDirection: true,
		SnapToNewDirection: false,
		TurningSpeed:       15.0,

		CanJump:             true,
		JumpForce:           mgl64.Vec3{0, 2, 0},
		GroundRaycastLength: 1.1,

		CanRun:   true,
		RunSpeed: 120.0,

		CanCrouch:   true,
		CrouchSpeed: 8.0,
		CrouchScale: 0.45,

		CanUse:           true,
		UseRaycastLength: 2.0,

		Mass:        1.0,
		HalfExtents: mgl64.Vec3{0.5, 1.0, 0.5},
	}
}

// DefaultHealth returns the stock health component tunables.
func DefaultHealth() HealthConfig {
	return HealthConfig{
		MaxHealth:     100.0,
		MinHealth:     0.0,
		DestroyOption: DestroyNone,
		DieDelay:      5.0,

		CurrentHealth:  100.0,
		CanTakeDamage:  true,
		CanDie:         true,
		CanBeDestroyed: true,

		CanRecoverHealth:      false,
		RecoveryAmount:        5.0,
		RecoveryInterval:      3.0,
		NoHitBeforeHealing:    true,
		NoHitTime:             5.0,
		CanSelfOverheal:       false,
		CanOverhealExternally: false,
	}
}

// DefaultPhysics returns the stock physics configuration.
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		Gravity:      -9.81,
		MaxFallSpeed: 50.0,

		PixelsPerUnit: 16,
		CellSize:      8,
	}
}
