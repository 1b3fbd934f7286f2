package game

import "time"

// Camera constants
const (
	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Projection
	DefaultFOV  = 45.0
	DefaultNear = 0.1
	DefaultFar  = 100.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)

// Control constants
const (
	DefaultMoveSpeed        = 0.1 // units per tick
	DefaultRotationStep     = 2.0 // degrees per arrow key press
	DefaultMouseSensitivity = 0.1 // degrees per pixel

	DefaultTickInterval = 16 * time.Millisecond
	MaxCatchUpTicks     = 4
)

// ExitCodeQuit is the process status used when the user quits with Escape.
const ExitCodeQuit = 42
