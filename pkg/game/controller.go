package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Settings tunes how input maps onto camera motion
type Settings struct {
	MoveSpeed        float32 // units per tick
	RotationStep     float32 // degrees per arrow key press
	MouseSensitivity float32 // degrees per pixel
}

// DefaultSettings returns the stock control tuning
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:        DefaultMoveSpeed,
		RotationStep:     DefaultRotationStep,
		MouseSensitivity: DefaultMouseSensitivity,
	}
}

// Validate rejects settings that cannot drive the camera
func (s Settings) Validate() error {
	if s.MoveSpeed < 0 {
		return fmt.Errorf("move speed must not be negative, got %v", s.MoveSpeed)
	}
	if s.RotationStep < 0 {
		return fmt.Errorf("rotation step must not be negative, got %v", s.RotationStep)
	}
	if s.MouseSensitivity < 0 {
		return fmt.Errorf("mouse sensitivity must not be negative, got %v", s.MouseSensitivity)
	}
	return nil
}

// Controller owns the input state and applies it to a camera.
// It runs on the render thread and is not safe for concurrent use.
type Controller struct {
	camera    *Camera
	input     *InputState
	collision CollisionChecker
	settings  Settings

	// Mouse state
	lastX      float64
	lastY      float64
	firstMouse bool
	dragging   bool
}

// NewController creates a controller driving camera
func NewController(camera *Camera, settings Settings) (*Controller, error) {
	if camera == nil {
		return nil, fmt.Errorf("controller needs a camera")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid control settings: %w", err)
	}

	return &Controller{
		camera:     camera,
		input:      NewInputState(),
		collision:  AlwaysPermit{},
		settings:   settings,
		firstMouse: true,
	}, nil
}

// SetCollisionChecker replaces the movement predicate. nil restores AlwaysPermit.
func (c *Controller) SetCollisionChecker(checker CollisionChecker) {
	if checker == nil {
		checker = AlwaysPermit{}
	}
	c.collision = checker
}

// Camera returns the controlled camera
func (c *Controller) Camera() *Camera {
	return c.camera
}

// Input returns the held-key state
func (c *Controller) Input() *InputState {
	return c.input
}

// HandleEvent applies one input event. Escape yields SignalQuit no matter
// what else is held.
func (c *Controller) HandleEvent(ev Event) Signal {
	switch ev.Type {
	case EventKeyPress:
		if ev.Key == KeyEscape {
			return SignalQuit
		}
		c.input.Press(ev.Key)
		c.rotateForKey(ev.Key)

	case EventKeyRelease:
		c.input.Release(ev.Key)

	case EventMousePress:
		c.lastX = ev.X
		c.lastY = ev.Y
		c.firstMouse = false
		c.dragging = true

	case EventMouseRelease:
		c.dragging = false

	case EventMouseMove:
		if c.dragging {
			c.handleMouseMovement(ev.X, ev.Y)
		}

	case EventFocus:
		c.firstMouse = true

	case EventBlur:
		c.input.Clear()
		c.dragging = false

	case EventResize:
		c.camera.SetViewport(ev.Width, ev.Height)
	}

	return SignalNone
}

// rotateForKey turns the camera by a fixed step for arrow keys
func (c *Controller) rotateForKey(key Key) {
	step := c.settings.RotationStep
	switch key {
	case KeyLeft:
		c.camera.Rotate(-step, 0)
	case KeyRight:
		c.camera.Rotate(step, 0)
	case KeyUp:
		c.camera.Rotate(0, step)
	case KeyDown:
		c.camera.Rotate(0, -step)
	}
}

// handleMouseMovement updates camera orientation based on pointer motion
func (c *Controller) handleMouseMovement(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := float32(xpos - c.lastX)
	yoffset := float32(c.lastY - ypos) // Reversed: screen y grows downward

	c.lastX = xpos
	c.lastY = ypos

	c.camera.Rotate(xoffset*c.settings.MouseSensitivity, yoffset*c.settings.MouseSensitivity)
}

// Displacement returns this tick's movement for the held keys. Contributions
// are summed without normalization, so diagonals are faster.
func (c *Controller) Displacement() mgl32.Vec3 {
	_, up, right := c.camera.ViewBasis()
	horizontal := c.camera.HorizontalFront()
	speed := c.settings.MoveSpeed

	var movement mgl32.Vec3
	if c.input.Held(KeyW) {
		movement = movement.Add(horizontal.Mul(speed))
	}
	if c.input.Held(KeyS) {
		movement = movement.Sub(horizontal.Mul(speed))
	}
	if c.input.Held(KeyA) {
		movement = movement.Sub(right.Mul(speed))
	}
	if c.input.Held(KeyD) {
		movement = movement.Add(right.Mul(speed))
	}

	// Vertical movement only through Q and E
	if c.input.Held(KeyQ) {
		movement = movement.Add(up.Mul(speed))
	}
	if c.input.Held(KeyE) {
		movement = movement.Sub(up.Mul(speed))
	}

	return movement
}

// Tick advances one fixed step and reports whether the camera moved.
// The collision checker sees the candidate position on every tick, including
// ticks where no movement key is held and the candidate is the current position.
func (c *Controller) Tick() bool {
	movement := c.Displacement()
	candidate := c.camera.Position().Add(movement)
	if !c.collision.CheckCollision(candidate) {
		return false
	}

	if movement == (mgl32.Vec3{}) {
		return false
	}
	c.camera.SetPosition(candidate)
	return true
}
