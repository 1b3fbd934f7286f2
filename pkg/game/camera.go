package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera implements a first-person pinhole camera
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3

	// Euler angles, in degrees
	yaw   float32
	pitch float32

	// Projection
	fov        float32
	near       float32
	far        float32
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera at position looking down -Z
func NewCamera(position mgl32.Vec3) *Camera {
	camera := &Camera{
		position: position,
		worldUp:  mgl32.Vec3{0, 1, 0},  // Y-up coordinate system
		front:    mgl32.Vec3{0, 0, -1}, // Looking along negative Z
		yaw:      DefaultYaw,
		pitch:    DefaultPitch,
		fov:      DefaultFOV,
		near:     DefaultNear,
		far:      DefaultFar,
		width:    800,
		height:   600,
	}

	camera.updateCameraVectors()
	camera.updateProjectionMatrix()

	return camera
}

// SetClipPlanes changes the field of view (degrees) and the clip distances
func (c *Camera) SetClipPlanes(fov, near, far float32) {
	c.fov = fov
	c.near = near
	c.far = far
	c.updateProjectionMatrix()
}

// updateCameraVectors recalculates the front vector from the Euler angles
func (c *Camera) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = normalizeOr(front, c.front)
}

func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.near, c.far)
}

// SetViewport recomputes the projection for a new drawable size.
// The view transform is left alone. Degenerate sizes are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// Viewport returns the size the projection was last computed for
func (c *Camera) Viewport() (width, height int) {
	return c.width, c.height
}

// Rotate adds deltas (degrees) to yaw and pitch. Pitch is clamped, yaw is not wrapped.
// A NaN or infinite delta leaves its angle unchanged.
func (c *Camera) Rotate(deltaYaw, deltaPitch float32) {
	if !finite(deltaYaw) {
		deltaYaw = 0
	}
	if !finite(deltaPitch) {
		deltaPitch = 0
	}
	c.SetRotation(c.yaw+deltaYaw, c.pitch+deltaPitch)
}

// SetRotation sets the camera rotation angles. Non-finite angles are ignored.
func (c *Camera) SetRotation(yaw, pitch float32) {
	if finite(yaw) {
		c.yaw = yaw
	}
	if finite(pitch) {
		c.pitch = clampPitch(pitch)
	}
	c.updateCameraVectors()
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func clampPitch(pitch float32) float32 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < MinPitch {
		return MinPitch
	}
	return pitch
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.worldUp)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (yaw, pitch) in degrees
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// UpVector returns the world up vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.worldUp
}

// HorizontalFront returns front projected onto the ground plane
func (c *Camera) HorizontalFront() mgl32.Vec3 {
	flat := mgl32.Vec3{c.front.X(), 0, c.front.Z()}
	return normalizeOr(flat, mgl32.Vec3{0, 0, -1})
}

// ViewBasis returns the movement basis. Right is built from the horizontal
// front so looking up or down never tilts strafing.
func (c *Camera) ViewBasis() (front, up, right mgl32.Vec3) {
	horizontal := c.HorizontalFront()
	right = normalizeOr(horizontal.Cross(c.worldUp), mgl32.Vec3{1, 0, 0})
	return c.front, c.worldUp, right
}

// normalizeOr returns v scaled to unit length, or fallback when v has no length
func normalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return fallback
	}
	return v.Mul(1 / l)
}
