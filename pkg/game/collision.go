package game

import "github.com/go-gl/mathgl/mgl32"

// CollisionChecker decides whether the camera may move to candidate.
// It returns true when the move is allowed.
type CollisionChecker interface {
	CheckCollision(candidate mgl32.Vec3) bool
}

// CollisionFunc adapts a plain function to CollisionChecker
type CollisionFunc func(candidate mgl32.Vec3) bool

// CheckCollision calls f(candidate)
func (f CollisionFunc) CheckCollision(candidate mgl32.Vec3) bool {
	return f(candidate)
}

// AlwaysPermit allows every move. It is the default checker; the scene has no obstacles.
type AlwaysPermit struct{}

// CheckCollision always returns true
func (AlwaysPermit) CheckCollision(mgl32.Vec3) bool {
	return true
}
