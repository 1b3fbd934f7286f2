package game

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func assertVec(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestNewCameraBasis(t *testing.T) {
	camera := NewCamera(mgl32.Vec3{})

	yaw, pitch := camera.Orientation()
	assert.Equal(t, float32(-90), yaw)
	assert.Equal(t, float32(0), pitch)

	front, up, right := camera.ViewBasis()
	assertVec(t, mgl32.Vec3{0, 0, -1}, front, epsilon)
	assertVec(t, mgl32.Vec3{0, 1, 0}, up, 0)
	assertVec(t, mgl32.Vec3{1, 0, 0}, right, epsilon)
}

func TestFrontIsUnitLength(t *testing.T) {
	tests := []struct {
		yaw, pitch float32
	}{
		{-90, 0},
		{0, 0},
		{45, 30},
		{-135, -60},
		{720.5, 89},
		{-12345.25, -89},
		{33.3, 12.7},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("yaw=%v,pitch=%v", tc.yaw, tc.pitch), func(t *testing.T) {
			camera := NewCamera(mgl32.Vec3{})
			camera.SetRotation(tc.yaw, tc.pitch)

			front, _, right := camera.ViewBasis()
			assert.InDelta(t, 1.0, front.Len(), epsilon)
			assert.InDelta(t, 1.0, right.Len(), epsilon)
			assert.InDelta(t, 0.0, right.Y(), epsilon, "strafing must stay horizontal")
			assert.InDelta(t, 1.0, camera.HorizontalFront().Len(), epsilon)
		})
	}
}

func TestPitchIsClamped(t *testing.T) {
	camera := NewCamera(mgl32.Vec3{})

	camera.Rotate(0, 1000)
	_, pitch := camera.Orientation()
	assert.Equal(t, float32(MaxPitch), pitch)

	camera.Rotate(0, -5000)
	_, pitch = camera.Orientation()
	assert.Equal(t, float32(MinPitch), pitch)

	for i := 0; i < 200; i++ {
		camera.Rotate(1, 3)
		_, pitch = camera.Orientation()
		require.LessOrEqual(t, pitch, float32(MaxPitch))
		require.GreaterOrEqual(t, pitch, float32(MinPitch))
	}
}

func TestYawIsNotWrapped(t *testing.T) {
	camera := NewCamera(mgl32.Vec3{})
	camera.Rotate(720, 0)

	yaw, _ := camera.Orientation()
	assert.Equal(t, float32(630), yaw)
	assertVec(t, mgl32.Vec3{0, 0, -1}, camera.FrontVector(), 1e-4)
}

func TestRotateIgnoresNonFiniteDeltas(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name       string
		yaw, pitch float32
	}{
		{"nan pitch", 0, nan},
		{"nan yaw", nan, 0},
		{"positive inf", inf, inf},
		{"negative inf", -inf, -inf},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			camera := NewCamera(mgl32.Vec3{})
			camera.Rotate(10, 20)

			camera.Rotate(tc.yaw, tc.pitch)
			yaw, pitch := camera.Orientation()
			assert.Equal(t, float32(DefaultYaw+10), yaw)
			assert.Equal(t, float32(20), pitch)
			assert.InDelta(t, 1, camera.FrontVector().Len(), epsilon)

			camera.SetRotation(tc.yaw, tc.pitch)
			yaw, pitch = camera.Orientation()
			assert.False(t, math.IsNaN(float64(yaw)))
			assert.LessOrEqual(t, pitch, float32(MaxPitch))
			assert.GreaterOrEqual(t, pitch, float32(MinPitch))
		})
	}
}

func TestPitchUpLooksUp(t *testing.T) {
	camera := NewCamera(mgl32.Vec3{})
	camera.Rotate(0, 30)

	front := camera.FrontVector()
	assert.Greater(t, front.Y(), float32(0))
	assertVec(t, mgl32.Vec3{0, 0, -1}, camera.HorizontalFront(), epsilon)
}

func TestViewMatrixLooksAlongFront(t *testing.T) {
	camera := NewCamera(mgl32.Vec3{1, 2, 3})
	camera.SetRotation(10, 20)

	target := camera.Position().Add(camera.FrontVector())
	inView := camera.ViewMatrix().Mul4x1(target.Vec4(1))
	assertVec(t, mgl32.Vec3{0, 0, -1}, inView.Vec3(), 1e-4)
}

func TestSetViewport(t *testing.T) {
	camera := NewCamera(mgl32.Vec3{})
	before := camera.ProjectionMatrix()

	camera.SetViewport(1600, 900)
	w, h := camera.Viewport()
	assert.Equal(t, 1600, w)
	assert.Equal(t, 900, h)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 1600.0/900.0, 0.1, 100), camera.ProjectionMatrix())
	assert.NotEqual(t, before, camera.ProjectionMatrix())

	view := camera.ViewMatrix()
	resized := camera.ProjectionMatrix()
	camera.SetViewport(0, 0)
	assert.Equal(t, resized, camera.ProjectionMatrix(), "degenerate sizes are ignored")
	assert.Equal(t, view, camera.ViewMatrix(), "resize leaves the view alone")
}

func TestNormalizeOrFallsBack(t *testing.T) {
	fallback := mgl32.Vec3{0, 0, -1}
	assert.Equal(t, fallback, normalizeOr(mgl32.Vec3{}, fallback))
	assertVec(t, mgl32.Vec3{0.6, 0.8, 0}, normalizeOr(mgl32.Vec3{3, 4, 0}, fallback), epsilon)
}
