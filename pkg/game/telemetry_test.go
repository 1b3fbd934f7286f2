package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTelemetry(t *testing.T) {
	camera := NewCamera(mgl32.Vec3{1.234, -0.5, 10})
	camera.Rotate(12.5, -33.25)

	assert.Equal(t, []string{
		"Pos: (1.23, -0.50, 10.00)",
		"Yaw: -77.50°",
		"Pitch: -33.25°",
	}, Telemetry(camera))
}
