package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-maze/pkg/game"
	"github.com/leterax/go-maze/pkg/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestProcessDefault(t *testing.T) {
	config, err := Process([]string{})
	require.NoError(t, err)

	assert.Equal(t, 800, config.Window.Width)
	assert.Equal(t, 600, config.Window.Height)
	assert.Equal(t, "3D Environment", config.Window.Title)
	assert.Equal(t, maze.DefaultRoom(), config.Bounds())
	assert.Equal(t, game.DefaultSettings(), config.Settings())
	assert.Equal(t, game.DefaultTickInterval, config.Controls.TickInterval)
	assert.Equal(t, mgl32.Vec3{}, config.StartPosition())
	assert.Equal(t, float32(game.DefaultFOV), config.Camera.FOV)
	assert.Equal(t, float32(game.DefaultNear), config.Camera.Near)
	assert.Equal(t, float32(game.DefaultFar), config.Camera.Far)
}

func TestProcessOverrides(t *testing.T) {
	first := writeConfig(t, "first.yaml", `
window:
  width: 1280
room:
  width: 16
controls:
  tickInterval: 8ms
`)
	second := writeConfig(t, "second.yaml", `
window:
  title: maze
camera:
  position: [1, 2, 3]
room:
  width: 20
`)

	config, err := Process([]string{first, second})
	require.NoError(t, err)

	assert.Equal(t, 1280, config.Window.Width)
	assert.Equal(t, 600, config.Window.Height)
	assert.Equal(t, "maze", config.Window.Title)
	assert.Equal(t, float32(20), config.Room.Width)
	assert.Equal(t, float32(10), config.Room.Depth)
	assert.Equal(t, 8*time.Millisecond, config.Controls.TickInterval)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, config.StartPosition())
}

func TestProcessEmptyFile(t *testing.T) {
	empty := writeConfig(t, "empty.yaml", "")

	config, err := Process([]string{empty})
	require.NoError(t, err)
	assert.Equal(t, 800, config.Window.Width)
}

func TestProcessErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"unknown key", "window:\n  depth: 3\n"},
		{"malformed", "window: [\n"},
		{"small room", "room:\n  width: 3\n"},
		{"bad clip planes", "camera:\n  near: 10\n  far: 1\n"},
		{"negative speed", "controls:\n  moveSpeed: -1\n"},
		{"zero tick", "controls:\n  tickInterval: 0s\n"},
		{"zero window", "window:\n  height: 0\n"},
		{"flat room", "room:\n  height: 0\n"},
		{"shallow room", "room:\n  depth: 4\n"},
		{"wide fov", "camera:\n  fov: 180\n"},
		{"equal clip planes", "camera:\n  near: 5\n  far: 5\n"},
		{"negative sensitivity", "controls:\n  mouseSensitivity: -0.1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, "config.yaml", tc.contents)
			_, err := Process([]string{path})
			require.Error(t, err)
		})
	}

	_, err := Process([]string{filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}

func TestValidateAgainstSchema(t *testing.T) {
	config, err := Process(nil)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	config.Camera.FOV = 0
	require.Error(t, config.Validate())

	config.Camera.FOV = 60
	config.Controls.TickInterval = -time.Millisecond
	require.Error(t, config.Validate())
}
