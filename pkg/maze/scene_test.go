package maze

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSceneHasEightWalls(t *testing.T) {
	scene, err := NewScene(DefaultRoom())
	require.NoError(t, err)
	require.Equal(t, 8, scene.Len())

	walls := scene.Walls()
	colors := map[mgl32.Vec3]int{}
	for _, wall := range walls {
		colors[wall.Color]++
		assert.Equal(t, float32(6), wall.Height)
		assert.Equal(t, float32(0), wall.Start.Y())
		assert.Equal(t, float32(0), wall.End.Y())
	}
	assert.Equal(t, map[mgl32.Vec3]int{Gray: 4, Red: 2, Green: 2}, colors)
}

func TestOuterWallsFollowBounds(t *testing.T) {
	scene, err := NewScene(RoomBounds{Width: 20, Height: 3, Depth: 12})
	require.NoError(t, err)

	walls := scene.Walls()
	assert.Equal(t, WallSegment{
		Start:  mgl32.Vec3{-10, 0, -6},
		End:    mgl32.Vec3{10, 0, -6},
		Height: 3,
		Color:  Gray,
	}, walls[0])
	assert.Equal(t, mgl32.Vec3{10, 0, 6}, walls[3].End)
	assert.Equal(t, float32(20), walls[0].Length())
	assert.Equal(t, float32(12), walls[2].Length())

	// Partitions do not scale with the room
	assert.Equal(t, mgl32.Vec3{-2, 0, -2}, walls[4].Start)
	assert.Equal(t, mgl32.Vec3{-2, 0, 2}, walls[4].End)
	assert.Equal(t, float32(4), walls[7].Length())
}

func TestWallsReturnsCopy(t *testing.T) {
	scene, err := NewScene(DefaultRoom())
	require.NoError(t, err)

	walls := scene.Walls()
	walls[0].Color = mgl32.Vec3{9, 9, 9}
	assert.Equal(t, Gray, scene.Walls()[0].Color)
}

func TestInvalidRooms(t *testing.T) {
	tests := []struct {
		name   string
		bounds RoomBounds
	}{
		{"zero width", RoomBounds{Width: 0, Height: 6, Depth: 10}},
		{"negative height", RoomBounds{Width: 10, Height: -1, Depth: 10}},
		{"too narrow for partitions", RoomBounds{Width: 4, Height: 6, Depth: 10}},
		{"too shallow for partitions", RoomBounds{Width: 10, Height: 6, Depth: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewScene(tc.bounds)
			require.Error(t, err)
		})
	}
}

func TestQuadSpansFloorToCeiling(t *testing.T) {
	wall := WallSegment{
		Start:  mgl32.Vec3{-2, 0, -2},
		End:    mgl32.Vec3{2, 0, -2},
		Height: 6,
	}

	assert.Equal(t, [4]mgl32.Vec3{
		{-2, 0, -2},
		{2, 0, -2},
		{2, 6, -2},
		{-2, 6, -2},
	}, wall.Quad())
}
