package maze

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMesh(t *testing.T) {
	scene, err := NewScene(DefaultRoom())
	require.NoError(t, err)

	mesh := BuildMesh(scene)
	require.Len(t, mesh.Vertices, 8*4)
	require.Len(t, mesh.Indices, 8*6)

	// Second wall starts at vertex 4
	assert.Equal(t, []uint32{4, 5, 6, 4, 6, 7}, mesh.Indices[6:12])
	for _, idx := range mesh.Indices {
		assert.Less(t, int(idx), len(mesh.Vertices))
	}

	// Every vertex of a wall carries the wall color
	for i, wall := range scene.Walls() {
		for j := 0; j < 4; j++ {
			assert.Equal(t, wall.Color, mesh.Vertices[i*4+j].Color)
		}
	}
}

func TestInterleaved(t *testing.T) {
	mesh := NewMesh()
	mesh.AddFace(Face{Vertices: [4]Vertex{
		{Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec3{0.1, 0.2, 0.3}},
	}})

	data := mesh.Interleaved()
	require.Len(t, data, 4*FloatsPerVertex)
	assert.Equal(t, []float32{1, 2, 3, 0.1, 0.2, 0.3}, data[:FloatsPerVertex])
}

func TestBackgroundMesh(t *testing.T) {
	mesh := BackgroundMesh()
	require.Len(t, mesh.Vertices, 8)

	for _, v := range mesh.Vertices[:4] {
		assert.Equal(t, SkyColor, v.Color)
		assert.GreaterOrEqual(t, v.Position.Y(), float32(0))
	}
	for _, v := range mesh.Vertices[4:] {
		assert.Equal(t, GroundColor, v.Color)
		assert.LessOrEqual(t, v.Position.Y(), float32(0))
	}
}

func TestAxesVertices(t *testing.T) {
	data := AxesVertices()
	require.Len(t, data, 6*FloatsPerVertex)

	for axis := 0; axis < 3; axis++ {
		start := data[axis*2*FloatsPerVertex:]
		end := data[(axis*2+1)*FloatsPerVertex:]

		assert.Equal(t, []float32{0, 0, 0}, start[:3])
		tip := mgl32.Vec3{end[0], end[1], end[2]}
		assert.Equal(t, float32(1), tip.Len())
		assert.Equal(t, float32(1), tip[axis])
		assert.Equal(t, float32(1), end[3+axis], "axis %d is drawn in its own channel", axis)
	}
}
