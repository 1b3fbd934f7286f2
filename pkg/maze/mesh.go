package maze

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout: x, y, z, r, g, b
const FloatsPerVertex = 6

// Vertex is a colored point
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Face is a flat quad with counter-clockwise corners
type Face struct {
	Vertices [4]Vertex
}

// Mesh collects quads as indexed triangles
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// NewMesh creates a new empty mesh
func NewMesh() *Mesh {
	return &Mesh{
		Vertices: make([]Vertex, 0),
		Indices:  make([]uint32, 0),
	}
}

// AddFace adds a quad as two triangles
func (m *Mesh) AddFace(face Face) {
	baseIndex := uint32(len(m.Vertices))

	m.Vertices = append(m.Vertices, face.Vertices[:]...)

	m.Indices = append(m.Indices, baseIndex, baseIndex+1, baseIndex+2)
	m.Indices = append(m.Indices, baseIndex, baseIndex+2, baseIndex+3)
}

// Interleaved flattens the vertices into the FloatsPerVertex layout
func (m *Mesh) Interleaved() []float32 {
	return interleave(m.Vertices)
}

func interleave(vertices []Vertex) []float32 {
	data := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		data = append(data,
			v.Position[0], v.Position[1], v.Position[2],
			v.Color[0], v.Color[1], v.Color[2])
	}
	return data
}

// BuildMesh turns every wall of the scene into a flat-colored quad
func BuildMesh(scene *Scene) *Mesh {
	mesh := NewMesh()
	for _, wall := range scene.walls {
		corners := wall.Quad()

		var face Face
		for i, corner := range corners {
			face.Vertices[i] = Vertex{Position: corner, Color: wall.Color}
		}
		mesh.AddFace(face)
	}
	return mesh
}

// Background colors
var (
	SkyColor    = mgl32.Vec3{0.0, 0.0, 1.0}
	GroundColor = mgl32.Vec3{0.0, 0.4, 0.0}
)

// BackgroundMesh returns the two-tone backdrop in normalized device
// coordinates: sky over the upper half, ground over the lower half
func BackgroundMesh() *Mesh {
	quad := func(bottom, top float32, color mgl32.Vec3) Face {
		return Face{Vertices: [4]Vertex{
			{Position: mgl32.Vec3{-1, bottom, 0}, Color: color},
			{Position: mgl32.Vec3{1, bottom, 0}, Color: color},
			{Position: mgl32.Vec3{1, top, 0}, Color: color},
			{Position: mgl32.Vec3{-1, top, 0}, Color: color},
		}}
	}

	mesh := NewMesh()
	mesh.AddFace(quad(0, 1, SkyColor))
	mesh.AddFace(quad(-1, 0, GroundColor))
	return mesh
}

// AxesVertices returns three unit line segments from the origin:
// X red, Y green, Z blue. Pairs are drawn as lines.
func AxesVertices() []float32 {
	red := mgl32.Vec3{1, 0, 0}
	green := mgl32.Vec3{0, 1, 0}
	blue := mgl32.Vec3{0, 0, 1}

	return interleave([]Vertex{
		{Position: mgl32.Vec3{0, 0, 0}, Color: red},
		{Position: mgl32.Vec3{1, 0, 0}, Color: red},
		{Position: mgl32.Vec3{0, 0, 0}, Color: green},
		{Position: mgl32.Vec3{0, 1, 0}, Color: green},
		{Position: mgl32.Vec3{0, 0, 0}, Color: blue},
		{Position: mgl32.Vec3{0, 0, 1}, Color: blue},
	})
}
