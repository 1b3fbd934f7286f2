package maze

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Wall colors
var (
	Gray  = mgl32.Vec3{0.5, 0.5, 0.5}
	Red   = mgl32.Vec3{1.0, 0.2, 0.2}
	Green = mgl32.Vec3{0.2, 1.0, 0.2}
)

// PartitionOffset is the distance of the interior walls from the room center
const PartitionOffset = 2.0

// RoomBounds describes the outer walls of the room
type RoomBounds struct {
	Width  float32
	Height float32
	Depth  float32
}

// DefaultRoom returns the stock 10x6x10 room
func DefaultRoom() RoomBounds {
	return RoomBounds{Width: 10, Height: 6, Depth: 10}
}

// Validate checks that the room is non-degenerate and large enough to
// contain the interior partitions
func (b RoomBounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 || b.Depth <= 0 {
		return fmt.Errorf("room dimensions must be positive, got %vx%vx%v", b.Width, b.Height, b.Depth)
	}
	if b.Width/2 <= PartitionOffset || b.Depth/2 <= PartitionOffset {
		return fmt.Errorf("room %vx%v is too small for partitions at ±%v", b.Width, b.Depth, PartitionOffset)
	}
	return nil
}

// WallSegment is a vertical rectangle standing on the floor between two points
type WallSegment struct {
	Start  mgl32.Vec3
	End    mgl32.Vec3
	Height float32
	Color  mgl32.Vec3
}

// Quad returns the wall corners bottom-start, bottom-end, top-end, top-start
func (w WallSegment) Quad() [4]mgl32.Vec3 {
	up := mgl32.Vec3{0, w.Height, 0}
	return [4]mgl32.Vec3{
		w.Start,
		w.End,
		w.End.Add(up),
		w.Start.Add(up),
	}
}

// Length returns the horizontal extent of the wall
func (w WallSegment) Length() float32 {
	return w.End.Sub(w.Start).Len()
}

// Scene is the fixed set of walls. It is read-only after construction.
type Scene struct {
	bounds RoomBounds
	walls  []WallSegment
}

// NewScene builds the room perimeter and the four interior partitions
func NewScene(bounds RoomBounds) (*Scene, error) {
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid room: %w", err)
	}

	hw, hd, h := bounds.Width/2, bounds.Depth/2, bounds.Height
	const p = PartitionOffset

	wall := func(x0, z0, x1, z1 float32, color mgl32.Vec3) WallSegment {
		return WallSegment{
			Start:  mgl32.Vec3{x0, 0, z0},
			End:    mgl32.Vec3{x1, 0, z1},
			Height: h,
			Color:  color,
		}
	}

	walls := []WallSegment{
		// Outer walls
		wall(-hw, -hd, hw, -hd, Gray), // Front
		wall(-hw, hd, hw, hd, Gray),   // Back
		wall(-hw, -hd, -hw, hd, Gray), // Left
		wall(hw, -hd, hw, hd, Gray),   // Right

		// Interior partitions
		wall(-p, -p, -p, p, Red),
		wall(p, -p, p, p, Red),
		wall(-p, -p, p, -p, Green),
		wall(-p, p, p, p, Green),
	}

	return &Scene{bounds: bounds, walls: walls}, nil
}

// Bounds returns the room dimensions
func (s *Scene) Bounds() RoomBounds {
	return s.bounds
}

// Walls returns a copy of the wall list in construction order
func (s *Scene) Walls() []WallSegment {
	walls := make([]WallSegment, len(s.walls))
	copy(walls, s.walls)
	return walls
}

// Len returns the number of walls
func (s *Scene) Len() int {
	return len(s.walls)
}
