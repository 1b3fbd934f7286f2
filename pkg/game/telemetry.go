package game

import "fmt"

// Telemetry returns the overlay lines for the camera's position and orientation
func Telemetry(c *Camera) []string {
	pos := c.Position()
	yaw, pitch := c.Orientation()
	return []string{
		fmt.Sprintf("Pos: (%.2f, %.2f, %.2f)", pos.X(), pos.Y(), pos.Z()),
		fmt.Sprintf("Yaw: %.2f°", yaw),
		fmt.Sprintf("Pitch: %.2f°", pitch),
	}
}
