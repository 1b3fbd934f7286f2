package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-maze/pkg/game"
)

// keyMap translates GLFW keys into controller keys
var keyMap = map[glfw.Key]game.Key{
	glfw.KeyW:      game.KeyW,
	glfw.KeyA:      game.KeyA,
	glfw.KeyS:      game.KeyS,
	glfw.KeyD:      game.KeyD,
	glfw.KeyQ:      game.KeyQ,
	glfw.KeyE:      game.KeyE,
	glfw.KeyLeft:   game.KeyLeft,
	glfw.KeyRight:  game.KeyRight,
	glfw.KeyUp:     game.KeyUp,
	glfw.KeyDown:   game.KeyDown,
	glfw.KeyEscape: game.KeyEscape,
}

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// Shader attribute layouts
var (
	colorLayout   = []int32{3, 3} // position, color
	overlayLayout = []int32{2, 2} // position, texture coordinates
)
