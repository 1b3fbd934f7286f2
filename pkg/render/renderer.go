package render

import (
	"context"
	_ "embed"
	"fmt"
	"openglhelper"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-maze/pkg/game"
	"github.com/leterax/go-maze/pkg/maze"
	"github.com/rs/zerolog/log"
)

var (
	//go:embed shaders/color.vert
	colorVertexShader string
	//go:embed shaders/color.frag
	colorFragmentShader string
	//go:embed shaders/overlay.vert
	overlayVertexShader string
	//go:embed shaders/overlay.frag
	overlayFragmentShader string
)

// Options configures the window
type Options struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// Renderer owns the window and draws the scene through a camera
type Renderer struct {
	window *openglhelper.Window
	camera *game.Camera

	colorShader *openglhelper.Shader
	background  *openglhelper.Mesh
	walls       *openglhelper.Mesh
	axes        *openglhelper.Mesh
	overlay     *Overlay

	controller *game.Controller
	exit       game.ExitStatus
}

// NewRenderer opens a window and uploads the scene geometry
func NewRenderer(opts Options, scene *maze.Scene, camera *game.Camera) (*Renderer, error) {
	window, err := openglhelper.NewWindow(opts.Width, opts.Height, opts.Title, opts.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	log.Info().Str("version", window.GLVersion()).Msg("OpenGL initialized")

	renderer := &Renderer{
		window: window,
		camera: camera,
	}

	renderer.colorShader, err = openglhelper.NewShader(colorVertexShader, colorFragmentShader)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load color shader: %w", err)
	}

	renderer.overlay, err = NewOverlay()
	if err != nil {
		renderer.colorShader.Delete()
		window.Close()
		return nil, fmt.Errorf("failed to load overlay shader: %w", err)
	}

	background := maze.BackgroundMesh()
	renderer.background = openglhelper.NewMesh(background.Interleaved(), background.Indices, colorLayout, gl.TRIANGLES, openglhelper.StaticDraw)

	walls := maze.BuildMesh(scene)
	renderer.walls = openglhelper.NewMesh(walls.Interleaved(), walls.Indices, colorLayout, gl.TRIANGLES, openglhelper.StaticDraw)

	renderer.axes = openglhelper.NewMesh(maze.AxesVertices(), nil, colorLayout, gl.LINES, openglhelper.StaticDraw)

	log.Debug().Int("walls", scene.Len()).Msg("scene uploaded")

	return renderer, nil
}

// render draws one frame from the current camera state
func (r *Renderer) render() {
	r.window.Clear(mgl32.Vec4{0, 0, 0, 1})

	r.colorShader.Use()

	// Flat backdrop, drawn without depth so the scene always covers it
	gl.Disable(gl.DEPTH_TEST)
	r.colorShader.SetMat4("view", mgl32.Ident4())
	r.colorShader.SetMat4("projection", mgl32.Ident4())
	r.background.Draw()
	gl.Enable(gl.DEPTH_TEST)

	r.colorShader.SetMat4("view", r.camera.ViewMatrix())
	r.colorShader.SetMat4("projection", r.camera.ProjectionMatrix())
	r.walls.Draw()
	r.axes.Draw()

	width, height := r.window.Size()
	r.overlay.SetText(game.Telemetry(r.camera))
	r.overlay.Draw(width, height)
}

// dispatch forwards an event to the controller and handles a quit request
func (r *Renderer) dispatch(ev game.Event) {
	if r.controller == nil {
		return
	}
	if r.exit.Done() {
		return
	}
	if r.exit.Observe(r.controller.HandleEvent(ev)) {
		log.Info().Int("code", r.exit.Code()).Msg("exiting with custom error code")
		r.window.SetShouldClose(true)
	}
}

// Run drives input, fixed-rate movement and drawing until the window closes,
// Escape is pressed or ctx is done. It returns the process exit status.
func (r *Renderer) Run(ctx context.Context, controller *game.Controller, stepper *game.Stepper) int {
	r.controller = controller
	r.exit = game.ExitStatus{}

	glfwWindow := r.window.GLFWWindow()
	glfwWindow.SetKeyCallback(r.keyCallback)
	glfwWindow.SetCursorPosCallback(r.cursorPosCallback)
	glfwWindow.SetMouseButtonCallback(r.mouseButtonCallback)
	glfwWindow.SetFocusCallback(r.focusCallback)
	glfwWindow.SetFramebufferSizeCallback(r.framebufferSizeCallback)

	r.dispatch(game.Resize(r.window.Size()))

	for !r.window.ShouldClose() {
		select {
		case <-ctx.Done():
			log.Info().Err(ctx.Err()).Msg("stopping")
			r.window.SetShouldClose(true)
			continue
		default:
		}

		for steps := stepper.Advance(time.Now()); steps > 0; steps-- {
			controller.Tick()
		}

		r.render()

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Cleanup()
	return r.exit.Code()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	r.overlay.Delete()
	r.axes.Delete()
	r.walls.Delete()
	r.background.Delete()
	r.colorShader.Delete()
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k, ok := keyMap[key]
	if !ok {
		return
	}

	switch action {
	case Press, Repeat:
		r.dispatch(game.KeyPress(k))
	case Release:
		r.dispatch(game.KeyRelease(k))
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	r.dispatch(game.MouseMove(xpos, ypos))
}

func (r *Renderer) mouseButtonCallback(w *glfw.Window, _ glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	x, y := w.GetCursorPos()
	switch action {
	case Press:
		r.dispatch(game.MousePress(x, y))
	case Release:
		r.dispatch(game.MouseRelease(x, y))
	}
}

func (r *Renderer) focusCallback(_ *glfw.Window, focused bool) {
	if focused {
		r.dispatch(game.Focus())
	} else {
		r.dispatch(game.Blur())
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	log.Debug().Int("width", width).Int("height", height).Msg("resized")
	r.window.OnResize(width, height)
	r.dispatch(game.Resize(width, height))
}
