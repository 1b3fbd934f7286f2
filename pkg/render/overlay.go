package render

import (
	"openglhelper"
	"slices"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-maze/pkg/hud"
)

// Overlay draws text in the top-left corner. The texture is only rebuilt
// when the text changes.
type Overlay struct {
	shader  *openglhelper.Shader
	texture *openglhelper.Texture
	quad    *openglhelper.Mesh
	lines   []string
}

// NewOverlay creates an empty overlay
func NewOverlay() (*Overlay, error) {
	shader, err := openglhelper.NewShader(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, err
	}

	return &Overlay{
		shader:  shader,
		texture: openglhelper.NewTexture(),
	}, nil
}

// SetText replaces the overlay lines
func (o *Overlay) SetText(lines []string) {
	if o.quad != nil && slices.Equal(lines, o.lines) {
		return
	}
	o.lines = append(o.lines[:0], lines...)

	img := hud.Rasterize(lines)
	if img == nil {
		return
	}
	o.texture.Upload(img)

	vertices, indices := hud.Quad(hud.OffsetX, hud.OffsetY, float32(o.texture.Width), float32(o.texture.Height))
	if o.quad != nil {
		o.quad.UpdateVertices(vertices)
		return
	}
	o.quad = openglhelper.NewMesh(vertices, indices, overlayLayout, gl.TRIANGLES, openglhelper.DynamicDraw)
}

// Draw blends the overlay over the frame
func (o *Overlay) Draw(width, height int) {
	if o.quad == nil || len(o.lines) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	// The glyph image carries premultiplied alpha
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetMat4("projection", mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1))
	o.shader.SetInt("glyphs", 0)
	o.texture.Bind(0)
	o.quad.Draw()

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Delete releases GPU resources
func (o *Overlay) Delete() {
	if o.quad != nil {
		o.quad.Delete()
	}
	o.texture.Delete()
	o.shader.Delete()
}
