// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/gldemos/internal/engine/lighting"
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/internal/engine/shader"
	"github.com/Faultbox/gldemos/internal/logger"
	"github.com/Faultbox/gldemos/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
	// CullFaces enables back-face culling. Interior meshes rely on their
	// reversed winding when it is on.
	CullFaces bool
}

// DefaultClearColor is a dark blue-gray background.
var DefaultClearColor = [4]float32{0.1, 0.1, 0.15, 1.0}

// Renderer owns the Phong program and issues all draw calls.
type Renderer struct {
	config  Config
	program *shader.Program
	log     *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if cfg.CullFaces {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}
	c := cfg.ClearColor
	if c == ([4]float32{}) {
		c = DefaultClearColor
	}
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewProgram(shader.PhongVertex, shader.PhongFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.program != nil {
		r.program.Delete()
	}
}

// Uniforms exposes the active program's named parameters.
func (r *Renderer) Uniforms() shader.Uniforms {
	return r.program
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns width/height, or 1 for a degenerate viewport.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin clears the frame and binds the program.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

// SetCamera uploads view, projection and the eye position used for specular.
func (r *Renderer) SetCamera(view, projection math.Mat4, eye math.Vec3) {
	r.program.SetMat4(shader.UniformView, view)
	r.program.SetMat4(shader.UniformProjection, projection)
	r.program.SetVec3(shader.UniformViewPos, eye)
}

// SetLighting uploads the light and material parameters.
func (r *Renderer) SetLighting(light lighting.Light, material lighting.Material) {
	r.program.SetVec3(shader.UniformLightColor, light.Color)
	r.program.SetVec3(shader.UniformLightPos, light.Position)
	r.program.SetFloat(shader.UniformShininess, material.Shininess)
	r.program.SetFloat(shader.UniformAmbient, material.Ambient)
	r.program.SetFloat(shader.UniformDiffuse, material.Diffuse)
	r.program.SetFloat(shader.UniformSpecular, material.Specular)
}

// Draw renders an uploaded mesh with the given model matrix.
func (r *Renderer) Draw(m *Mesh, model math.Mat4) {
	r.program.SetInt(shader.UniformUnlit, 0)
	r.program.SetMat4(shader.UniformModel, model)
	r.program.SetMat3(shader.UniformNormal, model.NormalMatrix())
	m.draw()
}

// DrawUnlit renders a mesh with vertex colours only.
func (r *Renderer) DrawUnlit(m *Mesh, model math.Mat4) {
	r.program.SetInt(shader.UniformUnlit, 1)
	r.program.SetMat4(shader.UniformModel, model)
	r.program.SetMat3(shader.UniformNormal, model.NormalMatrix())
	m.draw()
}

// DrawLines renders line vertices in world space, unlit.
func (r *Renderer) DrawLines(l *Lines) {
	if l.count == 0 {
		return
	}
	r.program.SetInt(shader.UniformUnlit, 1)
	r.program.SetMat4(shader.UniformModel, math.Identity())
	gl.BindVertexArray(l.vao)
	gl.DrawArrays(gl.LINES, 0, l.count)
}

// ReadPixels returns the framebuffer as bottom-up RGBA.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// setupAttributes describes the mesh vertex layout on the bound VAO.
func setupAttributes() {
	stride := int32(mesh.Stride * 4)
	gl.VertexAttribPointerWithOffset(0, mesh.PositionSize, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, mesh.ColorSize, gl.FLOAT, false, stride, uintptr(mesh.PositionSize*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, mesh.NormalSize, gl.FLOAT, false, stride, uintptr((mesh.PositionSize+mesh.ColorSize)*4))
	gl.EnableVertexAttribArray(2)
}
