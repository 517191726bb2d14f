package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/gldemos/internal/engine/mesh"
)

// Mesh is indexed geometry resident on the GPU.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Upload copies mesh data into new GPU buffers.
func (r *Renderer) Upload(d mesh.Data) (*Mesh, error) {
	if len(d.Vertices) == 0 || len(d.Indices) == 0 {
		return nil, fmt.Errorf("upload: empty mesh")
	}
	if len(d.Vertices)%mesh.Stride != 0 {
		return nil, fmt.Errorf("upload: %d floats is not a multiple of stride %d", len(d.Vertices), mesh.Stride)
	}

	m := &Mesh{count: int32(len(d.Indices))}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*4, gl.Ptr(d.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, gl.Ptr(d.Indices), gl.STATIC_DRAW)

	setupAttributes()

	gl.BindVertexArray(0)
	r.log.Debug("mesh uploaded",
		zap.Uint32("vao", m.vao),
		zap.Int("indices", len(d.Indices)),
	)
	return m, nil
}

func (m *Mesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	if m == nil {
		return
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = Mesh{}
}

// Lines is a dynamic line list, refilled every frame it is drawn.
type Lines struct {
	vao, vbo uint32
	count    int32
	color    mesh.Color
	scratch  []float32
}

// NewLines allocates an empty line buffer drawn in a single colour.
func (r *Renderer) NewLines(color mesh.Color) *Lines {
	l := &Lines{color: color}
	gl.GenVertexArrays(1, &l.vao)
	gl.BindVertexArray(l.vao)
	gl.GenBuffers(1, &l.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	setupAttributes()
	gl.BindVertexArray(0)
	return l
}

// Set replaces the line vertices. positions holds x, y, z per vertex.
func (l *Lines) Set(positions []float32) {
	l.scratch = expandLines(l.scratch[:0], positions, l.color)
	l.count = int32(len(positions) / 3)
	if l.count == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(l.scratch)*4, gl.Ptr(l.scratch), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Delete releases the GPU buffers.
func (l *Lines) Delete() {
	if l == nil {
		return
	}
	if l.vbo != 0 {
		gl.DeleteBuffers(1, &l.vbo)
	}
	if l.vao != 0 {
		gl.DeleteVertexArrays(1, &l.vao)
	}
	*l = Lines{}
}

// expandLines widens bare positions to the full vertex layout. Normals are
// zero; line drawing is unlit.
func expandLines(dst, positions []float32, c mesh.Color) []float32 {
	for i := 0; i+2 < len(positions); i += 3 {
		dst = append(dst,
			positions[i], positions[i+1], positions[i+2],
			c[0], c[1], c[2], c[3],
			0, 0, 0,
		)
	}
	return dst
}
