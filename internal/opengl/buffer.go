package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"model-viewer/scene"
)

// VertexArray is an uploaded Mesh: one VBO holding the interleaved floats and
// the VAO describing them.
type VertexArray struct {
	VAO   uint32
	VBO   uint32
	Count int32 // vertices to draw
}

// UploadMesh copies mesh into a static vertex buffer and configures
// attribute 0 as vec3 position and attribute 1 as vec2 texture coordinate.
// Both objects are registered with res.
func UploadMesh(mesh *scene.Mesh, res *Resources) (*VertexArray, error) {
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("upload mesh: %w", err)
	}

	va := &VertexArray{Count: int32(mesh.VertexCount())}

	gl.GenVertexArrays(1, &va.VAO)
	res.Add("vertex array", func() { gl.DeleteVertexArrays(1, &va.VAO) })
	gl.GenBuffers(1, &va.VBO)
	res.Add("vertex buffer", func() { gl.DeleteBuffers(1, &va.VBO) })

	gl.BindVertexArray(va.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, va.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*scene.FloatSize,
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	// location 0: position (vec3)
	gl.VertexAttribPointer(0, scene.PositionComponents, gl.FLOAT, false,
		scene.VertexStrideBytes, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// location 1: texture coordinate (vec2)
	gl.VertexAttribPointer(1, scene.TexCoordComponents, gl.FLOAT, false,
		scene.VertexStrideBytes, gl.PtrOffset(scene.TexCoordOffset))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return va, nil
}

// Draw issues a non-indexed triangle-list draw over the whole buffer.
func (va *VertexArray) Draw() {
	gl.BindVertexArray(va.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, va.Count)
}
