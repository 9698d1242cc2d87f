package opengl

import (
	"fmt"
	"log/slog"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"model-viewer/scene"
)

// LoadTexture decodes an image file and uploads it. A file that cannot be
// read or decoded is logged and replaced by a 1x1 white texture so the mesh
// still renders.
func LoadTexture(path string, flipY bool, res *Resources) (uint32, error) {
	tex, err := scene.LoadTexture(path, flipY)
	if err != nil {
		slog.Warn("texture unavailable, using white", "path", path, "error", err)
		tex = scene.NewSolidTexture("white", 255, 255, 255, 255)
	}
	return UploadTexture(tex, res)
}

// UploadTexture uploads a scene.Texture to the GPU and returns the texture
// object, registered with res. The OpenGL context must be current.
func UploadTexture(tex *scene.Texture, res *Resources) (uint32, error) {
	if tex == nil {
		return 0, fmt.Errorf("nil texture")
	}
	if len(tex.Pixels) == 0 {
		return 0, fmt.Errorf("texture %q has no pixel data", tex.Name)
	}

	var id uint32
	gl.GenTextures(1, &id)
	res.Add("texture "+tex.Name, func() { gl.DeleteTextures(1, &id) })
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(tex.Width),
		int32(tex.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&tex.Pixels[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	slog.Debug("texture uploaded", "name", tex.Name, "width", tex.Width, "height", tex.Height)
	return id, nil
}
