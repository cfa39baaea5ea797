package renderer

import (
	"fmt"

	"cube-renderer/scene"
)

// Texture is a 2D RGBA texture uploaded to the device.
type Texture struct {
	dev           Device
	id            uint32
	width, height int
	released      bool
}

// UploadTexture copies tex to the device with mipmapped linear filtering and
// the given wrap mode. The texture is left unbound.
func UploadTexture(dev Device, tex *scene.Texture, wrap WrapMode) (*Texture, error) {
	if tex == nil {
		return nil, fmt.Errorf("nil texture")
	}
	if tex.Width <= 0 || tex.Height <= 0 || len(tex.Pixels) != tex.Width*tex.Height*4 {
		return nil, fmt.Errorf("texture %q: %dx%d with %d bytes of pixel data", tex.Name, tex.Width, tex.Height, len(tex.Pixels))
	}

	id := dev.GenTexture()
	dev.BindTexture(id)
	dev.SetTextureParams(wrap)
	dev.TexImageRGBA(int32(tex.Width), int32(tex.Height), tex.Pixels)
	dev.GenerateMipmap()
	dev.BindTexture(0)

	return &Texture{dev: dev, id: id, width: tex.Width, height: tex.Height}, nil
}

// ParseWrapMode maps the config spelling of a wrap mode.
func ParseWrapMode(s string) (WrapMode, error) {
	switch s {
	case "", "repeat":
		return WrapRepeat, nil
	case "mirrored_repeat":
		return WrapMirroredRepeat, nil
	}
	return WrapRepeat, fmt.Errorf("unknown wrap mode %q", s)
}

func (t *Texture) ID() uint32 { return t.id }

func (t *Texture) Size() (int, int) { return t.width, t.height }

// Release deletes the texture. Calls after the first do nothing.
func (t *Texture) Release() {
	if t.released {
		return
	}
	t.released = true
	t.dev.DeleteTexture(t.id)
}
