package scene

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
)

// ErrEmptyImage is wrapped by AssetLoadError when an image decodes to zero
// width or height.
var ErrEmptyImage = errors.New("image has zero size")

// AssetLoadError reports an asset that could not be read or decoded.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load asset %q: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// Texture holds CPU-side pixel data for a 2D texture.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major, top-to-bottom).
	Pixels []byte
}

// LoadTexture reads a PNG or JPEG file from disk and returns a CPU-side Texture.
// The image is converted to RGBA8 automatically.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	defer f.Close()

	return DecodeTexture(path, f)
}

// DecodeTexture decodes a PNG or JPEG stream into an RGBA8 Texture named name.
func DecodeTexture(name string, r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &AssetLoadError{Path: name, Err: err}
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, &AssetLoadError{Path: name, Err: ErrEmptyImage}
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*bounds.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return &Texture{
		Name:   name,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba.Pix,
	}, nil
}

// FlipVertical reverses the row order in place so the first row is the bottom
// of the image, matching OpenGL's texture origin.
func (t *Texture) FlipVertical() {
	stride := t.Width * 4
	row := make([]byte, stride)
	for top, bottom := 0, t.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := t.Pixels[top*stride : (top+1)*stride]
		b := t.Pixels[bottom*stride : (bottom+1)*stride]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color values (0–255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}

// NewCheckerTexture creates a size x size checkerboard with cells squares per
// side, alternating between colours a and b.
func NewCheckerTexture(name string, size, cells int, a, b Color) *Texture {
	if cells < 1 {
		cells = 1
	}
	if size < cells {
		size = cells
	}
	ca, cb := a.RGBA8(), b.RGBA8()
	cell := size / cells

	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := ca
			if (x/cell+y/cell)%2 == 1 {
				c = cb
			}
			copy(pix[(y*size+x)*4:], c[:])
		}
	}
	return &Texture{Name: name, Width: size, Height: size, Pixels: pix}
}
