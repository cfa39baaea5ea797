package scene

// Color is a linear RGBA colour with float components in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	// ColorTeal is the clear colour of the demo window.
	ColorTeal = Color{0.2, 0.3, 0.3, 1}
)

// RGBA8 converts the colour to 8-bit channels, clamping out-of-range values.
func (c Color) RGBA8() [4]byte {
	return [4]byte{toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)}
}

func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
