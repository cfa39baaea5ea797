package input

// Key is a keyboard key. Values mirror GLFW key codes so the window layer can
// convert with a plain cast.
type Key int

const (
	KeyUnknown   Key = -1
	KeySpace     Key = 32
	KeyA         Key = 65
	KeyD         Key = 68
	KeyE         Key = 69
	KeyQ         Key = 81
	KeyS         Key = 83
	KeyW         Key = 87
	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyF5        Key = 294
	KeyF9        Key = 298
	KeyLeftShift Key = 340
)

// KeyState reports whether a key is currently held down.
type KeyState interface {
	IsKeyDown(key Key) bool
}

// KeySet is a KeyState backed by a set, used where keys are tracked from
// events rather than polled from a window.
type KeySet map[Key]bool

func (s KeySet) IsKeyDown(key Key) bool { return s[key] }
