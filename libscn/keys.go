package libscn

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key. The values are the GLFW key tokens, so a Key
// converts directly to glfw.Key.
type Key int

const (
	KeyUnknown Key = -1
	KeySpace   Key = 32
	KeyA       Key = 65
	KeyD       Key = 68
	KeyS       Key = 83
	KeyW       Key = 87
	KeyEscape  Key = 256
	KeyRight   Key = 262
	KeyLeft    Key = 263
	KeyDown    Key = 264
	KeyUp      Key = 265
	KeyF1      Key = 290
	KeyKP2     Key = 322
	KeyKP4     Key = 324
	KeyKP6     Key = 326
	KeyKP8     Key = 328
)

var keyNames = map[string]Key{
	"space":  KeySpace,
	"escape": KeyEscape,
	"right":  KeyRight,
	"left":   KeyLeft,
	"down":   KeyDown,
	"up":     KeyUp,
	"f1":     KeyF1,
	"kp2":    KeyKP2,
	"kp4":    KeyKP4,
	"kp6":    KeyKP6,
	"kp8":    KeyKP8,
}

// ParseKey accepts a single letter or digit, or one of the named keys
// (up, down, left, right, space, escape, f1, kp2, kp4, kp6, kp8).
// Case is ignored.
func ParseKey(name string) (Key, error) {
	name = strings.TrimSpace(name)
	if len(name) == 1 {
		c := strings.ToUpper(name)[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			// GLFW uses ASCII codes for printable keys
			return Key(c), nil
		}
	}
	if key, ok := keyNames[strings.ToLower(name)]; ok {
		return key, nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

func (k Key) String() string {
	if (k >= 'A' && k <= 'Z') || (k >= '0' && k <= '9') {
		return string(rune(k))
	}
	for name, key := range keyNames {
		if key == k {
			return strings.ToUpper(name[:1]) + name[1:]
		}
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// UnmarshalText lets config files spell keys by name.
func (k *Key) UnmarshalText(text []byte) error {
	key, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = key
	return nil
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// KeyState reports whether a key is currently held.
type KeyState interface {
	IsKeyDown(key Key) bool
}
