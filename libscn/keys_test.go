package libscn_test

import (
	"quad-collide/libscn"
	"testing"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		name   string
		should libscn.Key
	}{
		{"w", libscn.KeyW},
		{"W", libscn.KeyW},
		{"a", libscn.KeyA},
		{"7", libscn.Key('7')},
		{"Up", libscn.KeyUp},
		{"DOWN", libscn.KeyDown},
		{" left ", libscn.KeyLeft},
		{"right", libscn.KeyRight},
		{"f1", libscn.KeyF1},
	}
	for _, c := range cases {
		is, err := libscn.ParseKey(c.name)
		if err != nil {
			t.Errorf("ParseKey(%q) failed: %v", c.name, err)
			continue
		}
		if is != c.should {
			t.Errorf("ParseKey(%q) should be %d but is %d", c.name, c.should, is)
		}
	}
}

func TestParseKeyUnknown(t *testing.T) {
	for _, name := range []string{"", "?", "ctrl", "f13"} {
		if key, err := libscn.ParseKey(name); err == nil {
			t.Errorf("ParseKey(%q) should fail but is %v", name, key)
		}
	}
}

func TestKeyStringRoundTrip(t *testing.T) {
	for _, key := range []libscn.Key{libscn.KeyW, libscn.KeyUp, libscn.KeyF1, libscn.KeyKP4, libscn.KeySpace} {
		parsed, err := libscn.ParseKey(key.String())
		if err != nil || parsed != key {
			t.Errorf("%d prints as %q which parses to %d (%v)", key, key.String(), parsed, err)
		}
	}
}

func TestControlsHeld(t *testing.T) {
	window := &fakeWindow{held: map[libscn.Key]bool{libscn.KeyUp: true, libscn.KeyRight: true, libscn.KeyW: true}}
	controls := libscn.Defaults().Players[1].Controls

	held := controls.Held(window)
	if !held.Up || held.Down || held.Left || !held.Right {
		t.Errorf("should hold up and right but holds %+v", held)
	}
	if !held.Diagonal() {
		t.Errorf("up and right together should count as diagonal")
	}
}
