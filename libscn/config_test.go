package libscn_test

import (
	"os"
	"path/filepath"
	"quad-collide/libscn"
	"reflect"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pierrec/lz4/v4"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	config := libscn.Defaults()
	if err := config.Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}
	if config.Window.Width != 800 || config.Window.Height != 800 {
		t.Errorf("default window should be 800x800 but is %dx%d", config.Window.Width, config.Window.Height)
	}
	if config.Quad.Size != 100 || config.Quad.Speed != 0.15 {
		t.Errorf("default quad should be size 100 speed 0.15 but is size %v speed %v", config.Quad.Size, config.Quad.Speed)
	}
	if config.Movement.BlockOnCollision || config.Movement.NormalizeDiagonal {
		t.Errorf("movement options should default to off")
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  title: Overlap
  width: 1024
quad:
  speed: 0.5
movement:
  normalize_diagonal: true
overlay:
  visible: true
  toggle: space
`)
	config, err := libscn.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Window.Title != "Overlap" || config.Window.Width != 1024 {
		t.Errorf("window override not applied: %+v", config.Window)
	}
	if config.Window.Height != 800 {
		t.Errorf("height should keep its default but is %d", config.Window.Height)
	}
	if config.Quad.Speed != 0.5 || config.Quad.Size != 100 {
		t.Errorf("quad should be size 100 speed 0.5 but is %+v", config.Quad)
	}
	if !config.Movement.NormalizeDiagonal {
		t.Errorf("normalize_diagonal should be on")
	}
	if !config.Overlay.Visible || config.Overlay.Toggle != libscn.KeySpace {
		t.Errorf("overlay override not applied: %+v", config.Overlay)
	}
	if config.Players[1].Controls.Up != libscn.KeyUp {
		t.Errorf("player controls should keep their defaults")
	}
}

func TestLoadConfigPlayers(t *testing.T) {
	path := writeConfig(t, `
players:
  - name: left
    start: [10, 20]
    controls: {up: i, down: k, left: j, right: l}
  - name: right
    start: [500, 500]
    controls: {up: kp8, down: kp2, left: kp4, right: kp6}
`)
	config, err := libscn.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	scene := libscn.NewScene(config)
	if scene.Quads[0].Name != "left" || scene.Quads[0].Position != (mgl32.Vec2{10, 20}) {
		t.Errorf("first quad should be left at (10, 20) but is %v at %v", scene.Quads[0].Name, scene.Quads[0].Position)
	}
	if scene.Quads[0].Controls.Left != libscn.Key('J') {
		t.Errorf("left quad should move left with J but uses %v", scene.Quads[0].Controls.Left)
	}
	if scene.Quads[1].Controls.Up != libscn.KeyKP8 {
		t.Errorf("right quad should move up with KP8 but uses %v", scene.Quads[1].Controls.Up)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := libscn.LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil {
		t.Fatal("missing config should fail")
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "overlay:\n  toggle: hyper\n")
	_, err := libscn.LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "hyper") {
		t.Fatalf("unknown key name should fail with its name, got %v", err)
	}
}

func TestLoadConfigLz4(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml.lz4")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	lzw := lz4.NewWriter(file)
	_, err = lzw.Write([]byte("shaders:\n  vertex: resources/shaders/vertex.shader.lz4\n"))
	if err == nil {
		err = lzw.Close()
	}
	file.Close()
	if err != nil {
		t.Fatal(err)
	}

	config, err := libscn.LoadConfig(path)
	if err != nil {
		t.Fatalf("compressed config should load but got %v", err)
	}
	if config.Shaders.Vertex != "resources/shaders/vertex.shader.lz4" {
		t.Errorf("vertex path should be %q but is %q", "resources/shaders/vertex.shader.lz4", config.Shaders.Vertex)
	}
}

func TestLoadConfigRejectsNaNSpeed(t *testing.T) {
	path := writeConfig(t, "quad:\n  speed: .nan\n")
	_, err := libscn.LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "speed") {
		t.Fatalf("a NaN speed should be rejected, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(c *libscn.Config)
		should string
	}{
		{"zero width", func(c *libscn.Config) { c.Window.Width = 0 }, "window size"},
		{"old context", func(c *libscn.Config) { c.Window.ContextMinor = 2 }, "at least 3.3"},
		{"zero size", func(c *libscn.Config) { c.Quad.Size = 0 }, "size must be positive"},
		{"huge quad", func(c *libscn.Config) { c.Quad.Size = 900 }, "does not fit"},
		{"nan size", func(c *libscn.Config) { c.Quad.Size = math32.NaN() }, "size must be positive"},
		{"negative speed", func(c *libscn.Config) { c.Quad.Speed = -1 }, "speed must be positive"},
		{"nan speed", func(c *libscn.Config) { c.Quad.Speed = math32.NaN() }, "speed must be positive"},
		{"infinite speed", func(c *libscn.Config) { c.Quad.Speed = math32.Inf(1) }, "finite"},
		{"start outside", func(c *libscn.Config) { c.Players[1].Start = [2]float32{750, 0} }, "out of bounds"},
		{"shared key", func(c *libscn.Config) { c.Players[1].Controls.Up = libscn.KeyW }, "bound more than once"},
		{"unbound key", func(c *libscn.Config) { c.Players[0].Controls.Left = 0 }, "unbound control"},
		{"toggle clash", func(c *libscn.Config) { c.Overlay.Toggle = libscn.KeyA }, "overlay toggle"},
	}

	for _, c := range cases {
		config := libscn.Defaults()
		c.modify(&config)
		err := config.Validate()
		if err == nil {
			t.Errorf("%v: should be rejected", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.should) {
			t.Errorf("%v: error should mention %q but is %q", c.name, c.should, err)
		}
	}
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	config, err := libscn.LoadConfig("../config.example.yml")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(config, libscn.Defaults()) {
		t.Errorf("config.example.yml drifted from the defaults:\n%+v\n%+v", config, libscn.Defaults())
	}
}
