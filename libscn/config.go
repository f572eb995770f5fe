package libscn

import (
	"errors"
	"fmt"

	"quad-collide/libio"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window   WindowConfig    `yaml:"window"`
	Quad     QuadConfig      `yaml:"quad"`
	Movement MovementConfig  `yaml:"movement"`
	Shaders  ShaderConfig    `yaml:"shaders"`
	Overlay  OverlayConfig   `yaml:"overlay"`
	Players  [2]PlayerConfig `yaml:"players"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// OpenGL context version, at least 3.3
	ContextMajor int  `yaml:"context_major"`
	ContextMinor int  `yaml:"context_minor"`
	CoreProfile  bool `yaml:"core_profile"`
	// nil leaves the driver default
	SwapInterval *int       `yaml:"swap_interval"`
	ClearColor   [4]float32 `yaml:"clear_color"`
}

type QuadConfig struct {
	Size float32 `yaml:"size"`
	// units per frame
	Speed float32 `yaml:"speed"`
}

type MovementConfig struct {
	BlockOnCollision  bool `yaml:"block_on_collision"`
	NormalizeDiagonal bool `yaml:"normalize_diagonal"`
}

type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type OverlayConfig struct {
	Visible bool `yaml:"visible"`
	Toggle  Key  `yaml:"toggle"`
}

type PlayerConfig struct {
	Name     string     `yaml:"name"`
	Start    [2]float32 `yaml:"start"`
	Controls Controls   `yaml:"controls"`
}

func Defaults() Config {
	return Config{
		Window: WindowConfig{
			Title:        "Rendering Window",
			Width:        800,
			Height:       800,
			ContextMajor: 3,
			ContextMinor: 3,
			CoreProfile:  true,
			ClearColor:   [4]float32{0.0, 0.15, 0.25, 1.0},
		},
		Quad: QuadConfig{
			Size:  100,
			Speed: 0.15,
		},
		Shaders: ShaderConfig{
			Vertex:   "resources/shaders/vertex.shader",
			Fragment: "resources/shaders/fragment.shader",
		},
		Overlay: OverlayConfig{
			Toggle: KeyF1,
		},
		Players: [2]PlayerConfig{
			{
				Name:     "A",
				Start:    [2]float32{0, 0},
				Controls: Controls{Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD},
			},
			{
				Name:     "B",
				Start:    [2]float32{0, 100},
				Controls: Controls{Up: KeyUp, Down: KeyDown, Left: KeyLeft, Right: KeyRight},
			},
		},
	}
}

// LoadConfig reads a YAML file on top of Defaults. Fields absent from the file
// keep their default value.
func LoadConfig(path string) (Config, error) {
	config := Defaults()
	text, err := libio.LoadText(path)
	if err != nil {
		return config, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal([]byte(text), &config); err != nil {
		return config, fmt.Errorf("parse config %v: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config %v: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	w, h := float32(c.Window.Width), float32(c.Window.Height)

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, is %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.ContextMajor < 3 || (c.Window.ContextMajor == 3 && c.Window.ContextMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL context must be at least 3.3, is %d.%d", c.Window.ContextMajor, c.Window.ContextMinor))
	}
	if !(c.Quad.Size > 0) {
		errs = append(errs, fmt.Errorf("quad size must be positive, is %v", c.Quad.Size))
	} else if c.Quad.Size > w || c.Quad.Size > h {
		errs = append(errs, fmt.Errorf("quad size %v does not fit a %dx%d window", c.Quad.Size, c.Window.Width, c.Window.Height))
	}
	if !(c.Quad.Speed > 0) || math32.IsInf(c.Quad.Speed, 1) {
		errs = append(errs, fmt.Errorf("quad speed must be positive and finite, is %v", c.Quad.Speed))
	}

	var bound []Key
	for _, player := range c.Players {
		pos := mgl32.Vec2(player.Start)
		if !InBounds(pos, c.Quad.Size, mgl32.Vec2{w, h}) {
			errs = append(errs, fmt.Errorf("quad %v starts out of bounds at %v", player.Name, player.Start))
		}
		for _, key := range player.Controls.Keys() {
			if key <= 0 {
				errs = append(errs, fmt.Errorf("quad %v has an unbound control", player.Name))
				continue
			}
			if slices.Contains(bound, key) {
				errs = append(errs, fmt.Errorf("key %v is bound more than once", key))
			}
			bound = append(bound, key)
		}
	}
	if c.Overlay.Toggle > 0 && slices.Contains(bound, c.Overlay.Toggle) {
		errs = append(errs, fmt.Errorf("overlay toggle %v is also a movement key", c.Overlay.Toggle))
	}

	return errors.Join(errs...)
}
