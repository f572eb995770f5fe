package main

import (
	"flag"
	"log"
	"os"

	"quad-collide/libgl"
	"quad-collide/libscn"
	"quad-collide/libutil"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var Arguments struct {
	ConfigPath                 string
	EnableCompatibilityProfile bool
}

func registerFlags(fs *flag.FlagSet) {
	fs.StringVar(&Arguments.ConfigPath, "config", Arguments.ConfigPath, "path to a YAML config file")
	fs.BoolVar(&Arguments.EnableCompatibilityProfile, "enable-compatibility-profile", Arguments.EnableCompatibilityProfile, "request a compatibility profile context instead of a core profile")
}

func main() {
	registerFlags(flag.CommandLine)
	flag.Parse()

	os.Exit(run())
}

func run() int {
	config := libscn.Defaults()
	if Arguments.ConfigPath != "" {
		var err error
		config, err = libscn.LoadConfig(Arguments.ConfigPath)
		if err != nil {
			log.Printf("%v\n", err)
			return -1
		}
	}
	if Arguments.EnableCompatibilityProfile {
		config.Window.CoreProfile = false
	}

	scope := libutil.NewScope()
	defer scope.Delete()

	ctx, err := initGLFW(config.Window, scope)
	if err != nil {
		log.Printf("%v\n", err)
		return -1
	}
	viewportWidth, viewportHeight, err := initGL()
	if err != nil {
		log.Printf("%v\n", err)
		return -1
	}

	libgl.State = libgl.NewStateManager()
	input := NewInputManager(ctx)

	vert := libgl.CompileShader(config.Shaders.Vertex, gl.VERTEX_SHADER)
	frag := libgl.CompileShader(config.Shaders.Fragment, gl.FRAGMENT_SHADER)
	program := libgl.LinkProgram(vert, frag)
	scope.Defer(program)

	mesh := libgl.NewMesh(libscn.QuadGeometry(config.Quad.Size))
	scope.Defer(mesh)

	renderer := &quadRenderer{
		program:    program,
		mesh:       mesh,
		viewport:   [2]int{viewportWidth, viewportHeight},
		clearColor: config.Window.ClearColor,
	}

	overlay := NewOverlay(ctx, input, config)
	scope.Defer(overlay)

	loop := libscn.NewLoop(&glfwWindow{ctx: ctx, input: input}, renderer, libscn.NewScene(config))
	loop.Overlay = overlay
	loop.Teardown = scope
	loop.Run()

	return 0
}
