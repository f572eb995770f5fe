package main

import (
	"fmt"
	"log"
	"runtime"
	"unsafe"

	"quad-collide/libscn"
	"quad-collide/libutil"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// initGLFW creates the window and makes its context current. Everything it
// creates is registered with scope, including glfw.Terminate.
func initGLFW(cfg libscn.WindowConfig, scope *libutil.Scope) (*glfw.Window, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}
	scope.DeferFunc(glfw.Terminate)

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextMinor)
	if cfg.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	}

	ctx, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	scope.DeferFunc(ctx.Destroy)
	ctx.MakeContextCurrent()
	if cfg.SwapInterval != nil {
		glfw.SwapInterval(*cfg.SwapInterval)
	}

	return ctx, nil
}

// initGL loads the GL functions for the current context and returns the
// viewport size in pixels.
func initGL() (width, height int, err error) {
	err = gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
		addr := glfw.GetProcAddress(name)
		if addr == nil {
			return unsafe.Pointer(libutil.InvalidAddress)
		}
		return addr
	})
	if err != nil {
		return 0, 0, fmt.Errorf("init gl: %w", err)
	}

	log.Printf("OpenGL %v on %v\n", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	dims := [4]int32{}
	gl.GetIntegerv(gl.VIEWPORT, &dims[0])
	return int(dims[2]), int(dims[3]), nil
}

// glfwWindow presents a GLFW window to the frame loop. Key state is sampled
// once per frame, right after events are polled.
type glfwWindow struct {
	ctx   *glfw.Window
	input InputManager
}

func (w *glfwWindow) IsKeyDown(key libscn.Key) bool {
	return w.input.IsKeyDown(key)
}

func (w *glfwWindow) ShouldClose() bool {
	return w.ctx.ShouldClose()
}

func (w *glfwWindow) SwapBuffers() {
	w.ctx.SwapBuffers()
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
	w.input.Update(w.ctx)
}
