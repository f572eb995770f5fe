package libscn

import "quad-collide/libutil"

type LoopState int

const (
	Running LoopState = iota
	ClosingRequested
	Terminated
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "running"
	case ClosingRequested:
		return "closing"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

type Window interface {
	KeyState
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

// Overlay is drawn on top of the scene, after both quads.
type Overlay interface {
	Draw(loop *Loop)
}

type Loop struct {
	Window   Window
	Renderer Renderer
	Scene    *Scene
	Overlay  Overlay
	// Released once the loop has terminated.
	Teardown libutil.Deleter

	state  LoopState
	frames uint64
}

func NewLoop(window Window, renderer Renderer, scene *Scene) *Loop {
	return &Loop{
		Window:   window,
		Renderer: renderer,
		Scene:    scene,
		state:    Running,
	}
}

func (l *Loop) State() LoopState {
	return l.state
}

// Frames is the number of frames presented so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run blocks until the window asks to close, then releases Teardown.
func (l *Loop) Run() {
	for l.state == Running {
		if l.Window.ShouldClose() {
			l.state = ClosingRequested
			break
		}
		l.Frame()
	}

	l.state = Terminated
	if l.Teardown != nil {
		l.Teardown.Delete()
	}
}

func (l *Loop) Frame() {
	l.Renderer.Clear()
	l.Renderer.Begin()
	l.Scene.Step(l.Window, l.Renderer)
	if l.Overlay != nil {
		l.Overlay.Draw(l)
	}
	l.Window.SwapBuffers()
	l.Window.PollEvents()
	l.frames++
}
