package libgl_test

import (
	"fmt"
	"os"
	"runtime"
	"testing"
	"unsafe"

	"quad-collide/libgl"
	"quad-collide/libutil"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var onMain chan func()
var onMainDone chan struct{}

var context *glfw.Window

func TestMain(m *testing.M) {
	runtime.LockOSThread()

	if err := setup(); err != nil {
		fmt.Printf("no OpenGL context, GL tests are skipped: %v\n", err)
	}

	onMain = make(chan func())
	onMainDone = make(chan struct{})

	var code int
	go func() {
		code = m.Run()
		close(onMain)
	}()

	for fn := range onMain {
		fn()
		onMainDone <- struct{}{}
	}

	if context != nil {
		context.Destroy()
		glfw.Terminate()
	}
	os.Exit(code)
}

func setup() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	ctx, err := glfw.CreateWindow(64, 64, "Testing Window", nil, nil)
	if err != nil {
		glfw.Terminate()
		return err
	}
	ctx.MakeContextCurrent()

	err = gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
		addr := glfw.GetProcAddress(name)
		if addr == nil {
			return unsafe.Pointer(libutil.InvalidAddress)
		}
		return addr
	})
	if err != nil {
		ctx.Destroy()
		glfw.Terminate()
		return err
	}

	context = ctx
	libgl.State = libgl.NewStateManager()
	return nil
}

// runOnMain runs fn on the thread that owns the context.
// fn must not call t.Fatal or t.Skip.
func runOnMain(fn func()) {
	onMain <- fn
	<-onMainDone
}

func requireContext(t *testing.T) {
	t.Helper()
	if context == nil {
		t.Skip("no OpenGL context")
	}
}

func checkGlError(t *testing.T) {
	t.Helper()
	if code := gl.GetError(); code != gl.NO_ERROR {
		t.Errorf("gl error should be %#x but is %#x", gl.NO_ERROR, code)
	}
}
