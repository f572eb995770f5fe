package libutil

const InvalidAddress uintptr = 0xffff_ffff_ffff_ffff

type Deleter interface {
	Delete()
}

// DeleterFunc adapts a plain function, such as glfw.Terminate, to a Deleter.
type DeleterFunc func()

func (fn DeleterFunc) Delete() {
	fn()
}
