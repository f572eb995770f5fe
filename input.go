package main

import (
	"quad-collide/libscn"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type InputManager interface {
	TimeDelta() float32
	IsKeyDown(key libscn.Key) bool
	IsKeyTap(key libscn.Key) bool
	Update(ctx *glfw.Window)
}

type input struct {
	curr inputState
	prev inputState
}

type inputState struct {
	time float32
	keys []bool
}

func NewInputManager(ctx *glfw.Window) *input {
	i := &input{
		curr: inputState{
			keys: make([]bool, glfw.KeyLast+1),
		},
		prev: inputState{
			keys: make([]bool, glfw.KeyLast+1),
		},
	}

	i.Update(ctx)
	// Make sure dTime != 0 to avoid possible errors
	i.prev.time = i.curr.time - 1./60.
	copy(i.prev.keys, i.curr.keys)

	return i
}

func (i *input) TimeDelta() float32 {
	return i.curr.time - i.prev.time
}

func (i *input) IsKeyDown(key libscn.Key) bool {
	if key < 0 || int(key) >= len(i.curr.keys) {
		return false
	}
	return i.curr.keys[key]
}

func (i *input) IsKeyTap(key libscn.Key) bool {
	if key < 0 || int(key) >= len(i.curr.keys) {
		return false
	}
	return i.curr.keys[key] && !i.prev.keys[key]
}

func (i *input) Update(ctx *glfw.Window) {
	keys := i.prev.keys
	i.prev = i.curr

	for key := int(glfw.KeySpace); key <= int(glfw.KeyLast); key++ {
		keys[key] = ctx.GetKey(glfw.Key(key)) != glfw.Release
	}

	i.curr = inputState{
		time: float32(glfw.GetTime()),
		keys: keys,
	}
}
