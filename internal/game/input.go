//go:build !android

package game

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"bunnyrun/internal/runner"
)

// Input samples the keyboard and cursor once per frame.
type Input struct {
	pointer     bool
	prevKeys    map[glfw.Key]bool
	prevCursorX float64
	cursorSeen  bool
}

func NewInput(pointer bool) *Input {
	return &Input{
		pointer:  pointer,
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func held(window *glfw.Window, key glfw.Key) bool {
	return window.GetKey(key) == glfw.Press
}

// Sample builds the runner input for this frame. A/D move, X rolls, R
// restarts. With pointer control on, a cursor that moved since the last
// frame sets the lateral position directly.
func (in *Input) Sample(window *glfw.Window) runner.Input {
	ri := runner.Input{
		MoveLeft:  held(window, glfw.KeyA),
		MoveRight: held(window, glfw.KeyD),
		Roll:      held(window, glfw.KeyX),
		Restart:   in.JustPressed(window, glfw.KeyR),
	}
	if !in.pointer {
		return ri
	}

	cx, _ := window.GetCursorPos()
	moved := !in.cursorSeen || math.Abs(cx-in.prevCursorX) > 0.5
	in.prevCursorX = cx
	in.cursorSeen = true
	winW, _ := window.GetSize()
	if moved && winW > 0 {
		ri.Pointer = runner.Pointer{Active: true, T: cx / float64(winW)}
	}
	return ri
}
