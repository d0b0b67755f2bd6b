package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/open-hmi/hmi"
)

// GLFWInputAdapter adapts GLFW input to hmi.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *hmi.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  hmi.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update updates the input state for a new frame.
// Call this at the start of each frame, after glfw.PollEvents, with
// the frame's delta time.
func (a *GLFWInputAdapter) Update(deltaTime float32) *hmi.InputState {
	a.input.Advance(deltaTime)

	// Update mouse position
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	return a.input
}

// Reset clears per-frame input state. Call after the frame is drawn,
// before the next glfw.PollEvents.
func (a *GLFWInputAdapter) Reset() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *hmi.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	hmiKey := glfwKeyToHMIKey(key)
	if hmiKey == hmi.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(hmiKey, true)
	case glfw.Release:
		a.input.SetKey(hmiKey, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	hmiButton := glfwMouseButtonToHMI(button)
	if hmiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(hmiButton, true)
	case glfw.Release:
		a.input.SetMouseButton(hmiButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToHMIKey maps GLFW keys to hmi keys.
func glfwKeyToHMIKey(key glfw.Key) hmi.Key {
	switch key {
	case glfw.KeySpace:
		return hmi.KeySpace
	case glfw.KeyEnter:
		return hmi.KeyEnter
	case glfw.KeyEscape:
		return hmi.KeyEscape
	case glfw.KeyHome:
		return hmi.KeyHome
	case glfw.KeyEnd:
		return hmi.KeyEnd
	case glfw.KeyLeft:
		return hmi.KeyLeft
	case glfw.KeyRight:
		return hmi.KeyRight
	default:
		return hmi.KeyNone
	}
}

// glfwMouseButtonToHMI maps GLFW mouse buttons to hmi mouse buttons.
func glfwMouseButtonToHMI(button glfw.MouseButton) hmi.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return hmi.MouseButtonLeft
	case glfw.MouseButtonRight:
		return hmi.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return hmi.MouseButtonMiddle
	default:
		return -1
	}
}
