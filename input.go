package hmi

import "math"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key. The HMI widgets only consume a small
// set: Space/Enter toggle switches, Escape cancels a drag, Home resets
// a trend view to follow mode.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyEnter
	KeyEscape
	KeyHome
	KeyEnd
	KeyLeft
	KeyRight
	KeyCount
)

// DoubleClickTime is the maximum interval in seconds between two clicks
// for the second one to count as a double-click.
const DoubleClickTime float32 = 0.30

// InputState holds input state for the current frame.
// This is typically populated by the application from GLFW or similar.
//
// The embedding application owns input collection. If samples arrive on
// a separate acquisition thread, that thread must hand them off through
// its own queue; InputState, like everything else in this package, is
// only ever touched from the rendering thread.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown          [MouseButtonCount]bool
	mouseClicked       [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp            [MouseButtonCount]bool // True on the frame button was released
	mouseDoubleClicked [MouseButtonCount]bool

	// Double-click tracking
	lastClickTime [MouseButtonCount]float32
	clock         float32 // Accumulated time, advanced by Advance()

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released
}

// clickTimeNever marks a button with no click on record, so the next
// press can never pair into a double-click regardless of the clock.
var clickTimeNever = float32(math.Inf(-1))

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	s := &InputState{}
	for i := range s.lastClickTime {
		s.lastClickTime[i] = clickTimeNever
	}
	return s
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	for i := range s.mouseDoubleClicked {
		s.mouseDoubleClicked[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyUp {
		s.keyUp[i] = false
	}
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// Advance moves the input clock forward by the frame's delta time.
// Required for double-click detection; call once per frame.
func (s *InputState) Advance(dt float32) {
	s.clock += dt
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
		if s.clock-s.lastClickTime[button] <= DoubleClickTime {
			s.mouseDoubleClicked[button] = true
			// Require a full fresh pair for the next double-click
			s.lastClickTime[button] = clickTimeNever
		} else {
			s.lastClickTime[button] = s.clock
		}
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if !down && wasDown {
		s.keyUp[key] = true
	}
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just clicked (pressed this frame).
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseDoubleClicked returns true if the second click of a double-click
// landed this frame.
func (s *InputState) MouseDoubleClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDoubleClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was just released.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}
