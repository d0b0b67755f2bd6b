package hmi

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// UI manages the immediate mode HMI system.
type UI struct {
	renderer Renderer
	style    Style
	ctx      *Context
}

// UIOption configures a UI instance.
type UIOption func(*UI)

// WithStyle sets the UI style.
func WithStyle(style Style) UIOption {
	return func(u *UI) { u.style = style }
}

// New creates a new UI instance.
func New(renderer Renderer, opts ...UIOption) *UI {
	u := &UI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Begin starts a new frame and returns the context.
// Call this at the start of each frame before drawing any widgets.
func (u *UI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := u.ctx

	// Acquire a draw list from the pool
	ctx.DrawList = AcquireDrawList()

	// Set frame state
	ctx.Input = input
	ctx.SetStyle(u.style)
	ctx.FontTextureID = u.renderer.FontTextureID()

	// Reset per-frame state
	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all widget drawing is complete.
func (u *UI) End() error {
	if u.ctx.DrawList == nil {
		return nil
	}

	err := u.renderer.Render(u.ctx.DrawList)

	// Release the draw list back to the pool
	ReleaseDrawList(u.ctx.DrawList)
	u.ctx.DrawList = nil

	return err
}

// Context returns the current context.
// Only valid between Begin() and End() calls.
func (u *UI) Context() *Context {
	return u.ctx
}

// Style returns the current UI style.
func (u *UI) Style() Style {
	return u.style
}

// SetStyle sets the UI style.
func (u *UI) SetStyle(style Style) {
	u.style = style
}

// Resize notifies the UI of a display size change.
func (u *UI) Resize(width, height int) {
	u.renderer.Resize(width, height)
}
