package hmi

import (
	"log/slog"
	"os"
)

// hmiLogLevel controls debug logging for the package. Set the
// HMI_DEBUG environment variable to enable debug output.
var hmiLogLevel = func() *slog.LevelVar {
	lv := new(slog.LevelVar)
	if os.Getenv("HMI_DEBUG") != "" {
		lv.Set(slog.LevelDebug)
	} else {
		lv.Set(slog.LevelWarn)
	}
	return lv
}()

// hmiLogger is the logger for context and widget debugging.
var hmiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: hmiLogLevel}))

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated HMI context type.
// Using a dedicated type avoids type assertions and map lookups,
// providing better performance and type safety.
type Context struct {
	// Drawing output
	DrawList *DrawList

	// Styling
	style      Style
	styleStack []Style // For PushStyle/PopStyle

	// Layout
	cursor      Vec2
	layoutStack []*Layout

	// Input (read-only during frame)
	Input *InputState

	// IDs
	idStack   []ID
	idCounter uint32 // Auto-increment for call-site IDs

	// Screen
	DisplaySize Vec2
	DPIScale    float32

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Font texture ID (set by renderer)
	FontTextureID uint32

	// Input capture flag (output to the application). True when the
	// mouse is over an interactive widget this frame, so the
	// application knows not to also act on the same events.
	WantCaptureMouse bool

	// Text measurement cache, valid for the current frame only.
	textMeasureCache map[string]Vec2
}

// NewContext creates a new context with default settings.
func NewContext() *Context {
	return &Context{
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 32),
		textMeasureCache: make(map[string]Vec2, 64),
		DPIScale:         1.0,
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance frame counter and clean up stale FrameStore entries
	NextFrame()

	ctx.cursor = Vec2{0, 0}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++

	ctx.WantCaptureMouse = false

	// Clear text measurement cache (valid only for current frame)
	clear(ctx.textMeasureCache)
}

// Helper methods for widget interaction

// isHovered returns true if the widget area is under the mouse cursor.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

// IsHovered returns true if the widget area is under the mouse cursor (public API).
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHovered(rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	if clicked && hovered {
		hmiLogger.Debug("click detected",
			"rect", rect,
			"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
	}

	return hovered && clicked
}

// IsClicked returns true if the widget was clicked this frame (public API).
func (ctx *Context) IsClicked(rect Rect) bool {
	return ctx.isClicked(rect)
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of rendered text.
// Results are cached per-frame to avoid redundant measurements.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	charW := ctx.style.CharWidth * ctx.style.FontScale
	charH := ctx.style.CharHeight * ctx.style.FontScale
	result := Vec2{X: float32(len(text)) * charW, Y: charH}

	ctx.textMeasureCache[text] = result
	return result
}

// addText is a helper to draw text with current style.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.AddText(x, y, text, color)
}

// AddText draws text with current style (public API).
// Uses the built-in monospace bitmap font.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}

// currentLayoutWidth returns the available width in the current layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if len(ctx.layoutStack) > 0 {
		layout := ctx.layoutStack[len(ctx.layoutStack)-1]
		return layout.Width - layout.Padding*2
	}
	return ctx.DisplaySize.X
}

// CurrentLayoutWidth returns the available width in the current layout (public API).
func (ctx *Context) CurrentLayoutWidth() float32 {
	return ctx.currentLayoutWidth()
}

// currentLayoutHeight returns the available height in the current layout.
func (ctx *Context) currentLayoutHeight() float32 {
	if len(ctx.layoutStack) > 0 {
		layout := ctx.layoutStack[len(ctx.layoutStack)-1]
		return layout.Height - layout.Padding*2
	}
	return ctx.DisplaySize.Y
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// beginItem applies gap spacing before drawing an item.
// Call this before drawing any widget to ensure proper spacing.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil {
		return
	}

	// Add gap BEFORE this item (if not first)
	if layout.ItemCount > 0 {
		gap := layout.Gap
		if gap == 0 {
			gap = ctx.style.ItemSpacing
		}
		if layout.Type == LayoutVertical {
			ctx.cursor.Y += gap
		} else {
			ctx.cursor.X += gap
		}
	}
}

// ItemPos returns the position for the next widget with gap applied.
// This is the recommended way for widgets to get their drawing position.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// advanceCursor moves the cursor after drawing an item.
func (ctx *Context) advanceCursor(size Vec2) {
	ctx.AdvanceCursor(size)
}

// AdvanceCursor moves the cursor after drawing an item (public API).
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		// No layout, just advance vertically
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	// Track content bounds
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, size.X)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}

	layout.ItemCount++
}
