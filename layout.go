package hmi

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	// Position tracking
	StartX, StartY float32

	// Sizing
	Width, Height       float32 // Available size
	MaxWidth, MaxHeight float32 // Accumulated content size

	// Spacing
	Gap     float32 // Space between children
	Padding float32 // Inner padding

	// State
	ItemCount int // For gap calculation
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// pushLayoutWith creates a layout with options and pushes it.
func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes and returns the current layout's bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{
		X: layout.StartX,
		Y: layout.StartY,
		W: layout.MaxWidth,
		H: layout.MaxHeight,
	}

	// Update parent layout to include this child's content size
	if len(ctx.layoutStack) > 0 {
		parent := ctx.layoutStack[len(ctx.layoutStack)-1]

		// Treat the popped layout as a single item in the parent
		childSize := Vec2{X: layout.MaxWidth, Y: layout.MaxHeight}

		// Add gap before this item if not first
		if parent.ItemCount > 0 {
			gap := parent.Gap
			if gap == 0 {
				gap = ctx.style.ItemSpacing
			}
			if parent.Type == LayoutVertical {
				ctx.cursor.Y += gap
			} else {
				ctx.cursor.X += gap
			}
		}

		// Update parent's content tracking
		if parent.Type == LayoutVertical {
			ctx.cursor.X = parent.StartX + parent.Padding
			ctx.cursor.Y = layout.StartY + layout.MaxHeight
			parent.MaxWidth = maxf(parent.MaxWidth, childSize.X)
			parent.MaxHeight = ctx.cursor.Y - parent.StartY
		} else {
			ctx.cursor.X = layout.StartX + layout.MaxWidth
			ctx.cursor.Y = parent.StartY + parent.Padding
			parent.MaxWidth = ctx.cursor.X - parent.StartX
			parent.MaxHeight = maxf(parent.MaxHeight, childSize.Y)
		}

		parent.ItemCount++
	}

	return bounds
}

// Panel draws a panel with a title bar and content.
// Returns a function that should be called with the content closure.
//
// Usage:
//
//	ctx.Panel("Reactor", hmi.Gap(8), hmi.Padding(12))(func() {
//	    ctx.Gauge("pressure", pressure, hmi.WithValueRange(0, 10))
//	    ctx.Trend(trend)
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(layout)
		}
		pad := layout.Padding

		// Save user-specified size BEFORE pushLayoutWith auto-fills it
		// (0 means auto-size to content, don't enforce minimum)
		userWidth := layout.Width
		userHeight := layout.Height

		startX := ctx.cursor.X
		startY := ctx.cursor.Y

		headerH := float32(0)
		if title != "" {
			headerH = ctx.lineHeight() + pad*2
		}

		ctx.cursor.X += pad
		ctx.cursor.Y += pad + headerH

		ctx.pushLayoutWith(layout)
		contents()
		bounds := ctx.popLayout()

		panelW := bounds.W + pad*2
		panelH := bounds.H + pad*2 + headerH

		if userWidth > 0 && panelW < userWidth {
			panelW = userWidth
		}
		if userHeight > 0 && panelH < userHeight {
			panelH = userHeight
		}

		// Background is inserted behind the already-drawn content
		ctx.DrawList.InsertRect(startX, startY, panelW, panelH, ctx.style.PanelColor)

		if title != "" {
			ctx.DrawList.AddRect(startX, startY, panelW, headerH, ctx.style.PanelHeaderBgColor)

			headerTextColor := ctx.style.PanelHeaderTextColor
			if headerTextColor == 0 {
				headerTextColor = ctx.style.TextColor
			}
			textY := startY + (headerH-ctx.lineHeight())/2
			ctx.addText(startX+pad, textY, title, headerTextColor)
		}

		ctx.DrawList.AddRectOutline(startX, startY, panelW, panelH, ctx.style.PanelBorderColor, 1)

		// Check if mouse is inside panel and set capture flag
		if ctx.Input != nil {
			panelRect := Rect{X: startX, Y: startY, W: panelW, H: panelH}
			if panelRect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
				ctx.WantCaptureMouse = true
			}
		}

		ctx.cursor.X = startX
		ctx.cursor.Y = startY + panelH
	}
}

// VStack creates a vertical layout container.
//
// Usage:
//
//	ctx.VStack(hmi.Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutVertical, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// HStack creates a horizontal layout container.
//
// Usage:
//
//	ctx.HStack(hmi.Gap(8))(func() {
//	    ctx.Lamp("pump", running)
//	    ctx.Text("Feed pump")
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutHorizontal, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// Row creates a horizontal layout for its contents (alias for HStack).
func (ctx *Context) Row(contents func()) {
	ctx.HStack()(contents)
}

// Indent increases the cursor X position.
func (ctx *Context) Indent(pixels float32) {
	ctx.cursor.X += pixels
}

// Unindent decreases the cursor X position.
func (ctx *Context) Unindent(pixels float32) {
	ctx.cursor.X -= pixels
}
