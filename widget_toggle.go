package hmi

// ToggleState holds the knob animation position between frames.
type ToggleState struct {
	Anim float32 // 0 = fully off, 1 = fully on
}

var toggleStore = NewFrameStore[ToggleState]()

// toggleAnimTime is the knob travel time in seconds.
const toggleAnimTime float32 = 0.15

// Toggle draws an on/off switch bound to *on and returns true when the
// user flipped it this frame. Three looks are available via
// WithToggleLook: a sliding switch (default), a relay contact, and a
// valve symbol.
//
// Usage:
//
//	if ctx.Toggle("Feed pump", &pumpOn, hmi.WithToggleLook(hmi.ToggleLookRelay)) {
//	    plant.SetPump(pumpOn)
//	}
func (ctx *Context) Toggle(label string, on *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	style := ctx.Style()

	look := GetOpt(o, OptToggleLook)

	var w, h float32
	switch look {
	case ToggleLookRelay:
		w, h = 48, 24
	case ToggleLookValve:
		w, h = 40, 40
	default:
		w, h = 36, 18
	}
	if ow := GetOpt(o, OptWidth); ow > 0 {
		w = ow
	}
	if oh := GetOpt(o, OptHeight); oh > 0 {
		h = oh
	}

	totalW := w
	if label != "" {
		totalW += 6 + ctx.MeasureText(label).X
	}

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: totalW, H: h}
	changed := false
	disabled := GetOpt(o, OptDisabled)
	if !disabled && (ctx.isClicked(rect) ||
		(ctx.isHovered(rect) && ctx.Input != nil &&
			(ctx.Input.KeyPressed(KeySpace) || ctx.Input.KeyPressed(KeyEnter)))) {
		*on = !*on
		changed = true
	}
	if ctx.isHovered(rect) {
		ctx.WantCaptureMouse = true
	}

	// Animate the knob toward the current state
	state := toggleStore.Get(id, ToggleState{Anim: boolAnim(*on)})
	target := boolAnim(*on)
	if state.Anim < target {
		state.Anim = minf(target, state.Anim+ctx.DeltaTime/toggleAnimTime)
	} else if state.Anim > target {
		state.Anim = maxf(target, state.Anim-ctx.DeltaTime/toggleAnimTime)
	}

	stateColor := style.WarnColor
	if *on {
		stateColor = style.OKColor
	}
	if disabled {
		stateColor = style.TextDisabledColor
	}

	switch look {
	case ToggleLookRelay:
		ctx.drawRelayToggle(pos, w, h, state.Anim, stateColor)
	case ToggleLookValve:
		ctx.drawValveToggle(pos, w, h, *on, stateColor)
	default:
		ctx.drawSwitchToggle(pos, w, h, state.Anim, *on, disabled)
	}

	if label != "" {
		textColor := style.TextColor
		if disabled {
			textColor = style.TextDisabledColor
		}
		ctx.addText(pos.X+w+6, pos.Y+(h-ctx.lineHeight())/2, label, textColor)
	}

	ctx.advanceCursor(Vec2{totalW, h})
	return changed
}

// drawSwitchToggle draws the sliding-knob look: a track with rounded
// ends and a knob that travels between them.
func (ctx *Context) drawSwitchToggle(pos Vec2, w, h, anim float32, on, disabled bool) {
	style := ctx.Style()
	radius := h / 2

	trackColor := style.TrackColor
	if on && !disabled {
		trackColor = style.OKColor
	}

	ctx.DrawList.AddRect(pos.X+radius, pos.Y, w-h, h, trackColor)
	ctx.DrawList.AddCircle(pos.X+radius, pos.Y+radius, radius, trackColor)
	ctx.DrawList.AddCircle(pos.X+w-radius, pos.Y+radius, radius, trackColor)

	knobX := pos.X + radius + anim*(w-h)
	ctx.DrawList.AddCircle(knobX, pos.Y+radius, radius*0.75, ColorWhite)
}

// drawRelayToggle draws a relay contact: fixed terminals on both sides
// and a contact arm that swings closed.
func (ctx *Context) drawRelayToggle(pos Vec2, w, h, anim float32, color uint32) {
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, h, color, 1)

	cy := pos.Y + h/2
	nodeR := w * 0.04
	nodeLeft := pos.X + w/3
	nodeRight := pos.X + w - w/3

	ctx.DrawList.AddLine(pos.X+2, cy, nodeLeft-nodeR*2, cy, color, 1)
	ctx.DrawList.AddLine(pos.X+w-2, cy, nodeRight+nodeR*2, cy, color, 1)
	ctx.DrawList.AddCircleOutline(nodeLeft-nodeR, cy, nodeR, color, 1)
	ctx.DrawList.AddCircleOutline(nodeRight+nodeR, cy, nodeR, color, 1)

	// Contact arm swings from 45 degrees open to closed
	armDeg := (1 - anim) * 45
	length := nodeRight - nodeLeft
	armX := nodeRight - length*cosDeg(armDeg)
	armY := cy - length*sinDeg(armDeg)
	ctx.DrawList.AddLine(armX, armY, nodeRight, cy, color, 1)
}

// drawValveToggle draws the valve symbol: bowtie body, stem, and a
// diagonal closed marker when off.
func (ctx *Context) drawValveToggle(pos Vec2, w, h float32, on bool, color uint32) {
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, h, color, 1)

	cx := pos.X + w/2
	cy := pos.Y + h/2
	side := minf(w, h) * 0.7
	halfW := side / 2
	quartH := side / 4
	r := side * 0.2

	// Stem with handle
	topY := cy - r*2
	ctx.DrawList.AddLine(cx-r, topY, cx+r, topY, color, 1)
	ctx.DrawList.AddLine(cx, topY, cx, topY+r, color, 1)

	// Bowtie body
	ctx.DrawList.AddLine(cx-halfW, cy-quartH, cx-halfW, cy+quartH, color, 1)
	ctx.DrawList.AddLine(cx-halfW, cy+quartH, cx+halfW, cy-quartH, color, 1)
	ctx.DrawList.AddLine(cx+halfW, cy-quartH, cx+halfW, cy+quartH, color, 1)
	ctx.DrawList.AddLine(cx+halfW, cy+quartH, cx-halfW, cy-quartH, color, 1)

	ctx.DrawList.AddCircleOutline(cx, cy, r, color, 1)

	if !on {
		ctx.DrawList.AddLine(cx-halfW, cy+quartH, cx+halfW, cy-quartH, color, 1)
	}
}

func boolAnim(on bool) float32 {
	if on {
		return 1
	}
	return 0
}
