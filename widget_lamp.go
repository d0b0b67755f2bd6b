package hmi

// LampStatus selects the color of a status lamp.
type LampStatus int

const (
	LampOff LampStatus = iota
	LampOK
	LampWarn
	LampAlarm
)

// Lamp draws a simple on/off indicator with a label. On lamps light up
// in the OK color.
func (ctx *Context) Lamp(label string, on bool, opts ...Option) {
	status := LampOff
	if on {
		status = LampOK
	}
	ctx.StatusLamp(label, status, opts...)
}

// StatusLamp draws an indicator lamp in one of the status colors.
// Alarm lamps get an outline ring so they read even for color-blind
// operators.
func (ctx *Context) StatusLamp(label string, status LampStatus, opts ...Option) {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	style := ctx.Style()

	d := float32(14)
	if ow := GetOpt(o, OptWidth); ow > 0 {
		d = ow
	}
	r := d / 2

	var color uint32
	switch status {
	case LampOK:
		color = style.OKColor
	case LampWarn:
		color = style.WarnColor
	case LampAlarm:
		color = style.AlarmColor
	default:
		color = style.TrackColor
	}

	h := maxf(d, ctx.lineHeight())
	cy := pos.Y + h/2

	ctx.DrawList.AddCircle(pos.X+r, cy, r, color)
	if status == LampAlarm {
		ctx.DrawList.AddCircleOutline(pos.X+r, cy, r+2, style.AlarmColor, 1)
	}

	totalW := d
	if label != "" {
		ctx.addText(pos.X+d+6, cy-ctx.lineHeight()/2, label, style.TextColor)
		totalW += 6 + ctx.MeasureText(label).X
	}

	ctx.advanceCursor(Vec2{totalW, h})
}
