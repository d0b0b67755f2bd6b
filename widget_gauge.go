package hmi

import "fmt"

// Gauge draws a circular dial indicator for a process value. The value
// is clamped to the configured range; the arc sweeps from the end
// angle at range minimum back to the start angle at range maximum.
//
// Defaults: range 0..100, half-circle arc (0..180 degrees), size from
// the layout width capped at 120 px.
//
// Usage:
//
//	ctx.Gauge("pressure", p,
//	    hmi.WithValueRange(0, 16),
//	    hmi.WithUnit("bar"),
//	    hmi.WithGaugeTicks(9))
func (ctx *Context) Gauge(label string, value float64, opts ...Option) {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	style := ctx.Style()

	size := float32(120)
	if w := GetOpt(o, OptWidth); w > 0 {
		size = w
	}

	rng := GetOpt(o, OptRange)
	if !rng.HasRange {
		rng = RangeValue{Min: 0, Max: 100}
	}
	if rng.Max <= rng.Min {
		rng.Max = rng.Min + 1
	}
	v := clamp64(value, rng.Min, rng.Max)

	startDeg := GetOpt(o, OptGaugeStartAngle)
	endDeg := GetOpt(o, OptGaugeEndAngle)
	if startDeg == endDeg {
		startDeg, endDeg = 0, 180
	}

	// Inset so tick labels fit inside the allocated square
	clearance := size / 10
	radius := size/2 - clearance
	cx := pos.X + size/2
	cy := pos.Y + size/2

	angleOf := func(val float64) float32 {
		norm := (val - rng.Min) / (rng.Max - rng.Min)
		return endDeg - float32(norm)*(endDeg-startDeg)
	}
	valueDeg := angleOf(v)

	// Track arc, then the filled portion from the needle to range min
	ctx.DrawList.AddArc(cx, cy, radius, startDeg, endDeg, style.TrackColor, 2)
	ctx.DrawList.AddArc(cx, cy, radius, valueDeg, endDeg, style.OKColor, 2)

	// Tick marks with value labels
	if ticks := GetOpt(o, OptGaugeTicks); ticks >= 2 {
		tickSize := float32(3)
		step := (rng.Max - rng.Min) / float64(ticks-1)
		for i := 0; i < ticks; i++ {
			tv := rng.Min + step*float64(i)
			deg := angleOf(tv)
			ix := cx + (radius-tickSize)*cosDeg(deg)
			iy := cy - (radius-tickSize)*sinDeg(deg)
			ox := cx + (radius+tickSize)*cosDeg(deg)
			oy := cy - (radius+tickSize)*sinDeg(deg)
			ctx.DrawList.AddLine(ix, iy, ox, oy, style.AxisTextColor, 1)

			lbl := fmt.Sprintf("%.0f", tv)
			lx := cx + (radius+clearance*0.7)*cosDeg(deg)
			ly := cy - (radius+clearance*0.7)*sinDeg(deg)
			tsz := ctx.MeasureText(lbl)
			ctx.addText(lx-tsz.X/2, ly-tsz.Y/2, lbl, style.AxisTextColor)
		}
	}

	// Needle
	nx := cx + radius*0.8*cosDeg(valueDeg)
	ny := cy - radius*0.8*sinDeg(valueDeg)
	ctx.DrawList.AddLine(cx, cy, nx, ny, style.TextColor, 3)
	ctx.DrawList.AddCircle(cx, cy, 3, style.TextColor)

	// Readout below the pivot
	if GetOpt(o, OptGaugeShowValue) {
		format := GetOpt(o, OptFormat)
		if format == "" {
			format = "%.1f"
		}
		text := fmt.Sprintf(format, v)
		if unit := GetOpt(o, OptUnit); unit != "" {
			text += " " + unit
		}
		tsz := ctx.MeasureText(text)
		ctx.addText(cx-tsz.X/2, cy+radius*0.35, text, style.TextColor)
	}

	if label != "" {
		tsz := ctx.MeasureText(label)
		ctx.addText(cx-tsz.X/2, pos.Y+size-ctx.lineHeight(), label, style.TextDisabledColor)
	}

	ctx.advanceCursor(Vec2{size, size})
}
