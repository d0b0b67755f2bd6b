package hmi

import "fmt"

// Bar draws a bounded fill indicator for a process value, horizontal
// by default. The value is clamped to the configured range.
//
// Usage:
//
//	ctx.Bar("level", tankLevel,
//	    hmi.WithValueRange(0, 100),
//	    hmi.WithUnit("%"),
//	    hmi.WithBarLimits())
func (ctx *Context) Bar(label string, value float64, opts ...Option) {
	o := applyOptions(opts)
	if GetOpt(o, OptBarDirection) == BarVertical {
		ctx.barVertical(label, value, o)
		return
	}
	ctx.barHorizontal(label, value, o)
}

func (ctx *Context) barHorizontal(label string, value float64, o options) {
	pos := ctx.ItemPos()
	style := ctx.Style()

	w := float32(180)
	if ow := GetOpt(o, OptWidth); ow > 0 {
		w = ow
	}
	barH := float32(8)
	if oh := GetOpt(o, OptHeight); oh > 0 {
		barH = oh
	}

	rng := GetOpt(o, OptRange)
	if !rng.HasRange {
		rng = RangeValue{Min: 0, Max: 100}
	}
	if rng.Max <= rng.Min {
		rng.Max = rng.Min + 1
	}
	v := clamp64(value, rng.Min, rng.Max)
	frac := float32((v - rng.Min) / (rng.Max - rng.Min))

	barX := pos.X
	barW := w
	showLimits := GetOpt(o, OptBarShowLimits)
	minLbl := fmt.Sprintf("%g", rng.Min)
	maxLbl := fmt.Sprintf("%g", rng.Max)
	if showLimits {
		minW := ctx.MeasureText(minLbl).X
		maxW := ctx.MeasureText(maxLbl).X
		barX += minW + 4
		barW -= minW + maxW + 8
		if barW < 10 {
			barW = 10
		}
	}

	ctx.DrawList.AddRect(barX, pos.Y, barW, barH, style.TrackColor)
	ctx.DrawList.AddRect(barX, pos.Y, barW*frac, barH, style.OKColor)

	if ticks := GetOpt(o, OptBarTicks); ticks > 0 {
		cy := pos.Y + barH/2
		diff := barH/2 + 2
		for i := 1; i <= ticks; i++ {
			t := float32(i) / float32(ticks+1)
			x := barX + barW*t
			ctx.DrawList.AddLine(x, cy-diff, x, cy+diff, style.AxisTextColor, 1)
		}
	}

	if showLimits {
		labelY := pos.Y + (barH-ctx.lineHeight())/2
		ctx.addText(pos.X, labelY, minLbl, style.AxisTextColor)
		ctx.addText(barX+barW+4, labelY, maxLbl, style.AxisTextColor)
	}

	totalH := barH
	if label != "" || HasOpt(o, OptFormat) || HasOpt(o, OptUnit) {
		text := ctx.barText(label, v, o)
		tsz := ctx.MeasureText(text)
		ctx.addText(pos.X+(w-tsz.X)/2, pos.Y+barH+3, text, style.TextColor)
		totalH += 3 + ctx.lineHeight()
	}

	ctx.advanceCursor(Vec2{w, totalH})
}

func (ctx *Context) barVertical(label string, value float64, o options) {
	pos := ctx.ItemPos()
	style := ctx.Style()

	h := float32(120)
	if oh := GetOpt(o, OptHeight); oh > 0 {
		h = oh
	}
	barW := float32(8)
	if ow := GetOpt(o, OptWidth); ow > 0 {
		barW = ow
	}

	rng := GetOpt(o, OptRange)
	if !rng.HasRange {
		rng = RangeValue{Min: 0, Max: 100}
	}
	if rng.Max <= rng.Min {
		rng.Max = rng.Min + 1
	}
	v := clamp64(value, rng.Min, rng.Max)
	frac := float32((v - rng.Min) / (rng.Max - rng.Min))

	barY := pos.Y
	barH := h
	showLimits := GetOpt(o, OptBarShowLimits)
	if showLimits {
		barY += ctx.lineHeight() + 2
		barH -= (ctx.lineHeight() + 2) * 2
		if barH < 10 {
			barH = 10
		}
	}

	ctx.DrawList.AddRect(pos.X, barY, barW, barH, style.TrackColor)
	fillH := barH * frac
	ctx.DrawList.AddRect(pos.X, barY+barH-fillH, barW, fillH, style.OKColor)

	if ticks := GetOpt(o, OptBarTicks); ticks > 0 {
		cx := pos.X + barW/2
		diff := barW/2 + 2
		for i := 1; i <= ticks; i++ {
			t := float32(i) / float32(ticks+1)
			y := barY + barH*t
			ctx.DrawList.AddLine(cx-diff, y, cx+diff, y, style.AxisTextColor, 1)
		}
	}

	totalW := barW
	if showLimits {
		maxLbl := fmt.Sprintf("%g", rng.Max)
		minLbl := fmt.Sprintf("%g", rng.Min)
		cx := pos.X + barW/2
		ctx.addText(cx-ctx.MeasureText(maxLbl).X/2, pos.Y, maxLbl, style.AxisTextColor)
		ctx.addText(cx-ctx.MeasureText(minLbl).X/2, barY+barH+2, minLbl, style.AxisTextColor)
	}

	if label != "" || HasOpt(o, OptFormat) || HasOpt(o, OptUnit) {
		text := ctx.barText(label, v, o)
		ctx.addText(pos.X+barW+8, barY+(barH-ctx.lineHeight())/2, text, style.TextColor)
		totalW += 8 + ctx.MeasureText(text).X
	}

	ctx.advanceCursor(Vec2{totalW, h})
}

// barText combines the label, formatted value, and unit.
func (ctx *Context) barText(label string, v float64, o options) string {
	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%.1f"
	}
	text := fmt.Sprintf(format, v)
	if unit := GetOpt(o, OptUnit); unit != "" {
		text += " " + unit
	}
	if label != "" {
		text = label + " " + text
	}
	return text
}
