package hmi

import "fmt"

// TrendConfig configures a trend widget at construction time.
// Styling stays in Style; this holds behavior only.
type TrendConfig struct {
	View ViewConfig

	// FollowWallClock pins the window end to a wall clock advanced by
	// AdvanceClock instead of the latest sample. Useful when gaps in
	// the data should scroll past in real time.
	FollowWallClock bool

	// GridLines is the default number of horizontal grid divisions.
	// Overridable per call with WithTrendGridLines.
	GridLines int

	ShowLegend    bool
	ShowCrosshair bool
}

// SeriesDiagnostic reports why a series was skipped during a render.
type SeriesDiagnostic struct {
	ID  string
	Err error
}

// RenderOutcome summarizes one trend render. Series counts the series
// actually drawn; Skipped lists the ones that could not be, each with
// its reason. A skipped series never aborts the frame.
type RenderOutcome struct {
	Series  int
	Skipped []SeriesDiagnostic
}

// TrendWidget is a real-time trend display: bounded per-series sample
// history, pan/zoom/auto-follow view control, and min/max decimation
// down to pixel columns so spikes stay visible at any zoom level.
//
// A TrendWidget owns its state and shares nothing with other
// instances. It must only be touched from the rendering thread; an
// acquisition thread hands samples over through an application-owned
// queue that is drained into PushSample once per frame.
type TrendWidget struct {
	cfg    TrendConfig
	series *SeriesSet
	view   *ViewState

	clock float64 // Wall clock for FollowWallClock mode

	hoverTime float64
	hovering  bool

	// Scratch buffers reused across frames
	scratch []DecimatedPoint
	pts     []Vec2
}

// NewTrendWidget creates a trend with the given configuration.
func NewTrendWidget(cfg TrendConfig) *TrendWidget {
	if cfg.GridLines <= 0 {
		cfg.GridLines = 4
	}
	return &TrendWidget{
		cfg:    cfg,
		series: NewSeriesSet(),
		view:   NewViewState(cfg.View),
	}
}

// AddSeries registers a series with its own bounded buffer.
func (t *TrendWidget) AddSeries(id string, meta DisplayMeta, capacity int) error {
	return t.series.Add(id, meta, capacity)
}

// RemoveSeries drops a series and its history.
func (t *TrendWidget) RemoveSeries(id string) error {
	return t.series.Remove(id)
}

// PushSample appends a measurement to the named series.
func (t *TrendWidget) PushSample(id string, timestamp, value float64) error {
	return t.series.Push(id, Sample{Time: timestamp, Value: value})
}

// SetWindow shows an explicit time window, leaving auto-follow.
func (t *TrendWidget) SetWindow(start, end float64) error {
	return t.view.SetWindow(start, end)
}

// SetAutoFollow enables or disables following the live edge.
func (t *TrendWidget) SetAutoFollow(follow bool) {
	t.view.AutoFollow = follow
	if follow {
		t.view.FollowTo(t.followEdge())
	}
}

// SetValueRange fixes the vertical axis.
func (t *TrendWidget) SetValueRange(lo, hi float64) error {
	return t.view.SetValueRange(lo, hi)
}

// ClearValueRange returns the vertical axis to auto-fit.
func (t *TrendWidget) ClearValueRange() {
	t.view.ClearValueRange()
}

// View exposes the view state for inspection and scripted control.
func (t *TrendWidget) View() *ViewState { return t.view }

// Series exposes the series collection.
func (t *TrendWidget) Series() *SeriesSet { return t.series }

// AdvanceClock moves the wall clock forward. Only consulted when
// FollowWallClock is set; call once per frame with the frame delta.
func (t *TrendWidget) AdvanceClock(dt float64) {
	t.clock += dt
}

// HoverTime returns the time under the pointer during the last render,
// if the pointer was inside the plot area.
func (t *TrendWidget) HoverTime() (float64, bool) {
	return t.hoverTime, t.hovering
}

// followEdge returns the time the window end should pin to.
func (t *TrendWidget) followEdge() float64 {
	if t.cfg.FollowWallClock {
		return t.clock
	}
	if latest, ok := t.series.LatestTime(); ok {
		return latest
	}
	return t.view.Window.End
}

// Trend draws a trend widget. height is the plot height in pixels; the
// width follows the current layout unless WithWidth overrides it.
//
// Usage:
//
//	trend := hmi.NewTrendWidget(hmi.TrendConfig{ShowLegend: true})
//	trend.AddSeries("temp", hmi.DisplayMeta{Label: "Temp", Unit: "degC",
//	    Color: hmi.ColorGreen, Visible: true}, 10000)
//	...
//	outcome := ctx.Trend(trend, 160, hmi.WithTrendCrosshair())
func (ctx *Context) Trend(t *TrendWidget, height float32, opts ...Option) RenderOutcome {
	var outcome RenderOutcome

	pos := ctx.ItemPos()
	o := applyOptions(opts)

	w := ctx.currentLayoutWidth()
	if width := GetOpt(o, OptWidth); width > 0 {
		w = width
	}
	if w <= 0 || height <= 0 {
		return outcome
	}

	// Repin to the live edge before input so interactions see the
	// window the user sees.
	if t.view.AutoFollow {
		t.view.FollowTo(t.followEdge())
	}

	plot := Rect{X: pos.X, Y: pos.Y, W: w, H: height}
	t.handleInput(ctx, plot)

	win := t.view.Window
	vMin, vMax := t.valueRange(win)

	style := ctx.Style()

	// Background
	ctx.DrawList.AddRect(plot.X, plot.Y, plot.W, plot.H, style.PlotBgColor)

	// Horizontal grid with value labels
	gridLines := GetOpt(o, OptTrendGridLines)
	if gridLines == 0 {
		gridLines = t.cfg.GridLines
	}
	if gridLines > 0 {
		for i := 0; i <= gridLines; i++ {
			y := plot.Y + plot.H*float32(i)/float32(gridLines)
			ctx.DrawList.AddLine(plot.X, y, plot.X+plot.W, y, style.GridColor, 1)
		}
	}

	pixelWidth := int(plot.W)
	yOf := func(v float64) float32 {
		frac := (v - vMin) / (vMax - vMin)
		return plot.Y + plot.H - float32(frac)*plot.H
	}
	xOfCol := func(col int) float32 {
		return plot.X + (float32(col)+0.5)*plot.W/float32(pixelWidth)
	}

	// Traces are confined to the plot area
	ctx.DrawList.PushClipRect(plot.X, plot.Y, plot.X+plot.W, plot.Y+plot.H)
	t.series.Visible(func(sr *Series) bool {
		if sr.Buf == nil {
			outcome.Skipped = append(outcome.Skipped, SeriesDiagnostic{ID: sr.ID, Err: ErrUnknownSeries})
			return true
		}
		if sr.Meta.Color&0xFF000000 == 0 {
			outcome.Skipped = append(outcome.Skipped, SeriesDiagnostic{ID: sr.ID, Err: ErrMalformedMeta})
			return true
		}

		t.scratch = Decimate(sr.Buf, win, pixelWidth, t.scratch)
		if len(t.scratch) == 0 {
			return true
		}

		// Min/max envelope: one vertical line per aggregated column
		envColor := WithAlpha(sr.Meta.Color, style.EnvelopeAlpha)
		for _, p := range t.scratch {
			if p.Count > 1 && p.Max > p.Min {
				x := xOfCol(p.Column)
				ctx.DrawList.AddLine(x, yOf(p.Max), x, yOf(p.Min), envColor, 1)
			}
		}

		// Trace line through last values; a column gap breaks the line
		// so missing data renders as a gap.
		t.pts = t.pts[:0]
		prevCol := t.scratch[0].Column - 1
		for _, p := range t.scratch {
			if p.Column > prevCol+1 && len(t.pts) > 0 {
				ctx.DrawList.AddPolyline(t.pts, sr.Meta.Color, 1.5)
				t.pts = t.pts[:0]
			}
			t.pts = append(t.pts, Vec2{X: xOfCol(p.Column), Y: yOf(p.Last)})
			prevCol = p.Column
		}
		ctx.DrawList.AddPolyline(t.pts, sr.Meta.Color, 1.5)

		outcome.Series++
		return true
	})

	ctx.DrawList.PopClipRect()

	// Crosshair and readout
	crosshair := t.cfg.ShowCrosshair || GetOpt(o, OptTrendCrosshair)
	if crosshair && t.hovering && ctx.Input != nil {
		mx := ctx.Input.MouseX
		ctx.DrawList.AddLine(mx, plot.Y, mx, plot.Y+plot.H, style.CrosshairColor, 1)
		t.drawReadout(ctx, plot, win)
	}

	// Legend
	if t.cfg.ShowLegend || GetOpt(o, OptTrendLegend) {
		legendX := plot.X + 4
		legendY := plot.Y + 4
		t.series.Visible(func(sr *Series) bool {
			// Series skipped by the trace pass get no legend entry either
			if sr.Buf == nil || sr.Meta.Color&0xFF000000 == 0 {
				return true
			}
			ctx.DrawList.AddRect(legendX, legendY+2, 8, 8, sr.Meta.Color)
			label := sr.Meta.Label
			if label == "" {
				label = sr.ID
			}
			ctx.addText(legendX+12, legendY, label, style.TextColor)
			legendY += ctx.lineHeight()
			return true
		})
	}

	// Axis labels: value range on the left, span on the right
	ctx.addText(plot.X+2, plot.Y+2, fmt.Sprintf("%.4g", vMax), style.AxisTextColor)
	ctx.addText(plot.X+2, plot.Y+plot.H-ctx.lineHeight()-2, fmt.Sprintf("%.4g", vMin), style.AxisTextColor)
	spanLabel := fmt.Sprintf("%.4gs", win.Span())
	ctx.addText(plot.X+plot.W-ctx.MeasureText(spanLabel).X-2, plot.Y+plot.H-ctx.lineHeight()-2,
		spanLabel, style.AxisTextColor)

	ctx.DrawList.AddRectOutline(plot.X, plot.Y, plot.W, plot.H, style.PlotBorderColor, 1)

	ctx.advanceCursor(Vec2{w, height})
	return outcome
}

// handleInput applies this frame's pointer and key events to the view
// state machine.
func (t *TrendWidget) handleInput(ctx *Context, plot Rect) {
	in := ctx.Input
	if in == nil {
		t.hovering = false
		return
	}

	hovered := plot.Contains(Vec2{in.MouseX, in.MouseY})
	if hovered {
		ctx.WantCaptureMouse = true
	}

	win := t.view.Window
	timeAt := func(x float32, w TimeWindow) float64 {
		frac := float64((x - plot.X) / plot.W)
		return w.Start + frac*w.Span()
	}

	// Wheel zoom anchored at the pointer's time
	if hovered && in.MouseWheelY != 0 {
		t.view.ZoomSteps(float64(in.MouseWheelY), timeAt(in.MouseX, win))
	}

	// Double-click or Home resets to follow mode
	if (hovered && in.MouseDoubleClicked(MouseButtonLeft)) ||
		(hovered && in.KeyPressed(KeyHome)) {
		t.view.Reset(t.followEdge())
		t.hovering = hovered
		t.hoverTime = timeAt(in.MouseX, t.view.Window)
		return
	}

	// Drag pan
	if hovered && in.MouseClicked(MouseButtonLeft) {
		t.view.PanBegin(timeAt(in.MouseX, win))
	}
	if t.view.Panning() {
		if in.KeyPressed(KeyEscape) {
			// Cancel: restore the drag-start window
			t.view.Window = t.view.panStart
			t.view.PanEnd()
		} else if in.MouseDown(MouseButtonLeft) {
			// Map the pointer through the drag-start window so the
			// anchor time stays under it.
			t.view.PanTo(timeAt(in.MouseX, t.view.panStart))
		} else {
			t.view.PanEnd()
		}
	}

	t.hovering = hovered && !t.view.Panning()
	if t.hovering {
		t.hoverTime = timeAt(in.MouseX, t.view.Window)
	}
}

// valueRange resolves the vertical axis: fixed range if set, else
// auto-fit over the visible samples, else the configured default.
func (t *TrendWidget) valueRange(win TimeWindow) (float64, float64) {
	if t.view.HasValueRange {
		return t.view.ValueMin, t.view.ValueMax
	}

	lo, hi := 0.0, 0.0
	found := false
	t.series.Visible(func(sr *Series) bool {
		if sr.Buf == nil {
			return true
		}
		for s := range sr.Buf.Range(win.Start, win.End) {
			if !found {
				lo, hi = s.Value, s.Value
				found = true
				continue
			}
			if s.Value < lo {
				lo = s.Value
			}
			if s.Value > hi {
				hi = s.Value
			}
		}
		return true
	})

	cfg := t.view.Config()
	if !found {
		return cfg.DefaultValueMin, cfg.DefaultValueMax
	}

	// Pad so traces don't hug the plot edges
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}

// drawReadout draws the crosshair tooltip: hover time plus each visible
// series' value at that time.
func (t *TrendWidget) drawReadout(ctx *Context, plot Rect, win TimeWindow) {
	lines := make([]string, 0, t.series.Len()+1)
	lines = append(lines, fmt.Sprintf("t=%.2fs", t.hoverTime))

	t.series.Visible(func(sr *Series) bool {
		if sr.Buf == nil {
			return true
		}
		// Last sample at or before the hover time, inside the window
		_, hi := sr.Buf.IndexRange(win.Start, t.hoverTime)
		if hi == 0 {
			return true
		}
		s, ok := sr.Buf.At(hi - 1)
		if !ok || s.Time < win.Start {
			return true
		}
		label := sr.Meta.Label
		if label == "" {
			label = sr.ID
		}
		line := fmt.Sprintf("%s: %.3g", label, s.Value)
		if sr.Meta.Unit != "" {
			line += " " + sr.Meta.Unit
		}
		lines = append(lines, line)
		return true
	})

	style := ctx.Style()
	maxWidth := float32(0)
	for _, line := range lines {
		maxWidth = maxf(maxWidth, ctx.MeasureText(line).X)
	}

	padding := float32(4)
	tipW := maxWidth + padding*2
	tipH := float32(len(lines))*ctx.lineHeight() + padding*2

	x := ctx.Input.MouseX + 10
	y := ctx.Input.MouseY - 20
	if x+tipW > ctx.DisplaySize.X {
		x = ctx.DisplaySize.X - tipW
	}
	if y < 0 {
		y = 0
	}

	ctx.DrawList.AddRect(x, y, tipW, tipH, style.TooltipBgColor)
	ctx.DrawList.AddRectOutline(x, y, tipW, tipH, style.TooltipBorder, 1)

	textY := y + padding
	for _, line := range lines {
		ctx.addText(x+padding, textY, line, style.TextColor)
		textY += ctx.lineHeight()
	}
}
