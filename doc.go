/*
Package hmi provides immediate-mode Human-Machine Interface widgets for
industrial and control-system applications.

# Overview

The UI is rebuilt from application state every frame. There are no
callbacks and no retained widget tree: widget calls draw the widget and
return interaction results directly. The centerpiece is the trend
widget, a real-time chart with bounded per-series history, pan/zoom
view control, and min/max decimation so short spikes stay visible at
any zoom level. Around it sit the usual panel indicators: gauges, bars,
toggle switches, and status lamps.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1000, 640)
	ui := hmi.New(renderer, hmi.WithStyle(hmi.ControlRoomStyle()))

	trend := hmi.NewTrendWidget(hmi.TrendConfig{ShowLegend: true})
	trend.AddSeries("temp", hmi.DisplayMeta{
	    Label: "Temp", Unit: "degC", Color: hmi.ColorStatusOK, Visible: true,
	}, 18000)

	// Frame loop
	for !window.ShouldClose() {
	    trend.PushSample("temp", now, readTemp())

	    ctx := ui.Begin(input, displaySize, deltaTime)

	    ctx.Panel("Process", hmi.Width(660))(func() {
	        ctx.Trend(trend, 320)
	        ctx.Gauge("Temp", temp, hmi.WithValueRange(0, 120))
	        if ctx.Toggle("Feed pump", &pumpOn) {
	            plant.SetPump(pumpOn)
	        }
	    })

	    ui.End()
	    window.SwapBuffers()
	}

# Trend Interaction Reference

All interactions apply while the pointer is over the plot area.

	Mouse Wheel      Zoom in/out, anchored at the time under the pointer
	Click+Drag       Pan the time window
	Escape           Cancel an in-progress pan, restoring the window
	Double-Click     Reset to auto-follow over the default span
	Home             Same as double-click

Zooming or panning leaves auto-follow mode; the window then stays put
as new samples arrive. In auto-follow mode the window end is pinned to
the latest sample (or to a wall clock when FollowWallClock is set and
the application calls AdvanceClock).

# Widget List

## Trend

	ctx.Trend(t *TrendWidget, height float32, opts ...Option) RenderOutcome
	    Draws a trend widget. The returned RenderOutcome counts the
	    series drawn and lists the ones skipped with a reason; a bad
	    series never aborts the frame.
	    Options: WithWidth, WithTrendGridLines, WithTrendLegend,
	             WithTrendCrosshair

## Indicators

	ctx.Gauge(label string, value float64, opts ...Option)
	    Radial gauge with needle, track arc, and optional tick labels.
	    Options: WithValueRange, WithUnit, WithFormat, WithWidth,
	             WithGaugeAngles, WithGaugeTicks, WithoutGaugeValue

	ctx.Bar(label string, value float64, opts ...Option)
	    Horizontal or vertical fill bar.
	    Options: WithValueRange, WithUnit, WithFormat, WithWidth,
	             WithHeight, WithBarDirection, WithBarTicks, WithBarLimits

	ctx.Toggle(label string, on *bool, opts ...Option) bool
	    On/off switch bound to *on. Returns true when flipped.
	    Looks: sliding switch (default), relay contact, valve symbol.
	    Options: WithID, WithDisabled, WithToggleLook, WithWidth, WithHeight

	ctx.Lamp(label string, on bool, opts ...Option)
	ctx.StatusLamp(label string, status LampStatus, opts ...Option)
	    Indicator lamp in one of the status colors (Off/OK/Warn/Alarm).
	    Options: WithWidth

## Text

	ctx.Text(text string)
	ctx.Textf(format string, args ...any)
	ctx.TextColored(text string, color uint32)
	ctx.TextDisabled(text string)
	ctx.LabelText(label, value string)

## Layout

	ctx.Panel(title string, opts ...LayoutOption) func(func())
	    Container with background, border, and optional title bar.

	ctx.VStack(opts ...LayoutOption) func(func())
	ctx.HStack(opts ...LayoutOption) func(func())
	ctx.Row(contents func())
	ctx.Spacing(pixels float32)
	ctx.Separator()
	ctx.Indent(pixels float32)
	ctx.Unindent(pixels float32)

	Layout options: Gap, Padding, Width, Height

# Data Model

Each trend series owns a SampleBuffer, a bounded ring that evicts the
oldest sample when full. Timestamps must be strictly increasing; a
stale or duplicate timestamp is rejected with ErrOutOfOrderSample and
NaN/Inf values with ErrInvalidSample. SampleBuffer, SeriesSet,
ViewState, and Decimate are exported so applications can build their
own displays on the same machinery.

All types in this package are single-threaded: they must only be
touched from the rendering thread. An acquisition thread hands samples
over through an application-owned queue drained into PushSample once
per frame.

# Performance

  - sync.Pool for DrawList buffer reuse
  - Batched rendering by texture with a clip-rect stack
  - Per-frame text measurement cache
  - Decimation scratch buffers reused across frames; rendering cost is
    bounded by pixel columns, not stored samples
*/
package hmi
