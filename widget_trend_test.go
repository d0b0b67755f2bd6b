package hmi_test

import (
	"errors"
	"testing"

	"github.com/open-hmi/hmi"
)

func newTestTrend() *hmi.TrendWidget {
	return hmi.NewTrendWidget(hmi.TrendConfig{
		View: hmi.ViewConfig{
			MinSpan:     1,
			MaxSpan:     1000,
			DefaultSpan: 60,
			ZoomStep:    1.25,
		},
	})
}

// renderTrend runs one frame drawing only the trend at the origin with
// a fixed width, so the plot rect is {0, 0, 400, 200}.
func renderTrend(ui *hmi.UI, trend *hmi.TrendWidget, input *hmi.InputState) hmi.RenderOutcome {
	ctx := ui.Begin(input, hmi.Vec2{X: 800, Y: 600}, 0.016)
	outcome := ctx.Trend(trend, 200, hmi.WithWidth(400))
	_ = ui.End()
	return outcome
}

func TestTrendRenderOutcome(t *testing.T) {
	ui := hmi.New(&mockRenderer{})
	input := hmi.NewInputState()
	trend := newTestTrend()

	if err := trend.AddSeries("a", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: true}, 100); err != nil {
		t.Fatalf("AddSeries: %v", err)
	}
	if err := trend.AddSeries("b", hmi.DisplayMeta{Color: hmi.ColorStatusWarn, Visible: true}, 100); err != nil {
		t.Fatalf("AddSeries: %v", err)
	}
	// Hidden series are not drawn and not counted
	if err := trend.AddSeries("hidden", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: false}, 100); err != nil {
		t.Fatalf("AddSeries: %v", err)
	}

	for i := 0; i < 50; i++ {
		trend.PushSample("a", float64(i), float64(i))
		trend.PushSample("b", float64(i), float64(50-i))
		trend.PushSample("hidden", float64(i), 0)
	}

	outcome := renderTrend(ui, trend, input)
	if outcome.Series != 2 {
		t.Errorf("expected 2 series drawn, got %d", outcome.Series)
	}
	if len(outcome.Skipped) != 0 {
		t.Errorf("expected no skipped series, got %v", outcome.Skipped)
	}
}

func TestTrendSkipsMalformedSeries(t *testing.T) {
	ui := hmi.New(&mockRenderer{})
	input := hmi.NewInputState()
	trend := newTestTrend()

	// Fully transparent color means the series would be invisible;
	// it is reported instead of silently drawn.
	if err := trend.AddSeries("bad", hmi.DisplayMeta{Color: 0x00FF0000, Visible: true}, 100); err != nil {
		t.Fatalf("AddSeries: %v", err)
	}
	if err := trend.AddSeries("good", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: true}, 100); err != nil {
		t.Fatalf("AddSeries: %v", err)
	}
	trend.PushSample("bad", 1, 1)
	trend.PushSample("good", 1, 1)

	outcome := renderTrend(ui, trend, input)
	if outcome.Series != 1 {
		t.Errorf("expected 1 series drawn, got %d", outcome.Series)
	}
	if len(outcome.Skipped) != 1 {
		t.Fatalf("expected 1 skipped series, got %d", len(outcome.Skipped))
	}
	if outcome.Skipped[0].ID != "bad" {
		t.Errorf("expected series %q skipped, got %q", "bad", outcome.Skipped[0].ID)
	}
	if !errors.Is(outcome.Skipped[0].Err, hmi.ErrMalformedMeta) {
		t.Errorf("expected ErrMalformedMeta, got %v", outcome.Skipped[0].Err)
	}
}

func TestTrendLegendOmitsSkippedSeries(t *testing.T) {
	render := func(withBad bool) int {
		renderer := &mockRenderer{}
		ui := hmi.New(renderer)
		trend := hmi.NewTrendWidget(hmi.TrendConfig{
			View:       hmi.ViewConfig{MinSpan: 1, MaxSpan: 1000, DefaultSpan: 60, ZoomStep: 1.25},
			ShowLegend: true,
		})
		trend.AddSeries("good", hmi.DisplayMeta{Label: "Temp", Color: hmi.ColorStatusOK, Visible: true}, 100)
		trend.PushSample("good", 1, 1)
		if withBad {
			trend.AddSeries("bad", hmi.DisplayMeta{Label: "Flow", Color: 0x00FF0000, Visible: true}, 100)
			trend.PushSample("bad", 1, 1)
		}
		if outcome := renderTrend(ui, trend, hmi.NewInputState()); outcome.Series != 1 {
			t.Fatalf("expected 1 series drawn, got %d", outcome.Series)
		}
		return renderer.vertices
	}

	// A skipped series contributes no geometry, legend label included
	base := render(false)
	with := render(true)
	if with != base {
		t.Errorf("skipped series leaked into the legend: %d vertices vs %d without it", with, base)
	}
}

func TestTrendAutoFollowTracksLatest(t *testing.T) {
	ui := hmi.New(&mockRenderer{})
	input := hmi.NewInputState()
	trend := newTestTrend()

	trend.AddSeries("a", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: true}, 100)
	for i := 0; i <= 10; i++ {
		trend.PushSample("a", float64(i), 1)
	}

	renderTrend(ui, trend, input)
	if got := trend.View().Window.End; got != 10 {
		t.Errorf("window should end at the latest sample, got %g", got)
	}

	// New data arrives; the next frame follows it
	trend.PushSample("a", 20, 1)
	renderTrend(ui, trend, input)
	if got := trend.View().Window.End; got != 20 {
		t.Errorf("window should follow to the new latest sample, got %g", got)
	}
	if got := trend.View().Window.Span(); got != 60 {
		t.Errorf("following must preserve the span, got %g", got)
	}
}

func TestTrendExplicitWindowStaysPut(t *testing.T) {
	ui := hmi.New(&mockRenderer{})
	input := hmi.NewInputState()
	trend := newTestTrend()

	trend.AddSeries("a", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: true}, 100)
	trend.PushSample("a", 10, 1)

	if err := trend.SetWindow(0, 10); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}

	trend.PushSample("a", 100, 1)
	renderTrend(ui, trend, input)

	if got := trend.View().Window; got.Start != 0 || got.End != 10 {
		t.Errorf("explicit window must not move as data arrives, got %+v", got)
	}
}

func TestTrendWheelZoomAnchorsPointer(t *testing.T) {
	ui := hmi.New(&mockRenderer{})
	input := hmi.NewInputState()
	trend := newTestTrend()

	trend.AddSeries("a", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: true}, 100)
	trend.PushSample("a", 100, 1)
	if err := trend.SetWindow(0, 100); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}

	// Pointer at the plot center, one wheel notch in
	input.SetMousePos(200, 100)
	input.SetMouseWheel(0, 1)
	renderTrend(ui, trend, input)

	win := trend.View().Window
	wantSpan := 100 / 1.25
	if diff := win.Span() - wantSpan; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected span %g after one notch, got %g", wantSpan, win.Span())
	}
	// t=50 was under the pointer at 50% and must stay there
	frac := (50 - win.Start) / win.Span()
	if diff := frac - 0.5; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("anchor moved: t=50 now at fraction %g", frac)
	}
	if trend.View().AutoFollow {
		t.Error("zooming must leave auto-follow")
	}
}

func TestTrendZoomClampsAtMinSpan(t *testing.T) {
	ui := hmi.New(&mockRenderer{})
	input := hmi.NewInputState()
	trend := newTestTrend()

	trend.AddSeries("a", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: true}, 100)
	trend.PushSample("a", 100, 1)
	if err := trend.SetWindow(99, 100); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}

	// Already at MinSpan: zooming in further must not shrink the window
	input.SetMousePos(200, 100)
	input.SetMouseWheel(0, 5)
	renderTrend(ui, trend, input)

	if got := trend.View().Window.Span(); got != 1 {
		t.Errorf("span must clamp at MinSpan 1, got %g", got)
	}
}

func TestTrendDragPans(t *testing.T) {
	ui := hmi.New(&mockRenderer{})
	input := hmi.NewInputState()
	trend := newTestTrend()

	trend.AddSeries("a", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: true}, 100)
	trend.PushSample("a", 100, 1)
	if err := trend.SetWindow(0, 100); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}

	// Press at x=200 (t=50)
	input.SetMousePos(200, 100)
	input.SetMouseButton(hmi.MouseButtonLeft, true)
	renderTrend(ui, trend, input)

	// Drag right by 100px (a quarter of the plot, 25s)
	input.Reset()
	input.SetMousePos(300, 100)
	renderTrend(ui, trend, input)

	win := trend.View().Window
	if win.Start != -25 || win.End != 75 {
		t.Errorf("expected window [-25, 75] after drag, got %+v", win)
	}

	// Release ends the pan and the window stays
	input.Reset()
	input.SetMouseButton(hmi.MouseButtonLeft, false)
	renderTrend(ui, trend, input)
	if trend.View().Panning() {
		t.Error("pan should end on release")
	}
	if got := trend.View().Window; got != win {
		t.Errorf("window moved after release: %+v", got)
	}
}

func TestTrendEscapeCancelsPan(t *testing.T) {
	ui := hmi.New(&mockRenderer{})
	input := hmi.NewInputState()
	trend := newTestTrend()

	trend.AddSeries("a", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: true}, 100)
	trend.PushSample("a", 100, 1)
	if err := trend.SetWindow(0, 100); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}

	input.SetMousePos(200, 100)
	input.SetMouseButton(hmi.MouseButtonLeft, true)
	renderTrend(ui, trend, input)

	input.Reset()
	input.SetMousePos(350, 100)
	renderTrend(ui, trend, input)

	// Escape restores the drag-start window
	input.Reset()
	input.SetKey(hmi.KeyEscape, true)
	renderTrend(ui, trend, input)

	win := trend.View().Window
	if win.Start != 0 || win.End != 100 {
		t.Errorf("escape should restore the window, got %+v", win)
	}
	if trend.View().Panning() {
		t.Error("escape should end the pan")
	}
}

func TestTrendHomeResetsToFollow(t *testing.T) {
	ui := hmi.New(&mockRenderer{})
	input := hmi.NewInputState()
	trend := newTestTrend()

	trend.AddSeries("a", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: true}, 100)
	trend.PushSample("a", 500, 1)
	if err := trend.SetWindow(0, 10); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}

	input.SetMousePos(200, 100)
	input.SetKey(hmi.KeyHome, true)
	renderTrend(ui, trend, input)

	v := trend.View()
	if !v.AutoFollow {
		t.Error("Home should re-enter auto-follow")
	}
	if v.Window.End != 500 || v.Window.Span() != 60 {
		t.Errorf("Home should show the default span at the live edge, got %+v", v.Window)
	}
}

func TestTrendDoubleClickResetsToFollow(t *testing.T) {
	ui := hmi.New(&mockRenderer{})
	input := hmi.NewInputState()
	trend := newTestTrend()

	trend.AddSeries("a", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: true}, 100)
	trend.PushSample("a", 500, 1)
	if err := trend.SetWindow(0, 10); err != nil {
		t.Fatalf("SetWindow: %v", err)
	}

	input.SetMousePos(200, 100)

	input.SetMouseButton(hmi.MouseButtonLeft, true)
	renderTrend(ui, trend, input)
	input.Reset()
	input.SetMouseButton(hmi.MouseButtonLeft, false)

	input.Reset()
	input.Advance(0.1)
	input.SetMouseButton(hmi.MouseButtonLeft, true)
	renderTrend(ui, trend, input)

	if !trend.View().AutoFollow {
		t.Error("double-click should re-enter auto-follow")
	}
	if got := trend.View().Window.End; got != 500 {
		t.Errorf("double-click should jump to the live edge, got %g", got)
	}
}

func TestTrendWallClockFollow(t *testing.T) {
	ui := hmi.New(&mockRenderer{})
	input := hmi.NewInputState()
	trend := hmi.NewTrendWidget(hmi.TrendConfig{
		View:            hmi.ViewConfig{MinSpan: 1, MaxSpan: 1000, DefaultSpan: 60, ZoomStep: 1.25},
		FollowWallClock: true,
	})

	trend.AddSeries("a", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: true}, 100)
	trend.PushSample("a", 5, 1)

	// The clock, not the stale sample, drives the window
	trend.AdvanceClock(120)
	renderTrend(ui, trend, input)

	if got := trend.View().Window.End; got != 120 {
		t.Errorf("window should follow the wall clock, got %g", got)
	}
}

func TestTrendPushErrors(t *testing.T) {
	trend := newTestTrend()

	if err := trend.PushSample("nope", 1, 1); !errors.Is(err, hmi.ErrUnknownSeries) {
		t.Errorf("expected ErrUnknownSeries, got %v", err)
	}

	trend.AddSeries("a", hmi.DisplayMeta{Color: hmi.ColorStatusOK, Visible: true}, 100)
	if err := trend.PushSample("a", 5, 1); err != nil {
		t.Fatalf("PushSample: %v", err)
	}
	if err := trend.PushSample("a", 5, 2); !errors.Is(err, hmi.ErrOutOfOrderSample) {
		t.Errorf("expected ErrOutOfOrderSample, got %v", err)
	}
	if err := trend.AddSeries("a", hmi.DisplayMeta{}, 100); !errors.Is(err, hmi.ErrDuplicateSeries) {
		t.Errorf("expected ErrDuplicateSeries, got %v", err)
	}
}

func TestTrendEmptyRender(t *testing.T) {
	ui := hmi.New(&mockRenderer{})
	input := hmi.NewInputState()
	trend := newTestTrend()

	// No series at all: still renders the frame without drawing traces
	outcome := renderTrend(ui, trend, input)
	if outcome.Series != 0 || len(outcome.Skipped) != 0 {
		t.Errorf("empty trend should draw nothing, got %+v", outcome)
	}
}
