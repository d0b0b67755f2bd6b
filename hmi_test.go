package hmi_test

import (
	"testing"

	"github.com/open-hmi/hmi"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	vertices    int
}

func (m *mockRenderer) Render(dl *hmi.DrawList) error {
	// A real renderer finalizes before uploading
	dl.Finalize()
	m.renderCalls++
	m.vertices = len(dl.VtxBuffer)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func TestHMIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := hmi.New(renderer, hmi.WithStyle(hmi.ControlRoomStyle()))

	input := hmi.NewInputState()
	displaySize := hmi.Vec2{X: 1000, Y: 640}

	// Begin frame
	ctx := ui.Begin(input, displaySize, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	// Draw some widgets
	ctx.Text("Reactor 1")
	ctx.TextColored("TRIP", hmi.ColorStatusAlarm)

	// End frame
	err := ui.End()
	if err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
}

func TestPanel(t *testing.T) {
	renderer := &mockRenderer{}
	ui := hmi.New(renderer)
	input := hmi.NewInputState()

	ctx := ui.Begin(input, hmi.Vec2{X: 800, Y: 600}, 0.016)

	// Panel with content
	ctx.Panel("Plant Status", hmi.Gap(8), hmi.Padding(12))(func() {
		ctx.Text("Line 1")
		ctx.Text("Line 2")
	})

	_ = ui.End()
}

func TestToggleWithoutInput(t *testing.T) {
	renderer := &mockRenderer{}
	ui := hmi.New(renderer)
	input := hmi.NewInputState()

	ctx := ui.Begin(input, hmi.Vec2{X: 800, Y: 600}, 0.016)

	on := false
	changed := ctx.Toggle("Pump", &on)
	if changed || on {
		t.Error("toggle should not flip without mouse input")
	}

	_ = ui.End()
}

func TestToggleClick(t *testing.T) {
	renderer := &mockRenderer{}
	ui := hmi.New(renderer)
	input := hmi.NewInputState()

	// Click inside the switch body at the cursor origin
	input.SetMousePos(10, 9)
	input.SetMouseButton(hmi.MouseButtonLeft, true)

	ctx := ui.Begin(input, hmi.Vec2{X: 800, Y: 600}, 0.016)

	on := false
	changed := ctx.Toggle("Pump", &on)
	if !changed || !on {
		t.Error("toggle under the mouse should flip on click")
	}
	if !ctx.WantCaptureMouse {
		t.Error("hovered toggle should capture the mouse")
	}

	_ = ui.End()
}

func TestDisabledToggleIgnoresClick(t *testing.T) {
	renderer := &mockRenderer{}
	ui := hmi.New(renderer)
	input := hmi.NewInputState()

	input.SetMousePos(10, 9)
	input.SetMouseButton(hmi.MouseButtonLeft, true)

	ctx := ui.Begin(input, hmi.Vec2{X: 800, Y: 600}, 0.016)

	on := false
	if ctx.Toggle("Pump", &on, hmi.WithDisabled(true)) {
		t.Error("disabled toggle must not flip")
	}

	_ = ui.End()
}

func TestIndicatorSmoke(t *testing.T) {
	renderer := &mockRenderer{}
	ui := hmi.New(renderer)
	input := hmi.NewInputState()

	ctx := ui.Begin(input, hmi.Vec2{X: 800, Y: 600}, 0.016)

	ctx.Gauge("Temp", 72.5,
		hmi.WithValueRange(0, 120),
		hmi.WithUnit("degC"),
		hmi.WithGaugeTicks(5))
	ctx.Bar("Flow", 42,
		hmi.WithValueRange(0, 60),
		hmi.WithBarLimits())
	ctx.Bar("Level", 80,
		hmi.WithValueRange(0, 100),
		hmi.WithBarDirection(hmi.BarVertical))
	ctx.Lamp("Running", true)
	ctx.StatusLamp("Temp high", hmi.LampAlarm)

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
}

func TestVStackHStack(t *testing.T) {
	renderer := &mockRenderer{}
	ui := hmi.New(renderer)
	input := hmi.NewInputState()

	ctx := ui.Begin(input, hmi.Vec2{X: 800, Y: 600}, 0.016)

	ctx.VStack(hmi.Gap(10))(func() {
		ctx.HStack(hmi.Gap(5))(func() {
			ctx.Text("Flow:")
			ctx.Text("42.0 l/min")
		})
		ctx.Text("Below")
	})

	_ = ui.End()
}

func TestDrawListPool(t *testing.T) {
	dl1 := hmi.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}

	dl1.AddRect(0, 0, 100, 100, hmi.ColorWhite)

	hmi.ReleaseDrawList(dl1)

	// Acquire again - might get same or different list
	dl2 := hmi.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}

	// Should be cleared
	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}

	hmi.ReleaseDrawList(dl2)
}

func TestIDGeneration(t *testing.T) {
	renderer := &mockRenderer{}
	ui := hmi.New(renderer)
	input := hmi.NewInputState()

	ctx := ui.Begin(input, hmi.Vec2{X: 800, Y: 600}, 0.016)

	// Same label should generate different IDs due to counter
	id1 := ctx.GetID("toggle")
	id2 := ctx.GetID("toggle")

	if id1 == id2 {
		t.Error("same label should generate different IDs due to auto-increment")
	}

	_ = ui.End()
}

func TestPushPopID(t *testing.T) {
	renderer := &mockRenderer{}
	ui := hmi.New(renderer)
	input := hmi.NewInputState()

	ctx := ui.Begin(input, hmi.Vec2{X: 800, Y: 600}, 0.016)

	ctx.PushID("unit1")
	id1 := ctx.GetID("pump")
	ctx.PopID()

	ctx.PushID("unit2")
	id2 := ctx.GetID("pump")
	ctx.PopID()

	// Same label in different sections should have different IDs
	if id1 == id2 {
		t.Error("same label in different sections should have different IDs")
	}

	_ = ui.End()
}

func TestStyles(t *testing.T) {
	styles := []hmi.Style{
		hmi.DefaultStyle(),
		hmi.ControlRoomStyle(),
		hmi.LightStyle(),
	}

	for i, style := range styles {
		if style.TextColor == 0 {
			t.Errorf("style %d has zero TextColor", i)
		}
		if style.CharWidth == 0 {
			t.Errorf("style %d has zero CharWidth", i)
		}
		if style.OKColor == 0 || style.WarnColor == 0 || style.AlarmColor == 0 {
			t.Errorf("style %d has a zero status color", i)
		}
	}
}

func TestColorFunctions(t *testing.T) {
	c := hmi.RGBA(255, 128, 64, 200)
	r, g, b, a := hmi.UnpackRGBA(c)
	if r != 255 || g != 128 || b != 64 || a != 200 {
		t.Errorf("RGBA roundtrip failed: got %d,%d,%d,%d", r, g, b, a)
	}

	c2 := hmi.WithAlpha(c, 50)
	_, _, _, a2 := hmi.UnpackRGBA(c2)
	if a2 != 50 {
		t.Errorf("WithAlpha: expected alpha 50, got %d", a2)
	}
}

func TestDoubleClickDetection(t *testing.T) {
	input := hmi.NewInputState()

	// First click
	input.SetMouseButton(hmi.MouseButtonLeft, true)
	if input.MouseDoubleClicked(hmi.MouseButtonLeft) {
		t.Error("first click must not be a double-click")
	}
	input.SetMouseButton(hmi.MouseButtonLeft, false)

	// Second click shortly after
	input.Reset()
	input.Advance(0.1)
	input.SetMouseButton(hmi.MouseButtonLeft, true)
	if !input.MouseDoubleClicked(hmi.MouseButtonLeft) {
		t.Error("second click within the interval should be a double-click")
	}
	input.SetMouseButton(hmi.MouseButtonLeft, false)

	// A third click must not chain into another double-click
	input.Reset()
	input.Advance(0.1)
	input.SetMouseButton(hmi.MouseButtonLeft, true)
	if input.MouseDoubleClicked(hmi.MouseButtonLeft) {
		t.Error("double-clicks must not chain")
	}
}

func TestDoubleClickAfterLongSession(t *testing.T) {
	input := hmi.NewInputState()

	// Well past any click interval before the first press
	input.Advance(100)
	input.SetMouseButton(hmi.MouseButtonLeft, true)
	if input.MouseDoubleClicked(hmi.MouseButtonLeft) {
		t.Error("the session's first click must not be a double-click")
	}
	input.SetMouseButton(hmi.MouseButtonLeft, false)

	input.Reset()
	input.Advance(0.1)
	input.SetMouseButton(hmi.MouseButtonLeft, true)
	if !input.MouseDoubleClicked(hmi.MouseButtonLeft) {
		t.Error("second click within the interval should be a double-click")
	}
	input.SetMouseButton(hmi.MouseButtonLeft, false)

	// Chaining must stay suppressed at any clock value
	input.Reset()
	input.Advance(0.1)
	input.SetMouseButton(hmi.MouseButtonLeft, true)
	if input.MouseDoubleClicked(hmi.MouseButtonLeft) {
		t.Error("double-clicks must not chain")
	}
}

func TestDoubleClickTimeout(t *testing.T) {
	input := hmi.NewInputState()

	input.SetMouseButton(hmi.MouseButtonLeft, true)
	input.SetMouseButton(hmi.MouseButtonLeft, false)

	input.Reset()
	input.Advance(1.0)
	input.SetMouseButton(hmi.MouseButtonLeft, true)
	if input.MouseDoubleClicked(hmi.MouseButtonLeft) {
		t.Error("clicks a second apart must not be a double-click")
	}
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := hmi.AcquireDrawList()
	defer hmi.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddRect(float32(i%100), float32(i%100), 50, 50, hmi.ColorWhite)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	renderer := &mockRenderer{}
	ui := hmi.New(renderer)
	input := hmi.NewInputState()
	displaySize := hmi.Vec2{X: 1000, Y: 640}

	trend := hmi.NewTrendWidget(hmi.TrendConfig{ShowLegend: true})
	trend.AddSeries("temp", hmi.DisplayMeta{Label: "Temp", Color: hmi.ColorStatusOK, Visible: true}, 10000)
	for i := 0; i < 10000; i++ {
		trend.PushSample("temp", float64(i)*0.1, float64(i%100))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(input, displaySize, 0.016)

		ctx.Panel("Process", hmi.Width(660))(func() {
			ctx.Trend(trend, 320)
			ctx.Gauge("Temp", 72, hmi.WithValueRange(0, 120))
			ctx.Bar("Flow", 42, hmi.WithValueRange(0, 60))
		})

		_ = ui.End()
	}
}
