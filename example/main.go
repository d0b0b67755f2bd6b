// Example demonstrates an HMI panel for a small simulated process: a
// live trend of three measurements next to gauge, bar, toggle, and lamp
// indicators.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, initializes the OpenGL HMI
// renderer, and drives a simulated plant into the widgets at 60 Hz.
// Scroll to zoom the trend, drag to pan, double-click or Home to return
// to follow mode.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/open-hmi/hmi"
	"github.com/open-hmi/hmi/backend/opengl"
)

const (
	windowWidth  = 1000
	windowHeight = 640
	windowTitle  = "hmi example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// plant is a toy process model: a heater with a noisy temperature that
// chases a setpoint, a flow that steps when the pump toggles, and a
// pressure that follows the flow.
type plant struct {
	time     float64
	temp     float64
	flow     float64
	pressure float64

	pumpOn  bool
	valveOn bool
}

func (p *plant) step(dt float64) {
	p.time += dt

	target := 20.0
	if p.pumpOn {
		target = 72.0 + 6.0*math.Sin(p.time/7.0)
	}
	p.temp += (target - p.temp) * dt * 0.4
	p.temp += rand.NormFloat64() * 0.15

	flowTarget := 0.0
	if p.pumpOn && p.valveOn {
		flowTarget = 42.0
	}
	p.flow += (flowTarget - p.flow) * dt * 2.5
	p.flow += rand.NormFloat64() * 0.3

	p.pressure = 1.0 + p.flow*0.11 + rand.NormFloat64()*0.05
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Create the HMI renderer (takes initial viewport size) and input adapter.
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("hmi renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	ui := hmi.New(renderer, hmi.WithStyle(hmi.ControlRoomStyle()))

	// Trend with one series per measurement, 30 minutes of history at
	// 10 Hz each.
	trend := hmi.NewTrendWidget(hmi.TrendConfig{
		View: hmi.ViewConfig{
			MinSpan:     1,
			MaxSpan:     1800,
			DefaultSpan: 30,
			ZoomStep:    1.25,
		},
		ShowLegend:    true,
		ShowCrosshair: true,
	})
	mustAdd := func(id string, meta hmi.DisplayMeta) {
		if err := trend.AddSeries(id, meta, 18000); err != nil {
			panic(err)
		}
	}
	mustAdd("temp", hmi.DisplayMeta{Label: "Temp", Unit: "degC", Color: hmi.ColorStatusAlarm, Visible: true})
	mustAdd("flow", hmi.DisplayMeta{Label: "Flow", Unit: "l/min", Color: hmi.ColorStatusOK, Visible: true})
	mustAdd("press", hmi.DisplayMeta{Label: "Pressure", Unit: "bar", Color: hmi.ColorStatusWarn, Visible: true})

	sim := &plant{temp: 20, pumpOn: true, valveOn: true}
	sampleAccum := 0.0

	lastTime := glfw.GetTime()

	// Main loop.
	for !window.ShouldClose() {
		inputAdapter.Reset()
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		input := inputAdapter.Update(dt)

		// Advance the simulation and sample it at 10 Hz.
		sim.step(float64(dt))
		sampleAccum += float64(dt)
		for sampleAccum >= 0.1 {
			sampleAccum -= 0.1
			t := sim.time - sampleAccum
			trend.PushSample("temp", t, sim.temp)
			trend.PushSample("flow", t, sim.flow)
			trend.PushSample("press", t, sim.pressure)
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.07, 0.08, 0.09, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := hmi.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(input, displaySize, dt)

		ctx.Panel("Process Trend", hmi.Width(660))(func() {
			ctx.Trend(trend, 320)
			ctx.Spacing(4)
			ctx.TextDisabled("scroll: zoom  drag: pan  double-click: follow")
		})

		ctx.SetCursorPos(680, 8)
		ctx.Panel("Plant", hmi.Width(300))(func() {
			ctx.HStack()(func() {
				ctx.Gauge("Temp", sim.temp,
					hmi.WithValueRange(0, 120),
					hmi.WithUnit("degC"),
					hmi.WithGaugeTicks(5))
				ctx.Gauge("Pressure", sim.pressure,
					hmi.WithValueRange(0, 8),
					hmi.WithUnit("bar"),
					hmi.WithWidth(100))
			})
			ctx.Spacing(8)
			ctx.Bar("Flow", sim.flow,
				hmi.WithValueRange(0, 60),
				hmi.WithUnit("l/min"),
				hmi.WithBarLimits())
			ctx.Spacing(8)
			ctx.Separator()
			ctx.Spacing(8)

			ctx.Toggle("Feed pump", &sim.pumpOn, hmi.WithToggleLook(hmi.ToggleLookRelay))
			ctx.Spacing(4)
			ctx.Toggle("Outlet valve", &sim.valveOn, hmi.WithToggleLook(hmi.ToggleLookValve))
			ctx.Spacing(8)
			ctx.Separator()
			ctx.Spacing(8)

			ctx.Lamp("Pump running", sim.pumpOn)
			ctx.Spacing(4)
			tempStatus := hmi.LampOK
			switch {
			case sim.temp > 90:
				tempStatus = hmi.LampAlarm
			case sim.temp > 80:
				tempStatus = hmi.LampWarn
			}
			ctx.StatusLamp("Temp high", tempStatus)
		})

		if err := ui.End(); err != nil {
			return fmt.Errorf("hmi render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
