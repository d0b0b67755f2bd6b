package hmi

// TimeWindow is a closed time interval shown by a trend.
type TimeWindow struct {
	Start, End float64
}

// Span returns the window length in seconds.
func (w TimeWindow) Span() float64 { return w.End - w.Start }

// Contains reports whether t falls inside the window.
func (w TimeWindow) Contains(t float64) bool {
	return t >= w.Start && t <= w.End
}

// ViewConfig bounds the pan/zoom behavior of a trend view.
type ViewConfig struct {
	MinSpan     float64 // Smallest allowed window span in seconds
	MaxSpan     float64 // Largest allowed window span in seconds
	DefaultSpan float64 // Span used by Reset and before any interaction
	ZoomStep    float64 // Span multiplier per wheel notch, e.g. 1.25

	// Value range used when no samples are visible and no explicit
	// range is set.
	DefaultValueMin float64
	DefaultValueMax float64
}

// DefaultViewConfig returns sensible defaults for a live process trend.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		MinSpan:         0.1,
		MaxSpan:         3600,
		DefaultSpan:     60,
		ZoomStep:        1.25,
		DefaultValueMin: 0,
		DefaultValueMax: 1,
	}
}

// normalize fills zero fields with defaults and orders the span bounds.
func (c ViewConfig) normalize() ViewConfig {
	d := DefaultViewConfig()
	if c.MinSpan <= 0 {
		c.MinSpan = d.MinSpan
	}
	if c.MaxSpan <= 0 {
		c.MaxSpan = d.MaxSpan
	}
	if c.MaxSpan < c.MinSpan {
		c.MinSpan, c.MaxSpan = c.MaxSpan, c.MinSpan
	}
	if c.DefaultSpan <= 0 {
		c.DefaultSpan = d.DefaultSpan
	}
	if c.DefaultSpan < c.MinSpan {
		c.DefaultSpan = c.MinSpan
	}
	if c.DefaultSpan > c.MaxSpan {
		c.DefaultSpan = c.MaxSpan
	}
	if c.ZoomStep <= 1 {
		c.ZoomStep = d.ZoomStep
	}
	if c.DefaultValueMax <= c.DefaultValueMin {
		c.DefaultValueMin = d.DefaultValueMin
		c.DefaultValueMax = d.DefaultValueMax
	}
	return c
}

// ViewState tracks what portion of the sample history a trend shows
// and how the user is currently interacting with it.
//
// The state machine has two interaction phases: idle and panning. A
// drag enters panning and leaves auto-follow; releasing the button
// returns to idle. Zooming and explicit window changes also leave
// auto-follow. Reset re-enters it.
type ViewState struct {
	cfg ViewConfig

	Window     TimeWindow
	AutoFollow bool

	// Fixed value range; when not set the widget auto-fits to the
	// visible samples.
	ValueMin, ValueMax float64
	HasValueRange      bool

	// Panning
	panning    bool
	panAnchorT float64 // Time under the pointer when the drag started
	panStart   TimeWindow
}

// NewViewState creates a view following the live edge with the
// configured default span. The window initially ends at time zero and
// is repinned to the data as soon as samples arrive.
func NewViewState(cfg ViewConfig) *ViewState {
	cfg = cfg.normalize()
	return &ViewState{
		cfg:        cfg,
		Window:     TimeWindow{Start: -cfg.DefaultSpan, End: 0},
		AutoFollow: true,
	}
}

// Config returns the normalized view configuration.
func (v *ViewState) Config() ViewConfig { return v.cfg }

// Panning reports whether a drag is in progress.
func (v *ViewState) Panning() bool { return v.panning }

// SetWindow explicitly sets the visible time window and leaves
// auto-follow. Returns ErrInvalidWindow when end is not after start.
// The span is clamped to the configured bounds, keeping the end fixed.
func (v *ViewState) SetWindow(start, end float64) error {
	if !(end > start) {
		return ErrInvalidWindow
	}
	span := clamp64(end-start, v.cfg.MinSpan, v.cfg.MaxSpan)
	v.Window = TimeWindow{Start: end - span, End: end}
	v.AutoFollow = false
	return nil
}

// SetValueRange fixes the vertical axis to [lo, hi].
func (v *ViewState) SetValueRange(lo, hi float64) error {
	if !(hi > lo) {
		return ErrInvalidWindow
	}
	v.ValueMin, v.ValueMax = lo, hi
	v.HasValueRange = true
	return nil
}

// ClearValueRange returns the vertical axis to auto-fit.
func (v *ViewState) ClearValueRange() {
	v.HasValueRange = false
}

// Reset restores the default span ending at latest and re-enables
// auto-follow. Bound to double-click and the Home key in the trend
// widget.
func (v *ViewState) Reset(latest float64) {
	v.Window = TimeWindow{Start: latest - v.cfg.DefaultSpan, End: latest}
	v.AutoFollow = true
	v.panning = false
}

// FollowTo slides the window so it ends at latest, preserving the
// span. Only meaningful in auto-follow mode; callers check AutoFollow.
func (v *ViewState) FollowTo(latest float64) {
	span := v.Window.Span()
	v.Window = TimeWindow{Start: latest - span, End: latest}
}

// PanBegin enters the panning phase. anchorTime is the time value under
// the pointer at the moment the drag started.
func (v *ViewState) PanBegin(anchorTime float64) {
	v.panning = true
	v.panAnchorT = anchorTime
	v.panStart = v.Window
	v.AutoFollow = false
}

// PanTo pans so the anchor time stays under the pointer, whose current
// position maps to pointerTime within the drag-start window.
func (v *ViewState) PanTo(pointerTime float64) {
	if !v.panning {
		return
	}
	dt := v.panAnchorT - pointerTime
	v.Window = TimeWindow{
		Start: v.panStart.Start + dt,
		End:   v.panStart.End + dt,
	}
}

// PanEnd returns to the idle phase.
func (v *ViewState) PanEnd() {
	v.panning = false
}

// Zoom scales the window span by factor (< 1 zooms in), anchored so
// the given time stays at the same relative position in the window.
// The resulting span is clamped to the configured bounds. Leaves
// auto-follow.
func (v *ViewState) Zoom(factor, anchorTime float64) {
	// A zoom gesture leaves auto-follow even when the span is pinned
	// at a clamp bound and the window cannot change.
	v.AutoFollow = false

	span := v.Window.Span()
	newSpan := clamp64(span*factor, v.cfg.MinSpan, v.cfg.MaxSpan)
	if newSpan == span {
		return
	}

	// Keep the anchor at the same fraction of the window
	frac := 0.5
	if span > 0 {
		frac = (anchorTime - v.Window.Start) / span
	}
	start := anchorTime - frac*newSpan
	v.Window = TimeWindow{Start: start, End: start + newSpan}
}

// ZoomSteps applies the configured zoom step n times; positive n zooms
// in, negative zooms out.
func (v *ViewState) ZoomSteps(n float64, anchorTime float64) {
	if n == 0 {
		return
	}
	factor := 1.0
	step := v.cfg.ZoomStep
	if n > 0 {
		for i := 0.0; i < n; i++ {
			factor /= step
		}
	} else {
		for i := 0.0; i < -n; i++ {
			factor *= step
		}
	}
	v.Zoom(factor, anchorTime)
}

func clamp64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
