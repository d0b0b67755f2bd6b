package hmi

// Option configures a widget.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = hmi.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	ctx.MyWidget("id", hmi.WithOpt(OptCustomThing, value))
//
//	// Read in widget implementation
//	value := hmi.GetOpt(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// RangeValue holds min/max range for gauges and bars.
type RangeValue struct {
	Min, Max float64
	HasRange bool
}

// ToggleLook selects the visual rendering of a toggle switch.
type ToggleLook int

const (
	ToggleLookSwitch ToggleLook = iota // Sliding knob in a rounded track
	ToggleLookRelay                    // Square relay contact block
	ToggleLookValve                    // Rotating valve handle
)

// BarDirection selects the fill direction of a bar indicator.
type BarDirection int

const (
	BarHorizontal BarDirection = iota
	BarVertical
)

// --- Core Options ---
var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHeight   = NewOptKey[float32]("height", 0)
	OptLabel    = NewOptKey("label", "")
)

// --- Value Display Options ---
var (
	OptFormat = NewOptKey("format", "")
	OptUnit   = NewOptKey("unit", "")
	OptRange  = NewOptKey("range", RangeValue{})
)

// --- Gauge Options ---
var (
	OptGaugeStartAngle = NewOptKey[float32]("gaugeStartAngle", 0)
	OptGaugeEndAngle   = NewOptKey[float32]("gaugeEndAngle", 0)
	OptGaugeTicks      = NewOptKey("gaugeTicks", 0)
	OptGaugeShowValue  = NewOptKey("gaugeShowValue", true)
)

// --- Bar Options ---
var (
	OptBarDirection  = NewOptKey("barDirection", BarHorizontal)
	OptBarTicks      = NewOptKey("barTicks", 0)
	OptBarShowLimits = NewOptKey("barShowLimits", false)
)

// --- Toggle Options ---
var (
	OptToggleLook = NewOptKey("toggleLook", ToggleLookSwitch)
)

// --- Trend Options ---
var (
	OptTrendGridLines = NewOptKey("trendGridLines", 0)
	OptTrendLegend    = NewOptKey("trendLegend", false)
	OptTrendCrosshair = NewOptKey("trendCrosshair", false)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithID sets an explicit ID for the widget.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithLabel sets a text label drawn next to the widget.
func WithLabel(label string) Option { return WithOpt(OptLabel, label) }

// WithFormat sets the display format for numeric values.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithUnit sets a unit suffix displayed after the value.
func WithUnit(unit string) Option { return WithOpt(OptUnit, unit) }

// WithValueRange sets the minimum and maximum values for gauges and bars.
func WithValueRange(minVal, maxVal float64) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal, HasRange: true})
}

// WithGaugeAngles sets the start and end angles of the gauge arc in
// degrees. Zero degrees is east, angles increase counter-clockwise.
func WithGaugeAngles(startDeg, endDeg float32) Option {
	return func(o *options) {
		WithOpt(OptGaugeStartAngle, startDeg)(o)
		WithOpt(OptGaugeEndAngle, endDeg)(o)
	}
}

// WithGaugeTicks sets the number of tick marks along the gauge arc.
func WithGaugeTicks(n int) Option { return WithOpt(OptGaugeTicks, n) }

// WithoutGaugeValue hides the numeric readout inside the gauge.
func WithoutGaugeValue() Option { return WithOpt(OptGaugeShowValue, false) }

// WithBarDirection sets horizontal or vertical fill.
func WithBarDirection(dir BarDirection) Option { return WithOpt(OptBarDirection, dir) }

// WithBarTicks sets the number of tick marks along the bar.
func WithBarTicks(n int) Option { return WithOpt(OptBarTicks, n) }

// WithBarLimits shows min/max labels at the ends of the bar.
func WithBarLimits() Option { return WithOpt(OptBarShowLimits, true) }

// WithToggleLook selects the toggle switch rendering style.
func WithToggleLook(look ToggleLook) Option { return WithOpt(OptToggleLook, look) }

// WithTrendGridLines sets the number of horizontal grid lines.
func WithTrendGridLines(n int) Option { return WithOpt(OptTrendGridLines, n) }

// WithTrendLegend enables the series legend overlay.
func WithTrendLegend() Option { return WithOpt(OptTrendLegend, true) }

// WithTrendCrosshair enables the hover crosshair and value readout.
func WithTrendCrosshair() Option { return WithOpt(OptTrendCrosshair, true) }
