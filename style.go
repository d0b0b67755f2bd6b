package hmi

// Style defines the visual appearance of the HMI widgets. A Style is an
// explicit value passed at construction (UI option or PushStyle); there
// is no process-wide mutable theme.
type Style struct {
	// Text colors
	TextColor         uint32
	TextDisabledColor uint32

	// Panel colors
	PanelColor           uint32
	PanelBorderColor     uint32
	PanelHeaderBgColor   uint32
	PanelHeaderTextColor uint32

	// Plot colors (trend widget)
	PlotBgColor     uint32 // Plot area background
	PlotBorderColor uint32
	GridColor       uint32 // Horizontal/vertical grid lines
	AxisTextColor   uint32 // Axis tick labels
	CrosshairColor  uint32 // Hover crosshair line
	EnvelopeAlpha   uint8  // Alpha applied to min/max envelope fill
	TooltipBgColor  uint32
	TooltipBorder   uint32

	// Indicator colors
	OKColor    uint32 // Normal / on
	WarnColor  uint32 // Warning / off
	AlarmColor uint32 // Alarm
	TrackColor uint32 // Gauge/bar/toggle background track

	// Separator
	SeparatorColor uint32

	// Font (built-in monospace bitmap font)
	FontScale  float32
	CharWidth  float32
	CharHeight float32

	// Sizing
	ItemSpacing  float32 // Default gap between items
	PanelPadding float32
}

// DefaultStyle returns the default dark style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:           RGBA(20, 20, 20, 220),
		PanelBorderColor:     RGBA(80, 80, 80, 255),
		PanelHeaderBgColor:   RGBA(40, 40, 45, 255),
		PanelHeaderTextColor: 0, // Use TextColor

		PlotBgColor:     RGBA(12, 14, 16, 255),
		PlotBorderColor: RGBA(80, 80, 80, 255),
		GridColor:       RGBA(70, 70, 70, 110),
		AxisTextColor:   RGBA(150, 150, 150, 255),
		CrosshairColor:  RGBA(255, 255, 255, 100),
		EnvelopeAlpha:   90,
		TooltipBgColor:  RGBA(25, 25, 28, 240),
		TooltipBorder:   RGBA(90, 90, 90, 255),

		OKColor:    ColorStatusOK,
		WarnColor:  ColorStatusWarn,
		AlarmColor: ColorStatusAlarm,
		TrackColor: RGBA(45, 45, 45, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),

		FontScale:  1.0,
		CharWidth:  8,
		CharHeight: 8,

		ItemSpacing:  4,
		PanelPadding: 8,
	}
}

// ControlRoomStyle returns a high-contrast dark theme in the manner of
// classic SCADA control-room displays: near-black background, saturated
// status colors, amber axis text.
func ControlRoomStyle() Style {
	s := DefaultStyle()
	s.PanelColor = RGBA(8, 10, 12, 245)
	s.PanelHeaderBgColor = RGBA(16, 36, 48, 255)
	s.PanelHeaderTextColor = RGBA(255, 190, 0, 255)
	s.PlotBgColor = RGBA(4, 6, 8, 255)
	s.GridColor = RGBA(40, 70, 70, 130)
	s.AxisTextColor = RGBA(220, 170, 40, 255)
	s.CrosshairColor = RGBA(0, 220, 255, 120)
	s.TrackColor = RGBA(30, 34, 38, 255)
	s.SeparatorColor = RGBA(0, 120, 150, 130)
	return s
}

// LightStyle returns a light theme for daylight-readable panels.
func LightStyle() Style {
	return Style{
		TextColor:         RGBA(20, 20, 20, 255),
		TextDisabledColor: RGBA(150, 150, 150, 255),

		PanelColor:           RGBA(245, 245, 245, 250),
		PanelBorderColor:     RGBA(200, 200, 200, 255),
		PanelHeaderBgColor:   RGBA(220, 220, 225, 255),
		PanelHeaderTextColor: RGBA(40, 40, 40, 255),

		PlotBgColor:     RGBA(252, 252, 252, 255),
		PlotBorderColor: RGBA(190, 190, 190, 255),
		GridColor:       RGBA(160, 160, 160, 110),
		AxisTextColor:   RGBA(100, 100, 100, 255),
		CrosshairColor:  RGBA(30, 30, 30, 110),
		EnvelopeAlpha:   70,
		TooltipBgColor:  RGBA(255, 255, 255, 245),
		TooltipBorder:   RGBA(170, 170, 170, 255),

		OKColor:    RGBA(30, 150, 30, 255),
		WarnColor:  RGBA(210, 140, 0, 255),
		AlarmColor: RGBA(200, 30, 30, 255),
		TrackColor: RGBA(220, 220, 220, 255),

		SeparatorColor: RGBA(200, 200, 200, 255),

		FontScale:  1.0,
		CharWidth:  8,
		CharHeight: 8,

		ItemSpacing:  4,
		PanelPadding: 8,
	}
}
