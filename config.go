package display

import (
	"log/slog"
	"time"
)

// DiagramMode selects how the historical power chart is presented.
type DiagramMode uint8

const (
	// DiagramNone disables the chart.
	DiagramNone DiagramMode = iota
	// DiagramSmall insets the chart in the top-right corner of the frame.
	DiagramSmall
	// DiagramFullscreen alternates between a fullscreen chart and the text
	// view, ten ticks each.
	DiagramFullscreen

	diagramModeCount
)

// Small-diagram inset geometry. The text on line 0 is centered between the
// left edge and chartPosX.
const (
	chartPosX   = 80
	chartPosY   = 0
	chartWidth  = 47
	chartHeight = 28
)

// A display wider than this many pixels uses the large layout and fonts.
const largeWidthThreshold = 100

// defaultInterval is the refresh period used when Opts leaves it zero.
const defaultInterval = 1500 * time.Millisecond

// Config holds the user-facing display settings. All fields can be changed
// at runtime through the engine's setters; changes take effect on the next
// tick.
type Config struct {
	// Rotation turns the frame by Rotation*90 degrees clockwise (0-3).
	Rotation uint8
	// Contrast is the user contrast on a 0-100 scale. It is mapped to the
	// device's 0-255 range.
	Contrast uint8
	// PowerSave allows the engine to suspend the panel after the data
	// source has been unreachable for two refresh intervals.
	PowerSave bool
	// Screensaver enables the anti-burn-in text offset.
	Screensaver bool
	// DiagramMode selects the chart presentation. Ignored on displays that
	// are not classified large.
	DiagramMode DiagramMode
	// Locale selects the template bundle ("en", "de", "fr"). Unknown codes
	// fall back to "en".
	Locale string
}

// Opts configures a new Engine. Source is the only collaborator the engine
// cannot work without; the rest default to no-op or system implementations.
type Opts struct {
	Config Config

	// Source supplies the measurements to render.
	Source DataSource
	// Network supplies the address for the bottom line. Optional.
	Network NetworkInfo
	// Diagram renders the historical chart. Optional; without it the
	// diagram modes degrade to the text layout.
	Diagram DiagramRenderer
	// Clock defaults to the system clock.
	Clock Clock
	// Interval is the refresh period. Defaults to 1.5s.
	Interval time.Duration
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}
