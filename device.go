package display

import "time"

// Font identifies one of the engine's text faces. The concrete glyph set is
// chosen by the Device implementation.
type Font uint8

const (
	// FontTitleLarge is the headline face used for line 0 on large displays.
	FontTitleLarge Font = iota
	// FontTitleSmall is the headline face used for line 0 on small displays.
	FontTitleSmall
	// FontBody is the face for lines 1-2 on large displays.
	FontBody
	// FontCompact is the smallest face, used for line 3 and for all body
	// lines on small displays.
	FontCompact
)

// Device is the capability the engine requires from a monochrome display.
//
// All drawing happens in an off-screen frame buffer; nothing reaches the
// panel until SendBuffer is called. Font metrics refer to the face selected
// by the most recent SetFont call.
type Device interface {
	// ClearBuffer blanks the frame buffer.
	ClearBuffer()
	// SendBuffer transfers the frame buffer to the panel.
	SendBuffer() error

	// SetFont selects the face used by Ascent, Descent, StrWidth and DrawStr.
	SetFont(f Font)
	// Ascent returns the selected face's ascent in pixels above the baseline.
	Ascent() int
	// Descent returns the selected face's descent in pixels below the
	// baseline. The value is never negative.
	Descent() int
	// StrWidth returns the rendered width of s in pixels.
	StrWidth(s string) int
	// DrawStr draws s with its baseline at (x, y).
	DrawStr(x, y int, s string)

	// DrawPixel turns on the pixel at (x, y).
	DrawPixel(x, y int)
	// DrawLine draws a one-pixel line from (x0, y0) to (x1, y1).
	DrawLine(x0, y0, x1, y1 int)

	// Width and Height return the panel dimensions in pixels, after rotation.
	Width() int
	Height() int

	// SetContrast sets the panel contrast (0-255, mapped to the controller's
	// native range).
	SetContrast(level uint8) error
	// SetPowerSave pauses (true) or resumes (false) the panel drive.
	SetPowerSave(on bool) error
	// SetRotation rotates the frame by r*90 degrees clockwise (r in 0-3).
	SetRotation(r uint8) error
}

// DiagramRenderer draws a historical power chart into a sub-region of the
// frame. Implemented by the diagram subpackage.
type DiagramRenderer interface {
	// Collect feeds one instantaneous power reading to the sample buffer.
	Collect(watts float64)
	// Redraw renders the chart into the rectangle (x, y, w, h).
	// screensaverOffsetX shifts the plot horizontally; fullscreen enables
	// axis labels that the small inset omits.
	Redraw(screensaverOffsetX, x, y, w, h int, fullscreen bool)
}

// DataSource supplies the measurements shown on the display. Reads must be
// non-blocking snapshots; they are taken once per tick.
type DataSource interface {
	// IsAtLeastOneReachable reports whether any producer currently delivers
	// data. While false the display shows the offline label.
	IsAtLeastOneReachable() bool
	// TotalPower returns the instantaneous AC power in watts.
	TotalPower() float64
	// TotalYieldDay returns today's energy yield in watt-hours.
	TotalYieldDay() float64
	// TotalYieldTotal returns the lifetime energy yield in kilowatt-hours.
	TotalYieldTotal() float64
}

// NetworkInfo exposes the device's network address for the bottom line.
type NetworkInfo interface {
	// LocalAddress returns the current address, or "" when none is assigned.
	LocalAddress() string
}

// Clock abstracts wall-clock time so the offline hysteresis and the
// date/time line are testable. The zero-configuration engine uses the
// system clock.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

func systemClock() Clock {
	return ClockFunc(time.Now)
}
