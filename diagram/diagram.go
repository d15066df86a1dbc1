// Package diagram renders a historical power chart for the display engine.
//
// A Renderer collects instantaneous power readings, averages them into
// fixed-interval data points and draws the resulting time series as a
// polyline with a y-axis and a peak label. It implements
// display.DiagramRenderer and, like the engine itself, is driven strictly
// from the tick loop: it is not safe for concurrent use.
package diagram

import (
	"fmt"
	"time"

	"github.com/solwatch/display"
)

// defaultDuration is the time span the chart covers when Opts leaves it
// zero.
const defaultDuration = 36 * time.Hour

// Opts configures a Renderer.
type Opts struct {
	// Capacity is the maximum number of data points. Defaults to the
	// device width, one point per pixel column.
	Capacity int
	// Duration is the time span the chart covers. Together with Capacity
	// it fixes the averaging interval per data point. Defaults to 36h.
	Duration time.Duration
	// Clock defaults to the system clock.
	Clock display.Clock
}

// Renderer holds the sample ring and draws the chart.
type Renderer struct {
	dev   display.Device
	clock display.Clock

	points   []float64 // ring buffer of averaged watts
	head     int       // index of the oldest point
	count    int
	interval time.Duration

	// accumulator for the data point under construction
	sum       float64
	nSamples  int
	lastPoint time.Time
}

// New creates a Renderer drawing into dev. opts can be nil for defaults.
func New(dev display.Device, opts *Opts) *Renderer {
	if opts == nil {
		opts = &Opts{}
	}
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = dev.Width()
	}
	duration := opts.Duration
	if duration <= 0 {
		duration = defaultDuration
	}
	clock := opts.Clock
	if clock == nil {
		clock = display.ClockFunc(time.Now)
	}
	return &Renderer{
		dev:      dev,
		clock:    clock,
		points:   make([]float64, capacity),
		interval: duration / time.Duration(capacity),
	}
}

// Collect feeds one power reading into the accumulator. Once the averaging
// interval has elapsed the accumulated readings collapse into a data point.
func (r *Renderer) Collect(watts float64) {
	now := r.clock.Now()
	if r.lastPoint.IsZero() {
		r.lastPoint = now
	}
	r.sum += watts
	r.nSamples++
	if now.Sub(r.lastPoint) < r.interval {
		return
	}
	r.push(r.sum / float64(r.nSamples))
	r.sum = 0
	r.nSamples = 0
	r.lastPoint = now
}

// push appends a data point, evicting the oldest once full.
func (r *Renderer) push(watts float64) {
	if r.count < len(r.points) {
		r.points[(r.head+r.count)%len(r.points)] = watts
		r.count++
		return
	}
	r.points[r.head] = watts
	r.head = (r.head + 1) % len(r.points)
}

// at returns the i-th oldest data point.
func (r *Renderer) at(i int) float64 {
	return r.points[(r.head+i)%len(r.points)]
}

// Redraw renders the chart into the rectangle (x, y, w, h), shifted right
// by screensaverOffsetX. The fullscreen variant gets a horizontal baseline
// in addition to the y-axis.
func (r *Renderer) Redraw(screensaverOffsetX, x, y, w, h int, fullscreen bool) {
	x += screensaverOffsetX

	// Axes.
	r.dev.DrawLine(x, y, x, y+h-1)
	if fullscreen {
		r.dev.DrawLine(x, y+h-1, x+w-1, y+h-1)
	}

	n := r.count
	if n > w {
		n = w
	}
	if n < 2 {
		return
	}

	maxWatts := 0.0
	for i := r.count - n; i < r.count; i++ {
		if v := r.at(i); v > maxWatts {
			maxWatts = v
		}
	}
	if maxWatts <= 0 {
		return
	}

	// Peak label above the plot; the engine's layout reserves 7 px of
	// header clearance for it in the small-diagram mode.
	r.dev.SetFont(display.FontCompact)
	r.dev.DrawStr(x+2, y+6, peakLabel(maxWatts))

	plotTop := y + 7
	plotH := h - 8
	if plotH < 2 {
		return
	}

	px := func(i int) int { return x + 1 + i*(w-2)/(n-1) }
	py := func(v float64) int {
		return plotTop + plotH - 1 - int(v/maxWatts*float64(plotH-1))
	}

	first := r.count - n
	for i := 1; i < n; i++ {
		r.dev.DrawLine(px(i-1), py(r.at(first+i-1)), px(i), py(r.at(first+i)))
	}
}

// peakLabel formats the chart's maximum for the axis label.
func peakLabel(watts float64) string {
	if watts > 999 {
		return fmt.Sprintf("%.1fkW", watts/1000)
	}
	return fmt.Sprintf("%.0fW", watts)
}
