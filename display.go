package display

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// splashText is rendered once at startup.
const splashText = "SolWatch!"

// Engine renders the status overview. Construct it with New and drive it
// either by calling Tick from an external scheduler or by running the
// built-in Run loop.
//
// An Engine built without a device is permanently disabled: every method is
// a no-op. This mirrors how the hardware is optional on the monitoring
// device itself.
type Engine struct {
	dev     Device
	source  DataSource
	network NetworkInfo
	diagram DiagramRenderer
	clock   Clock
	log     *slog.Logger

	mu              sync.Mutex
	cfg             Config
	interval        time.Duration
	format          formatter
	isLarge         bool
	lineOffsets     [lineCount]int
	poweredOn       bool
	powerSaveActive bool
	state           tickState
}

// New creates an Engine. dev may be nil, in which case the engine is
// disabled and every operation silently does nothing. opts.Source is
// required for an enabled engine.
func New(dev Device, opts *Opts) (*Engine, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if dev != nil && opts.Source == nil {
		return nil, errors.New("display: data source required")
	}
	if opts.Config.Rotation > 3 {
		return nil, errors.New("display: rotation must be 0-3")
	}
	if opts.Config.DiagramMode >= diagramModeCount {
		return nil, errors.New("display: invalid diagram mode")
	}

	e := &Engine{
		dev:     dev,
		source:  opts.Source,
		network: opts.Network,
		diagram: opts.Diagram,
		clock:   opts.Clock,
		log:     opts.Logger,
		cfg:     opts.Config,
	}
	if e.clock == nil {
		e.clock = systemClock()
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	e.interval = opts.Interval
	if e.interval <= 0 {
		e.interval = defaultInterval
	}
	e.setLocaleLocked(e.cfg.Locale)

	if dev == nil {
		return e, nil
	}

	e.poweredOn = true
	// Treat boot as "just seen": the offline power-save latch starts its
	// clock here, not at the epoch.
	e.state.lastReachable = e.clock.Now()

	if err := dev.SetRotation(e.cfg.Rotation); err != nil {
		return nil, err
	}
	if err := dev.SetContrast(scaleContrast(e.cfg.Contrast)); err != nil {
		return nil, err
	}
	e.recalcLayoutLocked()

	// Startup splash.
	dev.ClearBuffer()
	e.printText(splashText, 0, false, 0)
	if err := dev.SendBuffer(); err != nil {
		return nil, err
	}
	return e, nil
}

// scaleContrast maps the user 0-100 contrast scale to the device's 0-255
// range.
func scaleContrast(level uint8) uint8 {
	return uint8(float32(level) * 2.55)
}

func (e *Engine) enabled() bool {
	return e != nil && e.dev != nil
}

// Interval returns the current refresh period.
func (e *Engine) Interval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.interval
}

// SetInterval changes the refresh period. The Run loop re-arms with the new
// value after the next tick. Non-positive values are ignored.
func (e *Engine) SetInterval(d time.Duration) {
	if !e.enabled() || d <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.interval = d
}

// SetOrientation rotates the display by rotation*90 degrees clockwise.
// Values outside 0-3 are ignored.
func (e *Engine) SetOrientation(rotation uint8) {
	if !e.enabled() || rotation > 3 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.dev.SetRotation(rotation); err != nil {
		e.log.Warn("display: set rotation", "rotation", rotation, "err", err)
		return
	}
	e.cfg.Rotation = rotation
	e.recalcLayoutLocked()
}

// SetContrast sets the user contrast (0-100).
func (e *Engine) SetContrast(level uint8) {
	if !e.enabled() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Contrast = level
	if err := e.dev.SetContrast(scaleContrast(level)); err != nil {
		e.log.Warn("display: set contrast", "level", level, "err", err)
	}
}

// SetLocale switches the template bundle. Unknown codes fall back to the
// default locale.
func (e *Engine) SetLocale(code string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setLocaleLocked(code)
}

func (e *Engine) setLocaleLocked(code string) {
	strings, ok := LookupLocale(code)
	if !ok {
		e.log.Debug("display: unknown locale, using default", "locale", code, "default", DefaultLocale)
	}
	e.cfg.Locale = code
	e.format = formatter{strings: strings}
}

// SetDiagramMode changes the chart presentation. Invalid modes are ignored.
func (e *Engine) SetDiagramMode(mode DiagramMode) {
	if !e.enabled() || mode >= diagramModeCount {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.DiagramMode = mode
	e.recalcLayoutLocked()
}

// SetPowerSaveEnabled toggles the offline power-save feature.
func (e *Engine) SetPowerSaveEnabled(enabled bool) {
	if !e.enabled() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.PowerSave = enabled
}

// SetScreensaverEnabled toggles the anti-burn-in text motion.
func (e *Engine) SetScreensaverEnabled(enabled bool) {
	if !e.enabled() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.Screensaver = enabled
}

// SetStatus turns the display on or off. While off, every tick forces the
// panel into power-save mode.
func (e *Engine) SetStatus(on bool) {
	if !e.enabled() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.poweredOn = on
}

// Config returns a snapshot of the current settings.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// recalcLayoutLocked refreshes the large/small classification and the line
// baselines. Called after rotation or diagram mode changes.
func (e *Engine) recalcLayoutLocked() {
	e.isLarge = e.dev.Width() > largeWidthThreshold
	diagramActive := e.isLarge && e.diagram != nil && e.cfg.DiagramMode == DiagramSmall
	e.lineOffsets = computeLineOffsets(e.dev, e.isLarge, diagramActive)
}

// Tick renders one frame. It is not reentrant; the caller must not overlap
// invocations. Configuration setters may run concurrently and take effect
// atomically at the next tick.
func (e *Engine) Tick() {
	if !e.enabled() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickLocked()
}

func (e *Engine) tickLocked() {
	now := e.clock.Now()
	reachable := e.source.IsAtLeastOneReachable()
	addr := ""
	if e.network != nil {
		addr = e.network.LocalAddress()
	}

	in := tickInputs{
		now:              now,
		reachable:        reachable,
		hasAddress:       addr != "",
		isLarge:          e.isLarge,
		diagramPresent:   e.diagram != nil,
		diagramMode:      e.cfg.DiagramMode,
		powerSaveEnabled: e.cfg.PowerSave,
		screensaver:      e.cfg.Screensaver,
		poweredOn:        e.poweredOn,
		interval:         e.interval,
	}

	tick := e.state.counter
	var plan renderPlan
	e.state, plan = advance(e.state, in)

	e.dev.ClearBuffer()

	if reachable && e.diagram != nil {
		e.diagram.Collect(e.source.TotalPower())
	}

	switch {
	case plan.fullscreenDiagram:
		e.diagram.Redraw(plan.diagramOffsetX, 10, 0, e.dev.Width()-12, e.dev.Height()-3, true)
	case plan.smallDiagram:
		e.diagram.Redraw(plan.diagramOffsetX, chartPosX, chartPosY, chartWidth, chartHeight, false)
	}

	if plan.offline {
		e.printText(e.format.offline(), 0, plan.smallDiagram, tick)
	} else if plan.showText {
		e.printText(e.format.power(e.source.TotalPower()), 0, plan.smallDiagram, tick)
	}

	if plan.showText {
		e.printText(e.format.yieldDay(e.source.TotalYieldDay()), 1, plan.smallDiagram, tick)
		e.printText(e.format.yieldTotal(e.source.TotalYieldTotal()), 2, plan.smallDiagram, tick)
		if plan.showAddress {
			e.printText(e.format.address(addr), 3, plan.smallDiagram, tick)
		} else {
			e.printText(e.format.dateTime(now), 3, plan.smallDiagram, tick)
		}
	}

	if err := e.dev.SendBuffer(); err != nil {
		e.log.Warn("display: send buffer", "err", err)
	}

	if plan.powerSave != e.powerSaveActive {
		e.log.Debug("display: power save", "active", plan.powerSave)
	}
	e.powerSaveActive = plan.powerSave
	if err := e.dev.SetPowerSave(plan.powerSave); err != nil {
		e.log.Warn("display: set power save", "err", err)
	}
}

// printText draws one line, horizontally placed per the layout rules and
// shifted by the screensaver offset.
func (e *Engine) printText(text string, line int, smallDiagram bool, tick uint32) {
	e.dev.SetFont(fontFor(line, e.isLarge))

	var x int
	if !e.isLarge {
		if line == 0 {
			x = 5
		}
	} else if line == 0 && smallDiagram {
		// Center between the left edge and the chart inset.
		x = (chartPosX - e.dev.StrWidth(text)) / 2
	} else {
		x = (e.dev.Width() - e.dev.StrWidth(text)) / 2
	}

	if e.cfg.Screensaver {
		x += screensaverOffset(tick, e.isLarge)
	}
	if x < 0 || x > e.dev.Width() {
		x = 0
	}
	e.dev.DrawStr(x, e.lineOffsets[line], text)
}

// Run ticks the engine at the configured interval until ctx is canceled.
// The timer is re-armed after every tick, so interval changes made through
// SetInterval apply from the following cycle.
func (e *Engine) Run(ctx context.Context) {
	if !e.enabled() {
		return
	}
	timer := time.NewTimer(e.Interval())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			e.Tick()
			timer.Reset(e.Interval())
		}
	}
}
