package display

import "time"

// tickState is the engine state carried between ticks.
type tickState struct {
	// counter increments once per rendered frame. Only ever used through
	// modulo arithmetic, so wrapping is harmless.
	counter uint32
	// lastReachable is the wall-clock time of the last tick that saw a
	// reachable data source.
	lastReachable time.Time
}

// tickInputs is the snapshot of configuration and external readings one
// tick decides on.
type tickInputs struct {
	now              time.Time
	reachable        bool
	hasAddress       bool
	isLarge          bool
	diagramPresent   bool
	diagramMode      DiagramMode
	powerSaveEnabled bool
	screensaver      bool
	poweredOn        bool
	interval         time.Duration
}

// renderPlan says what the frame for one tick contains.
type renderPlan struct {
	// offline selects the offline label for line 0.
	offline bool
	// showText enables the four text lines. Only the fullscreen diagram
	// suppresses them.
	showText bool
	// smallDiagram draws the chart inset; fullscreenDiagram replaces the
	// whole frame with the chart.
	smallDiagram      bool
	fullscreenDiagram bool
	// showAddress picks the IP address over date/time on line 3.
	showAddress bool
	// diagramOffsetX is the horizontal screensaver shift for the chart.
	diagramOffsetX int
	// powerSave is the panel power state to apply after the frame.
	powerSave bool
}

// advance runs one step of the mode state machine. It is pure: the engine
// applies the returned plan and stores the returned state.
func advance(s tickState, in tickInputs) (tickState, renderPlan) {
	plan := renderPlan{showText: true}

	if in.reachable {
		s.lastReachable = in.now
		if in.isLarge && in.diagramPresent {
			switch in.diagramMode {
			case DiagramSmall:
				plan.smallDiagram = true
			case DiagramFullscreen:
				// Ten ticks of chart, ten ticks of text.
				if s.counter%20 < 10 {
					plan.fullscreenDiagram = true
					plan.showText = false
				}
			}
		}
	} else {
		plan.offline = true
		// Time-based latch so the threshold survives interval changes.
		if in.now.Sub(s.lastReachable) >= 2*in.interval {
			plan.powerSave = in.powerSaveEnabled
		}
	}

	if plan.showText {
		plan.showAddress = !(s.counter%6 < 3) && in.hasAddress
	}

	if in.screensaver {
		plan.diagramOffsetX = int(s.counter % 7)
	}

	// An engine that was explicitly turned off stays dark no matter what.
	if !in.poweredOn {
		plan.powerSave = true
	}

	s.counter++
	return s, plan
}
