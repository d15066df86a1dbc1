// Package display renders a compact solar-production status overview onto a
// small monochrome graphic display.
//
// The engine draws up to four text lines (instantaneous power, today's and
// total energy yield, and an alternating IP-address/clock line) and can
// overlay or cycle a historical power chart. It is driven by a periodic
// tick: one call to Engine.Tick renders exactly one frame.
//
// # Display Modes
//
// Three diagram modes are supported on displays wider than 100 pixels:
//
//   - DiagramNone: four text lines, no chart.
//   - DiagramSmall: a chart inset in the top-right corner; line 0 is
//     centered in the remaining space.
//   - DiagramFullscreen: the chart and the text view alternate, ten ticks
//     each.
//
// Smaller displays always render the plain text layout regardless of the
// configured mode.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"context"
//		"time"
//
//		"github.com/solwatch/display"
//		"github.com/solwatch/display/mono"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		bus, _ := i2creg.Open("")
//		dev, _ := mono.NewI2C(bus, mono.SSD1306, nil)
//
//		eng, _ := display.New(dev, &display.Opts{
//			Config: display.Config{
//				Rotation:    0,
//				Contrast:    60,
//				PowerSave:   true,
//				Screensaver: true,
//				DiagramMode: display.DiagramSmall,
//				Locale:      "en",
//			},
//			Source: mySource, // display.DataSource implementation
//		})
//
//		eng.Run(context.Background())
//	}
//
// # Power Saving
//
// When no data source has been reachable for twice the refresh interval the
// engine puts the display into power-save mode (if enabled). Turning the
// engine off with SetStatus(false) forces power-save on the next tick.
//
// # Screensaver
//
// To reduce burn-in on OLED panels, an optional screensaver shifts the text
// horizontally by a small triangle-wave offset that advances once per tick.
//
// # Capability Interfaces
//
// The engine is hardware-agnostic: it talks to the panel through the Device
// interface (implemented for several SSD13xx/ST7567/PCD8544 controllers by
// the mono subpackage), reads measurements through DataSource, and obtains
// the optional chart through DiagramRenderer (implemented by the diagram
// subpackage). All collaborators are injected at construction; an engine
// created without a device silently ignores every operation, so optional
// display hardware needs no special casing at the call site.
package display
