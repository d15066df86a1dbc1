package display

import (
	"fmt"
	"time"
)

// maxTextLen caps every formatted line. Nothing longer fits on the panels
// this engine targets, and the truncation means an oversized locale template
// can never produce an unbounded line.
const maxTextLen = 32

// formatter turns measurements into display strings using a locale's
// template bundle.
type formatter struct {
	strings Strings
}

// clamp truncates s to maxTextLen bytes.
func clamp(s string) string {
	if len(s) > maxTextLen {
		return s[:maxTextLen]
	}
	return s
}

func (f *formatter) sprintf(tmpl string, v float64) string {
	return clamp(fmt.Sprintf(tmpl, v))
}

// power formats the instantaneous power line. Values above 999 W switch to
// the kW template with one decimal.
func (f *formatter) power(watts float64) string {
	if watts > 999 {
		return f.sprintf(f.strings.PowerKW, watts/1000)
	}
	return f.sprintf(f.strings.PowerW, watts)
}

// yieldDay formats today's production. Values of 10 kWh and above switch to
// the kWh template.
func (f *formatter) yieldDay(wattHours float64) string {
	if wattHours >= 10000 {
		return f.sprintf(f.strings.YieldTodayKWh, wattHours/1000)
	}
	return f.sprintf(f.strings.YieldTodayWh, wattHours)
}

// yieldTotal formats the lifetime production, which arrives already in kWh.
// At 1000 kWh and above the decimal place is dropped; the value itself is
// never rescaled. See the Strings doc for the template naming.
func (f *formatter) yieldTotal(kiloWattHours float64) string {
	if kiloWattHours >= 1000 {
		return f.sprintf(f.strings.YieldTotalMWh, kiloWattHours)
	}
	return f.sprintf(f.strings.YieldTotalKWh, kiloWattHours)
}

// offline returns the localized offline label.
func (f *formatter) offline() string {
	return clamp(f.strings.Offline)
}

// dateTime formats t with the locale's date layout.
func (f *formatter) dateTime(t time.Time) string {
	return clamp(t.Format(f.strings.DateTime))
}

// address formats the network address line.
func (f *formatter) address(ip string) string {
	return clamp(ip)
}
