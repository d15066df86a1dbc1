package display

import (
	"strings"
	"testing"
	"time"
)

func enFormatter() *formatter {
	s, _ := LookupLocale("en")
	return &formatter{strings: s}
}

func TestFormatPower(t *testing.T) {
	f := enFormatter()

	tests := []struct {
		watts float64
		want  string
	}{
		{0, "0 W"},
		{1, "1 W"},
		{850, "850 W"},
		{999, "999 W"},
		{1000, "1.0 kW"},
		{1234, "1.2 kW"},
		{12345, "12.3 kW"},
	}

	for _, tt := range tests {
		if got := f.power(tt.watts); got != tt.want {
			t.Errorf("power(%v) = %q, want %q", tt.watts, got, tt.want)
		}
	}
}

func TestFormatYieldDay(t *testing.T) {
	f := enFormatter()

	tests := []struct {
		wattHours float64
		want      string
	}{
		{0, "today:    0 Wh"},
		{42, "today:   42 Wh"},
		{9999, "today: 9999 Wh"},
		{10000, "today: 10.0 kWh"},
		{12345, "today: 12.3 kWh"},
	}

	for _, tt := range tests {
		if got := f.yieldDay(tt.wattHours); got != tt.want {
			t.Errorf("yieldDay(%v) = %q, want %q", tt.wattHours, got, tt.want)
		}
	}
}

func TestFormatYieldTotal(t *testing.T) {
	f := enFormatter()

	// Both templates label kWh; the switch at 1000 only drops the decimal.
	tests := []struct {
		kiloWattHours float64
		want          string
	}{
		{0, "total: 0.0 kWh"},
		{81.2, "total: 81.2 kWh"},
		{999, "total: 999.0 kWh"},
		{1000, "total: 1000 kWh"},
		{15432, "total: 15432 kWh"},
	}

	for _, tt := range tests {
		if got := f.yieldTotal(tt.kiloWattHours); got != tt.want {
			t.Errorf("yieldTotal(%v) = %q, want %q", tt.kiloWattHours, got, tt.want)
		}
	}
}

func TestFormatDateTimePerLocale(t *testing.T) {
	ts := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		locale string
		want   string
	}{
		{"en", "06/15/2025 13:45"},
		{"de", "15.06.2025 13:45"},
		{"fr", "15/06/2025 13:45"},
	}

	for _, tt := range tests {
		s, ok := LookupLocale(tt.locale)
		if !ok {
			t.Fatalf("locale %q not registered", tt.locale)
		}
		f := &formatter{strings: s}
		if got := f.dateTime(ts); got != tt.want {
			t.Errorf("dateTime(%s) = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestFormatBounded(t *testing.T) {
	// Even a degenerate template cannot yield an overlong line.
	f := &formatter{strings: Strings{
		PowerW:  strings.Repeat("x", 100) + "%.0f W",
		Offline: strings.Repeat("y", 100),
	}}

	if got := f.power(1); len(got) > maxTextLen {
		t.Errorf("power() length = %d, want <= %d", len(got), maxTextLen)
	}
	if got := f.offline(); len(got) > maxTextLen {
		t.Errorf("offline() length = %d, want <= %d", len(got), maxTextLen)
	}
	if got := f.address(strings.Repeat("1", 100)); len(got) > maxTextLen {
		t.Errorf("address() length = %d, want <= %d", len(got), maxTextLen)
	}
}

func TestFormatBoundaryValuesFit(t *testing.T) {
	// Boundary magnitudes stay within the line limit for every built-in
	// locale.
	for _, code := range Locales() {
		s, _ := LookupLocale(code)
		f := &formatter{strings: s}
		for _, got := range []string{
			f.power(999), f.power(99999),
			f.yieldDay(9999), f.yieldDay(9999999),
			f.yieldTotal(999), f.yieldTotal(9999999),
			f.offline(),
		} {
			if len(got) > maxTextLen {
				t.Errorf("locale %s: %q exceeds %d bytes", code, got, maxTextLen)
			}
		}
	}
}
