package display

// Strings bundles the localized templates the engine renders with. The
// numeric templates use fmt verbs; DateTime is a time layout string.
type Strings struct {
	// DateTime formats the clock line, e.g. "01/02/2006 15:04".
	DateTime string
	// Offline is shown on line 0 while no data source is reachable.
	Offline string

	// PowerW and PowerKW format the instantaneous power line.
	PowerW  string
	PowerKW string

	// YieldTodayWh and YieldTodayKWh format today's production.
	YieldTodayWh  string
	YieldTodayKWh string

	// YieldTotalKWh formats small lifetime totals with one decimal;
	// YieldTotalMWh formats larger totals without decimals. Both print the
	// value in kWh; the switch at 1000 kWh only drops the decimal. The
	// naming is historical.
	YieldTotalKWh string
	YieldTotalMWh string
}

// DefaultLocale is the fallback for unrecognized locale codes.
const DefaultLocale = "en"

var locales = map[string]Strings{
	"en": {
		DateTime:      "01/02/2006 15:04",
		Offline:       "Offline",
		PowerW:        "%.0f W",
		PowerKW:       "%.1f kW",
		YieldTodayWh:  "today: %4.0f Wh",
		YieldTodayKWh: "today: %.1f kWh",
		YieldTotalKWh: "total: %.1f kWh",
		YieldTotalMWh: "total: %.0f kWh",
	},
	"de": {
		DateTime:      "02.01.2006 15:04",
		Offline:       "Offline",
		PowerW:        "%.0f W",
		PowerKW:       "%.1f kW",
		YieldTodayWh:  "Heute: %4.0f Wh",
		YieldTodayKWh: "Heute: %.1f kWh",
		YieldTotalKWh: "Ges.: %.1f kWh",
		YieldTotalMWh: "Ges.: %.0f kWh",
	},
	"fr": {
		DateTime:      "02/01/2006 15:04",
		Offline:       "Offline",
		PowerW:        "%.0f W",
		PowerKW:       "%.1f kW",
		YieldTodayWh:  "auj.: %4.0f Wh",
		YieldTodayKWh: "auj.: %.1f kWh",
		YieldTotalKWh: "total: %.1f kWh",
		YieldTotalMWh: "total: %.0f kWh",
	},
}

// LookupLocale returns the template bundle for code, falling back to the
// default locale for unknown codes. The second return reports whether the
// code was recognized.
func LookupLocale(code string) (Strings, bool) {
	if s, ok := locales[code]; ok {
		return s, true
	}
	return locales[DefaultLocale], false
}

// RegisterLocale adds or replaces the template bundle for code. It is meant
// to be called before the engine is constructed, e.g. from an init function
// of a localization package.
func RegisterLocale(code string, s Strings) {
	locales[code] = s
}

// Locales returns the registered locale codes.
func Locales() []string {
	codes := make([]string, 0, len(locales))
	for code := range locales {
		codes = append(codes, code)
	}
	return codes
}
