package display

// lineCount is the number of text lines the engine renders.
const lineCount = 4

// fontFor returns the face for a text line. Line 0 carries the headline
// face, line 3 the compact face; on small displays lines 1-2 drop to the
// compact face as well.
func fontFor(line int, isLarge bool) Font {
	switch line {
	case 0:
		if isLarge {
			return FontTitleLarge
		}
		return FontTitleSmall
	case 3:
		return FontCompact
	default:
		if isLarge {
			return FontBody
		}
		return FontCompact
	}
}

// computeLineOffsets derives the four baseline y-positions from the device's
// font metrics. It runs only when rotation, diagram mode or the font plan
// changes, never per frame.
//
// With the small diagram active the whole block starts 7 px down to clear
// the chart's y-axis label.
func computeLineOffsets(dev Device, isLarge bool, diagramActive bool) [lineCount]int {
	var offsets [lineCount]int
	yOff := 0
	if diagramActive {
		yOff = 7
	}
	gap := 3
	if !isLarge || diagramActive {
		gap = 2
	}
	for line := 0; line < lineCount; line++ {
		dev.SetFont(fontFor(line, isLarge))
		yOff += dev.Ascent()
		offsets[line] = yOff
		yOff += gap
		// The descent reserves room for the *next* line's baseline. Line 0
		// never shows descender glyphs, and with the small diagram active
		// that space is needed for the chart.
		if line == 0 && diagramActive {
			continue
		}
		yOff += dev.Descent()
	}
	return offsets
}
