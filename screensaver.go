package display

// screensaverOffset returns the horizontal text shift for one tick of the
// anti-burn-in motion: a triangle wave bounded by maxOffset with period
// 2*maxOffset. Large displays use a wider swing and oscillate around the
// center instead of only to the right.
func screensaverOffset(tick uint32, isLarge bool) int {
	maxOffset := uint32(6)
	if isLarge {
		maxOffset = 8
	}
	period := 2 * maxOffset
	step := tick % period
	offset := int(step)
	if step > maxOffset {
		offset = int(period - step)
	}
	if isLarge {
		offset -= 5
	}
	return offset
}
