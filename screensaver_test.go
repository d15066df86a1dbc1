package display

import "testing"

func TestScreensaverOffsetSmall(t *testing.T) {
	// Triangle wave 0..6..0 with period 12.
	want := []int{0, 1, 2, 3, 4, 5, 6, 5, 4, 3, 2, 1}
	for tick := 0; tick < 36; tick++ {
		got := screensaverOffset(uint32(tick), false)
		if got != want[tick%12] {
			t.Errorf("offset(%d, small) = %d, want %d", tick, got, want[tick%12])
		}
	}
}

func TestScreensaverOffsetLarge(t *testing.T) {
	// Triangle wave 0..8..0 with period 16, shifted down by 5 so the motion
	// oscillates around the center.
	for tick := 0; tick < 64; tick++ {
		got := screensaverOffset(uint32(tick), true)
		if got < -5 || got > 3 {
			t.Errorf("offset(%d, large) = %d outside [-5, 3]", tick, got)
		}
		if periodic := screensaverOffset(uint32(tick+16), true); periodic != got {
			t.Errorf("offset(%d) = %d, offset(%d) = %d; want 16-periodic", tick, got, tick+16, periodic)
		}
	}
}

func TestScreensaverOffsetBounds(t *testing.T) {
	for tick := uint32(0); tick < 1000; tick++ {
		if got := screensaverOffset(tick, false); got < 0 || got > 6 {
			t.Fatalf("small offset %d out of [0, 6] at tick %d", got, tick)
		}
		if got := screensaverOffset(tick, true); got < -8 || got > 8 {
			t.Fatalf("large offset %d out of [-8, 8] at tick %d", got, tick)
		}
	}
}
