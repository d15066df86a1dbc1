package image1bit

import (
	"image"
	"image/color"
	"testing"
)

func TestNewVerticalLSB(t *testing.T) {
	tests := []struct {
		name    string
		rect    image.Rectangle
		wantPix int
	}{
		{"128x64 (8 pages)", image.Rect(0, 0, 128, 64), 128 * 8},
		{"128x32 (4 pages)", image.Rect(0, 0, 128, 32), 128 * 4},
		{"84x48 (6 pages)", image.Rect(0, 0, 84, 48), 84 * 6},
		{"height rounded to page", image.Rect(0, 0, 10, 12), 10 * 2},
		{"empty", image.Rect(0, 0, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewVerticalLSB(tt.rect)
			if len(img.Pix) != tt.wantPix {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPix)
			}
			if img.Bounds() != tt.rect {
				t.Errorf("Bounds() = %v, want %v", img.Bounds(), tt.rect)
			}
		})
	}
}

func TestPixOffset(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 128, 64))

	tests := []struct {
		x, y       int
		wantOffset int
		wantMask   byte
	}{
		{0, 0, 0, 0x01},
		{0, 7, 0, 0x80},
		{0, 8, 128, 0x01},
		{5, 0, 5, 0x01},
		{127, 63, 7*128 + 127, 0x80},
	}

	for _, tt := range tests {
		offset, mask := img.pixOffset(tt.x, tt.y)
		if offset != tt.wantOffset || mask != tt.wantMask {
			t.Errorf("pixOffset(%d, %d) = (%d, 0x%02X), want (%d, 0x%02X)",
				tt.x, tt.y, offset, mask, tt.wantOffset, tt.wantMask)
		}
	}
}

func TestSetBitAndBitAt(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 16, 16))

	img.SetBit(3, 9, On)
	if !img.BitAt(3, 9) {
		t.Error("BitAt(3, 9) = Off after SetBit On")
	}
	if img.Pix[1*16+3] != 0x02 {
		t.Errorf("Pix byte = 0x%02X, want 0x02", img.Pix[1*16+3])
	}

	img.SetBit(3, 9, Off)
	if img.BitAt(3, 9) {
		t.Error("BitAt(3, 9) = On after SetBit Off")
	}

	// Out of bounds is ignored, not a panic.
	img.SetBit(-1, 0, On)
	img.SetBit(16, 0, On)
	img.SetBit(0, 16, On)
	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("Pix[%d] = 0x%02X after out-of-bounds writes", i, b)
		}
	}
}

func TestSetColorConversion(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))

	img.Set(0, 0, color.White)
	if !img.BitAt(0, 0) {
		t.Error("white did not convert to On")
	}

	img.Set(0, 0, color.Black)
	if img.BitAt(0, 0) {
		t.Error("black did not convert to Off")
	}

	img.Set(1, 0, color.Gray{Y: 200})
	if !img.BitAt(1, 0) {
		t.Error("light gray did not convert to On")
	}

	img.Set(2, 0, color.Gray{Y: 50})
	if img.BitAt(2, 0) {
		t.Error("dark gray did not convert to Off")
	}
}

func TestClear(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.SetBit(x, x, On)
	}
	img.Clear()
	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("Pix[%d] = 0x%02X after Clear", i, b)
		}
	}
}

func TestBitRGBA(t *testing.T) {
	r, g, b, a := On.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("On.RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
	r, g, b, a = Off.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("Off.RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
}
