// Package image1bit provides a 1-bit monochrome image format matching the
// page layout of SSD13xx-class display controllers.
//
// Pixels are stored in vertical byte packing: each byte covers an 8-pixel
// tall column slice (a "page" row), least significant bit on top. This is
// the native RAM layout of the SSD1306/SH1106/SSD1309 and PCD8544, so the
// Pix slice can be transferred to the controller without conversion.
package image1bit

import (
	"image"
	"image/color"
)

// Bit is a 1-bit color. Any non-zero value renders as a lit pixel.
type Bit bool

// On and Off are the two Bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA implements color.Color.
func (b Bit) RGBA() (r, g, b2, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard luminance weighting, then threshold at mid-gray.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image in vertical byte packing. Each byte holds a
// vertical run of 8 pixels with bit 0 at the top.
type VerticalLSB struct {
	Pix    []byte          // Pixel data, one byte per 1x8 column slice
	Stride int             // Bytes per page row (equals width)
	Rect   image.Rectangle // Image bounds; height is a multiple of 8
}

// NewVerticalLSB creates a VerticalLSB image covering r. The height is
// rounded up to a multiple of 8 to fill whole pages.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	pages := (h + 7) / 8
	return &VerticalLSB{
		Pix:    make([]byte, w*pages),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit at (x, y), Off outside the bounds.
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return Bit(p.Pix[offset]&mask != 0)
}

// Set implements draw.Image.
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the pixel at (x, y). Out-of-bounds coordinates are ignored.
// This is faster than Set as it skips the color conversion.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Clear switches every pixel off.
func (p *VerticalLSB) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0
	}
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Memory layout: byte index = page*Stride + x, with page = y/8 and bit y%8.
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	px := x - p.Rect.Min.X
	py := y - p.Rect.Min.Y
	offset = (py/8)*p.Stride + px
	mask = 1 << uint(py&7)
	return
}
