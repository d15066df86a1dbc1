// Package mono drives small monochrome display panels behind the
// display.Device interface.
//
// Supported controllers are enumerated by Variant; each is described by a
// data table of command sequences, so the package has a single code path
// for all of them. OLED/LCD controllers with an I2C interface are created
// with NewI2C, the SPI-only PCD8544 with NewSPI.
//
// Drawing happens in an off-screen 1-bit frame buffer (see the image1bit
// package); SendBuffer transfers it page by page. Text is rendered with
// golang.org/x/image/font bitmap faces.
package mono

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/solwatch/display"
	"github.com/solwatch/display/image1bit"
)

// Opts holds optional device settings.
type Opts struct {
	// Addr overrides the controller's default I2C address. Ignored for SPI
	// devices.
	Addr uint16
}

// Dev is a monochrome display device. It implements display.Device.
type Dev struct {
	variant Variant
	spec    variantSpec
	conn    transport

	buf      *image1bit.VerticalLSB
	rotation uint8
	face     font.Face
}

// transport abstracts the command/data split of the two bus types.
type transport interface {
	cmd(c []byte) error
	data(d []byte) error
}

// i2cTransport frames writes with the SSD13xx control byte: 0x00 for
// commands, 0x40 for display data.
type i2cTransport struct {
	dev *i2c.Dev
}

func (t *i2cTransport) cmd(c []byte) error {
	return t.dev.Tx(append([]byte{0x00}, c...), nil)
}

func (t *i2cTransport) data(d []byte) error {
	return t.dev.Tx(append([]byte{0x40}, d...), nil)
}

// spiTransport distinguishes commands from data with the DC gpio pin.
type spiTransport struct {
	c  spi.Conn
	dc gpio.PinOut
}

func (t *spiTransport) cmd(c []byte) error {
	if err := t.dc.Out(gpio.Low); err != nil {
		return err
	}
	return t.c.Tx(c, nil)
}

func (t *spiTransport) data(d []byte) error {
	if err := t.dc.Out(gpio.High); err != nil {
		return err
	}
	return t.c.Tx(d, nil)
}

// NewI2C creates a device for an I2C-attached controller. opts can be nil
// to use the variant's default address.
func NewI2C(bus i2c.Bus, v Variant, opts *Opts) (*Dev, error) {
	spec, ok := variants[v]
	if !ok {
		return nil, fmt.Errorf("mono: unknown variant %d", uint8(v))
	}
	if spec.spiOnly {
		return nil, fmt.Errorf("mono: %s has no I2C interface", v)
	}
	addr := spec.i2cAddr
	if opts != nil && opts.Addr != 0 {
		addr = opts.Addr
	}
	return newDev(v, spec, &i2cTransport{dev: &i2c.Dev{Bus: bus, Addr: addr}})
}

// NewSPI creates a device for an SPI-attached controller. dc is the
// data/command pin and must be configured as an output.
func NewSPI(p spi.Port, dc gpio.PinOut, v Variant, opts *Opts) (*Dev, error) {
	spec, ok := variants[v]
	if !ok {
		return nil, fmt.Errorf("mono: unknown variant %d", uint8(v))
	}
	if dc == nil {
		return nil, errors.New("mono: DC pin required")
	}
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return newDev(v, spec, &spiTransport{c: c, dc: dc})
}

func newDev(v Variant, spec variantSpec, t transport) (*Dev, error) {
	d := &Dev{
		variant: v,
		spec:    spec,
		conn:    t,
		buf:     image1bit.NewVerticalLSB(image.Rect(0, 0, spec.width, spec.height)),
		face:    faces[display.FontCompact],
	}
	if err := t.cmd(spec.initSeq); err != nil {
		return nil, fmt.Errorf("mono: init %s: %w", v, err)
	}
	d.ClearBuffer()
	if err := d.SendBuffer(); err != nil {
		return nil, fmt.Errorf("mono: clear %s: %w", v, err)
	}
	return d, nil
}

// String implements fmt.Stringer.
func (d *Dev) String() string {
	return fmt.Sprintf("mono.Dev{%s %dx%d}", d.variant, d.spec.width, d.spec.height)
}

// Width returns the panel width in the current orientation.
func (d *Dev) Width() int {
	if d.rotation%2 == 1 {
		return d.spec.height
	}
	return d.spec.width
}

// Height returns the panel height in the current orientation.
func (d *Dev) Height() int {
	if d.rotation%2 == 1 {
		return d.spec.width
	}
	return d.spec.height
}

// ClearBuffer blanks the frame buffer.
func (d *Dev) ClearBuffer() {
	d.buf.Clear()
}

// SendBuffer transfers the frame buffer to the panel, one page row at a
// time.
func (d *Dev) SendBuffer() error {
	pages := (d.spec.height + 7) / 8
	for page := 0; page < pages; page++ {
		col := d.spec.colOffset
		addr := []byte{
			byte(0xB0 + page),          // page address
			byte(col & 0x0F),           // column low nibble
			byte(0x10 | (col>>4)&0x0F), // column high nibble
		}
		if d.spec.spiOnly {
			// PCD8544 addressing uses dedicated X/Y commands.
			addr = []byte{0x40 | byte(page), 0x80}
		}
		if err := d.conn.cmd(addr); err != nil {
			return err
		}
		row := d.buf.Pix[page*d.buf.Stride : (page+1)*d.buf.Stride]
		if err := d.conn.data(row); err != nil {
			return err
		}
	}
	return nil
}

// SetFont selects the face used for subsequent metric and drawing calls.
func (d *Dev) SetFont(f display.Font) {
	if face, ok := faces[f]; ok {
		d.face = face
	}
}

// Ascent returns the selected face's ascent in pixels.
func (d *Dev) Ascent() int {
	return d.face.Metrics().Ascent.Ceil()
}

// Descent returns the selected face's descent in pixels.
func (d *Dev) Descent() int {
	return d.face.Metrics().Descent.Ceil()
}

// StrWidth returns the rendered width of s in pixels.
func (d *Dev) StrWidth(s string) int {
	return font.MeasureString(d.face, s).Ceil()
}

// DrawStr draws s with its baseline at (x, y) in the current orientation.
func (d *Dev) DrawStr(x, y int, s string) {
	dr := font.Drawer{
		Dst:  (*canvas)(d),
		Src:  image.NewUniform(image1bit.On),
		Face: d.face,
		Dot:  fixed.P(x, y),
	}
	dr.DrawString(s)
}

// DrawPixel turns on the pixel at (x, y) in the current orientation.
func (d *Dev) DrawPixel(x, y int) {
	d.setPixel(x, y, image1bit.On)
}

// DrawLine draws a one-pixel line between (x0, y0) and (x1, y1).
func (d *Dev) DrawLine(x0, y0, x1, y1 int) {
	// Bresenham.
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		d.setPixel(x0, y0, image1bit.On)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// setPixel maps an oriented coordinate onto the native buffer.
func (d *Dev) setPixel(x, y int, b image1bit.Bit) {
	w, h := d.spec.width, d.spec.height
	var nx, ny int
	switch d.rotation {
	case 1:
		nx, ny = w-1-y, x
	case 2:
		nx, ny = w-1-x, h-1-y
	case 3:
		nx, ny = y, h-1-x
	default:
		nx, ny = x, y
	}
	d.buf.SetBit(nx, ny, b)
}

// SetRotation rotates the frame by r*90 degrees clockwise. The rotation is
// applied in software when drawing; the buffer transfer is unchanged.
func (d *Dev) SetRotation(r uint8) error {
	if r > 3 {
		return fmt.Errorf("mono: rotation %d out of range", r)
	}
	d.rotation = r
	return nil
}

// SetContrast sets the panel contrast (0-255, mapped to the controller's
// native register width).
func (d *Dev) SetContrast(level uint8) error {
	return d.conn.cmd(d.spec.contrast(level))
}

// SetPowerSave pauses or resumes the panel drive.
func (d *Dev) SetPowerSave(on bool) error {
	if on {
		return d.conn.cmd(d.spec.powerOff)
	}
	return d.conn.cmd(d.spec.powerOn)
}

// bitAt reads an oriented coordinate from the native buffer.
func (d *Dev) bitAt(x, y int) image1bit.Bit {
	w, h := d.spec.width, d.spec.height
	var nx, ny int
	switch d.rotation {
	case 1:
		nx, ny = w-1-y, x
	case 2:
		nx, ny = w-1-x, h-1-y
	case 3:
		nx, ny = y, h-1-x
	default:
		nx, ny = x, y
	}
	return d.buf.BitAt(nx, ny)
}

// canvas adapts Dev to draw.Image so font.Drawer renders glyphs through the
// orientation transform.
type canvas Dev

func (c *canvas) ColorModel() color.Model {
	return image1bit.BitModel
}

func (c *canvas) Bounds() image.Rectangle {
	d := (*Dev)(c)
	return image.Rect(0, 0, d.Width(), d.Height())
}

func (c *canvas) At(x, y int) color.Color {
	return (*Dev)(c).bitAt(x, y)
}

func (c *canvas) Set(x, y int, col color.Color) {
	(*Dev)(c).setPixel(x, y, image1bit.BitModel.Convert(col).(image1bit.Bit))
}
