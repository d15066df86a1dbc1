package mono

import "fmt"

// Variant identifies a supported display controller.
type Variant uint8

const (
	// SSD1306 is the ubiquitous 128x64 OLED controller (I2C).
	SSD1306 Variant = iota
	// SH1106 is an SSD1306-alike with a 132-column RAM (I2C).
	SH1106
	// SSD1309 drives larger 128x64 OLED panels (I2C).
	SSD1309
	// ST7567 drives the GM12864I-59N 128x64 LCD (I2C, non-default address).
	ST7567
	// PCD8544 is the 84x48 Nokia 5110 LCD (SPI only).
	PCD8544

	variantCount
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

var variantNames = [...]string{"SSD1306", "SH1106", "SSD1309", "ST7567", "PCD8544"}

// variantSpec is the data-driven description of one controller: geometry,
// bus defaults and command sequences. Adding a controller means adding a
// table entry, not another code path.
type variantSpec struct {
	width, height int

	// i2cAddr is the controller's default bus address; zero for SPI-only
	// parts.
	i2cAddr uint16
	spiOnly bool

	// colOffset shifts column addressing for controllers whose RAM is wider
	// than the panel (SH1106: 132 columns for 128 pixels).
	colOffset int

	// initSeq is sent once at construction.
	initSeq []byte

	// powerOn and powerOff switch the panel drive for power-save mode.
	powerOn, powerOff []byte

	// contrast builds the command sequence for a 0-255 contrast level.
	contrast func(level byte) []byte
}

var variants = map[Variant]variantSpec{
	SSD1306: {
		width: 128, height: 64,
		i2cAddr: 0x3C,
		initSeq: []byte{
			0xAE,       // display off
			0xD5, 0x80, // clock divide
			0xA8, 0x3F, // multiplex 64
			0xD3, 0x00, // display offset
			0x40,       // start line 0
			0x8D, 0x14, // charge pump on
			0x20, 0x02, // page addressing mode
			0xA1,       // segment remap
			0xC8,       // COM scan reversed
			0xDA, 0x12, // COM pins
			0x81, 0xCF, // contrast
			0xD9, 0xF1, // pre-charge
			0xDB, 0x40, // VCOM deselect
			0xA4, // resume from RAM
			0xA6, // normal (non-inverted)
			0xAF, // display on
		},
		powerOn:  []byte{0xAF},
		powerOff: []byte{0xAE},
		contrast: func(level byte) []byte { return []byte{0x81, level} },
	},
	SH1106: {
		width: 128, height: 64,
		i2cAddr:   0x3C,
		colOffset: 2,
		initSeq: []byte{
			0xAE,       // display off
			0xD5, 0x80, // clock divide
			0xA8, 0x3F, // multiplex 64
			0xD3, 0x00, // display offset
			0x40,       // start line 0
			0xAD, 0x8B, // charge pump on
			0xA1,       // segment remap
			0xC8,       // COM scan reversed
			0xDA, 0x12, // COM pins
			0x81, 0x80, // contrast
			0xD9, 0x22, // pre-charge
			0xDB, 0x35, // VCOM deselect
			0xA4, // resume from RAM
			0xA6, // normal
			0xAF, // display on
		},
		powerOn:  []byte{0xAF},
		powerOff: []byte{0xAE},
		contrast: func(level byte) []byte { return []byte{0x81, level} },
	},
	SSD1309: {
		width: 128, height: 64,
		i2cAddr: 0x3C,
		initSeq: []byte{
			0xAE,       // display off
			0xD5, 0xA0, // clock divide
			0xA8, 0x3F, // multiplex 64
			0xD3, 0x00, // display offset
			0x40,       // start line 0
			0x20, 0x02, // page addressing mode
			0xA1,       // segment remap
			0xC8,       // COM scan reversed
			0xDA, 0x12, // COM pins
			0x81, 0x6F, // contrast
			0xD9, 0x22, // pre-charge
			0xDB, 0x30, // VCOM deselect
			0xA4, // resume from RAM
			0xA6, // normal
			0xAF, // display on
		},
		powerOn:  []byte{0xAF},
		powerOff: []byte{0xAE},
		contrast: func(level byte) []byte { return []byte{0x81, level} },
	},
	ST7567: {
		width: 128, height: 64,
		i2cAddr: 0x3F,
		initSeq: []byte{
			0xAE, // display off
			0xA2, // bias 1/9
			0xA0, // segment normal
			0xC8, // COM scan reversed
			0x23, // regulation ratio
			0x81, 0x20, // EV (contrast)
			0x2F, // power control: booster + regulator + follower
			0x40, // start line 0
			0xA6, // normal
			0xAF, // display on
		},
		powerOn:  []byte{0xAF, 0xA4},
		powerOff: []byte{0xAE, 0xA5},
		// The ST7567 EV register is 6 bits wide.
		contrast: func(level byte) []byte { return []byte{0x81, level >> 2} },
	},
	PCD8544: {
		width: 84, height: 48,
		spiOnly: true,
		initSeq: []byte{
			0x21, // function set: extended instructions
			0x14, // bias 1/40
			0xB1, // Vop (operating voltage)
			0x20, // function set: basic, horizontal addressing
			0x0C, // display mode: normal
		},
		powerOn:  []byte{0x20, 0x0C},
		powerOff: []byte{0x24}, // function set with power-down bit
		// Vop takes a 7-bit value behind the extended instruction set.
		contrast: func(level byte) []byte { return []byte{0x21, 0x80 | level>>1, 0x20} },
	},
}
