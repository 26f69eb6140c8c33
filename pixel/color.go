// Package pixel holds the color values that LED features encode into and
// decode out of a pixel buffer.
//
// The types are plain channel containers. Nothing here scales, corrects or
// converts between color spaces.
package pixel

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is satisfied by every color type a feature can operate on.
type Color interface {
	RgbColor | RgbwColor | Rgb48Color | Rgbw64Color
	String() string
}

// RgbColor is an 8-bit per channel red/green/blue color.
type RgbColor struct {
	R uint8
	G uint8
	B uint8
}

// RgbwColor is an 8-bit per channel color with a separate white channel.
type RgbwColor struct {
	R uint8
	G uint8
	B uint8
	W uint8
}

// Rgb48Color is a 16-bit per channel red/green/blue color.
type Rgb48Color struct {
	R uint16
	G uint16
	B uint16
}

// Rgbw64Color is a 16-bit per channel color with a separate white channel.
type Rgbw64Color struct {
	R uint16
	G uint16
	B uint16
	W uint16
}

func (c RgbColor) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c RgbwColor) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.W)
}

func (c Rgb48Color) String() string {
	return fmt.Sprintf("%04x%04x%04x", c.R, c.G, c.B)
}

func (c Rgbw64Color) String() string {
	return fmt.Sprintf("%04x%04x%04x%04x", c.R, c.G, c.B, c.W)
}

func widen(v uint8) uint32 {
	return uint32(v)<<8 | uint32(v)
}

// RGBA implements color.Color. The white channel is not folded in.
func (c RgbColor) RGBA() (r, g, b, a uint32) {
	return widen(c.R), widen(c.G), widen(c.B), 0xffff
}

// RGBA implements color.Color. The white channel is not folded in.
func (c RgbwColor) RGBA() (r, g, b, a uint32) {
	return widen(c.R), widen(c.G), widen(c.B), 0xffff
}

func (c Rgb48Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.R), uint32(c.G), uint32(c.B), 0xffff
}

func (c Rgbw64Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.R), uint32(c.G), uint32(c.B), 0xffff
}

// ParseHex parses the form produced by String: two hex digits per 8-bit
// channel or four per 16-bit channel, in R, G, B(, W) order.
func ParseHex[C Color](s string) (C, error) {
	var c C
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return c, fmt.Errorf("couldn't decode '%s': %v", s, err)
	}
	switch p := any(&c).(type) {
	case *RgbColor:
		if len(b) != 3 {
			return c, fmt.Errorf("'%s' has %d bytes, wanted 3", s, len(b))
		}
		p.R, p.G, p.B = b[0], b[1], b[2]
	case *RgbwColor:
		if len(b) != 4 {
			return c, fmt.Errorf("'%s' has %d bytes, wanted 4", s, len(b))
		}
		p.R, p.G, p.B, p.W = b[0], b[1], b[2], b[3]
	case *Rgb48Color:
		if len(b) != 6 {
			return c, fmt.Errorf("'%s' has %d bytes, wanted 6", s, len(b))
		}
		p.R, p.G, p.B = be16(b[0:]), be16(b[2:]), be16(b[4:])
	case *Rgbw64Color:
		if len(b) != 8 {
			return c, fmt.Errorf("'%s' has %d bytes, wanted 8", s, len(b))
		}
		p.R, p.G, p.B, p.W = be16(b[0:]), be16(b[2:]), be16(b[4:]), be16(b[6:])
	}
	return c, nil
}

// Hex text is written most significant digit first.
func be16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
