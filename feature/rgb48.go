package feature

import (
	"github.com/Jon-Bright/ledpix/flash"
	"github.com/Jon-Bright/ledpix/pixel"
)

// Rgb48Feature writes 16-bit red, green, blue lanes, each little-endian.
type Rgb48Feature struct{ Elements6NoSettings }

func (f Rgb48Feature) ApplyPixelColor(pixels []byte, indexPixel int, color pixel.Rgb48Color) {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[5]
	le.PutUint16(p[0:], color.R)
	le.PutUint16(p[2:], color.G)
	le.PutUint16(p[4:], color.B)
}

func (f Rgb48Feature) RetrievePixelColor(pixels []byte, indexPixel int) pixel.Rgb48Color {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[5]
	return pixel.Rgb48Color{R: le.Uint16(p[0:]), G: le.Uint16(p[2:]), B: le.Uint16(p[4:])}
}

func (Rgb48Feature) RetrievePixelColorP(src flash.Source, indexPixel int) pixel.Rgb48Color {
	off := indexPixel * 6
	return pixel.Rgb48Color{R: src.Word(off), G: src.Word(off + 2), B: src.Word(off + 4)}
}

// Rgbw64Feature writes 16-bit red, green, blue, white lanes. The layout
// moves it as 32-bit lanes, channel access goes through 16-bit ones.
type Rgbw64Feature struct{ Elements8NoSettings }

func (f Rgbw64Feature) ApplyPixelColor(pixels []byte, indexPixel int, color pixel.Rgbw64Color) {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[7]
	le.PutUint16(p[0:], color.R)
	le.PutUint16(p[2:], color.G)
	le.PutUint16(p[4:], color.B)
	le.PutUint16(p[6:], color.W)
}

func (f Rgbw64Feature) RetrievePixelColor(pixels []byte, indexPixel int) pixel.Rgbw64Color {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[7]
	return pixel.Rgbw64Color{R: le.Uint16(p[0:]), G: le.Uint16(p[2:]), B: le.Uint16(p[4:]), W: le.Uint16(p[6:])}
}

func (Rgbw64Feature) RetrievePixelColorP(src flash.Source, indexPixel int) pixel.Rgbw64Color {
	off := indexPixel * 8
	return pixel.Rgbw64Color{R: src.Word(off), G: src.Word(off + 2), B: src.Word(off + 4), W: src.Word(off + 6)}
}
