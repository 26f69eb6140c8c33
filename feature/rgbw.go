package feature

import (
	"github.com/Jon-Bright/ledpix/flash"
	"github.com/Jon-Bright/ledpix/pixel"
)

// RgbwFeature writes red, green, blue, white (SK6812 RGBW).
type RgbwFeature struct{ Elements4NoSettings }

func (f RgbwFeature) ApplyPixelColor(pixels []byte, indexPixel int, color pixel.RgbwColor) {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[3]
	p[0] = color.R
	p[1] = color.G
	p[2] = color.B
	p[3] = color.W
}

func (f RgbwFeature) RetrievePixelColor(pixels []byte, indexPixel int) pixel.RgbwColor {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[3]
	return pixel.RgbwColor{R: p[0], G: p[1], B: p[2], W: p[3]}
}

func (RgbwFeature) RetrievePixelColorP(src flash.Source, indexPixel int) pixel.RgbwColor {
	off := indexPixel * 4
	return pixel.RgbwColor{R: src.Byte(off), G: src.Byte(off+1), B: src.Byte(off+2), W: src.Byte(off+3)}
}

// GrbwFeature writes green, red, blue, white.
type GrbwFeature struct{ Elements4NoSettings }

func (f GrbwFeature) ApplyPixelColor(pixels []byte, indexPixel int, color pixel.RgbwColor) {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[3]
	p[0] = color.G
	p[1] = color.R
	p[2] = color.B
	p[3] = color.W
}

func (f GrbwFeature) RetrievePixelColor(pixels []byte, indexPixel int) pixel.RgbwColor {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[3]
	return pixel.RgbwColor{R: p[1], G: p[0], B: p[2], W: p[3]}
}

func (GrbwFeature) RetrievePixelColorP(src flash.Source, indexPixel int) pixel.RgbwColor {
	off := indexPixel * 4
	return pixel.RgbwColor{R: src.Byte(off+1), G: src.Byte(off), B: src.Byte(off+2), W: src.Byte(off+3)}
}
