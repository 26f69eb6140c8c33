package feature

import (
	"github.com/Jon-Bright/ledpix/flash"
	"github.com/Jon-Bright/ledpix/pixel"
)

// GrbFeature is the WS2812/SK6812 order: green, red, blue.
type GrbFeature struct{ Elements3NoSettings }

func (f GrbFeature) ApplyPixelColor(pixels []byte, indexPixel int, color pixel.RgbColor) {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[2]
	p[0] = color.G
	p[1] = color.R
	p[2] = color.B
}

func (f GrbFeature) RetrievePixelColor(pixels []byte, indexPixel int) pixel.RgbColor {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[2]
	return pixel.RgbColor{R: p[1], G: p[0], B: p[2]}
}

func (GrbFeature) RetrievePixelColorP(src flash.Source, indexPixel int) pixel.RgbColor {
	off := indexPixel * 3
	return pixel.RgbColor{R: src.Byte(off+1), G: src.Byte(off), B: src.Byte(off+2)}
}

// RgbFeature writes red, green, blue.
type RgbFeature struct{ Elements3NoSettings }

func (f RgbFeature) ApplyPixelColor(pixels []byte, indexPixel int, color pixel.RgbColor) {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[2]
	p[0] = color.R
	p[1] = color.G
	p[2] = color.B
}

func (f RgbFeature) RetrievePixelColor(pixels []byte, indexPixel int) pixel.RgbColor {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[2]
	return pixel.RgbColor{R: p[0], G: p[1], B: p[2]}
}

func (RgbFeature) RetrievePixelColorP(src flash.Source, indexPixel int) pixel.RgbColor {
	off := indexPixel * 3
	return pixel.RgbColor{R: src.Byte(off), G: src.Byte(off+1), B: src.Byte(off+2)}
}

// BrgFeature writes blue, red, green.
type BrgFeature struct{ Elements3NoSettings }

func (f BrgFeature) ApplyPixelColor(pixels []byte, indexPixel int, color pixel.RgbColor) {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[2]
	p[0] = color.B
	p[1] = color.R
	p[2] = color.G
}

func (f BrgFeature) RetrievePixelColor(pixels []byte, indexPixel int) pixel.RgbColor {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[2]
	return pixel.RgbColor{R: p[1], G: p[2], B: p[0]}
}

func (BrgFeature) RetrievePixelColorP(src flash.Source, indexPixel int) pixel.RgbColor {
	off := indexPixel * 3
	return pixel.RgbColor{R: src.Byte(off+1), G: src.Byte(off+2), B: src.Byte(off)}
}

// RbgFeature writes red, blue, green.
type RbgFeature struct{ Elements3NoSettings }

func (f RbgFeature) ApplyPixelColor(pixels []byte, indexPixel int, color pixel.RgbColor) {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[2]
	p[0] = color.R
	p[1] = color.B
	p[2] = color.G
}

func (f RbgFeature) RetrievePixelColor(pixels []byte, indexPixel int) pixel.RgbColor {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[2]
	return pixel.RgbColor{R: p[0], G: p[2], B: p[1]}
}

func (RbgFeature) RetrievePixelColorP(src flash.Source, indexPixel int) pixel.RgbColor {
	off := indexPixel * 3
	return pixel.RgbColor{R: src.Byte(off), G: src.Byte(off+2), B: src.Byte(off+1)}
}

// BgrFeature writes blue, green, red.
type BgrFeature struct{ Elements3NoSettings }

func (f BgrFeature) ApplyPixelColor(pixels []byte, indexPixel int, color pixel.RgbColor) {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[2]
	p[0] = color.B
	p[1] = color.G
	p[2] = color.R
}

func (f BgrFeature) RetrievePixelColor(pixels []byte, indexPixel int) pixel.RgbColor {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[2]
	return pixel.RgbColor{R: p[2], G: p[1], B: p[0]}
}

func (BgrFeature) RetrievePixelColorP(src flash.Source, indexPixel int) pixel.RgbColor {
	off := indexPixel * 3
	return pixel.RgbColor{R: src.Byte(off+2), G: src.Byte(off+1), B: src.Byte(off)}
}

// GbrFeature writes green, blue, red.
type GbrFeature struct{ Elements3NoSettings }

func (f GbrFeature) ApplyPixelColor(pixels []byte, indexPixel int, color pixel.RgbColor) {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[2]
	p[0] = color.G
	p[1] = color.B
	p[2] = color.R
}

func (f GbrFeature) RetrievePixelColor(pixels []byte, indexPixel int) pixel.RgbColor {
	p := f.PixelAddress(pixels, indexPixel)
	_ = p[2]
	return pixel.RgbColor{R: p[2], G: p[0], B: p[1]}
}

func (GbrFeature) RetrievePixelColorP(src flash.Source, indexPixel int) pixel.RgbColor {
	off := indexPixel * 3
	return pixel.RgbColor{R: src.Byte(off+2), G: src.Byte(off), B: src.Byte(off+1)}
}
