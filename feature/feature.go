// Package feature translates colors into the byte order LED chipsets expect.
//
// A feature is built in two layers. An element layout (Elements3, 4, 6 or
// 8) fixes the bytes per pixel and supplies bulk moves specialized for that
// width. A settings decoration adds the per-strip settings region, which is
// empty for every chipset here. The channel-order features on top (GrbFeature,
// RgbwFeature, Rgb48Feature and so on) read and write one pixel's channels.
//
// All features are zero-size values. Nothing is validated: an out of range
// index or count is the caller's mistake and panics on the slice bounds.
// A count of 0 is always a no-op.
package feature

import (
	"github.com/Jon-Bright/ledpix/flash"
)

// Layout is the physical side of a feature: pixel width and bulk moves.
//
// dest and src address the first pixel of their run, as returned by
// PixelAddress. MovePixelsInc copies ascending and is only safe for
// overlapping runs when dest <= src; MovePixelsDec copies descending and is
// the one to use when dest > src.
type Layout interface {
	PixelSize() int
	PixelAddress(pixels []byte, indexPixel int) []byte
	// ReplicatePixel writes count copies of the pixel at src starting at
	// dest. src may lie in the same buffer as long as it precedes dest.
	ReplicatePixel(dest, src []byte, count int)
	MovePixelsInc(dest, src []byte, count int)
	// MovePixelsIncP is MovePixelsInc reading count pixels from src
	// starting at pixel srcIndex.
	MovePixelsIncP(dest []byte, src flash.Source, srcIndex, count int)
	MovePixelsDec(dest, src []byte, count int)
}

// Settings is the per-strip settings region of a buffer, holding an S.
type Settings[S any] interface {
	SettingsSize() int
	ApplySettings(data []byte, settings S)
	// Pixels returns the pixel area of data, past any settings.
	Pixels(data []byte) []byte
}

// Feature encodes and decodes colors of type C for one channel order.
type Feature[C any, S any] interface {
	Layout
	Settings[S]
	ApplyPixelColor(pixels []byte, indexPixel int, color C)
	RetrievePixelColor(pixels []byte, indexPixel int) C
	RetrievePixelColorP(src flash.Source, indexPixel int) C
}

// UCS8903 and UCS8904 take 16-bit RGB and RGBW in plain channel order.
type (
	RgbUcs8903Feature  = Rgb48Feature
	RgbwUcs8904Feature = Rgbw64Feature
)
