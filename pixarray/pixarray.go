// Package pixarray owns the pixel buffer of one LED strip and drives it
// through a feature.
package pixarray

import (
	"errors"
	"io"

	"github.com/Jon-Bright/ledpix/feature"
	"github.com/Jon-Bright/ledpix/flash"
	"github.com/Jon-Bright/ledpix/pixel"
)

var errNoDev = errors.New("no device to write to")

func abs(i int) int {
	if i >= 0 {
		return i
	}
	return -i
}

// PixArray is a strip of numPixels pixels of color C, laid out by F. The
// buffer holds F's settings region followed by the pixels.
//
// Indexes and counts aren't checked beyond Go's own slice bounds.
type PixArray[C pixel.Color, S any, F feature.Feature[C, S]] struct {
	numPixels int
	f         F
	data      []byte
	pixels    []byte
	dev       io.Writer
}

// NewPixArray allocates a zeroed (all off) buffer. dev may be nil if the
// strip is never written out.
func NewPixArray[C pixel.Color, S any, F feature.Feature[C, S]](f F, numPixels int, dev io.Writer) *PixArray[C, S, F] {
	data := make([]byte, f.SettingsSize()+numPixels*f.PixelSize())
	return &PixArray[C, S, F]{numPixels, f, data, f.Pixels(data), dev}
}

func (pa *PixArray[C, S, F]) NumPixels() int {
	return pa.numPixels
}

func (pa *PixArray[C, S, F]) PixelSize() int {
	return pa.f.PixelSize()
}

// Bytes is the whole buffer as sent to the device, settings included.
func (pa *PixArray[C, S, F]) Bytes() []byte {
	return pa.data
}

func (pa *PixArray[C, S, F]) Write() error {
	if pa.dev == nil {
		return errNoDev
	}
	_, err := pa.dev.Write(pa.data)
	return err
}

func (pa *PixArray[C, S, F]) ApplySettings(s S) {
	pa.f.ApplySettings(pa.data, s)
}

func (pa *PixArray[C, S, F]) GetPixels() []C {
	p := make([]C, pa.numPixels)
	for i := 0; i < pa.numPixels; i++ {
		p[i] = pa.f.RetrievePixelColor(pa.pixels, i)
	}
	return p
}

func (pa *PixArray[C, S, F]) GetPixel(i int) C {
	return pa.f.RetrievePixelColor(pa.pixels, i)
}

func (pa *PixArray[C, S, F]) SetOne(i int, p C) {
	pa.f.ApplyPixelColor(pa.pixels, i, p)
}

func (pa *PixArray[C, S, F]) SetAll(p C) {
	pa.SetRange(0, pa.numPixels, p)
}

// SetRange sets count pixels from start. Only the first is encoded, the
// rest are replicated from it.
func (pa *PixArray[C, S, F]) SetRange(start, count int, p C) {
	if count <= 0 {
		return
	}
	pa.f.ApplyPixelColor(pa.pixels, start, p)
	pa.f.ReplicatePixel(pa.f.PixelAddress(pa.pixels, start+1), pa.f.PixelAddress(pa.pixels, start), count-1)
}

// SetAlternate spreads p2 over num/div of the pixels as evenly as possible
// and sets the rest to p1.
func (pa *PixArray[C, S, F]) SetAlternate(num int, div int, p1 C, p2 C) {
	totSet := 0
	shouldSet := 0
	for i := 0; i < pa.numPixels; i++ {
		shouldSet += num
		e1 := abs((totSet + div) - shouldSet)
		e2 := abs(totSet - shouldSet)
		if e1 < e2 {
			totSet += div
			pa.SetOne(i, p2)
		} else {
			pa.SetOne(i, p1)
		}
	}
}

// Copy moves count pixels from src to dest, picking the copy direction that
// is safe for overlapping runs.
func (pa *PixArray[C, S, F]) Copy(dest, src, count int) {
	d := pa.f.PixelAddress(pa.pixels, dest)
	s := pa.f.PixelAddress(pa.pixels, src)
	if dest <= src {
		pa.f.MovePixelsInc(d, s, count)
	} else {
		pa.f.MovePixelsDec(d, s, count)
	}
}

// Rotate moves every pixel n places toward the end of the strip, wrapping
// around. Negative n rotates toward the start.
func (pa *PixArray[C, S, F]) Rotate(n int) {
	if pa.numPixels == 0 {
		return
	}
	n %= pa.numPixels
	if n < 0 {
		n += pa.numPixels
	}
	if n == 0 {
		return
	}
	keep := pa.numPixels - n
	tail := make([]byte, n*pa.f.PixelSize())
	pa.f.MovePixelsInc(tail, pa.f.PixelAddress(pa.pixels, keep), n)
	pa.f.MovePixelsDec(pa.f.PixelAddress(pa.pixels, n), pa.pixels, keep)
	pa.f.MovePixelsInc(pa.pixels, tail, n)
}

// Load copies count encoded pixels from src, starting at its pixel
// srcIndex, into the strip at destIndex. src must use the same layout.
func (pa *PixArray[C, S, F]) Load(src flash.Source, srcIndex, destIndex, count int) {
	pa.f.MovePixelsIncP(pa.f.PixelAddress(pa.pixels, destIndex), src, srcIndex, count)
}
