package feature

import (
	"encoding/binary"

	"github.com/Jon-Bright/ledpix/flash"
)

// Wide layouts move whole 16- or 32-bit lanes. Copying a lane out and back
// in the same byte order leaves the bytes untouched, so the order only
// matters to the 16-bit color features.
var le = binary.LittleEndian

// Elements3 is the layout for 3-byte pixels. It moves single bytes.
type Elements3 struct{}

func (Elements3) PixelSize() int {
	return 3
}

func (Elements3) PixelAddress(pixels []byte, indexPixel int) []byte {
	return pixels[indexPixel*3:]
}

func (Elements3) ReplicatePixel(dest, src []byte, count int) {
	end := count * 3
	for i := 0; i < end; i += 3 {
		dest[i] = src[0]
		dest[i+1] = src[1]
		dest[i+2] = src[2]
	}
}

func (Elements3) MovePixelsInc(dest, src []byte, count int) {
	end := count * 3
	dest, src = dest[:end], src[:end]
	for i := 0; i < end; i++ {
		dest[i] = src[i]
	}
}

func (Elements3) MovePixelsIncP(dest []byte, src flash.Source, srcIndex, count int) {
	end := count * 3
	base := srcIndex * 3
	dest = dest[:end]
	for i := 0; i < end; i++ {
		dest[i] = src.Byte(base + i)
	}
}

func (Elements3) MovePixelsDec(dest, src []byte, count int) {
	end := count * 3
	dest, src = dest[:end], src[:end]
	for i := end - 1; i >= 0; i-- {
		dest[i] = src[i]
	}
}

// Elements4 is the layout for 4-byte pixels. Each pixel is one 32-bit lane.
type Elements4 struct{}

func (Elements4) PixelSize() int {
	return 4
}

func (Elements4) PixelAddress(pixels []byte, indexPixel int) []byte {
	return pixels[indexPixel*4:]
}

func (Elements4) ReplicatePixel(dest, src []byte, count int) {
	if count == 0 {
		return
	}
	v := le.Uint32(src)
	end := count * 4
	for i := 0; i < end; i += 4 {
		le.PutUint32(dest[i:], v)
	}
}

func (Elements4) MovePixelsInc(dest, src []byte, count int) {
	end := count * 4
	for i := 0; i < end; i += 4 {
		le.PutUint32(dest[i:], le.Uint32(src[i:]))
	}
}

func (Elements4) MovePixelsIncP(dest []byte, src flash.Source, srcIndex, count int) {
	end := count * 4
	base := srcIndex * 4
	for i := 0; i < end; i += 4 {
		le.PutUint32(dest[i:], src.DWord(base+i))
	}
}

func (Elements4) MovePixelsDec(dest, src []byte, count int) {
	for i := count*4 - 4; i >= 0; i -= 4 {
		le.PutUint32(dest[i:], le.Uint32(src[i:]))
	}
}

// Elements6 is the layout for 6-byte pixels. 6 isn't a multiple of 4, so
// each pixel is three 16-bit lanes.
type Elements6 struct{}

func (Elements6) PixelSize() int {
	return 6
}

func (Elements6) PixelAddress(pixels []byte, indexPixel int) []byte {
	return pixels[indexPixel*6:]
}

func (Elements6) ReplicatePixel(dest, src []byte, count int) {
	if count == 0 {
		return
	}
	w0, w1, w2 := le.Uint16(src), le.Uint16(src[2:]), le.Uint16(src[4:])
	end := count * 6
	for i := 0; i < end; i += 6 {
		le.PutUint16(dest[i:], w0)
		le.PutUint16(dest[i+2:], w1)
		le.PutUint16(dest[i+4:], w2)
	}
}

func (Elements6) MovePixelsInc(dest, src []byte, count int) {
	end := count * 6
	for i := 0; i < end; i += 2 {
		le.PutUint16(dest[i:], le.Uint16(src[i:]))
	}
}

func (Elements6) MovePixelsIncP(dest []byte, src flash.Source, srcIndex, count int) {
	end := count * 6
	base := srcIndex * 6
	for i := 0; i < end; i += 2 {
		le.PutUint16(dest[i:], src.Word(base+i))
	}
}

func (Elements6) MovePixelsDec(dest, src []byte, count int) {
	for i := count*6 - 2; i >= 0; i -= 2 {
		le.PutUint16(dest[i:], le.Uint16(src[i:]))
	}
}

// Elements8 is the layout for 8-byte pixels, two 32-bit lanes each.
type Elements8 struct{}

func (Elements8) PixelSize() int {
	return 8
}

func (Elements8) PixelAddress(pixels []byte, indexPixel int) []byte {
	return pixels[indexPixel*8:]
}

func (Elements8) ReplicatePixel(dest, src []byte, count int) {
	if count == 0 {
		return
	}
	d0, d1 := le.Uint32(src), le.Uint32(src[4:])
	end := count * 8
	for i := 0; i < end; i += 8 {
		le.PutUint32(dest[i:], d0)
		le.PutUint32(dest[i+4:], d1)
	}
}

func (Elements8) MovePixelsInc(dest, src []byte, count int) {
	end := count * 8
	for i := 0; i < end; i += 4 {
		le.PutUint32(dest[i:], le.Uint32(src[i:]))
	}
}

func (Elements8) MovePixelsIncP(dest []byte, src flash.Source, srcIndex, count int) {
	end := count * 8
	base := srcIndex * 8
	for i := 0; i < end; i += 4 {
		le.PutUint32(dest[i:], src.DWord(base+i))
	}
}

func (Elements8) MovePixelsDec(dest, src []byte, count int) {
	for i := count*8 - 4; i >= 0; i -= 4 {
		le.PutUint32(dest[i:], le.Uint32(src[i:]))
	}
}
