package pixel

import (
	"image/color"
	"testing"
)

var _ color.Color = RgbColor{}
var _ color.Color = RgbwColor{}
var _ color.Color = Rgb48Color{}
var _ color.Color = Rgbw64Color{}

func TestString(t *testing.T) {
	tests := []struct {
		c    interface{ String() string }
		want string
	}{
		{RgbColor{10, 20, 30}, "0a141e"},
		{RgbwColor{1, 2, 3, 255}, "010203ff"},
		{Rgb48Color{0x1234, 0, 0xffff}, "12340000ffff"},
		{Rgbw64Color{1, 2, 3, 4}, "0001000200030004"},
	}
	for _, test := range tests {
		if got := test.c.String(); got != test.want {
			t.Errorf("String of %#v, got: %s, want %s", test.c, got, test.want)
		}
	}
}

func TestParseHexInvertsString(t *testing.T) {
	rgb := RgbColor{10, 20, 30}
	if got, err := ParseHex[RgbColor](rgb.String()); err != nil || got != rgb {
		t.Errorf("RgbColor, got: %v (%v), want %v", got, err, rgb)
	}
	rgbw := RgbwColor{0xde, 0xad, 0xbe, 0xef}
	if got, err := ParseHex[RgbwColor]("DEADBEEF"); err != nil || got != rgbw {
		t.Errorf("RgbwColor, got: %v (%v), want %v", got, err, rgbw)
	}
	rgb48 := Rgb48Color{0x0102, 0xa0b0, 0xffff}
	if got, err := ParseHex[Rgb48Color](rgb48.String()); err != nil || got != rgb48 {
		t.Errorf("Rgb48Color, got: %v (%v), want %v", got, err, rgb48)
	}
	rgbw64 := Rgbw64Color{1, 0x100, 0x8000, 0xfffe}
	if got, err := ParseHex[Rgbw64Color](rgbw64.String()); err != nil || got != rgbw64 {
		t.Errorf("Rgbw64Color, got: %v (%v), want %v", got, err, rgbw64)
	}
}

func TestParseHexErrors(t *testing.T) {
	bad := []string{"", "0a141", "0a141e00", "zz141e"}
	for _, s := range bad {
		if _, err := ParseHex[RgbColor](s); err == nil {
			t.Errorf("ParseHex(%q) succeeded, want error", s)
		}
	}
	if _, err := ParseHex[Rgbw64Color]("0a141e"); err == nil {
		t.Errorf("ParseHex of 3 bytes as Rgbw64Color succeeded, want error")
	}
}

func TestRGBA(t *testing.T) {
	r, g, b, a := RgbwColor{0x12, 0x00, 0xff, 0x80}.RGBA()
	if r != 0x1212 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("RgbwColor RGBA, got: %04x %04x %04x %04x", r, g, b, a)
	}
	r, g, b, a = Rgb48Color{0x1234, 0x5678, 0x9abc}.RGBA()
	if r != 0x1234 || g != 0x5678 || b != 0x9abc || a != 0xffff {
		t.Errorf("Rgb48Color RGBA, got: %04x %04x %04x %04x", r, g, b, a)
	}
}
