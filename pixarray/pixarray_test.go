package pixarray

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Jon-Bright/ledpix/feature"
	"github.com/Jon-Bright/ledpix/flash"
	"github.com/Jon-Bright/ledpix/pixel"
)

type grbArray = PixArray[pixel.RgbColor, feature.NoSettings, feature.GrbFeature]

func newTestArray(numPixels int) *grbArray {
	return NewPixArray[pixel.RgbColor, feature.NoSettings](feature.GrbFeature{}, numPixels, nil)
}

// numbered sets pixel i to a color derived from i.
func numbered(pa *grbArray) {
	for i := 0; i < pa.NumPixels(); i++ {
		pa.SetOne(i, pixel.RgbColor{R: uint8(i), G: uint8(i + 100), B: uint8(255 - i)})
	}
}

func TestNewPixArray(t *testing.T) {
	pa := NewPixArray[pixel.Rgbw64Color, feature.NoSettings](feature.Rgbw64Feature{}, 10, nil)
	if pa.NumPixels() != 10 || pa.PixelSize() != 8 || len(pa.Bytes()) != 80 {
		t.Errorf("Wrong size, got: %d pixels of %d, %d bytes", pa.NumPixels(), pa.PixelSize(), len(pa.Bytes()))
	}
	pa.ApplySettings(feature.NoSettings{})
	for i, p := range pa.GetPixels() {
		if p != (pixel.Rgbw64Color{}) {
			t.Errorf("Pixel %d not off, got: %v", i, p)
		}
	}
}

func TestSetOneThenGetOneByOne(t *testing.T) {
	pa := newTestArray(100)
	ps := pixel.RgbColor{R: 10, G: 25, B: 45}
	pb := pixel.RgbColor{}
	pa.SetOne(20, ps)
	for i := 0; i < 100; i++ {
		pg := pa.GetPixel(i)
		if i == 20 && pg != ps {
			t.Errorf("Set pixel incorrect, got: %v, want %v", pg, ps)
		} else if i != 20 && pg != pb {
			t.Errorf("Unset pixel incorrect, got: %v, want %v", pg, pb)
		}
	}
}

func TestSetOneThenGetAll(t *testing.T) {
	pa := newTestArray(100)
	ps := pixel.RgbColor{R: 10, G: 25, B: 45}
	pb := pixel.RgbColor{}
	pa.SetOne(20, ps)
	py := pa.GetPixels()
	if len(py) != 100 {
		t.Errorf("Incorrect array len, got: %d, want: 100", len(py))
	}
	for i := 0; i < 100; i++ {
		if i == 20 && py[i] != ps {
			t.Errorf("Set pixel incorrect, got: %v, want %v", py[i], ps)
		} else if i != 20 && py[i] != pb {
			t.Errorf("Unset pixel incorrect, got: %v, want %v", py[i], pb)
		}
	}
}

func TestSetAll(t *testing.T) {
	for _, n := range []int{0, 1, 2, 77} {
		pa := newTestArray(n)
		ps := pixel.RgbColor{R: 1, G: 2, B: 3}
		pa.SetAll(ps)
		for i, p := range pa.GetPixels() {
			if p != ps {
				t.Errorf("(%d) pixel %d incorrect, got: %v, want %v", n, i, p, ps)
			}
		}
	}
}

func TestSetRange(t *testing.T) {
	pa := newTestArray(10)
	ps := pixel.RgbColor{R: 9, G: 8, B: 7}
	pa.SetRange(3, 4, ps)
	pa.SetRange(9, 0, ps)
	for i, p := range pa.GetPixels() {
		want := pixel.RgbColor{}
		if i >= 3 && i < 7 {
			want = ps
		}
		if p != want {
			t.Errorf("Pixel %d incorrect, got: %v, want %v", i, p, want)
		}
	}
}

func TestSetAlternate(t *testing.T) {
	pa := newTestArray(100)
	p1 := pixel.RgbColor{R: 10, G: 25, B: 45}
	p2 := pixel.RgbColor{R: 9, G: 7, B: 5}

	tests := []struct {
		num   int
		div   int
		want1 int // Total number of p1 we expect over 100 pixels
		want2 int // Total number of p2 we expect over 100 pixels
		cons1 int // Max number of consecutive p1 we expect
		cons2 int // Max number of consecutive p2 we expect
	}{
		{9, 10, 10, 90, 1, 9},
		{5, 10, 50, 50, 1, 1},
		{51, 100, 49, 51, 1, 2},
		{52, 100, 48, 52, 1, 2},
		{5, 7, 29, 71, 1, 3},
	}

	for _, test := range tests {
		pa.SetAlternate(test.num, test.div, p1, p2)
		py := pa.GetPixels()
		if len(py) != 100 {
			t.Errorf("(%d/%d): Incorrect array len, got: %d, want: 100", test.num, test.div, len(py))
		}
		lp := pixel.RgbColor{}
		n1 := 0
		n2 := 0
		cons := 0
		cons1 := 0
		cons2 := 0
		for i := 0; i < 100; i++ {
			if py[i] == lp {
				cons++
			} else {
				cons = 1
			}
			if py[i] == p1 {
				n1++
				if cons > cons1 {
					cons1 = cons
				}
			} else if py[i] == p2 {
				n2++
				if cons > cons2 {
					cons2 = cons
				}
			} else {
				t.Errorf("(%d/%d): Unexpected pixel got: %v, want: %v or %v", test.num, test.div, py[i], p1, p2)
			}
			lp = py[i]
		}
		if n1 != test.want1 {
			t.Errorf("(%d/%d): Wrong pixel1 count, got: %v, want %v", test.num, test.div, n1, test.want1)
		}
		if n2 != test.want2 {
			t.Errorf("(%d/%d): Wrong pixel2 count, got: %v, want %v", test.num, test.div, n2, test.want2)
		}
		if cons1 != test.cons1 {
			t.Errorf("(%d/%d): Wrong pixel1 consecutive count, got: %v, want %v", test.num, test.div, cons1, test.cons1)
		}
		if cons2 != test.cons2 {
			t.Errorf("(%d/%d): Wrong pixel2 consecutive count, got: %v, want %v", test.num, test.div, cons2, test.cons2)
		}
	}
}

func TestCopy(t *testing.T) {
	tests := []struct {
		dest  int
		src   int
		count int
	}{
		{0, 3, 5},
		{4, 1, 6},
		{2, 2, 3},
		{7, 0, 0},
	}
	for _, test := range tests {
		pa := newTestArray(10)
		numbered(pa)
		orig := pa.GetPixels()
		pa.Copy(test.dest, test.src, test.count)
		got := pa.GetPixels()
		for i := 0; i < 10; i++ {
			want := orig[i]
			if i >= test.dest && i < test.dest+test.count {
				want = orig[i-test.dest+test.src]
			}
			if got[i] != want {
				t.Errorf("(%d<-%d x%d) pixel %d, got: %v, want %v", test.dest, test.src, test.count, i, got[i], want)
			}
		}
	}
}

func TestRotate(t *testing.T) {
	const numPixels = 12
	for _, n := range []int{0, 1, 5, 11, 12, 13, -1, -7, -25} {
		pa := newTestArray(numPixels)
		numbered(pa)
		orig := pa.GetPixels()
		pa.Rotate(n)
		got := pa.GetPixels()
		for i := 0; i < numPixels; i++ {
			j := ((i-n)%numPixels + numPixels) % numPixels
			if got[i] != orig[j] {
				t.Errorf("(%d) pixel %d, got: %v, want %v", n, i, got[i], orig[j])
			}
		}
		pa.Rotate(-n)
		if back := pa.GetPixels(); !equalPixels(back, orig) {
			t.Errorf("(%d) rotating back didn't restore, got: %v, want %v", n, back, orig)
		}
	}
	newTestArray(0).Rotate(3)
}

func equalPixels(a, b []pixel.RgbColor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLoad(t *testing.T) {
	f := feature.GrbFeature{}
	pattern := make([]byte, 4*f.PixelSize())
	colors := []pixel.RgbColor{{R: 1}, {G: 2}, {B: 3}, {R: 4, G: 4, B: 4}}
	for i, c := range colors {
		f.ApplyPixelColor(pattern, i, c)
	}
	pa := newTestArray(6)
	pa.Load(flash.Bytes(pattern), 1, 2, 3)
	want := []pixel.RgbColor{{}, {}, colors[1], colors[2], colors[3], {}}
	if got := pa.GetPixels(); !equalPixels(got, want) {
		t.Errorf("Loaded wrong, got: %v, want %v", got, want)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	pa := NewPixArray[pixel.RgbColor, feature.NoSettings](feature.GrbFeature{}, 2, &buf)
	pa.SetOne(1, pixel.RgbColor{R: 10, G: 20, B: 30})
	if err := pa.Write(); err != nil {
		t.Fatalf("Failed Write: %v", err)
	}
	if want := []byte{0, 0, 0, 20, 10, 30}; !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Wrote wrong bytes, got: %v, want %v", buf.Bytes(), want)
	}
	if err := newTestArray(2).Write(); !errors.Is(err, errNoDev) {
		t.Errorf("Write without device, got: %v, want %v", err, errNoDev)
	}
}

func BenchmarkSetAll(b *testing.B) {
	pa := newTestArray(300)
	p := pixel.RgbColor{R: 10, G: 25, B: 45}
	for i := 0; i < b.N; i++ {
		pa.SetAll(p)
	}
}

func BenchmarkSetAlternate(b *testing.B) {
	pa := newTestArray(100)
	p1 := pixel.RgbColor{R: 10, G: 25, B: 45}
	p2 := pixel.RgbColor{R: 9, G: 7, B: 5}
	for i := 0; i < b.N/2; i++ {
		pa.SetAlternate(5, 7, p1, p2)
		pa.SetAlternate(2, 7, p1, p2)
	}
}

func BenchmarkRotate(b *testing.B) {
	pa := newTestArray(300)
	numbered(pa)
	for i := 0; i < b.N; i++ {
		pa.Rotate(1)
	}
}
