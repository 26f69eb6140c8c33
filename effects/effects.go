// Package effects animates a strip over time.
package effects

import (
	"log"
	"time"
)

// Strip is what an effect needs from a pixel array of color C.
type Strip[C any] interface {
	NumPixels() int
	SetOne(i int, p C)
	SetAll(p C)
	Rotate(n int)
}

// Effect is started once and then stepped until NextStep returns 0. A
// non-zero return is the delay until the next step.
type Effect[C any] interface {
	Start(s Strip[C], now time.Time)
	NextStep(s Strip[C], now time.Time) time.Duration
	Name() string
}

// progress is how many of n steps of a run lasting total have passed.
func progress(start, now time.Time, total time.Duration, n int) int {
	if total <= 0 {
		return n
	}
	return int((float64(now.Sub(start).Nanoseconds()) / float64(total.Nanoseconds())) * float64(n))
}

// Zip sets pixels to one color, one after the other from the start of the
// strip, over zipTime.
type Zip[C any] struct {
	zipTime time.Duration
	dest    C
	start   time.Time
	lastSet int
}

func NewZip[C any](zipTime time.Duration, dest C) *Zip[C] {
	z := Zip[C]{}
	z.zipTime = zipTime
	z.dest = dest
	z.lastSet = -1
	return &z
}

func (z *Zip[C]) Start(s Strip[C], now time.Time) {
	log.Printf("Starting Zip")
	z.start = now
	z.lastSet = -1
}

func (z *Zip[C]) NextStep(s Strip[C], now time.Time) time.Duration {
	p := progress(z.start, now, z.zipTime, s.NumPixels())
	for i := z.lastSet + 1; i < s.NumPixels() && i <= p; i++ {
		s.SetOne(i, z.dest)
		z.lastSet = i
	}
	if p >= s.NumPixels() {
		return 0
	}
	return time.Duration(z.zipTime.Nanoseconds() / int64(s.NumPixels()))
}

func (z *Zip[C]) Name() string {
	return "ZIP"
}

// Scroll rotates the strip once all the way round over scrollTime, one
// pixel per step. It finishes with the strip as it started.
type Scroll[C any] struct {
	scrollTime time.Duration
	start      time.Time
	pos        int
}

func NewScroll[C any](scrollTime time.Duration) *Scroll[C] {
	return &Scroll[C]{scrollTime: scrollTime}
}

func (sc *Scroll[C]) Start(s Strip[C], now time.Time) {
	log.Printf("Starting Scroll")
	sc.start = now
	sc.pos = 0
}

func (sc *Scroll[C]) NextStep(s Strip[C], now time.Time) time.Duration {
	n := s.NumPixels()
	p := progress(sc.start, now, sc.scrollTime, n)
	if p > n {
		p = n
	}
	s.Rotate(p - sc.pos)
	sc.pos = p
	if p >= n {
		return 0
	}
	return time.Duration(sc.scrollTime.Nanoseconds() / int64(n))
}

func (sc *Scroll[C]) Name() string {
	return "SCROLL"
}
