package pixel

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// FromName looks up a CSS/SVG color name. Named colors have no white
// component, so W is left at zero for white-channel types.
func FromName[C Color](name string) (C, error) {
	var c C
	n, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return c, fmt.Errorf("unknown color name '%s'", name)
	}
	switch p := any(&c).(type) {
	case *RgbColor:
		p.R, p.G, p.B = n.R, n.G, n.B
	case *RgbwColor:
		p.R, p.G, p.B = n.R, n.G, n.B
	case *Rgb48Color:
		p.R, p.G, p.B = uint16(widen(n.R)), uint16(widen(n.G)), uint16(widen(n.B))
	case *Rgbw64Color:
		p.R, p.G, p.B = uint16(widen(n.R)), uint16(widen(n.G)), uint16(widen(n.B))
	}
	return c, nil
}

// Parse accepts a color name or the hex form read by ParseHex.
func Parse[C Color](s string) (C, error) {
	if c, err := FromName[C](s); err == nil {
		return c, nil
	}
	return ParseHex[C](s)
}
