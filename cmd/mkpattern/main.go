// Command mkpattern encodes colors into a pattern file for a pixel order.
//
//	mkpattern -order GRB -out pattern.bin 0a141e ff0000 00ff00
//
// The file holds the pixels exactly as the strip expects them and can be
// mapped by the server's -pattern flag.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Jon-Bright/ledpix/feature"
	"github.com/Jon-Bright/ledpix/pixel"
)

var pixelOrder = flag.String("order", "GRB", "The color ordering of the pixels")
var out = flag.String("out", "pattern.bin", "The pattern file to write")

func encode[C pixel.Color, S any, F feature.Feature[C, S]](f F, colors []string) ([]byte, error) {
	buf := make([]byte, len(colors)*f.PixelSize())
	for i, s := range colors {
		c, err := pixel.Parse[C](s)
		if err != nil {
			return nil, fmt.Errorf("color %d: %v", i, err)
		}
		f.ApplyPixelColor(buf, i, c)
	}
	return buf, nil
}

func encodeOrder(order string, colors []string) ([]byte, error) {
	switch strings.ToUpper(order) {
	case "GRB":
		return encode[pixel.RgbColor, feature.NoSettings](feature.GrbFeature{}, colors)
	case "RGB":
		return encode[pixel.RgbColor, feature.NoSettings](feature.RgbFeature{}, colors)
	case "BRG":
		return encode[pixel.RgbColor, feature.NoSettings](feature.BrgFeature{}, colors)
	case "RBG":
		return encode[pixel.RgbColor, feature.NoSettings](feature.RbgFeature{}, colors)
	case "BGR":
		return encode[pixel.RgbColor, feature.NoSettings](feature.BgrFeature{}, colors)
	case "GBR":
		return encode[pixel.RgbColor, feature.NoSettings](feature.GbrFeature{}, colors)
	case "RGBW":
		return encode[pixel.RgbwColor, feature.NoSettings](feature.RgbwFeature{}, colors)
	case "GRBW":
		return encode[pixel.RgbwColor, feature.NoSettings](feature.GrbwFeature{}, colors)
	case "RGB48", "UCS8903":
		return encode[pixel.Rgb48Color, feature.NoSettings](feature.Rgb48Feature{}, colors)
	case "RGBW64", "UCS8904":
		return encode[pixel.Rgbw64Color, feature.NoSettings](feature.Rgbw64Feature{}, colors)
	}
	return nil, fmt.Errorf("unrecognized pixel order: %s", order)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-order ORDER] [-out FILE] <hex color>...\n", os.Args[0])
		os.Exit(1)
	}
	buf, err := encodeOrder(*pixelOrder, flag.Args())
	if err != nil {
		log.Fatalf("Failed encoding: %v", err)
	}
	err = os.WriteFile(*out, buf, 0644)
	if err != nil {
		log.Fatalf("Failed writing %s: %v", *out, err)
	}
	log.Printf("Wrote %d pixels, %d bytes to %s", flag.NArg(), len(buf), *out)
}
