package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"periph.io/x/host/v3"

	"github.com/Jon-Bright/ledpix/effects"
	"github.com/Jon-Bright/ledpix/feature"
	"github.com/Jon-Bright/ledpix/flash"
	"github.com/Jon-Bright/ledpix/pixarray"
	"github.com/Jon-Bright/ledpix/pixel"
)

var devPath = flag.String("dev", "/dev/spidev0.0", "The device file the raw pixel buffer is written to when ledchip is file")
var spiPort = flag.String("spiport", "", "The periph SPI port to send pixels on when ledchip is spi, empty for the first one")
var spiSpeed = flag.Uint("spispeed", 1000000, "The speed to send data via SPI, in Hz")
var ledChip = flag.String("ledchip", "spi", "How to reach the LED strip: one of spi, file")
var port = flag.Int("port", 24601, "The port that the server should listen to")
var pixels = flag.Int("pixels", 5*32, "The number of pixels to be controlled")
var pixelOrder = flag.String("order", "GRB", "The color ordering of the pixels: one of GRB, RGB, BRG, RBG, BGR, GBR, RGBW, GRBW, RGB48, RGBW64, UCS8903, UCS8904")
var patternPath = flag.String("pattern", "", "A pattern file, already encoded in the pixel order, for the PATTERN command")

type Server[C pixel.Color, S any, F feature.Feature[C, S]] struct {
	mu         sync.Mutex
	pa         *pixarray.PixArray[C, S, F]
	pattern    flash.Source
	patternLen int
	pw         *power
	l          net.Listener
	c          chan effects.Effect[C]
	laste      effects.Effect[C]
	off        bool
	running    bool
	powered    bool
}

func NewServer[C pixel.Color, S any, F feature.Feature[C, S]](port int, pa *pixarray.PixArray[C, S, F], pw *power) (*Server[C, S, F], error) {
	l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	log.Printf("Listening on port %d", port)
	return &Server[C, S, F]{pa: pa, pw: pw, l: l, c: make(chan effects.Effect[C]), off: true}, nil
}

func parseDuration(parms string) (string, time.Duration, error) {
	t := strings.SplitN(parms, " ", 2)
	d, err := time.ParseDuration(t[0] + "s")
	if err != nil {
		return "", 0, err
	}
	if len(t) == 1 {
		return "", d, nil
	}
	return t[1], d, nil
}

func parseInt(parms string) (string, int, error) {
	t := strings.SplitN(parms, " ", 2)
	i, err := strconv.Atoi(t[0])
	if err != nil {
		return "", 0, err
	}
	if len(t) == 1 {
		return "", i, nil
	}
	return t[1], i, nil
}

func parseColor[C pixel.Color](parms string) (string, C, error) {
	t := strings.SplitN(parms, " ", 2)
	p, err := pixel.Parse[C](t[0])
	if err != nil {
		return "", p, err
	}
	if len(t) == 1 {
		return "", p, nil
	}
	return t[1], p, nil
}

func reply(w *bufio.Writer, s string) error {
	log.Printf("Returning %s", strings.TrimSpace(s))
	w.WriteString(s)
	return w.Flush()
}

// lit reports whether any pixel isn't off. s.mu must be held.
func (s *Server[C, S, F]) lit() bool {
	var off C
	for _, p := range s.pa.GetPixels() {
		if p != off {
			return true
		}
	}
	return false
}

// show writes the strip out. s.mu must be held.
func (s *Server[C, S, F]) show() {
	err := s.pa.Write()
	if err != nil {
		log.Printf("Error writing pixels: %v", err)
	}
}

// setPower switches the LED supply if it isn't already in that state. s.mu
// must be held.
func (s *Server[C, S, F]) setPower(on bool) error {
	if on == s.powered {
		return nil
	}
	var err error
	if on {
		err = s.pw.powerOn()
	} else {
		err = s.pw.powerOff()
	}
	if err != nil {
		return err
	}
	s.powered = on
	return nil
}

// immediate runs f on the strip under the lock and shows the result. Power
// comes on before a lit strip is shown and goes off once the strip is dark,
// unless an effect is still running.
func (s *Server[C, S, F]) immediate(w *bufio.Writer, f func()) error {
	s.mu.Lock()
	f()
	lit := s.lit()
	if lit {
		err := s.setPower(true)
		if err != nil {
			s.mu.Unlock()
			log.Printf("Failed power-on: %v", err)
			return fmt.Errorf("couldn't power on: %v", err)
		}
	}
	s.show()
	s.off = !lit
	if !lit && !s.running {
		err := s.setPower(false)
		if err != nil {
			s.mu.Unlock()
			log.Printf("Failed power-off: %v", err)
			return fmt.Errorf("couldn't power off: %v", err)
		}
	}
	s.mu.Unlock()
	return reply(w, "OK\n")
}

func (s *Server[C, S, F]) createEffect(cmd, parms string, w *bufio.Writer) (effects.Effect[C], error) {
	switch {
	case cmd == "ZIP_SET_ALL":
		parms, p, err := parseColor[C](parms)
		if err != nil {
			return nil, fmt.Errorf("error parsing color: %v", err)
		}
		_, d, err := parseDuration(parms)
		if err != nil {
			return nil, fmt.Errorf("error parsing duration: %v", err)
		}
		return effects.NewZip(d, p), nil
	case cmd == "SCROLL":
		_, d, err := parseDuration(parms)
		if err != nil {
			return nil, fmt.Errorf("error parsing duration: %v", err)
		}
		return effects.NewScroll[C](d), nil
	case cmd == "SET_ALL":
		_, p, err := parseColor[C](parms)
		if err != nil {
			return nil, fmt.Errorf("error parsing color: %v", err)
		}
		return nil, s.immediate(w, func() { s.pa.SetAll(p) })
	case cmd == "SET_ONE":
		parms, i, err := parseInt(parms)
		if err != nil {
			return nil, fmt.Errorf("error parsing index: %v", err)
		}
		if i < 0 || i >= s.pa.NumPixels() {
			return nil, fmt.Errorf("index %d out of range, have %d pixels", i, s.pa.NumPixels())
		}
		_, p, err := parseColor[C](parms)
		if err != nil {
			return nil, fmt.Errorf("error parsing color: %v", err)
		}
		return nil, s.immediate(w, func() { s.pa.SetOne(i, p) })
	case cmd == "SHIFT":
		_, n, err := parseInt(parms)
		if err != nil {
			return nil, fmt.Errorf("error parsing shift: %v", err)
		}
		return nil, s.immediate(w, func() { s.pa.Rotate(n) })
	case cmd == "PATTERN":
		if s.pattern == nil {
			return nil, fmt.Errorf("no pattern file loaded")
		}
		n := s.patternLen / s.pa.PixelSize()
		if n > s.pa.NumPixels() {
			n = s.pa.NumPixels()
		}
		log.Printf("Loading %d pattern pixels", n)
		return nil, s.immediate(w, func() { s.pa.Load(s.pattern, 0, 0, n) })
	case cmd == "GET":
		s.mu.Lock()
		lit := s.lit()
		s.mu.Unlock()
		if lit {
			return nil, reply(w, "1\n")
		}
		return nil, reply(w, "0\n")
	case cmd == "COLOUR" || cmd == "COLOR":
		if s.pa.NumPixels() == 0 {
			return nil, fmt.Errorf("no pixels")
		}
		s.mu.Lock()
		p := s.pa.GetPixel(0)
		s.mu.Unlock()
		return nil, reply(w, p.String()+"\n")
	case cmd == "MODE":
		s.mu.Lock()
		n := "CONST"
		if s.off {
			n = "OFF"
		} else if s.running {
			if s.laste == nil {
				s.mu.Unlock()
				return nil, fmt.Errorf("s running, but laste nil!")
			}
			n = s.laste.Name()
		}
		s.mu.Unlock()
		log.Printf("Mode '%s'", n)
		if parms == "" {
			return nil, reply(w, n+"\n")
		}
		if strings.ToUpper(parms) == n {
			return nil, reply(w, "1\n")
		}
		return nil, reply(w, "0\n")
	case cmd == "ON":
		s.mu.Lock()
		e := s.laste
		s.mu.Unlock()
		if e == nil {
			return nil, fmt.Errorf("nothing to turn back on")
		}
		return e, nil
	case cmd == "OFF":
		// Hack: we insert this directly into the channel because we don't want to overwrite whatever the last effect was
		var black C
		z := effects.NewZip(2*time.Second, black)
		s.mu.Lock()
		s.off = true
		s.mu.Unlock()
		s.c <- z
		return nil, reply(w, "OK\n")
	}
	return nil, fmt.Errorf("unknown command: %s", cmd)
}

func (s *Server[C, S, F]) runEffects() {
	var laste, e effects.Effect[C]
	var d time.Duration
	var steps int
	var start time.Time
	for {
		if d == 0 {
			e = <-s.c
		} else {
			select {
			case e = <-s.c:
				break
			case <-time.After(d):
				break
			}
		}
		if e == nil {
			log.Fatalf("Ready to process effect, but no effect!")
		}
		s.mu.Lock()
		if e != laste {
			err := s.setPower(true)
			if err != nil {
				log.Fatalf("Failed power-on: %v", err)
			}
			start = time.Now()
			e.Start(s.pa, start)
			s.running = true
			steps = 0
		}
		d = e.NextStep(s.pa, time.Now())
		steps++
		s.show()
		if d == 0 {
			d := time.Since(start)
			ps := time.Duration(d.Nanoseconds() / int64(steps))
			log.Printf("Finished effect %s, %d steps, %s total, %s/step", e.Name(), steps, d, ps)
			laste = nil
			e = nil
			s.running = false
			if !s.lit() {
				s.off = true
				err := s.setPower(false)
				if err != nil {
					log.Fatalf("Failed power-off: %v", err)
				}
			}
		} else {
			laste = e
		}
		s.mu.Unlock()
	}
}

func (s *Server[C, S, F]) handleConnection(c net.Conn) {
	log.Printf("Handling connection from %v", c.RemoteAddr())
	defer c.Close()
	r := bufio.NewReader(c)
	w := bufio.NewWriter(c)
	for {
		l, err := r.ReadString('\n')
		if err == io.EOF {
			log.Printf("EOF for connection %v", c.RemoteAddr())
			return
		}
		if err != nil {
			log.Printf("Error reading string for connection %v: %v", c.RemoteAddr(), err)
			return
		}
		if !s.handleLine(l, w) {
			return
		}
	}
}

// handleLine runs one command line and reports whether the connection
// should stay open.
func (s *Server[C, S, F]) handleLine(l string, w *bufio.Writer) bool {
	l = strings.TrimSpace(l)
	log.Printf("Got line '%s'", l)
	t := strings.SplitN(l, " ", 2)
	cmd := strings.ToUpper(t[0])
	parms := ""
	if len(t) > 1 {
		parms = t[1]
	}
	if cmd == "QUIT" {
		return false
	}
	e, err := s.createEffect(cmd, parms, w)
	if err != nil {
		es := fmt.Sprintf("Error creating effect: %v", err)
		log.Print(es)
		w.WriteString("ERR: " + es + "\n")
		err = w.Flush()
		if err != nil {
			log.Printf("error writing error reply: %v", err)
		}
		return false
	}
	if e != nil {
		// Some commands don't result in a new Effect, e.g. status
		// those commands write their own reply.
		w.WriteString("OK\n")
		err = w.Flush()
		if err != nil {
			log.Printf("error writing reply: %v", err)
		}
		s.c <- e
		s.mu.Lock()
		s.laste = e
		s.off = false
		s.mu.Unlock()
	}
	return true
}

func (s *Server[C, S, F]) handleConnections() {
	for {
		conn, err := s.l.Accept()
		if err != nil {
			log.Printf("Error accepting connection: %v", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

func serve[C pixel.Color, S any, F feature.Feature[C, S]](f F, dev io.Writer, pattern *flash.File, pw *power) error {
	pa := pixarray.NewPixArray[C, S](f, *pixels, dev)
	s, err := NewServer(*port, pa, pw)
	if err != nil {
		return fmt.Errorf("couldn't create server: %v", err)
	}
	if pattern != nil {
		s.pattern = pattern
		s.patternLen = pattern.Len()
	}
	go s.runEffects()
	s.handleConnections()
	return nil
}

func main() {
	flag.Parse()
	_, err := host.Init()
	if err != nil {
		log.Fatalf("Failed initializing host drivers: %v", err)
	}

	var dev io.Writer
	switch *ledChip {
	case "file":
		f, err := os.OpenFile(*devPath, os.O_RDWR, os.ModePerm)
		if err != nil {
			log.Fatalf("Failed opening device: %v", err)
		}
		dev = f
	case "spi":
		d, err := pixarray.OpenSPI(*spiPort, int64(*spiSpeed))
		if err != nil {
			log.Fatalf("Failed opening SPI: %v", err)
		}
		dev = d
	default:
		log.Fatalf("Unrecognized LED type: %v", *ledChip)
	}

	var pattern *flash.File
	if *patternPath != "" {
		pattern, err = flash.Open(*patternPath)
		if err != nil {
			log.Fatalf("Failed loading pattern: %v", err)
		}
		log.Printf("Mapped %d byte pattern from %s", pattern.Len(), *patternPath)
	}

	pw, err := initPower(*powerCtrlPin, *powerStatusPin, *powerStatusWait)
	if err != nil {
		log.Fatalf("Failed initializing power control: %v", err)
	}

	switch strings.ToUpper(*pixelOrder) {
	case "GRB":
		err = serve[pixel.RgbColor, feature.NoSettings](feature.GrbFeature{}, dev, pattern, pw)
	case "RGB":
		err = serve[pixel.RgbColor, feature.NoSettings](feature.RgbFeature{}, dev, pattern, pw)
	case "BRG":
		err = serve[pixel.RgbColor, feature.NoSettings](feature.BrgFeature{}, dev, pattern, pw)
	case "RBG":
		err = serve[pixel.RgbColor, feature.NoSettings](feature.RbgFeature{}, dev, pattern, pw)
	case "BGR":
		err = serve[pixel.RgbColor, feature.NoSettings](feature.BgrFeature{}, dev, pattern, pw)
	case "GBR":
		err = serve[pixel.RgbColor, feature.NoSettings](feature.GbrFeature{}, dev, pattern, pw)
	case "RGBW":
		err = serve[pixel.RgbwColor, feature.NoSettings](feature.RgbwFeature{}, dev, pattern, pw)
	case "GRBW":
		err = serve[pixel.RgbwColor, feature.NoSettings](feature.GrbwFeature{}, dev, pattern, pw)
	case "RGB48", "UCS8903":
		err = serve[pixel.Rgb48Color, feature.NoSettings](feature.RgbUcs8903Feature{}, dev, pattern, pw)
	case "RGBW64", "UCS8904":
		err = serve[pixel.Rgbw64Color, feature.NoSettings](feature.RgbwUcs8904Feature{}, dev, pattern, pw)
	default:
		log.Fatalf("Unrecognized pixel order: %v", *pixelOrder)
	}
	if err != nil {
		log.Fatalf("Failed serving: %v", err)
	}
}
