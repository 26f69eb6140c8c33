package pixarray

import (
	"fmt"
	"io"
	"log"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// SPIDev sends a strip's buffer over an SPI port as-is. host.Init must have
// been called before OpenSPI.
type SPIDev struct {
	port  io.Closer
	c     spi.Conn
	maxTx int
}

// OpenSPI opens the named port ("" for the first one) in mode 0 with 8-bit
// words at hz.
func OpenSPI(name string, hz int64) (*SPIDev, error) {
	p, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("couldn't open SPI port '%s': %v", name, err)
	}
	c, err := p.Connect(physic.Frequency(hz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		p.Close() // Ignore error
		return nil, fmt.Errorf("couldn't connect to SPI port '%s': %v", name, err)
	}
	d := newSPIDev(p, c)
	log.Printf("Opened %s at %dHz, max tx %d", c, hz, d.maxTx)
	return d, nil
}

func newSPIDev(port io.Closer, c spi.Conn) *SPIDev {
	d := SPIDev{port: port, c: c}
	if l, ok := c.(conn.Limits); ok {
		d.maxTx = l.MaxTxSize()
	}
	return &d
}

// Write sends b in as many transactions as the port's size limit needs.
func (d *SPIDev) Write(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		chunk := b
		if d.maxTx > 0 && len(chunk) > d.maxTx {
			chunk = chunk[:d.maxTx]
		}
		if err := d.c.Tx(chunk, nil); err != nil {
			return n, fmt.Errorf("couldn't send %d bytes: %v", len(chunk), err)
		}
		n += len(chunk)
		b = b[len(chunk):]
	}
	return n, nil
}

func (d *SPIDev) Close() error {
	return d.port.Close()
}
