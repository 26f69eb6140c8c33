package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

var powerCtrlPin = flag.String("powerCtrlPin", "", "A GPIO pin (e.g. GPIO17) which, when set high, turns on power for the LEDs. Empty means no such pin exists.")
var powerStatusPin = flag.String("powerStatusPin", "", "A GPIO pin which indicates healthy power to the LEDs. Empty means no such pin exists. Only relevant if powerCtrlPin is specified.")
var powerStatusWait = flag.Duration("powerStatusWait", 2*time.Second, "How long to wait for a healthy power signal. Only relevant if powerStatusPin is specified and relevant.")

type power struct {
	ctrl   gpio.PinIO
	status gpio.PinIO
	wait   time.Duration
}

// initPower resolves the power pins. A nil *power (no control pin) makes
// powerOn and powerOff no-ops.
func initPower(ctrlName, statusName string, wait time.Duration) (*power, error) {
	if ctrlName == "" {
		return nil, nil
	}
	pw := power{wait: wait}
	pw.ctrl = gpioreg.ByName(ctrlName)
	if pw.ctrl == nil {
		return nil, fmt.Errorf("no power control pin %s", ctrlName)
	}
	err := pw.ctrl.Out(gpio.Low)
	if err != nil {
		return nil, fmt.Errorf("couldn't set power control to output: %v", err)
	}
	if statusName == "" {
		return &pw, nil
	}
	pw.status = gpioreg.ByName(statusName)
	if pw.status == nil {
		return nil, fmt.Errorf("no power status pin %s", statusName)
	}
	err = pw.status.In(gpio.PullNoChange, gpio.NoEdge)
	if err != nil {
		return nil, fmt.Errorf("couldn't set power status to input: %v", err)
	}
	return &pw, nil
}

func (pw *power) powerOn() error {
	if pw == nil {
		return nil
	}
	log.Printf("Power on")
	err := pw.ctrl.Out(gpio.High)
	if err != nil {
		return fmt.Errorf("couldn't set power control high: %v", err)
	}
	if pw.status == nil {
		return nil
	}
	start := time.Now()
	for {
		t := time.Now()
		if pw.status.Read() == gpio.High {
			log.Printf("Power stablized after %v", t.Sub(start))
			return nil
		}
		if t.Sub(start) > pw.wait {
			return fmt.Errorf("timed out waiting for power to be healthy, started %v, now %v", start, t)
		}
		time.Sleep(50 * time.Millisecond) // No point overdoing it - we're not in _that_ much of a rush
	}
}

func (pw *power) powerOff() error {
	if pw == nil {
		return nil
	}
	log.Printf("Power off")
	err := pw.ctrl.Out(gpio.Low)
	if err != nil {
		return fmt.Errorf("couldn't set power control low: %v", err)
	}
	// We could wait for power status to go low, but that might take a while and doesn't seem to provide any benefit
	return nil
}
