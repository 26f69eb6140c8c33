package main

import (
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestNoPower(t *testing.T) {
	pw, err := initPower("", "", time.Second)
	if err != nil || pw != nil {
		t.Fatalf("initPower without pins, got: %v, %v", pw, err)
	}
	if err := pw.powerOn(); err != nil {
		t.Errorf("powerOn without pins failed: %v", err)
	}
	if err := pw.powerOff(); err != nil {
		t.Errorf("powerOff without pins failed: %v", err)
	}
}

func TestUnknownPowerPin(t *testing.T) {
	if _, err := initPower("NO_SUCH_PIN_42", "", time.Second); err == nil {
		t.Errorf("initPower with unknown pin succeeded")
	}
}

func TestPowerOnOff(t *testing.T) {
	ctrl := &gpiotest.Pin{N: "CTRL", Num: 1}
	status := &gpiotest.Pin{N: "STATUS", Num: 2, L: gpio.High}
	pw := &power{ctrl: ctrl, status: status, wait: time.Second}
	if err := pw.powerOn(); err != nil {
		t.Fatalf("Failed powerOn: %v", err)
	}
	if ctrl.Read() != gpio.High {
		t.Errorf("Control pin not high after powerOn")
	}
	if err := pw.powerOff(); err != nil {
		t.Fatalf("Failed powerOff: %v", err)
	}
	if ctrl.Read() != gpio.Low {
		t.Errorf("Control pin not low after powerOff")
	}
}

func TestPowerOnTimeout(t *testing.T) {
	ctrl := &gpiotest.Pin{N: "CTRL", Num: 1}
	status := &gpiotest.Pin{N: "STATUS", Num: 2, L: gpio.Low}
	pw := &power{ctrl: ctrl, status: status, wait: 100 * time.Millisecond}
	if err := pw.powerOn(); err == nil {
		t.Errorf("powerOn with unhealthy status succeeded")
	}
}
