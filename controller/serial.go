package controller

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"go.bug.st/serial"
)

// ErrNoUSBSerial is returned when port discovery finds nothing that
// looks like a USB serial device.
var ErrNoUSBSerial = errors.New("no USB serial port found")

// GetSerialPorts lists the USB serial ports on this machine.
func GetSerialPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("error listing serial ports: %w", err)
	}

	var usb []string
	for _, p := range ports {
		lower := strings.ToLower(p)
		if strings.Contains(lower, "usb") || strings.Contains(lower, "acm") {
			usb = append(usb, p)
		}
	}
	if len(usb) == 0 {
		return nil, ErrNoUSBSerial
	}
	return usb, nil
}

func openPort(cfg Config) (io.ReadWriteCloser, error) {
	name := cfg.SerialPort
	if name == "" || name == "auto" {
		ports, err := GetSerialPorts()
		if err != nil {
			return nil, err
		}
		name = ports[0]
	}

	log.Printf("opening serial port %s", name)
	port, err := serial.Open(name, &serial.Mode{BaudRate: cfg.BaudRate})
	if err != nil {
		return nil, fmt.Errorf("error opening serial port %s: %w", name, err)
	}
	return port, nil
}
