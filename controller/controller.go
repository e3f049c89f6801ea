package controller

import (
	"fmt"
	"io"
	"sync"

	"ledstrip"
)

// Controller drives the LED strip firmware over its serial port. All
// methods are safe for concurrent use; commands are strictly
// request/response, so only one is in flight at a time.
type Controller struct {
	mtx     sync.Mutex
	port    io.ReadWriteCloser
	rgb     ledstrip.Color
	applied bool
}

// New opens the configured serial port and turns the strip off so the
// tracked color matches the hardware.
func New(cfg Config) (*Controller, error) {
	port, err := openPort(cfg)
	if err != nil {
		return nil, err
	}

	c := NewFromPort(port)
	if err := c.SetRGB(0, 0, 0); err != nil {
		port.Close()
		return nil, err
	}
	return c, nil
}

// NewFromPort wraps an already-open stream. Tests use this with an
// in-memory port.
func NewFromPort(port io.ReadWriteCloser) *Controller {
	return &Controller{port: port}
}

// SetRGB clamps each value to 0-255 and applies the color, blocking
// until the firmware acknowledges. An unchanged color is not resent.
func (c *Controller) SetRGB(r, g, b int) error {
	color := ledstrip.Color{R: ledstrip.Clamp(r), G: ledstrip.Clamp(g), B: ledstrip.Clamp(b)}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.applied && color == c.rgb {
		return nil
	}

	if _, err := c.port.Write(color.Command()); err != nil {
		return fmt.Errorf("error writing command: %w", err)
	}
	if err := c.awaitAck(); err != nil {
		return err
	}

	c.rgb = color
	c.applied = true
	return nil
}

// awaitAck blocks until the firmware's single ack byte arrives.
func (c *Controller) awaitAck() error {
	buf := make([]byte, 1)
	for {
		n, err := c.port.Read(buf)
		if err != nil {
			return fmt.Errorf("error reading ack: %w", err)
		}
		if n == 0 {
			continue
		}
		if buf[0] != ledstrip.Ack {
			return fmt.Errorf("unexpected ack byte %q", buf[0])
		}
		return nil
	}
}

// GetRGB returns the last color the firmware acknowledged.
func (c *Controller) GetRGB() ledstrip.Color {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.rgb
}

func (c *Controller) Close() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.port.Close()
}
