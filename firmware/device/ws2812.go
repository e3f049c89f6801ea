package device

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"ledstrip"
)

// Strip drives an addressable WS2812 strip as one solid color, so the
// same three-value protocol works for both strip types.
type Strip struct {
	usbSerial
	dev ws2812.Device
	buf []color.RGBA
	cur color.RGBA
}

// NewStrip configures the data pin and allocates the color buffer.
func NewStrip(cfg StripConfig) Strip {
	cfg.Pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return Strip{
		dev: ws2812.NewWS2812(cfg.Pin),
		buf: make([]color.RGBA, cfg.Count),
		cur: color.RGBA{A: 255},
	}
}

// SetChannel updates one channel of the solid color and repaints every
// LED with it.
func (s *Strip) SetChannel(ch ledstrip.Channel, v uint8) {
	switch ch {
	case ledstrip.ChannelRed:
		s.cur.R = v
	case ledstrip.ChannelGreen:
		s.cur.G = v
	case ledstrip.ChannelBlue:
		s.cur.B = v
	}
	for i := range s.buf {
		s.buf[i] = s.cur
	}
	s.dev.WriteColors(s.buf)
}
