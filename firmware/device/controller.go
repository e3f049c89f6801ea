package device

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/servo"

	"ledstrip"
)

// 1 kHz keeps the strip flicker-free without stressing the slices
const pwmPeriod = 1e9 / 1000

// Device drives three analog PWM channels and exposes the USB serial
// stream to the command loop.
type Device struct {
	usbSerial
	channels [3]pwmChannel
}

type pwmChannel struct {
	pwm servo.PWM
	ch  uint8
}

// New configures the three PWM slices and starts with the strip dark.
func New(cfg Config) (Device, error) {
	var d Device
	for i, c := range [3]ChannelConfig{cfg.Red, cfg.Green, cfg.Blue} {
		if err := c.PWM.Configure(machine.PWMConfig{Period: pwmPeriod}); err != nil {
			return Device{}, errors.New("error configuring PWM: " + err.Error())
		}
		ch, err := c.PWM.Channel(c.Pin)
		if err != nil {
			return Device{}, errors.New("error acquiring PWM channel: " + err.Error())
		}
		d.channels[i] = pwmChannel{pwm: c.PWM, ch: ch}
	}

	for ch := ledstrip.ChannelRed; ch <= ledstrip.ChannelBlue; ch++ {
		d.SetChannel(ch, 0)
	}
	return d, nil
}

// SetChannel maps the 0-255 value linearly onto the channel's duty cycle.
func (d *Device) SetChannel(ch ledstrip.Channel, v uint8) {
	c := d.channels[ch]
	c.pwm.Set(c.ch, c.pwm.Top()*uint32(v)/255)
}

// usbSerial adapts the USB serial port to the command loop.
type usbSerial struct{}

func (usbSerial) ReadByte() (byte, error) {
	return machine.Serial.ReadByte()
}

func (usbSerial) WriteByte(b byte) error {
	return machine.Serial.WriteByte(b)
}
