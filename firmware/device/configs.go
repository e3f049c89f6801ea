package device

import (
	"machine"

	"tinygo.org/x/drivers/servo"
)

// ChannelConfig binds one color channel to a PWM-capable pin. The pin
// must belong to the PWM slice given here.
type ChannelConfig struct {
	Pin machine.Pin
	PWM servo.PWM
}

// Config has the fixed pin assignment for the three channels.
type Config struct {
	Red   ChannelConfig
	Green ChannelConfig
	Blue  ChannelConfig
}

// StripConfig drives an addressable strip as one solid color instead of
// three analog channels.
type StripConfig struct {
	Pin   machine.Pin
	Count int
}
