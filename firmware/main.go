package main

import (
	"machine"

	"ledstrip/firmware/commands"
	"ledstrip/firmware/device"
)

// stripLEDCount selects the output backend: 0 drives three analog PWM
// channels, anything above 0 drives a WS2812 strip on stripPin instead.
const stripLEDCount = 0

const stripPin = machine.GP15

func main() {
	if stripLEDCount > 0 {
		s := device.NewStrip(device.StripConfig{Pin: stripPin, Count: stripLEDCount})
		commands.Run(&s)
		return
	}

	// one channel per PWM slice so the slices configure independently
	cfg := device.Config{
		Red:   device.ChannelConfig{Pin: machine.GP2, PWM: machine.PWM1},
		Green: device.ChannelConfig{Pin: machine.GP4, PWM: machine.PWM2},
		Blue:  device.ChannelConfig{Pin: machine.GP6, PWM: machine.PWM3},
	}

	d, err := device.New(cfg)
	if err != nil {
		panic(err)
	}

	commands.Run(&d)
}
