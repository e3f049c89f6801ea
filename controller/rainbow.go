package controller

import (
	"context"
	"time"

	"ledstrip"
)

// rainbowLegs are the corners of the fade cycle. The off channels sit at
// 1 instead of 0 so every LED stays faintly lit through the transitions.
var rainbowLegs = []ledstrip.Color{
	{R: 1, G: 255, B: 1},
	{R: 1, G: 1, B: 255},
	{R: 255, G: 1, B: 1},
}

// Rainbow fades the strip through a repeating red-green-blue sequence,
// one leg per cycleTime, until the context is cancelled.
func (c *Controller) Rainbow(ctx context.Context, cycleTime, stepTime time.Duration) error {
	if err := c.SetRGB(255, 1, 1); err != nil {
		return err
	}

	for {
		for _, leg := range rainbowLegs {
			if err := c.FadeRGB(ctx, leg, cycleTime, stepTime); err != nil {
				return err
			}
		}
	}
}
