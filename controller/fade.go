package controller

import (
	"context"
	"math"
	"time"

	"ledstrip"
)

// DefaultStepTime is the fade granularity used by the operating modes.
const DefaultStepTime = 200 * time.Millisecond

// FadeRGB transitions linearly from the current color to the target over
// the given duration, applying one intermediate color per step. It
// returns early when the context is cancelled.
func (c *Controller) FadeRGB(ctx context.Context, target ledstrip.Color, duration, stepTime time.Duration) error {
	steps := int(duration / stepTime)
	if steps < 1 {
		steps = 1
	}
	sleep := duration / time.Duration(steps)

	cur := c.GetRGB()
	r, g, b := float64(cur.R), float64(cur.G), float64(cur.B)
	dr := (float64(target.R) - r) / float64(steps)
	dg := (float64(target.G) - g) / float64(steps)
	db := (float64(target.B) - b) / float64(steps)

	for range steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}

		r += dr
		g += dg
		b += db

		if err := c.SetRGB(round(r), round(g), round(b)); err != nil {
			return err
		}
	}
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}
