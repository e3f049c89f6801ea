package controller

import (
	"bufio"
	"context"
	"io"
	"log"
	"strings"

	"ledstrip"
)

// Manual applies colors read as "R,G,B" lines from in until the input
// ends or the context is cancelled. Unparseable lines are logged and
// skipped. Scanning happens on its own goroutine so cancellation takes
// effect even while a read is blocked waiting for the next line.
func (c *Controller) Manual(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-scanErr:
			return err
		case line := <-lines:
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			color, err := ledstrip.ParseColor(line)
			if err != nil {
				log.Printf("ignoring input: %v", err)
				continue
			}

			if err := c.SetRGB(int(color.R), int(color.G), int(color.B)); err != nil {
				return err
			}
		}
	}
}
