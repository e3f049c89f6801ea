package ledstrip

import (
	"fmt"
	"strconv"
)

// Ack is the single byte the firmware sends after applying a full command.
const Ack byte = 'K'

// Terminator ends a host command so the third value has a delimiter too.
const Terminator byte = '.'

// Baud is the serial line rate shared by the firmware and the host driver.
const Baud = 115200

// Channel identifies one color channel, in wire order.
type Channel uint8

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

// Color is one command for the strip: a duty cycle per channel.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Command encodes the color as the firmware expects it: three ASCII
// integers in red/green/blue order, comma-delimited, with a trailing
// terminator, e.g. "128,255,0."
func (c Color) Command() []byte {
	buf := make([]byte, 0, 12)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ',')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ',')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	buf = append(buf, Terminator)
	return buf
}

func (c Color) String() string {
	cmd := c.Command()
	return string(cmd[:len(cmd)-1])
}

// ParseColor reads a comma-separated "R,G,B" triple, clamping each value
// to 0-255.
func ParseColor(s string) (Color, error) {
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: Clamp(r), G: Clamp(g), B: Clamp(b)}, nil
}

// Clamp limits v to the 0-255 duty cycle range.
func Clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
