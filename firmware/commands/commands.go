package commands

import (
	"ledstrip"
)

// Controller is the hardware the command loop drives.
type Controller interface {
	// ReadByte returns the next byte from the host, or an error when
	// nothing has arrived yet.
	ReadByte() (byte, error)

	// WriteByte sends one byte to the host, or an error when the
	// output buffer cannot take it yet.
	WriteByte(b byte) error

	// SetChannel applies one channel's duty cycle value.
	SetChannel(ch ledstrip.Channel, v uint8)
}

// Run executes the command loop forever: three values in, one ack out.
func Run(c Controller) {
	for {
		Cycle(c)
	}
}

// Cycle handles exactly one command: it blocks until input arrives, then
// reads the red, green and blue values in that order, applying each one
// as soon as its token is parsed, and finally sends the ack byte. Values
// outside 0-255 are clamped and unparseable tokens fall back to 0; a
// cycle never fails.
func Cycle(c Controller) {
	for ch := ledstrip.ChannelRed; ch <= ledstrip.ChannelBlue; ch++ {
		c.SetChannel(ch, readValue(c))
	}

	for c.WriteByte(ledstrip.Ack) != nil {
	}
}

// readValue reads one integer token from the host and clamps it to the
// valid duty cycle range. A token is an optional sign followed by digits;
// the first non-digit byte after it is the delimiter and is consumed. An
// empty token yields 0.
func readValue(c Controller) uint8 {
	ch := readByte(c)

	neg := false
	switch ch {
	case '-':
		neg = true
		ch = readByte(c)
	case '+':
		ch = readByte(c)
	}

	val := 0
	for ch >= '0' && ch <= '9' {
		// cap the accumulator so absurdly long tokens cannot overflow;
		// anything this large clamps to 255 anyway
		if val < 1<<16 {
			val = val*10 + int(ch-'0')
		}
		ch = readByte(c)
	}

	if neg {
		val = -val
	}
	return ledstrip.Clamp(val)
}

// readByte blocks until the controller produces a byte.
func readByte(c Controller) byte {
	for {
		b, err := c.ReadByte()
		if err != nil {
			continue
		}
		return b
	}
}
