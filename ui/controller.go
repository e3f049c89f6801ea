package ui

import (
	"fmt"
	"io"
)

// commandWriter turns slider positions into manual-mode command lines.
type commandWriter struct {
	writer io.Writer
}

func (c *commandWriter) SetRGB(r, g, b float64) {
	fmt.Fprintf(c.writer, "%.0f,%.0f,%.0f\n", r, g, b)
}
