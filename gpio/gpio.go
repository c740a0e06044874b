// Package gpio drives the board's reset line through the Linux GPIO
// character device.
package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// Pin is a single GPIO line. It implements soundboard.ResetPin.
type Pin struct {
	line *gpiocdev.Line
}

// Open requests the line at offset on the named chip, "gpiochip0" on
// most boards. The line starts as an input, which leaves an active-low
// reset released.
func Open(chip string, offset int) (*Pin, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsInput)
	if err != nil {
		return nil, fmt.Errorf("request %s line %d: %w", chip, offset, err)
	}
	return &Pin{line: line}, nil
}

// SetOutput reconfigures the line as an output, driven high so the
// board is not reset until Write pulls the line low.
func (p *Pin) SetOutput() error {
	if err := p.line.Reconfigure(gpiocdev.AsOutput(1)); err != nil {
		return fmt.Errorf("reconfigure as output: %w", err)
	}
	return nil
}

// SetInput reconfigures the line as a high-impedance input, releasing
// it to the board's pull-up.
func (p *Pin) SetInput() error {
	if err := p.line.Reconfigure(gpiocdev.AsInput); err != nil {
		return fmt.Errorf("reconfigure as input: %w", err)
	}
	return nil
}

// Write drives the line high or low.
func (p *Pin) Write(high bool) error {
	value := 0
	if high {
		value = 1
	}
	if err := p.line.SetValue(value); err != nil {
		return fmt.Errorf("set value: %w", err)
	}
	return nil
}

// Close releases the line back to the kernel.
func (p *Pin) Close() error {
	return p.line.Close()
}
