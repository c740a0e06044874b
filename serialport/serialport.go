// Package serialport implements the soundboard transport on top of a
// serial device, using go.bug.st/serial. Reads are polled with termios
// style timeouts so a quiet board never blocks the caller for longer
// than asked.
package serialport

import (
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"

	"github.com/lendres/go-vs1000/soundboard"
)

// DefaultBaudRate is the UART rate of the stock firmware.
const DefaultBaudRate = 9600

// serialPort is the slice of serial.Port this package relies on.
type serialPort interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
	ResetInputBuffer() error
}

// Port adapts a serial device to the soundboard.Port interface.
//
// Port is not safe for concurrent use.
type Port struct {
	port serialPort

	// one byte of lookahead for Peek
	peeked  byte
	hasPeek bool
}

// Open opens the serial device at 8N1 with the stock baud rate.
func Open(device string) (*Port, error) {
	return OpenBaud(device, DefaultBaudRate)
}

// OpenBaud opens the serial device at 8N1 with the given baud rate.
func OpenBaud(device string, baud int) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	sp, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", device, err)
	}
	return &Port{port: sp}, nil
}

// Write sends raw bytes to the board.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// ReadByte returns the next available byte without waiting. It returns
// soundboard.ErrNoData when nothing is buffered.
func (p *Port) ReadByte() (byte, error) {
	if p.hasPeek {
		p.hasPeek = false
		return p.peeked, nil
	}
	return p.pollByte()
}

// Peek returns the next available byte without consuming it. It returns
// soundboard.ErrNoData when nothing is buffered.
func (p *Port) Peek() (byte, error) {
	if p.hasPeek {
		return p.peeked, nil
	}
	b, err := p.pollByte()
	if err != nil {
		return 0, err
	}
	p.peeked = b
	p.hasPeek = true
	return b, nil
}

// ReadUntil reads bytes into buf until delim arrives, buf fills up, or
// the board stays quiet past the timeout. The delimiter is consumed but
// not stored; with buf full it stays in the device buffer. The timeout
// spans the whole call, not each byte.
func (p *Port) ReadUntil(delim byte, buf []byte, timeout time.Duration) (int, error) {
	deadline := time.Now().Add(timeout)
	n := 0

	if p.hasPeek {
		if p.peeked == delim {
			p.hasPeek = false
			return 0, nil
		}
		if len(buf) == 0 {
			return 0, nil
		}
		p.hasPeek = false
		buf[0] = p.peeked
		n = 1
	}

	var one [1]byte
	for {
		if n == len(buf) {
			return n, nil
		}

		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		if err := p.port.SetReadTimeout(remaining); err != nil {
			return n, fmt.Errorf("set read timeout: %w", err)
		}

		rn, err := p.port.Read(one[:])
		if err != nil {
			return n, err
		}
		if rn == 0 {
			return n, nil
		}
		if one[0] == delim {
			return n, nil
		}
		buf[n] = one[0]
		n++
	}
}

// Drain discards the lookahead byte and everything buffered on the
// device.
func (p *Port) Drain() error {
	p.hasPeek = false
	return p.port.ResetInputBuffer()
}

// Close closes the underlying serial device.
func (p *Port) Close() error {
	return p.port.Close()
}

// pollByte performs a single non-blocking one-byte read.
func (p *Port) pollByte() (byte, error) {
	if err := p.port.SetReadTimeout(0); err != nil {
		return 0, fmt.Errorf("set read timeout: %w", err)
	}

	var one [1]byte
	n, err := p.port.Read(one[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, soundboard.ErrNoData
	}
	return one[0], nil
}
