package soundboard

import (
	"io"
	"time"
)

// Port is the byte transport to the sound board.
//
// The serialport package provides an implementation backed by a serial
// device; tests and simulators can implement Port directly.
type Port interface {
	// Writer sends raw command bytes to the board.
	io.Writer

	// ReadByte returns the next buffered byte without waiting.
	// It returns ErrNoData when nothing is available.
	ReadByte() (byte, error)

	// Peek returns the next buffered byte without consuming it.
	// It returns ErrNoData when nothing is available.
	Peek() (byte, error)

	// ReadUntil reads bytes into buf until delim arrives, buf fills up, or
	// timeout expires with no byte available. The delimiter is consumed but
	// not stored. When buf fills before the delimiter, the delimiter is left
	// unconsumed for the next call. A quiet timeout returns (0, nil).
	ReadUntil(delim byte, buf []byte, timeout time.Duration) (int, error)

	// Drain discards any buffered input so the next read starts clean.
	Drain() error
}

// ResetPin drives the board's active-low reset line.
//
// The line is released by switching the pin back to an input and letting
// the board's pull-up take over, not by driving it high.
type ResetPin interface {
	// SetOutput configures the pin as an output.
	SetOutput() error

	// SetInput configures the pin as a high-impedance input, releasing
	// the line.
	SetInput() error

	// Write drives the pin high or low. Only meaningful while the pin is
	// an output.
	Write(high bool) error
}

// VolumeStore persists the raw volume across power cycles.
//
// The nvram package provides a file-backed implementation; anything
// addressable that can hold a 32-bit value works.
type VolumeStore interface {
	// ReadInt reads the 32-bit value at address.
	ReadInt(address int) (int32, error)

	// WriteInt writes a 32-bit value at address.
	WriteInt(address int, value int32) error
}
