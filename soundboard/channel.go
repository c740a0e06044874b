package soundboard

import (
	"fmt"
	"time"

	"github.com/lendres/go-vs1000/protocol"
)

// lineChannel frames the raw byte transport into command/response-line
// exchanges. Stale input is dropped before every command so a response is
// never matched against leftovers from an earlier exchange.
type lineChannel struct {
	port    Port
	timeout time.Duration

	// buf backs every readLine result; the board never exceeds its own
	// line buffer, so neither do we.
	buf [protocol.LineBufferSize]byte
}

// send drops stale input and writes cmd to the board.
func (c *lineChannel) send(cmd []byte) error {
	if err := c.port.Drain(); err != nil {
		return fmt.Errorf("drain: %w", err)
	}
	if _, err := c.port.Write(cmd); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// readLine reads one response line, without its terminator.
//
// The returned slice aliases the channel's line buffer and is only valid
// until the next readLine call. A zero-length result with a nil error
// means either an empty line or a quiet timeout; the board's protocol
// treats the two the same way.
//
// Both terminator orders seen in the wild are normalized: CR-LF from
// terminal-style firmware, and the stock firmware's LF-CR, whose stray CR
// would otherwise corrupt the next line.
func (c *lineChannel) readLine() ([]byte, error) {
	n, err := c.port.ReadUntil('\n', c.buf[:], c.timeout)
	if err != nil {
		return nil, err
	}

	line := c.buf[:n]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	if b, err := c.port.Peek(); err == nil && b == '\r' {
		_, _ = c.port.ReadByte()
	}

	return line, nil
}

// readAckByte reads a single-byte acknowledgement. It returns ErrNoData
// when the board stays quiet for the full timeout.
func (c *lineChannel) readAckByte() (byte, error) {
	var one [1]byte
	n, err := c.port.ReadUntil('\n', one[:], c.timeout)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNoData
	}
	return one[0], nil
}
