package soundboard

import (
	"context"
	"fmt"

	"github.com/lendres/go-vs1000/protocol"
)

// Driver speaks the command protocol of VS1000-family audio playback
// boards over a byte transport. It tracks the board's raw volume, keeps
// the most recent file catalog, and can reset the board when wired to
// its reset line.
//
// Driver is not safe for concurrent use; callers serialize access.
type Driver struct {
	ch     lineChannel
	config Config

	// increment is the raw volume distance between adjacent user levels.
	increment float64

	// rawVolume is the raw volume the board most recently reported.
	rawVolume int

	catalog Catalog
}

// New creates a new Driver on the given transport.
//
// Example:
//
//	port, _ := serialport.Open("/dev/ttyUSB0")
//	drv, err := soundboard.New(port,
//	    soundboard.WithResetPin(pin),
//	    soundboard.WithLogger(myLogger),
//	)
func New(port Port, opts ...Option) (*Driver, error) {
	if port == nil {
		panic("port cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Driver{
		ch:        lineChannel{port: port, timeout: cfg.ReadTimeout},
		config:    cfg,
		increment: float64(cfg.MaxRaw-cfg.MinRaw) / float64(cfg.MaxLevel-cfg.MinLevel),
		rawVolume: cfg.MinRaw,
	}, nil
}

// issue sends cmd and validates the board's acknowledgement. The board
// echoes what it accepted, so the echo must lead with the command byte.
func (d *Driver) issue(ctx context.Context, op string, cmd []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.ch.send(cmd); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if d.config.AckFraming == AckByte {
		got, err := d.ch.readAckByte()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if got != cmd[0] {
			return &protocol.ResponseError{
				Op:     op,
				Line:   []byte{got},
				Reason: fmt.Sprintf("ack byte 0x%02X, want 0x%02X", got, cmd[0]),
			}
		}
		return nil
	}

	line, err := d.ch.readLine()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(line) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNoData)
	}
	if line[0] != cmd[0] {
		return &protocol.ResponseError{
			Op:     op,
			Line:   append([]byte(nil), line...),
			Reason: fmt.Sprintf("echo starts with 0x%02X, want 0x%02X", line[0], cmd[0]),
		}
	}
	return nil
}

func (d *Driver) logDebug(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (d *Driver) logInfo(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Info(msg, keysAndValues...)
	}
}

func (d *Driver) logError(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Error(msg, keysAndValues...)
	}
}
