package soundboard

import (
	"errors"
	"fmt"
)

// ErrNoData indicates that the board stayed quiet where a response line
// was required. Usually the board is powered down, still booting, or the
// serial wiring is crossed.
var ErrNoData = errors.New("no data from sound board")

// ErrNoResetPin indicates that a hardware reset was requested but the
// driver was built without a reset pin.
var ErrNoResetPin = errors.New("no reset pin configured")

// ConfigError indicates that a configuration option holds an unusable value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// DesyncError indicates that the board stopped tracking volume step
// commands: the step budget ran out before the target raw volume was
// reached. The cached volume still reflects the last value the board
// reported.
type DesyncError struct {
	// Target is the raw volume the driver was stepping toward.
	Target int

	// Last is the raw volume the board most recently reported.
	Last int

	// Steps is the number of step commands issued before giving up.
	Steps int
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("volume desync: target raw %d not reached after %d steps, board reports %d",
		e.Target, e.Steps, e.Last)
}

// IsDesyncError reports whether err is or wraps a *DesyncError.
func IsDesyncError(err error) bool {
	var de *DesyncError
	return errors.As(err, &de)
}
