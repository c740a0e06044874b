package soundboard

import (
	"context"
	"fmt"
	"math"

	"github.com/lendres/go-vs1000/protocol"
)

// Level returns the user level for the most recently reported raw volume.
func (d *Driver) Level() int {
	return d.levelFromRaw(d.rawVolume)
}

// RawVolume returns the raw volume the board most recently reported.
func (d *Driver) RawVolume() int {
	return d.rawVolume
}

// VolumeUp steps the raw volume up once and returns the raw volume the
// board reports back. The new value is persisted when a store is
// configured.
func (d *Driver) VolumeUp(ctx context.Context) (int, error) {
	raw, err := d.stepVolume(ctx, protocol.CmdVolumeUp)
	if err != nil {
		return 0, err
	}
	d.saveVolume()
	return raw, nil
}

// VolumeDown steps the raw volume down once and returns the raw volume
// the board reports back. The new value is persisted when a store is
// configured.
func (d *Driver) VolumeDown(ctx context.Context) (int, error) {
	raw, err := d.stepVolume(ctx, protocol.CmdVolumeDown)
	if err != nil {
		return 0, err
	}
	d.saveVolume()
	return raw, nil
}

// SetLevel steps the board to the raw volume for the given user level and
// returns the level actually reached. Out-of-range levels are clamped.
// The result is persisted when a store is configured.
func (d *Driver) SetLevel(ctx context.Context, level int) (int, error) {
	clamped := level
	if clamped < d.config.MinLevel {
		clamped = d.config.MinLevel
	}
	if clamped > d.config.MaxLevel {
		clamped = d.config.MaxLevel
	}
	if clamped != level {
		d.logDebug("level clamped", "requested", level, "using", clamped)
	}

	raw, err := d.setRaw(ctx, d.rawFromLevel(clamped))
	if err != nil {
		return d.levelFromRaw(raw), err
	}
	d.saveVolume()
	return d.levelFromRaw(raw), nil
}

// LevelUp raises the volume one user level, clamped at the top.
func (d *Driver) LevelUp(ctx context.Context) (int, error) {
	return d.SetLevel(ctx, d.Level()+1)
}

// LevelDown lowers the volume one user level, clamped at the bottom.
func (d *Driver) LevelDown(ctx context.Context) (int, error) {
	return d.SetLevel(ctx, d.Level()-1)
}

// CycleLevel raises the volume one user level, wrapping to the bottom
// after the top. Useful for a single-button volume control.
func (d *Driver) CycleLevel(ctx context.Context) (int, error) {
	next := d.Level() + 1
	if next > d.config.MaxLevel {
		next = d.config.MinLevel
	}
	return d.SetLevel(ctx, next)
}

// setRaw steps the board to the target raw volume, clamped to the
// configured bounds. Stepping down and stepping up run as two separate
// passes, so a board with coarse steps cannot trap the driver oscillating
// around an unreachable target; the final raw volume may land one board
// step past the target.
//
// Both passes share one step budget, the raw span plus the desync margin.
// A board that burns through it without reaching the target gets a
// DesyncError, and the cached volume keeps the last reported value.
func (d *Driver) setRaw(ctx context.Context, target int) (int, error) {
	clamped := target
	if clamped < d.config.MinRaw {
		clamped = d.config.MinRaw
	}
	if clamped > d.config.MaxRaw {
		clamped = d.config.MaxRaw
	}
	if clamped != target {
		d.logDebug("raw volume target clamped", "requested", target, "using", clamped)
	}

	budget := d.config.MaxRaw - d.config.MinRaw + d.config.DesyncMargin
	steps := 0

	for d.rawVolume > clamped {
		if steps >= budget {
			return d.rawVolume, &DesyncError{Target: clamped, Last: d.rawVolume, Steps: steps}
		}
		if _, err := d.stepVolume(ctx, protocol.CmdVolumeDown); err != nil {
			return d.rawVolume, err
		}
		steps++
	}
	for d.rawVolume < clamped {
		if steps >= budget {
			return d.rawVolume, &DesyncError{Target: clamped, Last: d.rawVolume, Steps: steps}
		}
		if _, err := d.stepVolume(ctx, protocol.CmdVolumeUp); err != nil {
			return d.rawVolume, err
		}
		steps++
	}

	return d.rawVolume, nil
}

// stepVolume issues one volume step command and records the raw volume
// the board reports back. Step responses carry the new raw volume instead
// of a command echo. The firmware clamps itself to the chip range, but a
// report outside the configured bounds is clamped again before it enters
// the cache.
func (d *Driver) stepVolume(ctx context.Context, cmd string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := d.ch.send([]byte(cmd)); err != nil {
		return 0, fmt.Errorf("volume step: %w", err)
	}

	line, err := d.ch.readLine()
	if err != nil {
		return 0, fmt.Errorf("volume step: %w", err)
	}
	if len(line) == 0 {
		return 0, fmt.Errorf("volume step: %w", ErrNoData)
	}

	raw, err := protocol.ParseRawVolume(line)
	if err != nil {
		return 0, err
	}
	if raw < d.config.MinRaw {
		raw = d.config.MinRaw
	}
	if raw > d.config.MaxRaw {
		raw = d.config.MaxRaw
	}
	d.rawVolume = raw
	return raw, nil
}

// saveVolume persists the cached raw volume. Store failures are logged,
// not returned.
func (d *Driver) saveVolume() {
	if d.config.Store == nil {
		return
	}
	if err := d.config.Store.WriteInt(d.config.VolumeAddress, int32(d.rawVolume)); err != nil {
		d.logError("persisting volume failed", "error", err, "raw", d.rawVolume)
	}
}

// levelFromRaw converts a raw volume to the nearest user level. Rounding
// is half away from zero in both directions, so a level converted to raw
// always converts back to the same level.
func (d *Driver) levelFromRaw(raw int) int {
	return d.config.MinLevel + int(math.Round(float64(raw-d.config.MinRaw)/d.increment))
}

// rawFromLevel converts a user level to its raw volume.
func (d *Driver) rawFromLevel(level int) int {
	return d.config.MinRaw + int(math.Round(float64(level-d.config.MinLevel)*d.increment))
}
