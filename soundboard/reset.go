package soundboard

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/lendres/go-vs1000/protocol"
)

// Reset hardware-resets the board and resynchronizes driver state.
//
// The reset line is pulled low and released after the settle delay, then
// the board gets the boot delay to come up. The boot banner is read in
// two halves separated by the banner delay; the banner tag check is
// advisory and never fails the reset. Finally the volume is
// resynchronized, from the store when one is configured.
func (d *Driver) Reset(ctx context.Context) error {
	pin := d.config.ResetPin
	if pin == nil {
		return ErrNoResetPin
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	d.logInfo("resetting board")
	if err := pin.SetOutput(); err != nil {
		return fmt.Errorf("reset pin: %w", err)
	}
	if err := pin.Write(false); err != nil {
		return fmt.Errorf("reset pin: %w", err)
	}
	if err := sleep(ctx, d.config.SettleDelay); err != nil {
		return err
	}
	if err := pin.SetInput(); err != nil {
		return fmt.Errorf("reset pin: %w", err)
	}
	if err := sleep(ctx, d.config.BootDelay); err != nil {
		return err
	}

	if err := d.readBanner(ctx); err != nil {
		return err
	}
	return d.syncVolume(ctx)
}

// Begin prepares the driver against an already-running board: the reset
// line, when wired, is released, and the volume is resynchronized. Use
// Reset for a full restart.
func (d *Driver) Begin(ctx context.Context) error {
	if pin := d.config.ResetPin; pin != nil {
		if err := pin.SetInput(); err != nil {
			return fmt.Errorf("reset pin: %w", err)
		}
	}
	return d.syncVolume(ctx)
}

// readBanner consumes the boot banner: two lines right after boot, the
// rest after the banner delay. The tag is only expected somewhere in the
// first two; banner text is logged either way.
func (d *Driver) readBanner(ctx context.Context) error {
	tagSeen := false
	for i := 0; i < 2; i++ {
		line, err := d.ch.readLine()
		if err != nil {
			return fmt.Errorf("boot banner: %w", err)
		}
		if d.config.BannerTag != "" && bytes.Contains(line, []byte(d.config.BannerTag)) {
			tagSeen = true
		}
		d.logDebug("boot banner", "line", string(line))
	}
	if d.config.BannerTag != "" && !tagSeen {
		d.logInfo("banner tag not found", "tag", d.config.BannerTag)
	}

	if err := sleep(ctx, d.config.BannerDelay); err != nil {
		return err
	}
	for i := 2; i < d.config.BannerLines; i++ {
		line, err := d.ch.readLine()
		if err != nil {
			return fmt.Errorf("boot banner: %w", err)
		}
		d.logDebug("boot banner", "line", string(line))
	}
	return nil
}

// syncVolume brings the cached raw volume in line with the board.
func (d *Driver) syncVolume(ctx context.Context) error {
	// Every step response reports the new raw volume, so one step up
	// tells us where the board's volume counter actually is.
	if _, err := d.stepVolume(ctx, protocol.CmdVolumeUp); err != nil {
		return fmt.Errorf("volume probe: %w", err)
	}

	if d.config.Store != nil {
		stored, err := d.config.Store.ReadInt(d.config.VolumeAddress)
		if err != nil {
			return fmt.Errorf("volume store: %w", err)
		}
		d.logDebug("restoring persisted volume", "raw", stored, "board", d.rawVolume)
		_, err = d.setRaw(ctx, int(stored))
		return err
	}

	// No store: step back down to undo the probe. A board that was
	// already at the top ends one raw unit lower, since the firmware
	// clamps the probe step.
	if _, err := d.stepVolume(ctx, protocol.CmdVolumeDown); err != nil {
		return fmt.Errorf("volume probe: %w", err)
	}
	d.logDebug("probed volume", "raw", d.rawVolume)
	return nil
}

// sleep waits for the given duration or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
