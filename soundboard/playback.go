package soundboard

import (
	"context"
	"fmt"

	"github.com/lendres/go-vs1000/protocol"
)

// PlayTrack starts playback of the track at the given catalog index.
//
// The board acknowledges with a blank line followed by a status line
// echoing the track it actually started. The returned bool reports
// whether that matches the requested track; false with a nil error means
// the board started a different one, which happens when the index runs
// past the end of the catalog.
func (d *Driver) PlayTrack(ctx context.Context, track int) (bool, error) {
	cmd, err := protocol.BuildPlayTrackCmd(track)
	if err != nil {
		return false, err
	}

	line, err := d.playStatus(ctx, cmd)
	if err != nil {
		return false, err
	}
	got, err := protocol.ParsePlayAck(line)
	if err != nil {
		return false, err
	}
	if got != track {
		d.logInfo("board started a different track", "requested", track, "started", got)
		return false, nil
	}
	return true, nil
}

// PlayFile starts playback of the named file. The status line echoes the
// name back with the board's own padding, so only the play token is
// checked.
func (d *Driver) PlayFile(ctx context.Context, name string) (bool, error) {
	cmd, err := protocol.BuildPlayFileCmd(name)
	if err != nil {
		return false, err
	}

	line, err := d.playStatus(ctx, cmd)
	if err != nil {
		return false, err
	}
	if _, err := protocol.ParsePlayAck(line); err != nil {
		return false, err
	}
	return true, nil
}

// playStatus sends a play command and returns the status line. The first
// response line is a blank acknowledgement and is discarded unseen.
func (d *Driver) playStatus(ctx context.Context, cmd []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := d.ch.send(cmd); err != nil {
		return nil, fmt.Errorf("play: %w", err)
	}

	if _, err := d.ch.readLine(); err != nil {
		return nil, fmt.Errorf("play: %w", err)
	}
	line, err := d.ch.readLine()
	if err != nil {
		return nil, fmt.Errorf("play: %w", err)
	}
	if len(line) == 0 {
		return nil, fmt.Errorf("play: %w", ErrNoData)
	}
	return line, nil
}

// Pause pauses playback.
func (d *Driver) Pause(ctx context.Context) error {
	return d.issue(ctx, "pause", []byte(protocol.CmdPause))
}

// Resume resumes paused playback.
func (d *Driver) Resume(ctx context.Context) error {
	return d.issue(ctx, "resume", []byte(protocol.CmdResume))
}

// Stop stops playback.
func (d *Driver) Stop(ctx context.Context) error {
	return d.issue(ctx, "stop", []byte(protocol.CmdStop))
}

// TrackTime reports the elapsed and total seconds of the current track.
func (d *Driver) TrackTime(ctx context.Context) (current, total uint32, err error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if err := d.ch.send([]byte(protocol.CmdTrackTime)); err != nil {
		return 0, 0, fmt.Errorf("track time: %w", err)
	}

	line, err := d.ch.readLine()
	if err != nil {
		return 0, 0, fmt.Errorf("track time: %w", err)
	}
	if len(line) != protocol.TimeResponseLength {
		// A wrong-size response means board and driver disagree about
		// framing. A bare newline puts the board back at its prompt; the
		// reply is discarded.
		var perr error
		if len(line) == 0 {
			perr = fmt.Errorf("track time: %w", ErrNoData)
		} else {
			_, _, perr = protocol.ParseTrackTime(line)
		}
		_ = d.ch.send([]byte{'\n'})
		_, _ = d.ch.readLine()
		return 0, 0, perr
	}

	return protocol.ParseTrackTime(line)
}

// TrackSize reports the remaining and total bytes of the current track.
func (d *Driver) TrackSize(ctx context.Context) (remaining, total uint32, err error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if err := d.ch.send([]byte(protocol.CmdTrackSize)); err != nil {
		return 0, 0, fmt.Errorf("track size: %w", err)
	}

	line, err := d.ch.readLine()
	if err != nil {
		return 0, 0, fmt.Errorf("track size: %w", err)
	}
	if len(line) == 0 {
		return 0, 0, fmt.Errorf("track size: %w", ErrNoData)
	}

	return protocol.ParseTrackSize(line)
}
