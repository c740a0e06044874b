// vs1000ctl drives a VS1000-family sound board over a serial line.
//
// A command is a single exchange with the board: list the files on it,
// start or control playback, move the volume, or pull the reset pin.
// Board parameters live in a yaml profile; flags override the profile.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/lendres/go-vs1000/gpio"
	"github.com/lendres/go-vs1000/nvram"
	"github.com/lendres/go-vs1000/serialport"
	"github.com/lendres/go-vs1000/soundboard"
)

// errUsage marks errors that should exit with the usage status.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run())
}

func run() int {
	var (
		profilePath = flag.StringP("config", "c", "", "yaml profile for the board")
		device      = flag.StringP("device", "d", "", "serial device, overrides the profile")
		timeout     = flag.DurationP("timeout", "t", 30*time.Second, "overall command timeout")
		verbose     = flag.BoolP("verbose", "v", false, "enable debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return 2
	}
	command := args[0]

	cfg, err := loadProfile(*profilePath)
	if err != nil {
		logger.Error().Err(err).Msg("loading profile")
		return 2
	}
	if *device != "" {
		cfg.Device = *device
	}

	// detect only enumerates, no board required
	if command == "detect" {
		path, err := serialport.Detect()
		if err != nil {
			logger.Error().Err(err).Msg("detecting board")
			return 1
		}
		fmt.Println(path)
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	devicePath := cfg.Device
	if devicePath == "" {
		devicePath, err = serialport.Detect()
		if err != nil {
			logger.Error().Err(err).Msg("no device configured and autodetect failed")
			return 1
		}
		logger.Debug().Str("device", devicePath).Msg("autodetected board")
	}

	port, err := serialport.OpenBaud(devicePath, cfg.BaudRate)
	if err != nil {
		logger.Error().Err(err).Str("device", devicePath).Msg("opening serial device")
		return 1
	}
	defer port.Close()

	opts := []soundboard.Option{
		soundboard.WithLogger(newDriverLogger(logger)),
		soundboard.WithReadTimeout(time.Duration(cfg.ReadTimeoutMS) * time.Millisecond),
		soundboard.WithVolumeBounds(cfg.MinRaw, cfg.MaxRaw),
		soundboard.WithLevelRange(cfg.MinLevel, cfg.MaxLevel),
		soundboard.WithAckFraming(cfg.framing()),
		soundboard.WithBannerLines(cfg.BannerLines),
		soundboard.WithBannerTag(cfg.BannerTag),
	}

	if cfg.ResetLine >= 0 {
		pin, err := gpio.Open(cfg.GPIOChip, cfg.ResetLine)
		if err != nil {
			logger.Error().Err(err).Msg("opening reset pin")
			return 1
		}
		defer pin.Close()
		opts = append(opts, soundboard.WithResetPin(pin))
	}

	if cfg.NVRAMPath != "" {
		store, err := nvram.Open(cfg.NVRAMPath, nvram.DefaultSize)
		if err != nil {
			logger.Error().Err(err).Msg("opening volume store")
			return 1
		}
		defer store.Close()
		opts = append(opts, soundboard.WithPersistentVolume(store, cfg.VolumeAddress))
	}

	drv, err := soundboard.New(port, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("configuring driver")
		return 2
	}

	if err := dispatch(ctx, drv, command, args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			usage()
			return 2
		}
		logger.Error().Err(err).Str("command", command).Msg("command failed")
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, drv *soundboard.Driver, command string, args []string) error {
	switch command {
	case "list":
		return cmdList(ctx, drv)
	case "play":
		return cmdPlay(ctx, drv, args)
	case "pause":
		return drv.Pause(ctx)
	case "resume":
		return drv.Resume(ctx)
	case "stop":
		return drv.Stop(ctx)
	case "time":
		return cmdTime(ctx, drv)
	case "size":
		return cmdSize(ctx, drv)
	case "volume":
		return cmdVolume(ctx, drv, args)
	case "volume-up":
		return cmdVolumeStep(ctx, drv, true)
	case "volume-down":
		return cmdVolumeStep(ctx, drv, false)
	case "cycle":
		return cmdCycle(ctx, drv)
	case "reset":
		return drv.Reset(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func cmdList(ctx context.Context, drv *soundboard.Driver) error {
	files, err := drv.ListFiles(ctx)
	if err != nil {
		return err
	}
	for i, f := range files {
		fmt.Printf("%2d  %-11s  %10d\n", i, f.Name, f.Size)
	}
	return nil
}

// cmdPlay starts a track by number when the argument parses as one,
// otherwise by file name.
func cmdPlay(ctx context.Context, drv *soundboard.Driver, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: play needs a track number or file name", errUsage)
	}

	if track, err := strconv.Atoi(args[0]); err == nil {
		started, err := drv.PlayTrack(ctx, track)
		if err != nil {
			return err
		}
		if !started {
			return fmt.Errorf("board did not start track %d", track)
		}
		return nil
	}

	started, err := drv.PlayFile(ctx, args[0])
	if err != nil {
		return err
	}
	if !started {
		return fmt.Errorf("board did not start %q", args[0])
	}
	return nil
}

func cmdTime(ctx context.Context, drv *soundboard.Driver) error {
	elapsed, total, err := drv.TrackTime(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d/%d seconds\n", elapsed, total)
	return nil
}

func cmdSize(ctx context.Context, drv *soundboard.Driver) error {
	remaining, total, err := drv.TrackSize(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d of %d bytes left\n", remaining, total)
	return nil
}

// cmdVolume syncs first so the cached counter matches the board before
// the level is walked to its target.
func cmdVolume(ctx context.Context, drv *soundboard.Driver, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: volume needs a level", errUsage)
	}
	level, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: level must be a number, got %q", errUsage, args[0])
	}

	if err := drv.Begin(ctx); err != nil {
		return err
	}
	got, err := drv.SetLevel(ctx, level)
	if err != nil {
		return err
	}
	fmt.Printf("level %d (raw %d)\n", got, drv.RawVolume())
	return nil
}

func cmdVolumeStep(ctx context.Context, drv *soundboard.Driver, up bool) error {
	var raw int
	var err error
	if up {
		raw, err = drv.VolumeUp(ctx)
	} else {
		raw, err = drv.VolumeDown(ctx)
	}
	if err != nil {
		return err
	}
	fmt.Printf("raw %d\n", raw)
	return nil
}

func cmdCycle(ctx context.Context, drv *soundboard.Driver) error {
	if err := drv.Begin(ctx); err != nil {
		return err
	}
	level, err := drv.CycleLevel(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("level %d (raw %d)\n", level, drv.RawVolume())
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: vs1000ctl [flags] <command> [args]

Commands:
  list                print the board's file listing
  play <track|name>   start playback by track number or file name
  pause               pause playback
  resume              resume paused playback
  stop                stop playback
  time                print elapsed/total seconds of the current track
  size                print remaining/total bytes of the current track
  volume <level>      walk the volume to the given level
  volume-up           step the raw volume up once
  volume-down         step the raw volume down once
  cycle               bump the level by one, wrapping past the top
  reset               hardware-reset the board (needs reset_line)
  detect              print the autodetected serial device

Flags:
`)
	flag.PrintDefaults()
}
