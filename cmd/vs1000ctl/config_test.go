package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lendres/go-vs1000/soundboard"
)

func TestDefaultProfile(t *testing.T) {
	cfg, err := loadProfile("")
	if err != nil {
		t.Fatalf("loadProfile() error = %v", err)
	}

	if cfg.BaudRate != 9600 {
		t.Errorf("BaudRate = %d, want 9600", cfg.BaudRate)
	}
	if cfg.ReadTimeoutMS != 500 {
		t.Errorf("ReadTimeoutMS = %d, want 500", cfg.ReadTimeoutMS)
	}
	if cfg.MaxRaw != 204 {
		t.Errorf("MaxRaw = %d, want 204", cfg.MaxRaw)
	}
	if cfg.MaxLevel != 10 {
		t.Errorf("MaxLevel = %d, want 10", cfg.MaxLevel)
	}
	if cfg.AckFraming != "line" {
		t.Errorf("AckFraming = %q, want %q", cfg.AckFraming, "line")
	}
	if cfg.ResetLine != -1 {
		t.Errorf("ResetLine = %d, want -1", cfg.ResetLine)
	}
	if cfg.BannerLines != 4 {
		t.Errorf("BannerLines = %d, want 4", cfg.BannerLines)
	}
	if cfg.NVRAMPath != "" {
		t.Errorf("NVRAMPath = %q, want empty", cfg.NVRAMPath)
	}
}

func TestLoadProfileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	profile := `
device: /dev/ttyUSB2
ack_framing: byte
reset_line: 17
gpio_chip: gpiochip1
nvram_path: /var/lib/vs1000/volume.bin
volume_address: 8
`
	if err := os.WriteFile(path, []byte(profile), 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}

	cfg, err := loadProfile(path)
	if err != nil {
		t.Fatalf("loadProfile() error = %v", err)
	}

	if cfg.Device != "/dev/ttyUSB2" {
		t.Errorf("Device = %q, want /dev/ttyUSB2", cfg.Device)
	}
	if cfg.AckFraming != "byte" {
		t.Errorf("AckFraming = %q, want byte", cfg.AckFraming)
	}
	if cfg.ResetLine != 17 {
		t.Errorf("ResetLine = %d, want 17", cfg.ResetLine)
	}
	if cfg.GPIOChip != "gpiochip1" {
		t.Errorf("GPIOChip = %q, want gpiochip1", cfg.GPIOChip)
	}
	if cfg.VolumeAddress != 8 {
		t.Errorf("VolumeAddress = %d, want 8", cfg.VolumeAddress)
	}

	// fields the profile does not name keep their defaults
	if cfg.BaudRate != 9600 {
		t.Errorf("BaudRate = %d, want default 9600", cfg.BaudRate)
	}
	if cfg.MaxRaw != 204 {
		t.Errorf("MaxRaw = %d, want default 204", cfg.MaxRaw)
	}
}

func TestLoadProfileErrors(t *testing.T) {
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(badYAML, []byte("device: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}
	badField := filepath.Join(dir, "badfield.yaml")
	if err := os.WriteFile(badField, []byte("ack_framing: candles"), 0o644); err != nil {
		t.Fatalf("writing profile: %v", err)
	}

	tests := []struct {
		name   string
		path   string
		errMsg string
	}{
		{
			name:   "missing file",
			path:   filepath.Join(dir, "nope.yaml"),
			errMsg: "read profile",
		},
		{
			name:   "malformed yaml",
			path:   badYAML,
			errMsg: "parse profile",
		},
		{
			name:   "invalid field value",
			path:   badField,
			errMsg: "ack_framing must be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadProfile(tt.path)
			if err == nil {
				t.Fatal("loadProfile() expected error, got nil")
			}
			if !bytes.Contains([]byte(err.Error()), []byte(tt.errMsg)) {
				t.Errorf("error = %q, want containing %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "zero baud rate",
			mutate: func(c *Config) { c.BaudRate = 0 },
			errMsg: "baud_rate",
		},
		{
			name:   "negative read timeout",
			mutate: func(c *Config) { c.ReadTimeoutMS = -1 },
			errMsg: "read_timeout_ms",
		},
		{
			name:   "unknown framing",
			mutate: func(c *Config) { c.AckFraming = "frame" },
			errMsg: "ack_framing",
		},
		{
			name:   "reset line below -1",
			mutate: func(c *Config) { c.ResetLine = -2 },
			errMsg: "reset_line",
		},
		{
			name: "reset line without chip",
			mutate: func(c *Config) {
				c.ResetLine = 4
				c.GPIOChip = ""
			},
			errMsg: "gpio_chip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultProfile()
			tt.mutate(&cfg)
			err := cfg.validate()
			if err == nil {
				t.Fatal("validate() expected error, got nil")
			}
			if !bytes.Contains([]byte(err.Error()), []byte(tt.errMsg)) {
				t.Errorf("error = %q, want containing %q", err.Error(), tt.errMsg)
			}
		})
	}

	cfg := defaultProfile()
	if err := cfg.validate(); err != nil {
		t.Errorf("validate() on defaults = %v, want nil", err)
	}
}

func TestConfigFraming(t *testing.T) {
	cfg := defaultProfile()
	if got := cfg.framing(); got != soundboard.AckLine {
		t.Errorf("framing() = %v, want AckLine", got)
	}
	cfg.AckFraming = "byte"
	if got := cfg.framing(); got != soundboard.AckByte {
		t.Errorf("framing() = %v, want AckByte", got)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	err := dispatch(context.Background(), nil, "warble", nil)
	if !errors.Is(err, errUsage) {
		t.Errorf("dispatch() error = %v, want errUsage", err)
	}
}

func TestCommandArgValidation(t *testing.T) {
	ctx := context.Background()

	if err := cmdPlay(ctx, nil, nil); !errors.Is(err, errUsage) {
		t.Errorf("cmdPlay() with no args = %v, want errUsage", err)
	}
	if err := cmdVolume(ctx, nil, []string{"loud"}); !errors.Is(err, errUsage) {
		t.Errorf("cmdVolume() with non-number = %v, want errUsage", err)
	}
	if err := cmdVolume(ctx, nil, nil); !errors.Is(err, errUsage) {
		t.Errorf("cmdVolume() with no args = %v, want errUsage", err)
	}
}

func TestDriverLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := newDriverLogger(zerolog.New(&buf))

	log.Info("volume restored", "raw", 95, "address", 8)

	out := buf.String()
	if !strings.Contains(out, `"raw":95`) {
		t.Errorf("output %q missing raw field", out)
	}
	if !strings.Contains(out, `"address":8`) {
		t.Errorf("output %q missing address field", out)
	}
	if !strings.Contains(out, "volume restored") {
		t.Errorf("output %q missing message", out)
	}

	// a trailing unpaired key is dropped, not logged as a field
	buf.Reset()
	log.Error("step failed", "op")
	if strings.Contains(buf.String(), `"op"`) {
		t.Errorf("output %q should not carry the unpaired key", buf.String())
	}
}
