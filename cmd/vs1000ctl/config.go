package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lendres/go-vs1000/protocol"
	"github.com/lendres/go-vs1000/serialport"
	"github.com/lendres/go-vs1000/soundboard"
)

// Config is the on-disk profile for one board. Absent fields keep the
// defaults of the stock firmware.
type Config struct {
	// Device is the serial device path; empty means autodetect.
	Device string `yaml:"device"`

	// BaudRate is the UART rate.
	BaudRate int `yaml:"baud_rate"`

	// ReadTimeoutMS is the per-line read timeout in milliseconds.
	ReadTimeoutMS int `yaml:"read_timeout_ms"`

	// MinRaw and MaxRaw bound the board's raw volume counter.
	MinRaw int `yaml:"min_raw"`
	MaxRaw int `yaml:"max_raw"`

	// MinLevel and MaxLevel bound the user-facing volume scale.
	MinLevel int `yaml:"min_level"`
	MaxLevel int `yaml:"max_level"`

	// AckFraming is "line" or "byte".
	AckFraming string `yaml:"ack_framing"`

	// GPIOChip and ResetLine locate the reset pin; a ResetLine of -1
	// runs without one.
	GPIOChip  string `yaml:"gpio_chip"`
	ResetLine int    `yaml:"reset_line"`

	// BannerLines and BannerTag describe the boot banner.
	BannerLines int    `yaml:"banner_lines"`
	BannerTag   string `yaml:"banner_tag"`

	// NVRAMPath is the volume persistence image; empty disables it.
	NVRAMPath     string `yaml:"nvram_path"`
	VolumeAddress int    `yaml:"volume_address"`
}

func defaultProfile() Config {
	return Config{
		BaudRate:      serialport.DefaultBaudRate,
		ReadTimeoutMS: 500,
		MinRaw:        protocol.ChipMinVolume,
		MaxRaw:        protocol.ChipMaxVolume,
		MinLevel:      0,
		MaxLevel:      10,
		AckFraming:    "line",
		GPIOChip:      "gpiochip0",
		ResetLine:     -1,
		BannerLines:   4,
		BannerTag:     protocol.BannerTag,
	}
}

// loadProfile returns the defaults overlaid with the yaml profile at
// path. An empty path loads plain defaults.
func loadProfile(path string) (Config, error) {
	cfg := defaultProfile()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse profile: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("profile %s: %w", path, err)
	}
	return cfg, nil
}

// validate covers the fields the driver cannot check itself; the rest
// is validated by soundboard.New.
func (c *Config) validate() error {
	if c.BaudRate <= 0 {
		return fmt.Errorf("baud_rate must be positive")
	}
	if c.ReadTimeoutMS < 0 {
		return fmt.Errorf("read_timeout_ms must not be negative")
	}
	if c.AckFraming != "line" && c.AckFraming != "byte" {
		return fmt.Errorf("ack_framing must be \"line\" or \"byte\"")
	}
	if c.ResetLine < -1 {
		return fmt.Errorf("reset_line must be -1 or a line offset")
	}
	if c.ResetLine >= 0 && c.GPIOChip == "" {
		return fmt.Errorf("gpio_chip must be set when reset_line is used")
	}
	return nil
}

func (c *Config) framing() soundboard.AckFraming {
	if c.AckFraming == "byte" {
		return soundboard.AckByte
	}
	return soundboard.AckLine
}
