package soundboard

import (
	"fmt"
	"time"

	"github.com/lendres/go-vs1000/protocol"
)

// AckFraming selects how the board frames command acknowledgements.
type AckFraming int

const (
	// AckLine expects a full newline-terminated echo line. This is the
	// framing of the stock UART firmware.
	AckLine AckFraming = iota

	// AckByte expects a single echoed byte with no newline. Some firmware
	// builds acknowledge this way to keep the UART quiet.
	AckByte
)

// Config holds the driver configuration.
type Config struct {
	// Logger receives driver diagnostics; nil keeps the driver quiet
	Logger Logger

	// ReadTimeout is how long a single response line is waited for
	ReadTimeout time.Duration

	// MinRaw and MaxRaw bound the board's raw volume counter
	MinRaw int
	MaxRaw int

	// MinLevel and MaxLevel bound the user-facing volume scale
	MinLevel int
	MaxLevel int

	// Store persists the raw volume across power cycles (optional)
	Store VolumeStore

	// VolumeAddress is the store address holding the raw volume
	VolumeAddress int

	// ResetPin drives the board's reset line (optional)
	ResetPin ResetPin

	// AckFraming selects line or single-byte command acknowledgements
	AckFraming AckFraming

	// BannerLines is the total number of boot banner lines the board
	// prints after a reset (2 to 4 depending on firmware)
	BannerLines int

	// BannerTag is a substring expected somewhere in the boot banner.
	// Empty disables the check; a mismatch is only logged either way.
	BannerTag string

	// DesyncMargin is how many extra step commands beyond the raw span
	// are allowed before the board is declared out of sync
	DesyncMargin int

	// SettleDelay is how long the reset line is held low
	SettleDelay time.Duration

	// BootDelay is how long the board gets to boot after reset release
	BootDelay time.Duration

	// BannerDelay separates the two halves of the boot banner
	BannerDelay time.Duration

	// CatalogCapacity caps how many file entries a listing may return
	CatalogCapacity int
}

// defaultConfig returns the default configuration, matching the stock
// board: raw volume 0-204 on a 0-10 user scale, half-second line reads,
// and a four-line boot banner.
func defaultConfig() Config {
	return Config{
		ReadTimeout:     500 * time.Millisecond,
		MinRaw:          protocol.ChipMinVolume,
		MaxRaw:          protocol.ChipMaxVolume,
		MinLevel:        0,
		MaxLevel:        10,
		AckFraming:      AckLine,
		BannerLines:     4,
		BannerTag:       protocol.BannerTag,
		DesyncMargin:    8,
		SettleDelay:     15 * time.Millisecond,
		BootDelay:       time.Second,
		BannerDelay:     250 * time.Millisecond,
		CatalogCapacity: DefaultCatalogCapacity,
	}
}

// validate reports the first unusable configuration value.
func (c *Config) validate() error {
	if c.ReadTimeout < 0 {
		return &ConfigError{Field: "ReadTimeout", Reason: "must not be negative"}
	}
	if c.MinRaw < 0 {
		return &ConfigError{Field: "MinRaw", Reason: "must not be negative"}
	}
	if c.MaxRaw <= c.MinRaw {
		return &ConfigError{Field: "MaxRaw",
			Reason: fmt.Sprintf("must be greater than MinRaw (%d)", c.MinRaw)}
	}
	if c.MaxLevel <= c.MinLevel {
		return &ConfigError{Field: "MaxLevel",
			Reason: fmt.Sprintf("must be greater than MinLevel (%d)", c.MinLevel)}
	}
	// each level must map to a distinct raw value
	if c.MaxLevel-c.MinLevel > c.MaxRaw-c.MinRaw {
		return &ConfigError{Field: "MaxLevel",
			Reason: fmt.Sprintf("level span %d exceeds raw span %d",
				c.MaxLevel-c.MinLevel, c.MaxRaw-c.MinRaw)}
	}
	if c.Store != nil && c.VolumeAddress < 0 {
		return &ConfigError{Field: "VolumeAddress", Reason: "must not be negative"}
	}
	if c.AckFraming != AckLine && c.AckFraming != AckByte {
		return &ConfigError{Field: "AckFraming",
			Reason: fmt.Sprintf("unknown framing %d", c.AckFraming)}
	}
	if c.BannerLines < 2 || c.BannerLines > 4 {
		return &ConfigError{Field: "BannerLines", Reason: "must be 2-4"}
	}
	if c.DesyncMargin < 0 {
		return &ConfigError{Field: "DesyncMargin", Reason: "must not be negative"}
	}
	if c.SettleDelay < 0 {
		return &ConfigError{Field: "SettleDelay", Reason: "must not be negative"}
	}
	if c.BootDelay < 0 {
		return &ConfigError{Field: "BootDelay", Reason: "must not be negative"}
	}
	if c.BannerDelay < 0 {
		return &ConfigError{Field: "BannerDelay", Reason: "must not be negative"}
	}
	if c.CatalogCapacity < 1 {
		return &ConfigError{Field: "CatalogCapacity", Reason: "must be at least 1"}
	}
	return nil
}

// Option is a functional option for configuring the Driver.
type Option func(*Config)

// WithLogger sets a logger for the driver operations.
//
// Example:
//
//	drv, err := soundboard.New(port, soundboard.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithReadTimeout sets how long the driver waits for a response line.
// Default is 500ms, which covers the board's worst-case SD card access.
//
// Example:
//
//	drv, err := soundboard.New(port, soundboard.WithReadTimeout(time.Second))
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.ReadTimeout = timeout
	}
}

// WithVolumeBounds sets the board's raw volume range.
// Default is 0-204, the range of the stock firmware's 2dB steps.
//
// Example:
//
//	drv, err := soundboard.New(port, soundboard.WithVolumeBounds(0, 160))
func WithVolumeBounds(minRaw, maxRaw int) Option {
	return func(c *Config) {
		c.MinRaw = minRaw
		c.MaxRaw = maxRaw
	}
}

// WithLevelRange sets the user-facing volume scale.
// Default is 0-10.
//
// Example:
//
//	drv, err := soundboard.New(port, soundboard.WithLevelRange(0, 100))
func WithLevelRange(minLevel, maxLevel int) Option {
	return func(c *Config) {
		c.MinLevel = minLevel
		c.MaxLevel = maxLevel
	}
}

// WithPersistentVolume persists the raw volume in store at the given
// address. After a reset the persisted volume is restored instead of
// probing the board.
//
// Example:
//
//	store, _ := nvram.Open("/var/lib/vs1000/nvram.bin", nvram.DefaultSize)
//	drv, err := soundboard.New(port, soundboard.WithPersistentVolume(store, 0))
func WithPersistentVolume(store VolumeStore, address int) Option {
	return func(c *Config) {
		c.Store = store
		c.VolumeAddress = address
	}
}

// WithResetPin attaches the board's reset line, enabling Reset.
//
// Example:
//
//	pin, _ := gpio.Open("gpiochip0", 17)
//	drv, err := soundboard.New(port, soundboard.WithResetPin(pin))
func WithResetPin(pin ResetPin) Option {
	return func(c *Config) {
		c.ResetPin = pin
	}
}

// WithAckFraming selects how command acknowledgements are framed.
// Default is AckLine.
//
// Example:
//
//	drv, err := soundboard.New(port, soundboard.WithAckFraming(soundboard.AckByte))
func WithAckFraming(framing AckFraming) Option {
	return func(c *Config) {
		c.AckFraming = framing
	}
}

// WithBannerLines sets the total boot banner line count (2-4).
func WithBannerLines(lines int) Option {
	return func(c *Config) {
		c.BannerLines = lines
	}
}

// WithBannerTag sets the substring expected in the boot banner.
// An empty tag disables the check.
func WithBannerTag(tag string) Option {
	return func(c *Config) {
		c.BannerTag = tag
	}
}

// WithDesyncMargin sets how many step commands beyond the raw volume span
// are allowed before a volume change fails with a DesyncError.
func WithDesyncMargin(steps int) Option {
	return func(c *Config) {
		c.DesyncMargin = steps
	}
}

// WithSettleDelay sets how long the reset line is held low.
func WithSettleDelay(delay time.Duration) Option {
	return func(c *Config) {
		c.SettleDelay = delay
	}
}

// WithBootDelay sets how long the board gets to boot after reset release.
func WithBootDelay(delay time.Duration) Option {
	return func(c *Config) {
		c.BootDelay = delay
	}
}

// WithBannerDelay sets the pause between the two halves of the boot banner.
func WithBannerDelay(delay time.Duration) Option {
	return func(c *Config) {
		c.BannerDelay = delay
	}
}

// WithCatalogCapacity caps how many entries a file listing may return.
// Default is DefaultCatalogCapacity.
func WithCatalogCapacity(capacity int) Option {
	return func(c *Config) {
		c.CatalogCapacity = capacity
	}
}
