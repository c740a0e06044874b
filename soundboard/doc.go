// Package soundboard provides a high-level driver for VS1000-family
// audio playback boards.
//
// # Overview
//
// The boards speak a newline-delimited ASCII protocol over a UART. This
// package drives the full command set:
//   - Listing the files on the board's storage
//   - Starting playback by track number or file name
//   - Pausing, resuming, and stopping playback
//   - Querying elapsed time and remaining bytes of the current track
//   - Stepping the volume and mapping it onto a user-facing level scale
//   - Hardware reset over a GPIO line with volume resynchronization
//
// # Basic Usage
//
//	port, err := serialport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	drv, err := soundboard.New(port)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if err := drv.Begin(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	files, err := drv.ListFiles(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, f := range files {
//	    fmt.Printf("%2d  %-11s  %d bytes\n", i, f.Name, f.Size)
//	}
//
//	ok, err := drv.PlayTrack(ctx, 0)
//
// # Volume Model
//
// The board exposes volume as a raw counter (0-204 on stock firmware)
// that only moves one step at a time. The driver maps this onto a small
// user-facing level scale, 0-10 by default, and walks the counter with
// repeated step commands. Every step response reports the counter, so the
// driver's cached value tracks the board even when the board's step size
// is coarser than one.
//
// A board that stops responding to steps is detected through a step
// budget; see DesyncError. With a VolumeStore configured the raw volume
// survives power cycles and is restored by Begin and Reset.
//
// # Hardware Reset
//
// Wire the board's reset line to a GPIO and pass it with WithResetPin:
//
//	pin, err := gpio.Open("gpiochip0", 17)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pin.Close()
//
//	drv, err := soundboard.New(port, soundboard.WithResetPin(pin))
//	...
//	err = drv.Reset(ctx)
//
// Reset pulls the line low, lets the board boot, consumes the boot
// banner, and resynchronizes the volume.
//
// # Error Handling
//
// Failures surface as structured error types:
//   - ConfigError: an option holds an unusable value
//   - DesyncError: the board stopped tracking volume steps
//   - ErrNoData: the board stayed quiet where a response was required
//   - protocol.ResponseError: a response line failed to parse
//
// # Context Support
//
// All operations that touch the board take a context for cancellation
// and deadlines. Delays during Reset are cut short when the context ends.
//
// # Hardware Independence
//
// This package does not open serial devices or GPIO lines itself. The
// serialport, gpio, and nvram packages provide implementations of Port,
// ResetPin, and VolumeStore for Linux hosts; tests and simulators can
// implement the interfaces directly.
package soundboard
