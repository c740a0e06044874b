package serialport

import (
	"errors"
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
)

// ErrNoPortFound indicates that no USB serial port is present.
var ErrNoPortFound = errors.New("no usb serial port found")

// knownBridges holds the USB vendor IDs of the serial bridges commonly
// found on sound board breakouts: Silicon Labs, FTDI, and WCH.
var knownBridges = map[string]bool{
	"10C4": true,
	"0403": true,
	"1A86": true,
}

// Detect returns the device path of the most plausible sound board
// port: the first USB serial port with a known bridge chip, or failing
// that the first USB serial port at all.
func Detect() (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", fmt.Errorf("enumerate serial ports: %w", err)
	}

	fallback := ""
	for _, port := range ports {
		if !port.IsUSB {
			continue
		}
		if knownBridges[strings.ToUpper(port.VID)] {
			return port.Name, nil
		}
		if fallback == "" {
			fallback = port.Name
		}
	}

	if fallback != "" {
		return fallback, nil
	}
	return "", ErrNoPortFound
}
