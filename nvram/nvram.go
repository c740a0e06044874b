// Package nvram persists small settings in a fixed-size file image,
// filling the role of the EEPROM a microcontroller host would use.
// Values are 32-bit little-endian at byte addresses.
package nvram

import (
	"encoding/binary"
	"fmt"
	"os"
)

// IntSize is the byte width of one stored value.
const IntSize = 4

// DefaultSize is the default image size in bytes.
const DefaultSize = 1024

// Store is a file-backed byte image addressed like an EEPROM. It
// implements soundboard.VolumeStore.
type Store struct {
	f    *os.File
	size int
}

// Open opens or creates the image at path and extends it to size bytes.
// New bytes read as zero.
func Open(path string, size int) (*Store, error) {
	if size < IntSize {
		return nil, fmt.Errorf("image size %d is smaller than one value", size)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat image: %w", err)
	}
	if info.Size() < int64(size) {
		if err := f.Truncate(int64(size)); err != nil {
			f.Close()
			return nil, fmt.Errorf("grow image: %w", err)
		}
	}

	return &Store{f: f, size: size}, nil
}

// ReadInt reads the 32-bit value at address.
func (s *Store) ReadInt(address int) (int32, error) {
	if err := s.check(address); err != nil {
		return 0, err
	}

	var b [IntSize]byte
	if _, err := s.f.ReadAt(b[:], int64(address)); err != nil {
		return 0, fmt.Errorf("read at %d: %w", address, err)
	}
	return int32(binary.LittleEndian.Uint32(b[:])), nil
}

// WriteInt writes a 32-bit value at address and syncs the image, so the
// value survives an abrupt power cut.
func (s *Store) WriteInt(address int, value int32) error {
	if err := s.check(address); err != nil {
		return err
	}

	var b [IntSize]byte
	binary.LittleEndian.PutUint32(b[:], uint32(value))
	if _, err := s.f.WriteAt(b[:], int64(address)); err != nil {
		return fmt.Errorf("write at %d: %w", address, err)
	}
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return nil
}

// Close closes the image file.
func (s *Store) Close() error {
	return s.f.Close()
}

func (s *Store) check(address int) error {
	if address < 0 || address+IntSize > s.size {
		return fmt.Errorf("address %d out of range 0-%d", address, s.size-IntSize)
	}
	return nil
}
