package protocol

import "fmt"

// BuildPlayTrackCmd constructs a play-by-index command.
// The track index is the position of the file in the chip's listing order.
//
// Frame structure:
//
//	#<index>\n
//
// Returns the complete frame ready to send, or an error if validation fails.
func BuildPlayTrackCmd(track int) ([]byte, error) {
	if track < 0 || track > MaxTrackNumber {
		return nil, fmt.Errorf("track must be 0-%d, got %d", MaxTrackNumber, track)
	}

	return []byte(fmt.Sprintf("%c%d\n", cmdPlayTrackPrefix, track)), nil
}

// BuildPlayFileCmd constructs a play-by-name command.
// The name must match the on-card file name exactly, including any
// space padding the card's 8.3 layout imposes.
//
// Frame structure:
//
//	P<name>\n
func BuildPlayFileCmd(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if len(name) > NameLength {
		return nil, fmt.Errorf("name must be at most %d characters, got %d", NameLength, len(name))
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 0x20 || name[i] > 0x7E {
			return nil, fmt.Errorf("name contains non-printable byte 0x%02X at position %d", name[i], i)
		}
	}

	return []byte(fmt.Sprintf("%c%s\n", cmdPlayFilePrefix, name)), nil
}
