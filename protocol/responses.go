package protocol

import "bytes"

// ParseCatalogRecord parses one line of the file listing response.
//
// Record layout:
//
//	[NAME(11, padded)][TAB][SIZE DIGITS(up to 10, zero-padded)]
//
// Some firmware revisions emit short names without padding, which shifts
// the tab left into the name field; trailing spaces and tabs are trimmed
// from the name to cover both layouts. Size digits are accumulated until
// the first non-digit or field-width exhaustion, so trailing garbage after
// the size is tolerated rather than fatal.
func ParseCatalogRecord(line []byte) (FileEntry, error) {
	if len(line) <= CatalogSizeOffset {
		return FileEntry{}, newResponseError("list record", line,
			"need at least %d bytes, got %d", CatalogSizeOffset+1, len(line))
	}

	name := bytes.TrimRight(line[:NameLength], " \t")
	if len(name) == 0 {
		return FileEntry{}, newResponseError("list record", line, "empty name field")
	}
	for i, b := range name {
		if b < 0x20 || b > 0x7E {
			return FileEntry{}, newResponseError("list record", line,
				"non-printable byte 0x%02X at name position %d", b, i)
		}
	}

	end := CatalogSizeOffset + CatalogSizeDigits
	if end > len(line) {
		end = len(line)
	}

	var size uint32
	digits := 0
	for _, b := range line[CatalogSizeOffset:end] {
		if b < '0' || b > '9' {
			break
		}
		size = size*10 + uint32(b-'0')
		digits++
	}
	if digits == 0 {
		return FileEntry{}, newResponseError("list record", line, "no size digits")
	}

	return FileEntry{Name: string(name), Size: size}, nil
}

// ParseTrackTime parses a time query response.
//
// Response format (exactly TimeResponseLength bytes):
//
//	[ELAPSED SECONDS(6)][TOTAL SECONDS(6)]
//
// Any other length or a non-digit in either field is an error, and no
// outputs are produced.
func ParseTrackTime(line []byte) (current, total uint32, err error) {
	if len(line) != TimeResponseLength {
		return 0, 0, newResponseError("track time", line,
			"need exactly %d bytes, got %d", TimeResponseLength, len(line))
	}

	current, ok := parseFixedDecimal(line[:TimeFieldDigits])
	if !ok {
		return 0, 0, newResponseError("track time", line, "non-digit in elapsed field")
	}

	total, ok = parseFixedDecimal(line[TimeFieldDigits:])
	if !ok {
		return 0, 0, newResponseError("track time", line, "non-digit in total field")
	}

	return current, total, nil
}

// ParseTrackSize parses a size query response.
//
// Response format (exactly SizeResponseLength bytes):
//
//	[REMAINING BYTES(11)][TOTAL BYTES(11)]
func ParseTrackSize(line []byte) (remaining, total uint32, err error) {
	if len(line) != SizeResponseLength {
		return 0, 0, newResponseError("track size", line,
			"need exactly %d bytes, got %d", SizeResponseLength, len(line))
	}

	remaining, ok := parseFixedDecimal(line[:SizeFieldDigits])
	if !ok {
		return 0, 0, newResponseError("track size", line, "non-digit in remaining field")
	}

	total, ok = parseFixedDecimal(line[SizeFieldDigits:])
	if !ok {
		return 0, 0, newResponseError("track size", line, "non-digit in total field")
	}

	return remaining, total, nil
}

// ParseRawVolume parses the decimal raw volume line the chip prints after
// a volume step command. Digits are taken from the start of the line until
// the first non-digit; at least one digit is required.
func ParseRawVolume(line []byte) (int, error) {
	volume := 0
	digits := 0
	for _, b := range line {
		if b < '0' || b > '9' {
			break
		}
		volume = volume*10 + int(b-'0')
		digits++
	}
	if digits == 0 {
		return 0, newResponseError("volume step", line, "no digits")
	}

	return volume, nil
}

// ParsePlayAck parses a play status line.
//
// Response format:
//
//	play <track or name>
//
// The line must begin with PlayToken. The decimal track index after the
// token is returned when present; name-based plays echo the file name
// instead, in which case the returned track is -1 with no error.
func ParsePlayAck(line []byte) (int, error) {
	if !bytes.HasPrefix(line, []byte(PlayToken)) {
		return 0, newResponseError("play status", line, "missing %q token", PlayToken)
	}

	rest := line[len(PlayToken):]
	for len(rest) > 0 && rest[0] == ' ' {
		rest = rest[1:]
	}

	track := 0
	digits := 0
	for _, b := range rest {
		if b < '0' || b > '9' {
			break
		}
		track = track*10 + int(b-'0')
		digits++
	}
	if digits == 0 {
		return -1, nil
	}

	return track, nil
}

// parseFixedDecimal parses a fixed-width decimal field.
// Every byte must be a digit.
func parseFixedDecimal(field []byte) (uint32, bool) {
	var value uint32
	for _, b := range field {
		if b < '0' || b > '9' {
			return 0, false
		}
		value = value*10 + uint32(b-'0')
	}
	return value, true
}
