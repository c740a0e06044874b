package protocol

// Command strings accepted by the sound board. Each constant is the complete
// ASCII frame to write. Most commands are newline-terminated; the time and
// size queries are single bytes the firmware acts on immediately.
const (
	// CmdList requests the file listing
	CmdList = "L\n"

	// CmdPause pauses the current track
	CmdPause = "=\n"

	// CmdResume resumes a paused track
	CmdResume = ">\n"

	// CmdStop stops playback
	CmdStop = "q\n"

	// CmdVolumeUp raises the raw volume by one chip step
	CmdVolumeUp = "+\n"

	// CmdVolumeDown lowers the raw volume by one chip step
	CmdVolumeDown = "-\n"

	// CmdTrackTime queries elapsed and total play time (sent unterminated)
	CmdTrackTime = "t"

	// CmdTrackSize queries remaining and total track size (sent unterminated)
	CmdTrackSize = "s"
)

// Command prefixes for the parameterized play commands.
// See BuildPlayTrackCmd and BuildPlayFileCmd.
const (
	// cmdPlayTrackPrefix selects a track by its listing index
	cmdPlayTrackPrefix = '#'

	// cmdPlayFilePrefix selects a track by its on-card file name
	cmdPlayFilePrefix = 'P'
)

// Response geometry per the sound board's line protocol.
const (
	// LineBufferSize is the capacity of the reusable response line buffer
	LineBufferSize = 80

	// NameLength is the on-wire file name field width
	// (8.3 convention without the dot)
	NameLength = 11

	// CatalogTabOffset is the byte position of the tab separator in a
	// listing record
	CatalogTabOffset = 11

	// CatalogSizeOffset is the byte position where size digits begin in a
	// listing record
	CatalogSizeOffset = CatalogTabOffset + 1

	// CatalogSizeDigits is the width of the zero-padded size field in a
	// listing record
	CatalogSizeDigits = 10

	// TimeResponseLength is the exact length of a time query response
	TimeResponseLength = 12

	// TimeFieldDigits is the width of each field in a time response
	// (elapsed seconds, then total seconds)
	TimeFieldDigits = 6

	// SizeResponseLength is the exact length of a size query response
	SizeResponseLength = 22

	// SizeFieldDigits is the width of each field in a size response
	// (remaining bytes, then total bytes)
	SizeFieldDigits = 11

	// PlayToken is the leading token of a play status line
	PlayToken = "play"

	// MaxTrackNumber is the highest track index the firmware accepts
	MaxTrackNumber = 255
)

// Raw volume range the chip reports. The firmware clamps step commands to
// this range; driver-side targets are clamped to the same range.
const (
	// ChipMinVolume is the lowest raw volume the chip reports (muted)
	ChipMinVolume = 0

	// ChipMaxVolume is the highest raw volume the chip reports
	ChipMaxVolume = 204
)

// BannerTag is the substring expected somewhere in the startup banner.
// Firmware forks print differing banners, so the tag is only ever checked
// on a best-effort basis.
const BannerTag = "Adafruit FX Sound Board"
