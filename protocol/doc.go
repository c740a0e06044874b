// Package protocol implements the VS1000 sound board line protocol.
//
// This package provides command frame builders and response field parsers
// for the ASCII command/response protocol spoken by VS1000-family audio
// playback boards (the Adafruit Audio FX Sound Board lineage).
//
// # Protocol Overview
//
// The board speaks a newline-delimited ASCII protocol over a byte stream:
//
//	Command:  single letter, optional argument, usually '\n'-terminated
//	Response: one or more '\n'-terminated lines (trailing '\r' tolerated)
//
// Commands and their responses:
//
//	L    file listing: repeated [NAME(11)][TAB][SIZE] lines, empty line ends
//	#N   play by index: blank line, then "play N"
//	Pxx  play by name: blank line, then "play ..."
//	=    pause: echoes '='
//	>    resume: echoes '>'
//	q    stop: echoes 'q'
//	t    time: exactly 12 digits (6 elapsed + 6 total seconds)
//	s    size: exactly 22 digits (11 remaining + 11 total bytes)
//	+ -  volume step: new raw volume as a decimal line
//
// The pause/resume/stop echo arrives as a full line on current firmware but
// as a single unterminated byte on older revisions; the driver layer selects
// the framing per device.
//
// # Command Builders
//
// Fixed commands are string constants (CmdList, CmdPause, ...) ready to
// write. Use the Build* functions for the parameterized play commands:
//
//	frame, err := protocol.BuildPlayTrackCmd(3)
//	frame, err := protocol.BuildPlayFileCmd("T01     WAV")
//
// # Field Parsers
//
// Use the Parse* functions on response lines (without the trailing newline):
//
//	entry, err := protocol.ParseCatalogRecord(line)
//	current, total, err := protocol.ParseTrackTime(line)
//	remaining, total, err := protocol.ParseTrackSize(line)
//	volume, err := protocol.ParseRawVolume(line)
//	track, err := protocol.ParsePlayAck(line)
//
// # Error Handling
//
// Parsers reject malformed lines with a ResponseError carrying the raw
// line and a reason:
//
//	if _, _, err := protocol.ParseTrackTime(line); err != nil {
//	    // err.Error() returns: `track time: malformed response "0012340": need exactly 12 bytes, got 7`
//	}
//
// # Reference
//
// Field widths and quirks were verified against VLSI VS1000-based boards
// running the Adafruit Audio FX firmware and its forks.
package protocol
