package gformat

import (
	"bytes"
)

// HasSegaMarker reports whether the header carries the "SEGA" console
// signature of a flat BIN image.
func HasSegaMarker(header []byte) bool {
	end := SegaMarkerOffset + len(SegaMarker)
	return len(header) >= end && bytes.Equal(header[SegaMarkerOffset:end], SegaMarker)
}

// HasSMDMarker reports whether the header carries the 0xAA 0xBB
// identification bytes of an SMD container.
func HasSMDMarker(header []byte) bool {
	return len(header) > SMDMarkerOffset+1 &&
		header[SMDMarkerOffset] == SMDMarker[0] &&
		header[SMDMarkerOffset+1] == SMDMarker[1]
}

// Detect classifies a ROM file from its leading header bytes. A buffer
// too short to cover the "SEGA" marker cannot be classified.
//
// The BIN check runs first: a BIN image could coincidentally carry the
// SMD marker bytes at offsets 8 and 9, but an SMD container never
// stores the "SEGA" text at offset 0x100 in raw (interleaved) form.
func Detect(header []byte) RomFormat {
	if len(header) < SegaMarkerOffset+len(SegaMarker) {
		return FormatUnknown
	}
	if HasSegaMarker(header) {
		return FormatBIN
	}
	if HasSMDMarker(header) {
		return FormatSMD
	}
	return FormatUnknown
}
