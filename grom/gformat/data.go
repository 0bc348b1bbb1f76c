package gformat

type (
	RomFormat string
)

const (
	FormatUnknown = RomFormat("unknown")
	FormatSMD     = RomFormat("smd")
	FormatBIN     = RomFormat("bin")
)

const (
	// SegaMarkerOffset is where a flat BIN image carries the "SEGA"
	// console signature.
	SegaMarkerOffset = 0x100
	// SMDMarkerOffset is where an SMD container header carries its two
	// identification bytes 0xAA 0xBB.
	SMDMarkerOffset = 8
)

var (
	SegaMarker = []byte("SEGA")
	SMDMarker  = []byte{0xAA, 0xBB}
)
