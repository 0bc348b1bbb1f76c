package grom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ngrom/grom/gblock"
	"ngrom/grom/gformat"
	"ngrom/grom/gheader"
)

// writeFixture drops a file with the given content into dir and returns
// its path.
func writeFixture(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// smdContainerBytes builds a well-formed SMD container holding the
// given flat BIN payload: a 512-byte header carrying the identification
// bytes, followed by the payload interleaved into 16KB blocks.
func smdContainerBytes(t *testing.T, bin []byte) []byte {
	t.Helper()
	require.Zero(t, len(bin)%gblock.Size)

	container := make([]byte, gheader.Size, gheader.Size+len(bin))
	container[gformat.SMDMarkerOffset] = gformat.SMDMarker[0]
	container[gformat.SMDMarkerOffset+1] = gformat.SMDMarker[1]

	block := make([]byte, gblock.Size)
	for offset := 0; offset < len(bin); offset += gblock.Size {
		gblock.Encode(block, bin[offset:offset+gblock.Size])
		container = append(container, block...)
	}
	return container
}

// binImageBytes builds a flat BIN image of the given size with the
// "SEGA" signature in place.
func binImageBytes(size int) []byte {
	bin := make([]byte, size)
	copy(bin[gformat.SegaMarkerOffset:], gformat.SegaMarker)
	return bin
}
