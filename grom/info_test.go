package grom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngrom/grom/gblock"
	"ngrom/grom/gheader"
)

func TestReadHeaderRegionBIN(t *testing.T) {
	image := binImageBytes(gblock.Size)
	copy(image[gheader.OffsetSystem:], "SEGA GENESIS")

	region, err := readHeaderRegion(bytes.NewReader(image))
	require.NoError(t, err)
	assert.Equal(t, image[:gheader.Size], region)
	assert.Equal(t, "SEGA GENESIS", gheader.Decode(region).System)
}

func TestReadHeaderRegionSMD(t *testing.T) {
	bin := binImageBytes(gblock.Size)
	copy(bin[gheader.OffsetSystem:], "SEGA MEGA DRIVE")
	copy(bin[gheader.OffsetCountries:], "JUE")
	container := smdContainerBytes(t, bin)

	region, err := readHeaderRegion(bytes.NewReader(container))
	require.NoError(t, err)
	assert.Equal(t, bin[:gheader.Size], region)

	fields := gheader.Decode(region)
	assert.Equal(t, "SEGA MEGA DRIVE", fields.System)
	assert.Equal(t, "JUE", fields.Countries)
}

func TestReadHeaderRegionUnknownFormat(t *testing.T) {
	_, err := readHeaderRegion(bytes.NewReader(make([]byte, gblock.Size)))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestReadHeaderRegionShortReads(t *testing.T) {
	// not even a full 512-byte header
	_, err := readHeaderRegion(bytes.NewReader(make([]byte, 100)))
	assert.Error(t, err)

	// a valid SMD container header with a truncated first block
	container := smdContainerBytes(t, make([]byte, gblock.Size))
	_, err = readHeaderRegion(bytes.NewReader(container[:gheader.Size+1000]))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownFormat)
}
