package grom

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"ngrom/grom/gformat"
	"ngrom/grom/gheader"
)

// CheckFormats verifies that every file in paths matches the expected
// container format, printing a verdict for each one. Failures do not
// short-circuit the list; the return value is true only when every
// file passed.
func CheckFormats(expected gformat.RomFormat, paths []string) bool {
	results := lo.Map(
		paths,
		func(path string, _ int) bool {
			return checkFile(expected, path)
		},
	)
	return !lo.Contains(results, false)
}

func checkFile(expected gformat.RomFormat, path string) bool {
	fmt.Printf("Checking file for %s format: %s\n", strings.ToUpper(string(expected)), path)

	header, err := readFileHeader(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		fmt.Println("  ...FAILED!")
		return false
	}

	switch expected {
	case gformat.FormatBIN:
		if gformat.HasSegaMarker(header) {
			fmt.Println("  ...GOOD!")
			return true
		}
	case gformat.FormatSMD:
		if !gformat.HasSMDMarker(header) {
			break
		}
		if gformat.HasSegaMarker(header) {
			fmt.Println("  ...FAILED! (appears to be BIN format)")
			return false
		}
		fmt.Println("  ...GOOD!")
		return true
	default:
		fmt.Fprintf(os.Stderr, "  ERROR: checking for %s format is not implemented\n", expected)
		return false
	}

	fmt.Println("  ...FAILED!")
	return false
}

// readFileHeader reads the 512 leading bytes of a file, which cover the
// identification markers of every supported format.
func readFileHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer f.Close()

	header := make([]byte, gheader.Size)
	if _, err := io.ReadFull(f, header); err != nil {
		return nil, errors.Wrap(err, "incomplete read of header bytes")
	}
	return header, nil
}
