package grom

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"ngrom/grom/gblock"
	"ngrom/grom/gformat"
	"ngrom/grom/gheader"
	"ngrom/output"
)

// ShowInfoList prints the metadata embedded in each listed ROM file.
// A file that cannot be read or recognized is reported and skipped;
// the rest of the list still gets shown.
func ShowInfoList(paths []string) {
	for _, path := range paths {
		showInfo(path)
	}
}

func showInfo(path string) {
	fmt.Printf("Showing info from ROM data for file: %s\n", path)

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: failed to open file: %v\n", err)
		fmt.Println("  ... skipping.")
		return
	}
	defer f.Close()

	region, err := readHeaderRegion(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		fmt.Println("  ... skipping.")
		return
	}

	output.SimpleTable(os.Stdout, gheader.Decode(region).Pairs())
}

// readHeaderRegion reads enough of a ROM stream to recover the 512-byte
// header region in BIN layout. A flat BIN image stores it in the
// leading bytes as is, while an SMD container carries it inside the
// first 16KB data block, which has to be de-interleaved first.
func readHeaderRegion(r io.Reader) ([]byte, error) {
	head := make([]byte, gheader.Size)
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, errors.Wrap(err, "incomplete read of header bytes")
	}

	switch gformat.Detect(head) {
	case gformat.FormatBIN:
		return head, nil
	case gformat.FormatSMD:
		smd := make([]byte, gblock.Size)
		if _, err := io.ReadFull(r, smd); err != nil {
			return nil, errors.Wrap(err, "incomplete read of first SMD block")
		}
		bin := make([]byte, gblock.Size)
		gblock.Decode(bin, smd)
		return bin[:gheader.Size], nil
	}

	return nil, ErrUnknownFormat
}
