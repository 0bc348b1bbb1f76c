package grom

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"ngrom/grom/gblock"
	"ngrom/grom/gheader"
)

// ConvertFiles converts each listed SMD container into a flat BIN image
// written to outDir. The collision action decides what happens when an
// output file already exists; any other problem, a malformed input size
// or an I/O failure, aborts the whole batch and the remaining files are
// not converted.
func ConvertFiles(paths []string, outDir string, collision FileCheckAction) bool {
	for _, path := range paths {
		if err := convertFile(path, outDir, collision); err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
			return false
		}
	}
	return true
}

func convertFile(path string, outDir string, collision FileCheckAction) error {
	outPath := filepath.Join(outDir, outputName(path))
	fmt.Printf("Converting %s\n        to %s\n", path, outPath)

	if fileExists(outPath) {
		fmt.Fprintln(os.Stderr, "  WARNING: output file already exists!")
		switch collision {
		case ActionSkip:
			fmt.Println("  ...skipping!")
			return nil
		case ActionWarn:
			fmt.Fprintln(os.Stderr, "  WARNING: overwriting!")
		default:
			return errors.Errorf("refusing to overwrite %s", outPath)
		}
	}

	stat, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "failed to stat input file")
	}
	size := stat.Size()
	if size < gheader.Size+gblock.Size {
		return errors.Errorf("input file is too small (only %d bytes)", size)
	}
	if (size-gheader.Size)%gblock.Size != 0 {
		return errors.New("input file does not end on a 16KB block boundary (possible data corruption)")
	}
	blockCount := (size - gheader.Size) / gblock.Size

	in, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open input file")
	}
	defer in.Close()

	if _, err := in.Seek(gheader.Size, io.SeekStart); err != nil {
		return errors.Wrap(err, "failed to skip container header")
	}

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "failed to open output file")
	}
	defer out.Close()

	smd := make([]byte, gblock.Size)
	bin := make([]byte, gblock.Size)
	for i := int64(0); i < blockCount; i++ {
		if _, err := io.ReadFull(in, smd); err != nil {
			return errors.Wrap(err, "incomplete read of SMD block")
		}
		gblock.Decode(bin, smd)
		if _, err := out.Write(bin); err != nil {
			return errors.Wrap(err, "incomplete write of BIN block")
		}
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(err, "failed to close output file")
	}

	fmt.Println("  Conversion complete!")
	return nil
}

// outputName derives the BIN filename for an input file: an ".smd"
// extension in any casing becomes ".bin", anything else keeps its name
// with ".bin" appended.
func outputName(path string) string {
	name := filepath.Base(path)
	if strings.EqualFold(filepath.Ext(name), ".smd") {
		return name[:len(name)-3] + "bin"
	}
	return name + ".bin"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}
