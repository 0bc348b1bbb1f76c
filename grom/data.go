// Package grom stores the code to check, convert, and report on Sega
// Genesis/Mega Drive ROM image files.
package grom

import (
	"github.com/pkg/errors"
)

type (
	// FileCheckAction is the policy applied at a per-file decision point:
	// a failed format check before a batch runs, or an output file that
	// already exists during conversion.
	FileCheckAction string
)

const (
	ActionUnset = FileCheckAction("")
	ActionStop  = FileCheckAction("stop")
	ActionWarn  = FileCheckAction("warn")
	ActionSkip  = FileCheckAction("skip")
)

var (
	ErrUnknownFormat = errors.New("unrecognized ROM format")
)

// ParseFileCheckAction converts a command line value into a
// FileCheckAction. The match is exact and case sensitive; anything
// unrecognized comes back as ActionUnset for the caller to reject.
func ParseFileCheckAction(s string) FileCheckAction {
	switch s {
	case "stop":
		return ActionStop
	case "warn":
		return ActionWarn
	case "skip":
		return ActionSkip
	}
	return ActionUnset
}
