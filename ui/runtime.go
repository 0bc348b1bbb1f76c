package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// SelectRomFile runs the picker over dir and returns the path of the
// chosen SMD file. An empty path means the user quit without choosing,
// which is not an error.
func SelectRomFile(dir string) (string, error) {
	fileSelector, err := CreateFileSelector(dir)
	if err != nil {
		return "", err
	}

	model, err := tea.NewProgram(fileSelector).StartReturningModel()
	if err != nil {
		return "", errors.Wrap(err, "SelectRomFile run picker error")
	}

	fileSelector, ok := model.(FileSelector)
	if !ok || fileSelector.choice == "" {
		return "", nil
	}
	return filepath.Join(dir, fileSelector.choice), nil
}
