package ui

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// FileSelector is a terminal picker over the SMD files of a single
// directory. Enter records the highlighted file as the choice and
// quits; q leaves the choice empty.
type FileSelector struct {
	dir       string
	fileNames []string
	cursor    int
	choice    string
}

func CreateFileSelector(dir string) (FileSelector, error) {
	fileNames, err := ReadRomFileNames(dir)
	if err != nil {
		return FileSelector{}, err
	}
	return FileSelector{
		dir:       dir,
		fileNames: fileNames,
	}, nil
}

// ReadRomFileNames returns the names of the ".smd" files within a
// directory, in the order the directory listing yields them.
func ReadRomFileNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "ReadRomFileNames read directory error")
	}

	fileNames := lo.FilterMap(
		entries,
		func(entry os.DirEntry, _ int) (string, bool) {
			if entry.IsDir() {
				return "", false
			}
			return entry.Name(), strings.EqualFold(filepath.Ext(entry.Name()), ".smd")
		},
	)
	return fileNames, nil
}

func (s FileSelector) Init() tea.Cmd {
	return nil
}

func (s FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.fileNames)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.fileNames) > 0 {
			s.choice = s.fileNames[s.cursor]
		}
		return s, tea.Quit
	}

	return s, nil
}

func (s FileSelector) View() string {
	output := "NGROM\n\n"
	output += "Current directory: " + s.dir + "\n\n"

	if len(s.fileNames) == 0 {
		output += "No SMD files found here.\n"
		output += "\n(q to quit)\n"
		return output
	}

	for i, fileName := range s.fileNames {
		cursor := "  "
		if i == s.cursor {
			cursor = "> "
		}
		output += cursor + fileName + "\n"
	}
	output += "\n(enter to convert, q to quit)\n"

	return output
}
