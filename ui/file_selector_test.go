package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRomFileNames(t *testing.T) {
	dir := t.TempDir()
	touch := func(name string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	touch("alpha.smd")
	touch("BRAVO.SMD")
	touch("image.bin")
	touch("notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.smd"), 0755))

	fileNames, err := ReadRomFileNames(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha.smd", "BRAVO.SMD"}, fileNames)
}

func TestReadRomFileNamesMissingDir(t *testing.T) {
	_, err := ReadRomFileNames(filepath.Join(t.TempDir(), "nowhere"))
	assert.Error(t, err)
}

func TestFileSelectorNavigation(t *testing.T) {
	press := func(model tea.Model, key tea.Key) tea.Model {
		next, _ := model.Update(tea.KeyMsg(key))
		return next
	}
	keyDown := tea.Key{Type: tea.KeyDown}
	keyUp := tea.Key{Type: tea.KeyUp}
	keyJ := tea.Key{Type: tea.KeyRunes, Runes: []rune{'j'}}
	keyEnter := tea.Key{Type: tea.KeyEnter}

	var model tea.Model = FileSelector{
		dir:       ".",
		fileNames: []string{"a.smd", "b.smd", "c.smd"},
	}

	// the cursor stays inside the list at both ends
	model = press(model, keyUp)
	assert.Equal(t, 0, model.(FileSelector).cursor)
	model = press(model, keyDown)
	model = press(model, keyJ)
	model = press(model, keyDown)
	assert.Equal(t, 2, model.(FileSelector).cursor)

	model = press(model, keyUp)
	model = press(model, keyEnter)
	assert.Equal(t, "b.smd", model.(FileSelector).choice)
}

func TestFileSelectorQuitWithoutChoice(t *testing.T) {
	selector := FileSelector{dir: ".", fileNames: []string{"a.smd"}}

	model, cmd := selector.Update(tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}}))
	assert.NotNil(t, cmd)
	assert.Equal(t, "", model.(FileSelector).choice)
}

func TestFileSelectorEnterOnEmptyList(t *testing.T) {
	selector := FileSelector{dir: "."}

	model, cmd := selector.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	assert.NotNil(t, cmd)
	assert.Equal(t, "", model.(FileSelector).choice)
}

func TestFileSelectorView(t *testing.T) {
	selector := FileSelector{
		dir:       "/roms",
		fileNames: []string{"a.smd", "b.smd"},
		cursor:    1,
	}
	view := selector.View()
	assert.Contains(t, view, "/roms")
	assert.Contains(t, view, "  a.smd")
	assert.Contains(t, view, "> b.smd")

	empty := FileSelector{dir: "/roms"}
	assert.Contains(t, empty.View(), "No SMD files found here.")
}
