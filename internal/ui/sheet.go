package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mylists/internal/storage"
)

// listSheet is the modal list editor. A nil list means a new list is being
// created; otherwise that list is being edited.
type listSheet struct {
	list  *storage.TaskList
	name  textinput.Model
	color int
	err   string
}

func newListSheet(list *storage.TaskList) *listSheet {
	ti := textinput.New()
	ti.Placeholder = "List name"
	ti.CharLimit = 64
	ti.Width = 30
	s := &listSheet{list: list, name: ti}
	if list != nil {
		s.name.SetValue(list.Name)
		s.name.CursorEnd()
		s.color = paletteIndex(list.Color)
	}
	return s
}

func (s *listSheet) title() string {
	if s.list == nil {
		return "New List"
	}
	return "Edit List"
}

func (s *listSheet) colorHex() string {
	return string(listPalette[s.color])
}

func (m Model) openSheet(list *storage.TaskList) (tea.Model, tea.Cmd) {
	m.sheet = newListSheet(list)
	m.status = ""
	return m, m.sheet.name.Focus()
}

func (m Model) updateSheet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.sheet
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.sheet = nil
		m.status = "Cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		return m.saveSheet()
	case key.Matches(msg, m.keys.NextColor):
		s.color = wrapIndex(s.color+1, len(listPalette))
		return m, nil
	case key.Matches(msg, m.keys.PrevColor):
		s.color = wrapIndex(s.color-1, len(listPalette))
		return m, nil
	}
	var cmd tea.Cmd
	s.name, cmd = s.name.Update(msg)
	s.err = ""
	return m, cmd
}

func (m Model) saveSheet() (tea.Model, tea.Cmd) {
	s := m.sheet
	name := strings.TrimSpace(s.name.Value())
	if name == "" {
		s.err = "Name cannot be empty"
		return m, nil
	}
	if s.list == nil {
		if _, err := m.store.AddList(name, s.colorHex()); err != nil {
			m.log.Error("add list", "err", err)
			s.err = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		m.status = fmt.Sprintf("Added list \"%s\"", name)
	} else {
		if err := m.store.UpdateList(s.list.ID, name, s.colorHex()); err != nil {
			m.log.Error("update list", "id", s.list.ID, "err", err)
			s.err = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		m.status = fmt.Sprintf("Saved list \"%s\"", name)
	}
	m.sheet = nil
	return m, nil
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
