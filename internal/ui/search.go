package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mylists/internal/filter"
	"mylists/internal/storage"
)

// searchResults is recomputed from the snapshot on every call. An empty
// query has no results view at all.
func (m Model) searchResults() ([]storage.Task, bool) {
	q := m.search.Value()
	if q == "" {
		return nil, false
	}
	return filter.Search(m.tasks, q), true
}

func (m Model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.clearSearch()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "up", "down":
		results, _ := m.searchResults()
		cmd, _ := m.paneKey(&m.results, results, msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.results = taskPane{}
	if m.search.Value() == "" {
		m.search.Blur()
		m.searching = false
	}
	return m, cmd
}

// updateSearchResults handles keys while the overlay is showing but the
// query box is not focused.
func (m Model) updateSearchResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results, _ := m.searchResults()
	if cmd, ok := m.paneKey(&m.results, results, msg); ok {
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.clearSearch()
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) clearSearch() {
	m.search.SetValue("")
	m.search.Blur()
	m.searching = false
	m.results = taskPane{}
}
