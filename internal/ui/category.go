package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mylists/internal/filter"
	"mylists/internal/storage"
)

func (m Model) categoryTasks() []storage.Task {
	if m.category == nil {
		return nil
	}
	return filter.ForCategory(m.tasks, *m.category, m.now())
}

func (m Model) updateCategory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.paneKey(&m.categoryTab, m.categoryTasks(), msg); ok {
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.category = nil
		m.status = ""
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}
