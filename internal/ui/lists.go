package ui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mylists/internal/filter"
)

func (m Model) updateLists(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearchInput(msg)
	}
	if m.search.Value() != "" {
		return m.updateSearchResults(msg)
	}

	for i, c := range filter.Categories() {
		if key.Matches(msg, m.keys.Stats[i]) {
			cat := c
			m.category = &cat
			m.categoryTab = taskPane{}
			m.status = ""
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.lists)+1)
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.lists)+1)
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.results = taskPane{}
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.AddList):
		return m.openSheet(nil)
	case key.Matches(msg, m.keys.Open):
		if m.cursor >= len(m.lists) {
			return m.openSheet(nil)
		}
		l := m.lists[m.cursor]
		m.selectedList = &l
		m.detail = taskPane{}
		m.status = ""
	case key.Matches(msg, m.keys.EditList):
		if m.cursor >= len(m.lists) {
			m.status = "No list selected"
			return m, nil
		}
		l := m.lists[m.cursor]
		return m.openSheet(&l)
	case key.Matches(msg, m.keys.Mark):
		if m.cursor >= len(m.lists) {
			return m, nil
		}
		if m.marked[m.cursor] {
			delete(m.marked, m.cursor)
		} else {
			m.marked[m.cursor] = true
		}
		m.status = fmt.Sprintf("%d marked", len(m.marked))
	case key.Matches(msg, m.keys.Delete):
		indexSet := m.markedIndexes()
		if len(indexSet) == 0 && m.cursor < len(m.lists) {
			indexSet = []int{m.cursor}
		}
		if len(indexSet) == 0 {
			return m, nil
		}
		m.confirmDel = true
		m.pendingDel = indexSet
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", m.lists[indexSet[0]].Name)
	}
	return m, nil
}

func (m Model) markedIndexes() []int {
	out := make([]int, 0, len(m.marked))
	for i := range m.marked {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", "esc":
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if err := m.deleteLists(m.pendingDel); err != nil {
			m.log.Error("delete list", "err", err)
			m.status = fmt.Sprintf("delete failed: %v", err)
		} else if len(m.pendingDel) > 0 {
			m.status = "Deleted list"
		} else {
			m.status = "Nothing to delete"
		}
		m.confirmDel = false
		m.pendingDel = nil
		m.marked = map[int]bool{}
		return m, nil
	default:
		return m, nil
	}
}

// deleteLists removes the list at the first index of indexSet. Any further
// indexes in the same gesture are ignored.
func (m Model) deleteLists(indexSet []int) error {
	if len(indexSet) == 0 {
		return nil
	}
	index := indexSet[0]
	if index < 0 || index >= len(m.lists) {
		return nil
	}
	l := m.lists[index]
	m.log.Info("deleting list", "id", l.ID, "name", l.Name, "requested", len(indexSet))
	return m.store.DeleteList(l.ID)
}
