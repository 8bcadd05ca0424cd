package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"mylists/internal/filter"
	"mylists/internal/storage"
)

func (m Model) View() string {
	var body string
	var bindings []key.Binding
	switch {
	case m.sheet != nil:
		body, bindings = m.renderSheet(), m.keys.sheetHelp()
	case m.selectedList != nil:
		body, bindings = m.renderDetail(), m.keys.detailHelp()
		if m.inputMode != inputNone {
			bindings = m.keys.inputHelp()
		}
	case m.category != nil:
		body, bindings = m.renderCategory(), m.keys.tasksHelp()
	default:
		body, bindings = m.renderLists(), m.keys.listsHelp()
		if _, ok := m.searchResults(); ok {
			bindings = m.keys.tasksHelp()
		}
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(bindings))
	return b.String()
}

// statTile renders one summary counter.
func statTile(icon, title string, count int, color lipgloss.Color) string {
	head := lipgloss.NewStyle().Foreground(color).Render(glyph(icon)) + " " + subtleStyle.Render(title)
	num := titleStyle.Render(fmt.Sprintf("%d", count))
	return tileStyle.Render(lipgloss.JoinVertical(lipgloss.Left, head, num))
}

func (m Model) renderStats() string {
	summary := filter.Summarize(m.tasks, m.now())
	tiles := make([]string, 0, 4)
	for i, c := range filter.Categories() {
		tiles = append(tiles, statTile(c.Icon(), c.Title(), summary.Count(c), categoryColors[i]))
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, tiles[0], tiles[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, tiles[2], tiles[3])
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (m Model) renderLists() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("My Lists"))
	b.WriteString("\n")
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if results, ok := m.searchResults(); ok {
		b.WriteString(m.renderSearchOverlay(results))
		return b.String()
	}

	b.WriteString(m.renderStats())
	b.WriteString("\n\n")

	if len(m.lists) == 0 {
		b.WriteString(faintStyle.Render("No lists yet."))
		b.WriteString("\n")
	}
	for i, l := range m.lists {
		cursor := " "
		if i == m.cursor {
			cursor = cursorStyle.Render(">")
		}
		mark := " "
		if m.marked[i] {
			mark = "x"
		}
		count := subtleStyle.Render(fmt.Sprintf("%d", m.openTaskCount(l.ID)))
		b.WriteString(fmt.Sprintf("%s %s %s %s  %s\n", cursor, mark, colorDot(l.Color), l.Name, count))
	}
	cursor := " "
	if m.cursor >= len(m.lists) {
		cursor = cursorStyle.Render(">")
	}
	b.WriteString(fmt.Sprintf("%s   %s\n", cursor, addListStyle.Render("+ Add List")))
	return b.String()
}

func (m Model) renderSearchOverlay(results []storage.Task) string {
	var b strings.Builder
	b.WriteString(renderTasks(results, m.results, !m.searching, m.now(), "No matching tasks"))
	if len(results) == 0 {
		if hint, ok := filter.Suggest(m.tasks, m.search.Value()); ok {
			b.WriteString(faintStyle.Render(fmt.Sprintf("Did you mean \"%s\"?", hint)))
			b.WriteString("\n")
		}
	}
	box := overlayStyle
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	return box.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderDetail() string {
	l := m.selectedList
	var b strings.Builder
	b.WriteString(colorDot(l.Color) + " " + titleStyle.Render(l.Name))
	b.WriteString("\n\n")
	b.WriteString(renderTasks(m.detailTasks(), m.detail, m.inputMode == inputNone, m.now(), "No tasks in this list."))
	if m.inputMode != inputNone {
		b.WriteString("\n")
		b.WriteString(inputLabel(m.inputMode))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	return b.String()
}

func inputLabel(mode inputMode) string {
	switch mode {
	case inputAddTask:
		return "New task: "
	case inputReminder:
		return "Reminder: "
	case inputRename:
		return "Rename: "
	default:
		return ""
	}
}

func (m Model) renderCategory() string {
	c := *m.category
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(categoryColors[c]).Render(glyph(c.Icon())) + " " + titleStyle.Render(c.Title()))
	b.WriteString("\n\n")
	b.WriteString(renderTasks(m.categoryTasks(), m.categoryTab, true, m.now(), "Nothing here."))
	return b.String()
}

func (m Model) renderSheet() string {
	s := m.sheet
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.title()))
	b.WriteString("\n\n")
	b.WriteString(s.name.View())
	b.WriteString("\n\n")
	for i, c := range listPalette {
		dot := lipgloss.NewStyle().Foreground(c).Render("●")
		if i == s.color {
			dot = "[" + dot + "]"
		} else {
			dot = " " + dot + " "
		}
		b.WriteString(dot)
	}
	if s.err != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(colorRed).Render(s.err))
	}
	box := sheetStyle.Render(b.String())
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
	}
	return box
}
