package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"mylists/internal/storage"
)

// taskPane is the cursor state of a rendered task sequence. The sequence
// itself is recomputed from the snapshot on every read.
type taskPane struct {
	cursor int
}

func (p *taskPane) clamp(n int) {
	p.cursor = clampCursor(p.cursor, n)
}

func (p taskPane) current(tasks []storage.Task) (storage.Task, bool) {
	if len(tasks) == 0 {
		return storage.Task{}, false
	}
	return tasks[clampCursor(p.cursor, len(tasks))], true
}

// paneKey handles the navigation and completion keys every task pane shares.
func (m *Model) paneKey(p *taskPane, tasks []storage.Task, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Down):
		p.cursor = clampCursor(p.cursor+1, len(tasks))
		return nil, true
	case key.Matches(msg, m.keys.Up):
		p.cursor = clampCursor(p.cursor-1, len(tasks))
		return nil, true
	case key.Matches(msg, m.keys.Toggle):
		t, ok := p.current(tasks)
		if !ok {
			return nil, true
		}
		next, cmd := m.toggleTask(t)
		*m = next
		return cmd, true
	}
	return nil, false
}

func renderTasks(tasks []storage.Task, p taskPane, focused bool, now time.Time, empty string) string {
	if len(tasks) == 0 {
		return faintStyle.Render(empty) + "\n"
	}
	cur := clampCursor(p.cursor, len(tasks))
	var b strings.Builder
	for i, t := range tasks {
		cursor := " "
		if focused && i == cur {
			cursor = cursorStyle.Render(">")
		}
		checkbox := "[ ]"
		title := t.Title
		if t.Completed {
			checkbox = "[x]"
			title = doneStyle.Render(title)
		}
		body := fmt.Sprintf("%s %s %s", cursor, checkbox, title)
		if t.ReminderDate.Valid {
			body += "  " + reminderStyle.Render(formatReminder(t.ReminderDate.Time, now))
		}
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}

func formatReminder(t, now time.Time) string {
	local := t.In(now.Location())
	return fmt.Sprintf("%s %s · %s", glyph("calendar"), local.Format("Jan 2 15:04"), humanize.RelTime(t, now, "ago", "from now"))
}
