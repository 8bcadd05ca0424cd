package ui

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mylists/internal/storage"
)

var reminderLayouts = []string{"2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"}

// detailTasks are the tasks of the selected list, in store order.
func (m Model) detailTasks() []storage.Task {
	if m.selectedList == nil {
		return nil
	}
	var out []storage.Task
	for _, t := range m.tasks {
		if t.ListID == m.selectedList.ID {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputMode != inputNone {
		return m.updateDetailInput(msg)
	}
	tasks := m.detailTasks()
	if cmd, ok := m.paneKey(&m.detail, tasks, msg); ok {
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.selectedList = nil
		m.status = ""
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.AddTask):
		return m.startInput(inputAddTask, "", "Task title")
	case key.Matches(msg, m.keys.Reminder):
		t, ok := m.detail.current(tasks)
		if !ok {
			m.status = "No task selected"
			return m, nil
		}
		value := ""
		if t.ReminderDate.Valid {
			value = t.ReminderDate.Time.In(m.now().Location()).Format(reminderLayouts[0])
		}
		return m.startInput(inputReminder, value, "YYYY-MM-DD [HH:MM], today, tomorrow or empty to clear")
	case key.Matches(msg, m.keys.Rename):
		t, ok := m.detail.current(tasks)
		if !ok {
			m.status = "No task selected"
			return m, nil
		}
		return m.startInput(inputRename, t.Title, "Task title")
	case key.Matches(msg, m.keys.Delete):
		t, ok := m.detail.current(tasks)
		if !ok {
			return m, nil
		}
		m.pendingTask = &t
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", t.Title)
	case key.Matches(msg, m.keys.EditList):
		l := *m.selectedList
		return m.openSheet(&l)
	}
	return m, nil
}

func (m Model) startInput(mode inputMode, value, placeholder string) (tea.Model, tea.Cmd) {
	m.inputMode = mode
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Placeholder = placeholder
	m.status = "Enter to save, Esc to cancel"
	return m, m.input.Focus()
}

func (m Model) updateDetailInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.stopInput()
		m.status = "Cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		return m.submitDetailInput()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitDetailInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	tasks := m.detailTasks()
	switch m.inputMode {
	case inputAddTask:
		if value == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}
		if _, err := m.store.AddTask(m.selectedList.ID, value); err != nil {
			m.log.Error("add task", "err", err)
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		m.detail.cursor = len(tasks)
		m.status = "Added task"
	case inputRename:
		t, ok := m.detail.current(tasks)
		if !ok {
			break
		}
		if value == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}
		if err := m.store.RenameTask(t.ID, value); err != nil {
			m.log.Error("rename task", "id", t.ID, "err", err)
			m.status = fmt.Sprintf("rename failed: %v", err)
			return m, nil
		}
		m.status = "Renamed task"
	case inputReminder:
		t, ok := m.detail.current(tasks)
		if !ok {
			break
		}
		reminder, err := parseReminder(value, m.now())
		if err != nil {
			m.status = fmt.Sprintf("reminder invalid: %v", err)
			return m, nil
		}
		if err := m.store.SetReminder(t.ID, reminder); err != nil {
			m.log.Error("set reminder", "id", t.ID, "err", err)
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		if reminder.Valid {
			m.status = "Reminder set"
		} else {
			m.status = "Reminder cleared"
		}
	}
	m.stopInput()
	return m, nil
}

func (m *Model) stopInput() {
	m.inputMode = inputNone
	m.input.SetValue("")
	m.input.Blur()
}

func (m Model) updateTaskDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", "esc":
		m.status = "Delete cancelled"
	case "y", "Y":
		if err := m.store.DeleteTask(m.pendingTask.ID); err != nil {
			m.log.Error("delete task", "id", m.pendingTask.ID, "err", err)
			m.status = fmt.Sprintf("delete failed: %v", err)
		} else {
			m.status = "Deleted task"
		}
	default:
		return m, nil
	}
	m.pendingTask = nil
	return m, nil
}

// parseReminder accepts a date, a date and time, "today" or "tomorrow", all
// in now's location. Date-only values remind at 09:00. Empty clears.
func parseReminder(v string, now time.Time) (sql.NullTime, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return sql.NullTime{}, nil
	}
	loc := now.Location()
	y, mo, d := now.Date()
	switch strings.ToLower(v) {
	case "today":
		return sql.NullTime{Time: time.Date(y, mo, d, 9, 0, 0, 0, loc), Valid: true}, nil
	case "tomorrow":
		return sql.NullTime{Time: time.Date(y, mo, d+1, 9, 0, 0, 0, loc), Valid: true}, nil
	}
	for _, layout := range reminderLayouts {
		t, err := time.ParseInLocation(layout, v, loc)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			t = t.Add(9 * time.Hour)
		}
		return sql.NullTime{Time: t, Valid: true}, nil
	}
	return sql.NullTime{}, fmt.Errorf("unrecognised date %q", v)
}
