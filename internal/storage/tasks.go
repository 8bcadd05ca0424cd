package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const taskColumns = `id, list_id, title, completed, reminder_at, created_at`

// FetchTasks returns every task across all lists in insertion order.
func (s *Store) FetchTasks() ([]Task, error) {
	return s.queryTasks(`SELECT ` + taskColumns + ` FROM tasks ORDER BY rowid;`)
}

func (s *Store) FetchTasksForList(listID string) ([]Task, error) {
	return s.queryTasks(`SELECT `+taskColumns+` FROM tasks WHERE list_id = ? ORDER BY rowid;`, listID)
}

func (s *Store) queryTasks(query string, args ...any) ([]Task, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		var completed int
		var reminderStr sql.NullString
		var createdStr string

		if err := rows.Scan(&t.ID, &t.ListID, &t.Title, &completed, &reminderStr, &createdStr); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Completed = completed == 1
		t.ReminderDate = parseNullTime(reminderStr)
		if created, err := time.Parse(time.RFC3339, createdStr); err == nil {
			t.CreatedAt = created
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) AddTask(listID, title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, fmt.Errorf("task title is empty")
	}
	t := Task{
		ID:        uuid.NewString(),
		ListID:    listID,
		Title:     title,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	_, err := s.db.Exec(`INSERT INTO tasks (id, list_id, title, completed, created_at) VALUES (?, ?, ?, 0, ?);`,
		t.ID, t.ListID, t.Title, formatTime(t.CreatedAt))
	if err != nil {
		return Task{}, fmt.Errorf("insert task: %w", err)
	}
	s.log.Info("task added", "id", t.ID, "list", listID)
	s.notify()
	return t, nil
}

func (s *Store) SetCompleted(id string, completed bool) error {
	res, err := s.db.Exec(`UPDATE tasks SET completed = ? WHERE id = ?;`, boolToInt(completed), id)
	if err != nil {
		return fmt.Errorf("set completed: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("set completed %s: %w", id, err)
	}
	s.log.Debug("task completion changed", "id", id, "completed", completed)
	s.notify()
	return nil
}

// SetReminder stores the reminder time, or clears it when reminder is invalid.
func (s *Store) SetReminder(id string, reminder sql.NullTime) error {
	val := sql.NullString{}
	if reminder.Valid {
		val = sql.NullString{String: formatTime(reminder.Time), Valid: true}
	}
	res, err := s.db.Exec(`UPDATE tasks SET reminder_at = ? WHERE id = ?;`, val, id)
	if err != nil {
		return fmt.Errorf("set reminder: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("set reminder %s: %w", id, err)
	}
	s.log.Debug("task reminder changed", "id", id, "set", reminder.Valid)
	s.notify()
	return nil
}

func (s *Store) RenameTask(id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("task title is empty")
	}
	res, err := s.db.Exec(`UPDATE tasks SET title = ? WHERE id = ?;`, title, id)
	if err != nil {
		return fmt.Errorf("rename task: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("rename task %s: %w", id, err)
	}
	s.notify()
	return nil
}

func (s *Store) DeleteTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	s.log.Info("task deleted", "id", id)
	s.notify()
	return nil
}
