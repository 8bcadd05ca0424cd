package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultColor is used when a list is saved without a color.
const DefaultColor = "#89b4fa"

func (s *Store) FetchLists() ([]TaskList, error) {
	rows, err := s.db.Query(`SELECT id, name, color, created_at FROM task_lists ORDER BY rowid;`)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	defer rows.Close()

	var lists []TaskList
	for rows.Next() {
		var l TaskList
		var createdStr string
		if err := rows.Scan(&l.ID, &l.Name, &l.Color, &createdStr); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		if created, err := time.Parse(time.RFC3339, createdStr); err == nil {
			l.CreatedAt = created
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lists, nil
}

func (s *Store) AddList(name, color string) (TaskList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return TaskList{}, fmt.Errorf("list name is empty")
	}
	if color == "" {
		color = DefaultColor
	}
	l := TaskList{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	_, err := s.db.Exec(`INSERT INTO task_lists (id, name, color, created_at) VALUES (?, ?, ?, ?);`,
		l.ID, l.Name, l.Color, formatTime(l.CreatedAt))
	if err != nil {
		return TaskList{}, fmt.Errorf("insert list: %w", err)
	}
	s.log.Info("list added", "id", l.ID, "name", l.Name)
	s.notify()
	return l, nil
}

func (s *Store) UpdateList(id, name, color string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("list name is empty")
	}
	if color == "" {
		color = DefaultColor
	}
	res, err := s.db.Exec(`UPDATE task_lists SET name = ?, color = ? WHERE id = ?;`, name, color, id)
	if err != nil {
		return fmt.Errorf("update list: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("update list %s: %w", id, err)
	}
	s.log.Info("list updated", "id", id)
	s.notify()
	return nil
}

// DeleteList removes the list and, through the foreign key, its tasks.
func (s *Store) DeleteList(id string) error {
	res, err := s.db.Exec(`DELETE FROM task_lists WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("delete list %s: %w", id, err)
	}
	s.log.Info("list deleted", "id", id)
	s.notify()
	return nil
}
