package storage

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenAppliesMigrations(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"task_lists", "tasks", "schema_migrations"} {
		var count int
		err := s.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count, "table %s missing", table)
	}
}

func TestOpenTwiceIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "again.db")
	s, err := Open(path, nil)
	require.NoError(t, err)
	_, err = s.AddList("Groceries", "")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, nil)
	require.NoError(t, err)
	defer s.Close()
	lists, err := s.FetchLists()
	require.NoError(t, err)
	require.Len(t, lists, 1)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("", nil)
	require.Error(t, err)
}

func TestListsCRUD(t *testing.T) {
	s := openTestStore(t)

	a, err := s.AddList("Work", "#f38ba8")
	require.NoError(t, err)
	b, err := s.AddList("  Home  ", "")
	require.NoError(t, err)
	require.Equal(t, "Home", b.Name)
	require.Equal(t, DefaultColor, b.Color)

	lists, err := s.FetchLists()
	require.NoError(t, err)
	require.Len(t, lists, 2)
	require.Equal(t, a.ID, lists[0].ID)
	require.Equal(t, b.ID, lists[1].ID)

	require.NoError(t, s.UpdateList(a.ID, "Office", "#a6e3a1"))
	lists, err = s.FetchLists()
	require.NoError(t, err)
	require.Equal(t, "Office", lists[0].Name)
	require.Equal(t, "#a6e3a1", lists[0].Color)

	require.NoError(t, s.DeleteList(a.ID))
	lists, err = s.FetchLists()
	require.NoError(t, err)
	require.Len(t, lists, 1)
	require.Equal(t, b.ID, lists[0].ID)
}

func TestAddListRejectsBlankName(t *testing.T) {
	s := openTestStore(t)
	_, err := s.AddList("   ", "")
	require.Error(t, err)
}

func TestUpdateMissingListIsNotFound(t *testing.T) {
	s := openTestStore(t)
	err := s.UpdateList("nope", "Name", "")
	require.True(t, errors.Is(err, ErrNotFound))
	require.ErrorIs(t, s.DeleteList("nope"), ErrNotFound)
}

func TestDeleteListCascadesTasks(t *testing.T) {
	s := openTestStore(t)
	l, err := s.AddList("Errands", "")
	require.NoError(t, err)
	keep, err := s.AddList("Keep", "")
	require.NoError(t, err)
	_, err = s.AddTask(l.ID, "Post office")
	require.NoError(t, err)
	_, err = s.AddTask(keep.ID, "Stay")
	require.NoError(t, err)

	require.NoError(t, s.DeleteList(l.ID))

	tasks, err := s.FetchTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Stay", tasks[0].Title)
}

func TestTaskMutations(t *testing.T) {
	s := openTestStore(t)
	l, err := s.AddList("Inbox", "")
	require.NoError(t, err)
	task, err := s.AddTask(l.ID, "Buy milk")
	require.NoError(t, err)

	require.NoError(t, s.SetCompleted(task.ID, true))
	reminder := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	require.NoError(t, s.SetReminder(task.ID, sql.NullTime{Time: reminder, Valid: true}))
	require.NoError(t, s.RenameTask(task.ID, "Buy oat milk"))

	tasks, err := s.FetchTasksForList(l.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	got := tasks[0]
	require.True(t, got.Completed)
	require.True(t, got.ReminderDate.Valid)
	require.True(t, reminder.Equal(got.ReminderDate.Time))
	require.Equal(t, "Buy oat milk", got.Title)

	require.NoError(t, s.SetReminder(task.ID, sql.NullTime{}))
	tasks, err = s.FetchTasks()
	require.NoError(t, err)
	require.False(t, tasks[0].ReminderDate.Valid)

	require.NoError(t, s.DeleteTask(task.ID))
	tasks, err = s.FetchTasks()
	require.NoError(t, err)
	require.Empty(t, tasks)
	require.ErrorIs(t, s.DeleteTask(task.ID), ErrNotFound)
}

func TestAddTaskRequiresExistingList(t *testing.T) {
	s := openTestStore(t)
	_, err := s.AddTask("missing", "Orphan")
	require.Error(t, err)
}

func TestSubscribeReceivesCoalescedChanges(t *testing.T) {
	s := openTestStore(t)
	ch, cancel := s.Subscribe()

	_, err := s.AddList("One", "")
	require.NoError(t, err)
	_, err = s.AddList("Two", "")
	require.NoError(t, err)

	select {
	case <-ch:
	default:
		t.Fatal("expected a change notification")
	}
	select {
	case <-ch:
		t.Fatal("notifications should coalesce")
	default:
	}

	cancel()
	_, ok := <-ch
	require.False(t, ok, "channel should be closed after cancel")
}

func TestFailedMutationDoesNotNotify(t *testing.T) {
	s := openTestStore(t)
	ch, cancel := s.Subscribe()
	defer cancel()

	require.Error(t, s.SetCompleted("missing", true))
	select {
	case <-ch:
		t.Fatal("unexpected notification")
	default:
	}
}

func TestSqliteDSN(t *testing.T) {
	require.Equal(t, "file:already.db", sqliteDSN("file:already.db"))
	dsn := sqliteDSN(filepath.Join(t.TempDir(), "x.db"))
	require.Contains(t, dsn, "mode=rwc")
	require.Contains(t, dsn, "foreign_keys")
}
