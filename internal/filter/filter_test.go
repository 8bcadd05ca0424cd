package filter

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mylists/internal/storage"
)

var now = time.Date(2026, 10, 17, 14, 0, 0, 0, time.UTC)

func at(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}

func titles(tasks []storage.Task) []string {
	out := []string{}
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func sample() []storage.Task {
	return []storage.Task{
		{ID: "1", Title: "Buy milk"},
		{ID: "2", Title: "Pay bills", ReminderDate: at(now)},
		{ID: "3", Title: "Old", Completed: true},
	}
}

func TestViewsOnSampleTasks(t *testing.T) {
	tasks := sample()

	require.Equal(t, []string{"Pay bills"}, titles(DueToday(tasks, now)))
	require.Equal(t, []string{"Old"}, titles(Completed(tasks)))
	require.Equal(t, []string{"Buy milk", "Pay bills"}, titles(Incomplete(tasks)))
	require.Equal(t, []string{"Pay bills"}, titles(Scheduled(tasks)))
}

func TestCompletedAndIncompletePartitionTasks(t *testing.T) {
	tasks := []storage.Task{
		{ID: "a", Title: "a"},
		{ID: "b", Title: "b", Completed: true},
		{ID: "c", Title: "c", ReminderDate: at(now.Add(-48 * time.Hour))},
		{ID: "d", Title: "d", Completed: true, ReminderDate: at(now)},
	}
	done := map[string]bool{}
	for _, task := range Completed(tasks) {
		done[task.ID] = true
	}
	open := map[string]bool{}
	for _, task := range Incomplete(tasks) {
		open[task.ID] = true
	}
	for _, task := range tasks {
		require.NotEqual(t, done[task.ID], open[task.ID], "task %s must be in exactly one view", task.ID)
		require.Equal(t, task.Completed, done[task.ID])
	}
}

func TestTasksWithoutReminderNeverScheduled(t *testing.T) {
	tasks := []storage.Task{
		{ID: "1", Title: "open"},
		{ID: "2", Title: "closed", Completed: true},
	}
	require.Empty(t, DueToday(tasks, now))
	require.Empty(t, Scheduled(tasks))
	require.Len(t, Incomplete(tasks), 1)
	require.Len(t, Completed(tasks), 1)
}

func TestDueTodayHonorsCompletion(t *testing.T) {
	tasks := []storage.Task{
		{ID: "1", Title: "open", ReminderDate: at(now)},
		{ID: "2", Title: "closed", Completed: true, ReminderDate: at(now)},
	}
	require.Equal(t, []string{"open"}, titles(DueToday(tasks, now)))
}

func TestDueTodayUsesCalendarDayInNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	local := time.Date(2026, 10, 18, 8, 0, 0, 0, loc) // 2026-10-17 22:00 UTC

	tests := []struct {
		name     string
		reminder time.Time
		want     bool
	}{
		{name: "start of day", reminder: time.Date(2026, 10, 18, 0, 0, 0, 0, loc), want: true},
		{name: "end of day", reminder: time.Date(2026, 10, 18, 23, 59, 59, 0, loc), want: true},
		{name: "stored in utc same local day", reminder: time.Date(2026, 10, 17, 14, 0, 0, 0, time.UTC), want: true},
		{name: "previous local day", reminder: time.Date(2026, 10, 17, 13, 59, 0, 0, time.UTC), want: false},
		{name: "tomorrow", reminder: time.Date(2026, 10, 19, 0, 0, 0, 0, loc), want: false},
		{name: "same day last year", reminder: time.Date(2025, 10, 18, 8, 0, 0, 0, loc), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := []storage.Task{{ID: "x", Title: "x", ReminderDate: at(tt.reminder)}}
			require.Equal(t, tt.want, len(DueToday(tasks, local)) == 1)
		})
	}
}

func TestSearch(t *testing.T) {
	tasks := []storage.Task{
		{ID: "1", Title: "Buy Milk"},
		{ID: "2", Title: "milkshake recipe", Completed: true},
		{ID: "3", Title: "Call mom"},
	}
	require.Equal(t, []string{"Buy Milk"}, titles(Search(tasks, "MILK")))
	require.Equal(t, []string{"Buy Milk"}, titles(Search(tasks, "uy m")))
	require.Empty(t, Search(tasks, "zebra"))
	require.Equal(t, []string{"Buy Milk", "Call mom"}, titles(Search(tasks, "")))
}

func TestForCategoryAndSummary(t *testing.T) {
	tasks := sample()
	for _, c := range Categories() {
		require.Len(t, ForCategory(tasks, c, now), Summarize(tasks, now).Count(c), c.Title())
	}
	require.Equal(t, Summary{Today: 1, Scheduled: 1, All: 2, Completed: 1}, Summarize(tasks, now))
}

func TestCategoryMetadata(t *testing.T) {
	require.Equal(t, []Category{CategoryToday, CategoryScheduled, CategoryAll, CategoryCompleted}, Categories())
	require.Equal(t, "Scheduled", CategoryScheduled.Title())
	require.Equal(t, "tray.circle.fill", CategoryAll.Icon())
	require.Equal(t, "checkmark.circle.fill", CategoryCompleted.Icon())
	require.Equal(t, "calendar", CategoryToday.Icon())
}

func TestSuggest(t *testing.T) {
	tasks := []storage.Task{
		{ID: "1", Title: "Buy milk"},
		{ID: "2", Title: "Pay bills"},
		{ID: "3", Title: "Walk dog", Completed: true},
	}
	got, ok := Suggest(tasks, "bils")
	require.True(t, ok)
	require.Equal(t, "Pay bills", got)

	got, ok = Suggest(tasks, "mlik")
	require.True(t, ok)
	require.Equal(t, "Buy milk", got)

	_, ok = Suggest(tasks, "dgo")
	require.False(t, ok, "completed tasks are never suggested")

	_, ok = Suggest(tasks, "quantum")
	require.False(t, ok)

	_, ok = Suggest(tasks, "  ")
	require.False(t, ok)
}
