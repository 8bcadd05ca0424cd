// Package filter derives the summary views shown on the lists screen from a
// snapshot of tasks. Every function is pure and recomputed on each call.
package filter

import (
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"mylists/internal/storage"
)

type Category int

const (
	CategoryToday Category = iota
	CategoryScheduled
	CategoryAll
	CategoryCompleted
)

// Categories lists the summary categories in display order.
func Categories() []Category {
	return []Category{CategoryToday, CategoryScheduled, CategoryAll, CategoryCompleted}
}

func (c Category) Title() string {
	switch c {
	case CategoryToday:
		return "Today"
	case CategoryScheduled:
		return "Scheduled"
	case CategoryAll:
		return "All"
	case CategoryCompleted:
		return "Completed"
	default:
		return ""
	}
}

// Icon returns the symbolic icon identifier for the category.
func (c Category) Icon() string {
	switch c {
	case CategoryToday:
		return "calendar"
	case CategoryScheduled:
		return "calendar.circle.fill"
	case CategoryAll:
		return "tray.circle.fill"
	case CategoryCompleted:
		return "checkmark.circle.fill"
	default:
		return ""
	}
}

func Incomplete(tasks []storage.Task) []storage.Task {
	return keep(tasks, func(t storage.Task) bool { return !t.Completed })
}

// DueToday returns open tasks whose reminder falls on now's calendar day,
// judged in now's location.
func DueToday(tasks []storage.Task, now time.Time) []storage.Task {
	return keep(tasks, func(t storage.Task) bool {
		return t.ReminderDate.Valid && sameDay(t.ReminderDate.Time, now) && !t.Completed
	})
}

func Scheduled(tasks []storage.Task) []storage.Task {
	return keep(tasks, func(t storage.Task) bool { return t.ReminderDate.Valid && !t.Completed })
}

func Completed(tasks []storage.Task) []storage.Task {
	return keep(tasks, func(t storage.Task) bool { return t.Completed })
}

// Search matches open tasks whose title contains query, ignoring case.
// An empty query matches every open task; callers decide whether to show it.
func Search(tasks []storage.Task, query string) []storage.Task {
	q := strings.ToLower(query)
	return keep(tasks, func(t storage.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), q) && !t.Completed
	})
}

func ForCategory(tasks []storage.Task, c Category, now time.Time) []storage.Task {
	switch c {
	case CategoryToday:
		return DueToday(tasks, now)
	case CategoryScheduled:
		return Scheduled(tasks)
	case CategoryCompleted:
		return Completed(tasks)
	default:
		return Incomplete(tasks)
	}
}

type Summary struct {
	Today     int
	Scheduled int
	All       int
	Completed int
}

func (s Summary) Count(c Category) int {
	switch c {
	case CategoryToday:
		return s.Today
	case CategoryScheduled:
		return s.Scheduled
	case CategoryCompleted:
		return s.Completed
	default:
		return s.All
	}
}

func Summarize(tasks []storage.Task, now time.Time) Summary {
	return Summary{
		Today:     len(DueToday(tasks, now)),
		Scheduled: len(Scheduled(tasks)),
		All:       len(Incomplete(tasks)),
		Completed: len(Completed(tasks)),
	}
}

// Suggest returns the open task title closest to query by edit distance,
// for a "did you mean" hint when a search comes back empty. Candidates
// further than half the query length away are ignored.
func Suggest(tasks []storage.Task, query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	limit := (len([]rune(q)) + 1) / 2
	best, bestDist := "", -1
	for _, t := range Incomplete(tasks) {
		d := titleDistance(q, strings.ToLower(t.Title))
		if d > limit {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = t.Title, d
		}
	}
	return best, bestDist >= 0
}

// titleDistance is the smallest edit distance between q and either the whole
// title or any single word in it.
func titleDistance(q, title string) int {
	best := levenshtein.ComputeDistance(q, title)
	for _, w := range strings.Fields(title) {
		if d := levenshtein.ComputeDistance(q, w); d < best {
			best = d
		}
	}
	return best
}

func keep(tasks []storage.Task, pred func(storage.Task) bool) []storage.Task {
	var out []storage.Task
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

func sameDay(t, now time.Time) bool {
	t = t.In(now.Location())
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}
