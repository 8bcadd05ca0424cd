package ui

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mylists/internal/config"
	"mylists/internal/filter"
	"mylists/internal/storage"
)

// Store is the persistence collaborator the screens read from and write to.
type Store interface {
	FetchLists() ([]storage.TaskList, error)
	FetchTasks() ([]storage.Task, error)
	AddList(name, color string) (storage.TaskList, error)
	UpdateList(id, name, color string) error
	DeleteList(id string) error
	AddTask(listID, title string) (storage.Task, error)
	SetCompleted(id string, completed bool) error
	SetReminder(id string, reminder sql.NullTime) error
	RenameTask(id, title string) error
	DeleteTask(id string) error
	Subscribe() (<-chan struct{}, func())
}

type inputMode int

const (
	inputNone inputMode = iota
	inputAddTask
	inputReminder
	inputRename
)

// storeChangedMsg is delivered whenever the store commits a change.
type storeChangedMsg struct{}

type Model struct {
	store   Store
	cfg     config.Config
	keys    keyMap
	help    help.Model
	log     *slog.Logger
	now     func() time.Time
	changes <-chan struct{}

	// latest snapshot from the store
	lists []storage.TaskList
	tasks []storage.Task

	cursor     int
	marked     map[int]bool
	confirmDel bool
	pendingDel []int

	search    textinput.Model
	searching bool
	results   taskPane

	selectedList *storage.TaskList
	category     *filter.Category
	sheet        *listSheet

	detail      taskPane
	categoryTab taskPane
	input       textinput.Model
	inputMode   inputMode
	pendingTask *storage.Task

	status string
	width  int
}

func Run(store *storage.Store, cfg config.Config, logger *slog.Logger) error {
	changes, cancel := store.Subscribe()
	defer cancel()

	m := newModel(store, cfg, logger, changes)
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func newModel(store Store, cfg config.Config, logger *slog.Logger, changes <-chan struct{}) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	search := textinput.New()
	search.Placeholder = "Search"
	search.Prompt = "/ "
	search.CharLimit = 128
	search.Width = 40

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		store:   store,
		cfg:     cfg,
		keys:    newKeyMap(cfg.Keys),
		help:    help.New(),
		log:     logger,
		now:     time.Now,
		changes: changes,
		marked:  map[int]bool{},
		search:  search,
		input:   ti,
		status:  fmt.Sprintf("Press '%s' to add a list, '%s' to search.", cfg.Keys.AddList, cfg.Keys.Search),
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.watch()
}

// watch waits for the next store change notification.
func (m Model) watch() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeChangedMsg:
		m.reload()
		return m, m.watch()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.search.Width = max(msg.Width-10, 10)
		m.input.Width = max(msg.Width-10, 10)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.sheet != nil:
			return m.updateSheet(msg)
		case m.pendingTask != nil:
			return m.updateTaskDeleteConfirm(msg.String())
		case m.confirmDel:
			return m.updateDeleteConfirm(msg.String())
		case m.selectedList != nil:
			return m.updateDetail(msg)
		case m.category != nil:
			return m.updateCategory(msg)
		default:
			return m.updateLists(msg)
		}
	}
	return m, nil
}

// reload replaces the snapshot with the store's current state and repairs
// any selection that no longer points at a live list.
func (m *Model) reload() {
	lists, err := m.store.FetchLists()
	if err != nil {
		m.log.Error("reload lists", "err", err)
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	tasks, err := m.store.FetchTasks()
	if err != nil {
		m.log.Error("reload tasks", "err", err)
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	m.lists = lists
	m.tasks = tasks

	if m.selectedList != nil {
		m.selectedList = m.findList(m.selectedList.ID)
		if m.selectedList == nil {
			m.status = "List was deleted"
		}
	}
	for i := range m.marked {
		if i >= len(m.lists) {
			delete(m.marked, i)
		}
	}
	m.cursor = clampCursor(m.cursor, len(m.lists)+1)
}

func (m Model) findList(id string) *storage.TaskList {
	for i := range m.lists {
		if m.lists[i].ID == id {
			l := m.lists[i]
			return &l
		}
	}
	return nil
}

func (m Model) openTaskCount(listID string) int {
	n := 0
	for _, t := range m.tasks {
		if t.ListID == listID && !t.Completed {
			n++
		}
	}
	return n
}

func (m Model) toggleTask(t storage.Task) (Model, tea.Cmd) {
	if err := m.store.SetCompleted(t.ID, !t.Completed); err != nil {
		m.log.Error("toggle task", "id", t.ID, "err", err)
		m.status = fmt.Sprintf("toggle failed: %v", err)
		return m, nil
	}
	if t.Completed {
		m.status = fmt.Sprintf("Reopened \"%s\"", t.Title)
	} else {
		m.status = fmt.Sprintf("Completed \"%s\"", t.Title)
	}
	return m, nil
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
