package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"mylists/internal/config"
	"mylists/internal/filter"
)

type keyMap struct {
	Quit      key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Back      key.Binding
	AddList   key.Binding
	EditList  key.Binding
	Mark      key.Binding
	Delete    key.Binding
	Search    key.Binding
	AddTask   key.Binding
	Toggle    key.Binding
	Reminder  key.Binding
	Rename    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	NextColor key.Binding
	PrevColor key.Binding
	Stats     [4]key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	km := keyMap{
		Quit:      key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(k.Quit, "quit")),
		Up:        key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp("↑/"+k.Up, "up")),
		Down:      key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp("↓/"+k.Down, "down")),
		Open:      key.NewBinding(key.WithKeys(k.Open), key.WithHelp(k.Open, "open")),
		Back:      key.NewBinding(key.WithKeys(k.Back), key.WithHelp(k.Back, "back")),
		AddList:   key.NewBinding(key.WithKeys(k.AddList), key.WithHelp(k.AddList, "add list")),
		EditList:  key.NewBinding(key.WithKeys(k.EditList), key.WithHelp(k.EditList, "edit list")),
		Mark:      key.NewBinding(key.WithKeys(k.Mark), key.WithHelp(k.Mark, "mark")),
		Delete:    key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(k.Delete, "delete")),
		Search:    key.NewBinding(key.WithKeys(k.Search), key.WithHelp(k.Search, "search")),
		AddTask:   key.NewBinding(key.WithKeys(k.AddTask), key.WithHelp(k.AddTask, "new task")),
		Toggle:    key.NewBinding(key.WithKeys(k.Toggle), key.WithHelp(helpName(k.Toggle), "toggle")),
		Reminder:  key.NewBinding(key.WithKeys(k.Reminder), key.WithHelp(k.Reminder, "reminder")),
		Rename:    key.NewBinding(key.WithKeys(k.Rename), key.WithHelp(k.Rename, "rename")),
		Confirm:   key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(k.Confirm, "save")),
		Cancel:    key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "cancel")),
		NextColor: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next color")),
		PrevColor: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev color")),
	}
	statKeys := [4]string{k.Today, k.Scheduled, k.All, k.Completed}
	for i, c := range filter.Categories() {
		km.Stats[i] = key.NewBinding(key.WithKeys(statKeys[i]), key.WithHelp(statKeys[i], c.Title()))
	}
	return km
}

func (k keyMap) listsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.AddList, k.EditList, k.Mark, k.Delete, k.Search, k.Stats[0], k.Stats[3], k.Quit}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.AddTask, k.Reminder, k.Rename, k.Delete, k.EditList, k.Back}
}

func (k keyMap) tasksHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back}
}

func (k keyMap) sheetHelp() []key.Binding {
	return []key.Binding{k.NextColor, k.PrevColor, k.Confirm, k.Cancel}
}

func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func helpName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
