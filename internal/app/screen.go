package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// rowReuseKey names the row template every row is rendered with.
const rowReuseKey = "Cell"

type section struct {
	Title string
}

// RenderedRow is a row as produced by its row template.
type RenderedRow struct {
	Index int
	Text  string
	View  string
}

// ListScreen owns the displayed strings and keeps the list widget in step with them.
type ListScreen struct {
	title     string
	items     []string
	sections  []section
	templates map[string]list.ItemDelegate
	list      list.Model
	generator Generator
	count     int
}

// NewListScreen sets the title, registers the row template and wires the
// generator used by refreshes. The screen starts empty; the first load is
// issued by the program once it is running.
func NewListScreen(title string, gen Generator, count int) *ListScreen {
	delegate := newRowDelegate()
	s := &ListScreen{
		title:     title,
		sections:  []section{{Title: title}},
		templates: make(map[string]list.ItemDelegate),
		list:      initList(delegate),
		generator: gen,
		count:     count,
	}
	s.registerTemplate(rowReuseKey, delegate)
	return s
}

func (s *ListScreen) registerTemplate(key string, d list.ItemDelegate) {
	s.templates[key] = d
}

// Title is the display title shown above the list.
func (s *ListScreen) Title() string { return s.title }

// SetItems replaces the items and pushes them into the list widget.
func (s *ListScreen) SetItems(items []string) tea.Cmd {
	s.items = append([]string(nil), items...)
	rows := make([]list.Item, 0, len(s.items))
	for _, text := range s.items {
		rows = append(rows, row{Label: text})
	}
	return s.list.SetItems(rows)
}

// Items returns a copy of the displayed strings in render order.
func (s *ListScreen) Items() []string {
	return append([]string(nil), s.items...)
}

// SectionCount is always 1: the screen has a single section.
func (s *ListScreen) SectionCount() int { return len(s.sections) }

// RowCount returns the number of items. section is assumed to be 0.
func (s *ListScreen) RowCount(section int) int { return len(s.items) }

// CellForRow renders row index through the registered row template. It
// reports false when index is outside [0, RowCount(0)).
func (s *ListScreen) CellForRow(index int) (RenderedRow, bool) {
	if index < 0 || index >= len(s.items) {
		return RenderedRow{}, false
	}
	item := row{Label: s.items[index]}
	var b strings.Builder
	if d, ok := s.templates[rowReuseKey]; ok {
		d.Render(&b, s.list, index, item)
	}
	return RenderedRow{Index: index, Text: item.Label, View: b.String()}, true
}
