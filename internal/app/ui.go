package app

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

type uiStyles struct {
	Title     lipgloss.Style
	HelpKey   lipgloss.Style
	HelpText  lipgloss.Style
	Status    lipgloss.Style
	MutedText lipgloss.Style
}

func newStyles() uiStyles {
	return uiStyles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e66f5")),
		HelpKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1e66f5")).Bold(true),
		HelpText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6c6f85")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4c4f69")),
		MutedText: lipgloss.NewStyle().Foreground(lipgloss.Color("#8c8fa1")),
	}
}

// newRowDelegate is the row template: one line per row, label only.
func newRowDelegate() list.DefaultDelegate {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("#1e66f5")).Bold(true)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("#4c4f69"))
	delegate.Styles.DimmedTitle = delegate.Styles.DimmedTitle.Foreground(lipgloss.Color("#9ca0b0"))
	return delegate
}

func initList(delegate list.ItemDelegate) list.Model {
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	// the list binds esc to quit by default
	l.KeyMap.Quit.SetEnabled(false)
	l.SetShowTitle(false)
	l.SetShowPagination(true)
	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c6f85"))
	l.Styles.NoItems = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca0b0"))
	return l
}
