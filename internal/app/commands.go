package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

func refreshCmd(gen Generator, count int) tea.Cmd {
	return func() tea.Msg {
		return refreshResult{items: gen.Generate(count)}
	}
}

func (s *ListScreen) refreshCmd() tea.Cmd {
	return refreshCmd(s.generator, s.count)
}
