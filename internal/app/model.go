package app

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	screen      *ListScreen
	state       refreshState
	status      string
	lastUpdated time.Time
	width       int
	height      int
	spinner     spinner.Model
	keys        keyMap
	styles      uiStyles
}

func newModel(screen *ListScreen, styles uiStyles) model {
	return model{
		screen:  screen,
		state:   stateRefreshing,
		status:  "Loading…",
		spinner: spinner.New(spinner.WithSpinner(spinner.Line)),
		keys:    newKeyMap(),
		styles:  styles,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.screen.refreshCmd(), m.spinner.Tick)
}

// startRefresh moves Idle -> Refreshing. A trigger while a refresh is
// outstanding is dropped.
func (m model) startRefresh() (model, tea.Cmd) {
	if m.state == stateRefreshing {
		return m, nil
	}
	m.state = stateRefreshing
	m.status = "Refreshing..."
	return m, tea.Batch(m.screen.refreshCmd(), m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.list.SetSize(msg.Width-2, msg.Height-4)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m.startRefresh()
		case key.Matches(msg, m.keys.Down):
			m.screen.list.CursorDown()
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.screen.list.CursorUp()
			return m, nil
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			// pulling past the first row
			if m.screen.list.Index() == 0 {
				return m.startRefresh()
			}
			m.screen.list.CursorUp()
		case tea.MouseButtonWheelDown:
			m.screen.list.CursorDown()
		}
		return m, nil
	case refreshResult:
		cmd := m.screen.SetItems(msg.items)
		m.screen.list.ResetSelected()
		m.state = stateIdle
		m.lastUpdated = time.Now()
		m.status = fmt.Sprintf("Loaded %d items • updated %s", m.screen.RowCount(0), m.lastUpdated.Format("15:04:05"))
		log.Printf("refresh: %d items", len(msg.items))
		return m, cmd
	case spinner.TickMsg:
		if m.state != stateRefreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.screen.list, cmd = m.screen.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return ""
	}

	title := m.styles.Title.Render(m.screen.Title())

	body := m.screen.list.View()
	if m.state == stateRefreshing && m.screen.RowCount(0) == 0 {
		body = fmt.Sprintf("%s %s", m.spinner.View(), m.styles.MutedText.Render("Loading list..."))
	}

	hotkeyStyle := m.styles.HelpKey
	helpTextStyle := m.styles.HelpText
	help := fmt.Sprintf(
		"%s %s  %s %s  %s %s",
		hotkeyStyle.Render("↑/↓ j/k"), helpTextStyle.Render("navigate"),
		hotkeyStyle.Render("r"), helpTextStyle.Render("refresh"),
		hotkeyStyle.Render("q"), helpTextStyle.Render("quit"),
	)

	status := m.styles.Status.Render(m.status)
	if m.state == stateRefreshing {
		status = fmt.Sprintf("%s %s", m.spinner.View(), status)
	}
	footer := fmt.Sprintf("%s\n%s", help, status)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		body,
		footer,
	)
}
