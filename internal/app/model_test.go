package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"refresh_list_tui/internal/config"
)

func pressKey(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func applyMsg(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", next)
	}
	return got, cmd
}

// drainCmd runs cmd and feeds its messages back into the model. Spinner
// ticks are dropped so the chain never waits on a timer.
func drainCmd(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	pending := []tea.Cmd{cmd}
	for i := 0; len(pending) > 0; i++ {
		if i > 32 {
			t.Fatal("command chain exceeded max depth")
		}
		next := pending[0]
		pending = pending[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil, spinner.TickMsg:
		case tea.BatchMsg:
			pending = append(pending, msg...)
		default:
			var follow tea.Cmd
			m, follow = applyMsg(t, m, msg)
			pending = append(pending, follow)
		}
	}
	return m
}

func newTestModel(t *testing.T, batches ...[]string) (model, *scriptedGenerator) {
	t.Helper()
	screen, gen := newTestScreen(batches...)
	m := newModel(screen, newStyles())
	m, _ = applyMsg(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	return drainCmd(t, m, m.Init()), gen
}

func TestInitialLoad(t *testing.T) {
	m, gen := newTestModel(t, []string{"a", "b", "c"})

	if gen.calls != 1 {
		t.Fatalf("generator calls = %d, want 1", gen.calls)
	}
	if m.state != stateIdle {
		t.Fatalf("state = %s, want idle", m.state)
	}
	if got := m.screen.RowCount(0); got != 3 {
		t.Fatalf("RowCount(0) = %d, want 3", got)
	}
	if !strings.Contains(m.status, "Loaded 3 items") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestRefreshEndToEnd(t *testing.T) {
	m, _ := newTestModel(t, []string{"a", "b", "c"}, []string{"x", "y"})

	cell, _ := m.screen.CellForRow(0)
	if cell.Text != "a" {
		t.Fatalf("row 0 = %q, want %q", cell.Text, "a")
	}
	cell, _ = m.screen.CellForRow(2)
	if cell.Text != "c" {
		t.Fatalf("row 2 = %q, want %q", cell.Text, "c")
	}

	m, cmd := applyMsg(t, m, pressKey("r"))
	if m.state != stateRefreshing {
		t.Fatalf("state after r = %s, want refreshing", m.state)
	}
	m = drainCmd(t, m, cmd)

	if m.state != stateIdle {
		t.Fatalf("state after refresh = %s, want idle", m.state)
	}
	if got := m.screen.RowCount(0); got != 2 {
		t.Fatalf("RowCount(0) = %d, want 2", got)
	}
	cell, _ = m.screen.CellForRow(0)
	if cell.Text != "x" {
		t.Fatalf("row 0 = %q, want %q", cell.Text, "x")
	}
	if _, ok := m.screen.CellForRow(2); ok {
		t.Fatal("row 2 should be out of range after refresh")
	}
}

func TestRefreshToEmptyList(t *testing.T) {
	m, _ := newTestModel(t, []string{"a", "b"}, []string{})

	m, cmd := applyMsg(t, m, pressKey("r"))
	m = drainCmd(t, m, cmd)

	if m.state != stateIdle {
		t.Fatalf("state = %s, want idle", m.state)
	}
	if got := m.screen.RowCount(0); got != 0 {
		t.Fatalf("RowCount(0) = %d, want 0", got)
	}
	if got := len(m.screen.list.Items()); got != 0 {
		t.Fatalf("widget rows = %d, want 0", got)
	}
	if got := m.screen.SectionCount(); got != 1 {
		t.Fatalf("SectionCount() = %d, want 1", got)
	}
	if _, ok := m.screen.CellForRow(0); ok {
		t.Fatal("CellForRow(0) should be out of range on an empty list")
	}
	if !strings.Contains(m.View(), "Loaded 0 items") {
		t.Fatalf("view does not report the empty load:\n%s", m.View())
	}
}

func TestEscDoesNotQuit(t *testing.T) {
	m, _ := newTestModel(t, []string{"a"})

	_, cmd := applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		return
	}
	if _, ok := cmd().(tea.QuitMsg); ok {
		t.Fatal("esc should not quit")
	}
}

func TestStatusRenderedFromModel(t *testing.T) {
	m, _ := newTestModel(t, []string{"a", "b"})

	if !strings.HasPrefix(m.status, "Loaded 2 items • updated ") {
		t.Fatalf("status = %q", m.status)
	}
	if !strings.Contains(m.View(), m.status) {
		t.Fatalf("view does not show status %q:\n%s", m.status, m.View())
	}
}

func TestRefreshIgnoredWhileRefreshing(t *testing.T) {
	m, _ := newTestModel(t, []string{"a"})

	m, cmd := applyMsg(t, m, pressKey("r"))
	if cmd == nil {
		t.Fatal("expected refresh command")
	}
	_, again := applyMsg(t, m, pressKey("r"))
	if again != nil {
		t.Fatal("second trigger during refresh should be dropped")
	}
}

func TestPullGestureAtTopRefreshes(t *testing.T) {
	m, gen := newTestModel(t, []string{"a", "b"})

	wheelUp := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}
	m, cmd := applyMsg(t, m, wheelUp)
	if m.state != stateRefreshing {
		t.Fatalf("state after pull = %s, want refreshing", m.state)
	}
	m = drainCmd(t, m, cmd)
	if gen.calls != 2 {
		t.Fatalf("generator calls = %d, want 2", gen.calls)
	}
}

func TestWheelUpBelowTopScrolls(t *testing.T) {
	m, _ := newTestModel(t, []string{"a", "b", "c"})

	m, _ = applyMsg(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.screen.list.Index() != 1 {
		t.Fatalf("index after wheel down = %d, want 1", m.screen.list.Index())
	}
	m, cmd := applyMsg(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if cmd != nil || m.state != stateIdle {
		t.Fatal("wheel up below the first row should only scroll")
	}
	if m.screen.list.Index() != 0 {
		t.Fatalf("index after wheel up = %d, want 0", m.screen.list.Index())
	}
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	m, _ := newTestModel(t, []string{"a"})

	_, cmd := applyMsg(t, m, spinner.TickMsg{})
	if cmd != nil {
		t.Fatal("idle model should not keep the spinner ticking")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, []string{"a"})

	_, cmd := applyMsg(t, m, pressKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

func TestViewShowsRowsAndStatus(t *testing.T) {
	m, _ := newTestModel(t, []string{"lantern", "ribbon"})

	view := m.View()
	for _, want := range []string{"Test", "lantern", "ribbon", "Loaded 2 items", "refresh"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestNewProgramModel(t *testing.T) {
	cfg := config.Config{
		List:      config.ListConfig{Title: "Words", Count: 5},
		Generator: config.GeneratorConfig{Kind: "words"},
	}
	tm, err := NewProgramModel(cfg)
	if err != nil {
		t.Fatalf("NewProgramModel: %v", err)
	}
	m := tm.(model)
	m, _ = applyMsg(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	m = drainCmd(t, m, m.Init())
	if got := m.screen.RowCount(0); got != 5 {
		t.Fatalf("RowCount(0) = %d, want 5", got)
	}

	cfg.List.Count = -1
	if _, err := NewProgramModel(cfg); err == nil {
		t.Fatal("negative count should fail construction")
	}
}
