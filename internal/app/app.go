package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"refresh_list_tui/internal/config"
)

// NewProgramModel constructs the Bubble Tea model for the app.
func NewProgramModel(cfg config.Config) (tea.Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	gen, err := NewGenerator(cfg.Generator)
	if err != nil {
		return nil, err
	}
	screen := NewListScreen(cfg.List.Title, gen, cfg.List.Count)
	return newModel(screen, newStyles()), nil
}
