package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
	"refresh_list_tui/internal/app"
	"refresh_list_tui/internal/config"
)

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "refresh_list_tui needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not open log file:", err.Error())
	}
	defer closeLog()
	log.Printf("starting: generator=%s count=%d", cfg.Generator.Kind, cfg.List.Count)

	m, err := app.NewProgramModel(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
