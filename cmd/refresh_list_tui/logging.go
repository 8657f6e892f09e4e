package main

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// setupLogging points the standard logger at path. With no path, or when the
// file cannot be opened, log output is discarded so nothing reaches the
// terminal the program is drawing on.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "refresh_list_tui")
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}, err
	}
	return func() { _ = f.Close() }, nil
}
