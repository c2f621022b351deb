package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"notes-app-be/internal/tui"
	"notes-app-be/internal/ui"
	"notes-app-be/pkg/notesclient"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	defaultServer := os.Getenv("NOTES_SERVER_URL")
	if defaultServer == "" {
		defaultServer = "http://localhost:3000"
	}
	server := flag.String("server", defaultServer, "notes API base URL")
	flag.Parse()

	ctrl := ui.NewController(notesclient.New(*server))
	program := tea.NewProgram(tui.New(context.Background(), ctrl), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "notes-tui: %v\n", err)
		os.Exit(1)
	}
}
