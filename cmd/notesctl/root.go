package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"notes-app-be/pkg/notesclient"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	serverURL string
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "notesctl",
	Short:        "Command line client for the notes API",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultServer := os.Getenv("NOTES_SERVER_URL")
	if defaultServer == "" {
		defaultServer = "http://localhost:3000"
	}
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", defaultServer, "notes API base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
}

func newClient() *notesclient.Client {
	return notesclient.New(serverURL)
}

func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

// describe turns API errors into the server's own message.
func describe(action string, err error) error {
	var apiErr *notesclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return fmt.Errorf("%s: %s", action, apiErr.Message)
	}
	return fmt.Errorf("%s: %w", action, err)
}
