package main

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	addTitle   string
	addContent string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(addTitle) == "" || strings.TrimSpace(addContent) == "" {
			return errors.New("Title and content are required")
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		note, err := newClient().Create(ctx, addTitle, addContent)
		if err != nil {
			return describe("add note", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Note created: %d\n", note.Id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "note title")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "note content")
}
