package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext(cmd)
		defer cancel()

		notes, err := newClient().List(ctx)
		if err != nil {
			return describe("list notes", err)
		}

		out := cmd.OutOrStdout()
		if listJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(notes)
		}

		if len(notes) == 0 {
			fmt.Fprintln(out, "No notes yet. Add one!")
			return nil
		}

		idColor := color.New(color.FgCyan)
		titleColor := color.New(color.Bold)
		for _, note := range notes {
			idColor.Fprintf(out, "%5d  ", note.Id)
			titleColor.Fprint(out, note.Title)
			fmt.Fprintf(out, "  %s\n", note.Content)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
