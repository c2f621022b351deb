package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("Invalid ID: %q", args[0])
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		if err := newClient().Delete(ctx, id); err != nil {
			return describe("delete note", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Note deleted: %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
