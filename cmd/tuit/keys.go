package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuit/internal/keyboard"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys CHARS",
		Short: "Show the keys needed to type each character",
		Args:  cobra.ExactArgs(1),
		RunE:  runKeysCmd,
	}
}

func runKeysCmd(cmd *cobra.Command, args []string) error {
	layout, err := keyboard.Build(0)
	if err != nil {
		return fmt.Errorf("keyboard layout is unusable: %w", err)
	}
	table := keyboard.DefaultTable()
	for _, line := range describeKeys(layout, table, args[0]) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func describeKeys(layout *keyboard.Layout, table *keyboard.ComboTable, chars string) []string {
	lines := make([]string, 0, len(chars))
	for _, r := range chars {
		req := keyboard.RequiredKeys(table, r)
		keys := req.String()
		if keys == "" {
			keys = "-"
		}
		line := fmt.Sprintf("%q\t%s\t%s", r, req.Kind, keys)
		if !layout.CanType(table, r) {
			line += "\t(not on keyboard)"
		}
		lines = append(lines, strings.TrimRight(line, "\t"))
	}
	return lines
}
