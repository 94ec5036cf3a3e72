package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuit/internal/store"
	"github.com/verte-zerg/tuit/internal/text"
)

func newLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage saved practice texts",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME FILE",
		Short: "Save a text file under NAME",
		Args:  cobra.ExactArgs(2),
		RunE:  runLibraryAdd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved texts",
		Args:  cobra.NoArgs,
		RunE:  runLibraryList,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show NAME",
		Short: "Print a saved text",
		Args:  cobra.ExactArgs(1),
		RunE:  runLibraryShow,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a saved text",
		Args:  cobra.ExactArgs(1),
		RunE:  runLibraryRemove,
	})
	return cmd
}

func runLibraryAdd(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	body := text.Normalize(strings.TrimSpace(string(data)))
	if body == "" {
		return fmt.Errorf("%s is empty", path)
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	if err := st.PutText(cmd.Context(), name, body, time.Now()); err != nil {
		return fmt.Errorf("failed to save text: %w", err)
	}
	logErrf("Saved %q (%d words)\n", name, len(text.Words(body)))
	return nil
}

func runLibraryList(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	entries, err := st.ListTexts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list texts: %w", err)
	}
	if len(entries) == 0 {
		logErrln("Library is empty. Add a text with: tuit library add NAME FILE")
		return nil
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d words\t%s\n", e.Name, len(text.Words(e.Body)), e.AddedAt.Local().Format("2006-01-02")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runLibraryShow(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	entry, err := st.GetText(cmd.Context(), args[0])
	if err != nil {
		return libraryError(args[0], err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), entry.Body); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runLibraryRemove(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	if err := st.DeleteText(cmd.Context(), args[0]); err != nil {
		return libraryError(args[0], err)
	}
	logErrf("Removed %q\n", args[0])
	return nil
}

func libraryError(name string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no text named %q in the library", name)
	}
	return fmt.Errorf("library error: %w", err)
}
