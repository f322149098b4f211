package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded runs",
	Long: `List the most recent recorded runs. In a terminal this opens an
interactive browser: Enter replays the selected run, d deletes it.

Examples:
  flappy runs
  flappy runs --plain --limit 5
  flappy runs delete 3`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain list instead of the browser")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of runs to show")
	runsCmd.AddCommand(runsDeleteCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	interactive := !flagPlain && term.IsTerminal(int(os.Stdout.Fd()))

	logger, closeLog, err := newLogger(interactive)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if !interactive {
		return printRuns(store)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	id, err := tui.RunRuns(store, flagLimit, width, height)
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}
	return replayRun(store, id, logger)
}

func printRuns(store *storage.Store) error {
	runs, err := store.Runs(flagLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play with 'flappy play --record' to keep one.")
		return nil
	}

	fmt.Printf("  %-6s  %-20s  %-8s  %-10s  %s\n", "ID", "Seed", "Frames", "Length", "Date")
	fmt.Printf("  %-6s  %-20s  %-8s  %-10s  %s\n", "--", "----", "------", "------", "----")
	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-6s  %-20s  %-8s  %-10s  %s\n", row[0], row[1], row[2], row[3], row[4])
	}
	return nil
}

func runRunsDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteRun(id); err != nil {
		return err
	}
	fmt.Printf("Deleted run #%d\n", id)
	return nil
}
