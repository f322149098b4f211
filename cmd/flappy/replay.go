package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Run a recorded session again without a display and print its outcome.
The simulation is deterministic, so the result matches the original session.

Examples:
  flappy replay 3`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return replayRun(store, id, logger)
}

func replayRun(store *storage.Store, id int64, logger *log.Logger) error {
	run, err := store.Run(id)
	if err != nil {
		return err
	}

	res, err := replay.Play(run.Recording, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Run #%d (seed %d, recorded %s)\n", run.ID, run.Seed, run.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("  %-12s %d\n", "Frames", res.Frames)
	fmt.Printf("  %-12s %s\n", "Duration", res.Duration)
	fmt.Printf("  %-12s %d\n", "Deaths", res.Deaths)
	fmt.Printf("  %-12s %d\n", "Best score", res.BestScore)
	fmt.Printf("  %-12s %d\n", "Final score", res.Score)
	fmt.Printf("  %-12s %s / %s\n", "Final state", res.State, res.PlayerState)
	return nil
}
