package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagGUI    bool
	flagMute   bool
	flagRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing.

Controls:
  Space/Up/Left click   - Start, flap
  R/Right click         - Restart (after game over)
  P                     - Pause
  Q/Esc                 - Quit

Examples:
  flappy play
  flappy play --gui
  flappy play --record --seed 7
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the session so it can be replayed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(!flagGUI)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	seed := resolveSeed()
	set := assets.Classic(rand.New(rand.NewSource(seed)))
	game, err := flappy.New(cfg, set, flappy.WithSeed(seed), flappy.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("starting", "seed", seed, "theme", set.Theme, "gui", flagGUI)

	queue := core.NewEventQueue()
	sink := newSink(cfg.Audio, queue, logger)
	defer sink.Close()

	var rec *replay.Recorder
	if flagRecord {
		rec = replay.NewRecorder(seed, set.Theme, cfg)
	}

	if flagGUI {
		err = gui.Run(game, gui.Options{Sink: sink, Queue: queue, Recorder: rec, Logger: logger})
	} else {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.Run(game, tui.Options{
			Width: width, Height: height,
			Sink: sink, Queue: queue, Recorder: rec, Logger: logger,
		})
	}
	if err != nil {
		return err
	}

	if rec != nil {
		return saveRun(rec.Recording(), logger)
	}
	return nil
}

// newSink opens the audio device, falling back to silence when audio is
// disabled or the device cannot be opened.
func newSink(cfg config.Audio, queue *core.EventQueue, logger *log.Logger) audio.Sink {
	done := func() { queue.Push(core.EventPriorityFinished) }
	if flagMute || !cfg.Enabled {
		return audio.Silent{OnPriorityDone: done}
	}

	m, err := audio.NewMixer(cfg, done, logger)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return audio.Silent{OnPriorityDone: done}
	}
	return m
}

func saveRun(rec replay.Recording, logger *log.Logger) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(rec)
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", id, "frames", len(rec.Frames))
	fmt.Printf("Saved run #%d (%d frames). Replay it with: flappy replay %d\n", id, len(rec.Frames), id)
	return nil
}
