// runner-gui plays the runner in a window.
//
// Usage:
//
//	runner-gui [--difficulty easy] [--scale 1.5] [--mute]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/platform/gui"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDBPath     string
	flagPlayer     string
	flagScale      float64
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner-gui",
	Short: "Play the runner in a window",
	Long: `Open a window and play the runner.

Controls:
  Space / click  - Jump
  Up/Down        - Move between buttons
  Left/Right     - Change a setting
  Enter / click  - Press a button
  P/Esc          - Pause / resume
  R              - Restart (after game over)
  B              - Back to menu (when paused)
  M              - Mute
  Q              - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagDBPath, "db", "~/.runner/runs.db", "Path to run history database")
	f.StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name stored with each run")
	f.Float64Var(&flagScale, "scale", 1, "Window size relative to the world")
	f.BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-gui",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	opts := []runner.Option{runner.WithSeed(flagSeed)}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
	} else {
		defer store.Close()
		opts = append(opts, runner.OnRunEnd(func(r runner.RunResult) {
			if _, err := store.SaveRun(storage.RunFromResult(flagPlayer, r)); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		}))
	}

	cues := audio.New(cfg.Audio)
	if err := cues.Init(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	defer cues.Close()
	cues.SetMuted(flagMute)

	game := gui.New(gui.Options{
		Config:     cfg,
		Cues:       cues,
		Controller: opts,
		Logger:     logger,
		Scale:      flagScale,
	})
	if err := gui.Run(game); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
