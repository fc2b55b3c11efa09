package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresBrowse bool
	flagScoresClear  bool
	flagScoresStats  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs recorded in the run history.

Examples:
  runner scores
  runner scores --limit 20
  runner scores --player alice
  runner scores --browse
  runner scores --stats
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole run history")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show totals over all runs")
}

func runScores(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("error clearing runs: %w", err)
		}
		fmt.Fprintln(out, "Run history cleared.")
		return nil
	}

	if flagScoresStats {
		return printStats(out, store)
	}

	if flagScoresBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var runs []storage.Run
	if flagScoresPlayer != "" {
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Fprintln(out, "High Scores - Runner")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'runner play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-5s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Speed", "Grav", "Obst", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-5s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "----", "----", "----")

	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-12s  %-6d  %-5d  %-5d  %-5d  %s\n",
			i+1, r.Player, r.Score, r.Speed, r.Gravity, r.IntervalMs,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	if best, err := store.Best(); err == nil {
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}

// printStats writes the totals over the whole run history.
func printStats(out io.Writer, store *storage.Store) error {
	stats, err := store.GetStats()
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}

	fmt.Fprintln(out, "Run Statistics - Runner")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Runs:        %d\n", stats.Runs)
	fmt.Fprintf(out, "  High score:  %d\n", stats.HighScore)
	fmt.Fprintf(out, "  Average:     %.0f\n", stats.AvgScore)
	fmt.Fprintf(out, "  Time played: %s\n", (time.Duration(stats.TotalMs) * time.Millisecond).Round(time.Second))
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(out, "  Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
