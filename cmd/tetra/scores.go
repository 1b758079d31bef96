package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresCustom bool
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs and overall totals.

Without --difficulty every run is listed; with it only runs of that
preset are. Runs played without a preset are stored as "custom".

Examples:
  tetra scores
  tetra scores --difficulty hard --limit 20
  tetra scores --tui
  tetra scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresCustom, "custom", false, "Only show runs played without a preset")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every saved run")
}

func runScores(cmd *cobra.Command, _ []string) error {
	preset, err := parseDifficulty()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All runs deleted.")
		return nil
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	filter := string(preset)
	if flagScoresCustom {
		filter = tui.CustomDifficulty
	}
	return printScores(cmd, store, filter, flagScoresLimit)
}

// printScores writes the top runs and totals as a table.
func printScores(cmd *cobra.Command, store *storage.Store, filter string, limit int) error {
	out := cmd.OutOrStdout()

	runs, err := store.TopRuns(filter, limit)
	if err != nil {
		return err
	}

	title := "all difficulties"
	if filter != "" {
		title = filter
	}
	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'tetra play' to set the first high score!")
		return nil
	}

	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			strconv.Itoa(r.Lines),
			strconv.Itoa(r.Pieces),
			r.Duration.Round(time.Second).String(),
			r.Difficulty,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Score", "Level", "Lines", "Pieces", "Time", "Difficulty", "Date").
		Rows(rows...)
	fmt.Fprintln(out, t.Render())

	st, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Runs: %d  Lines: %d  Pieces: %d  Played: %s\n",
		st.BestScore, st.Runs, st.Lines, st.Pieces, st.PlayTime.Round(time.Second))
	return nil
}

// validDifficulties is used by shell completion.
func validDifficulties(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(config.Presets))
	for i, p := range config.Presets {
		names[i] = string(p)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
