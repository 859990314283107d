package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagRecent      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best runs for a game, frogger by default.

Examples:
  frogger scores
  frogger scores --limit 25
  frogger scores --recent
  frogger scores --clear
  frogger scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	info, err := lookupGame(args)
	if err != nil {
		return err
	}
	gameID, title := info.ID, info.Title

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		return clearScores(os.Stdout, store, gameID, title)
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, gameID, title, width, height)
	}

	heading, query := "High Scores", store.TopRuns
	if flagRecent {
		heading, query = "Recent Runs", store.RecentRuns
	}
	runs, err := query(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'frogger play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-4s  %-6s  %-12s  %s\n", "Rank", "Score", "Home", "Deaths", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-4s  %-6s  %-12s  %s\n", "----", "-----", "----", "------", "------", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-7d  %-4d  %-6d  %-12s  %s\n",
			i+1, r.Score, r.Crossings, r.Deaths, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Homes: %d  Deaths: %d\n",
			stats.HighScore, stats.Runs, stats.TotalCrossings, stats.TotalDeaths)
	}
	return nil
}

// clearScores deletes every run of gameID and reports how many were removed.
func clearScores(w io.Writer, store *storage.Store, gameID, title string) error {
	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}
	if err := store.ClearRuns(gameID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d %s runs.\n", stats.Runs, title)
	return nil
}
