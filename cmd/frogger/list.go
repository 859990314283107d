package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

var flagListConfig string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Describe the game, its board and speed presets",
	Long: `Shows the registered game, the board the active config builds and the
speed presets accepted by 'play --preset' and 'serve --preset'.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListConfig, "config", "", "Describe a custom game config YAML instead")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFrogger(flagListConfig)
	if err != nil {
		return err
	}
	writeGameList(os.Stdout, registry.List(), cfg)
	return nil
}

// writeGameList prints every registered game followed by the board layout
// and presets of cfg.
func writeGameList(w io.Writer, games []registry.GameInfo, cfg config.FroggerConfig) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}
	for _, g := range games {
		fmt.Fprintf(w, "%s (%s)\n", g.Title, g.ID)
	}
	fmt.Fprintln(w)

	wc := cfg.World
	fmt.Fprintf(w, "  Board:   %d columns x %d rows, %d goal slots\n",
		wc.Columns, len(cfg.Lanes), goalSlots(wc.Columns, cfg.Gameplay.GoalEvery))
	fmt.Fprintf(w, "  Lanes:   %s\n", laneSummary(cfg.Lanes))

	presets := make([]string, len(config.Presets))
	for i, p := range config.Presets {
		presets[i] = fmt.Sprintf("%s (%.1fx)", p, config.SpeedScale(p))
	}
	fmt.Fprintf(w, "  Presets: %s\n", strings.Join(presets, ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'frogger play --preset <name>' to play.")
}

// goalSlots counts the home columns: every goalEvery-th column from the first.
func goalSlots(columns, goalEvery int) int {
	if goalEvery <= 0 || columns <= 0 {
		return 0
	}
	return (columns-1)/goalEvery + 1
}

// laneSummary counts lanes per terrain in board order, e.g. "1 goal, 5 river".
func laneSummary(lanes []config.LaneConfig) string {
	var order []string
	counts := make(map[string]int)
	for _, l := range lanes {
		if counts[l.Terrain] == 0 {
			order = append(order, l.Terrain)
		}
		counts[l.Terrain]++
	}
	parts := make([]string, len(order))
	for i, t := range order {
		parts[i] = fmt.Sprintf("%d %s", counts[t], t)
	}
	return strings.Join(parts, ", ")
}
