// frogger is a Frogger-style lane crossing game for the terminal.
//
// Usage:
//
//	frogger list              - List available games
//	frogger play [game]       - Play (defaults to frogger)
//	frogger scores [game]     - Show high scores
//	frogger serve             - Start SSH server for remote play
//	frogger config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.frogger/scores.db)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

const defaultGame = "frogger"

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

// logger reports CLI errors and warnings on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "frogger",
})

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - hop across the road and the river in your terminal",
	Long: `Frogger is a terminal lane crossing game. Hop over a busy road,
ride logs and turtles across the river and fill every home slot.

Available commands:
  list     - Show all available games
  play     - Play a game
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default config

Examples:
  frogger play
  frogger play --preset rush
  frogger serve --ssh :2222
  frogger scores --interactive`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.frogger/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// gameArg returns the game named on the command line, or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}

// lookupGame resolves the game argument against the registry.
func lookupGame(args []string) (registry.GameInfo, error) {
	info, err := registry.Lookup(gameArg(args))
	if err != nil {
		return info, fmt.Errorf("%w, run 'frogger list' to see available games", err)
	}
	return info, nil
}
