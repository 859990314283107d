package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without an argument the frogger game starts.

Controls:
  Arrows/WASD/HJKL  - Hop
  P/Esc             - Pause
  R                 - Restart (after the board is cleared)
  Ctrl+S            - Save a text screenshot
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Speed presets (fixed for the whole game):
  classic - configured lane speeds
  calm    - 60% speed
  rush    - 160% speed

Examples:
  frogger play
  frogger play --preset calm
  frogger play --config ./my-frogger.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Speed preset: classic, calm, rush")
}

func runPlay(cmd *cobra.Command, args []string) error {
	info, err := lookupGame(args)
	if err != nil {
		return err
	}
	gameID := info.ID

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}

	// Surface config errors before the alt screen hides them
	if _, err := config.LoadFrogger(flagConfig); err != nil {
		return err
	}
	frogger.SetConfigPath(flagConfig)
	frogger.SetPreset(string(preset))

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// The game still works without storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, tui.Options{
		Player: playerName(),
		Preset: string(preset),
	})

	if store != nil {
		store.Close()
	}
	return runErr
}

// playerName returns the local user name recorded with saved runs.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
