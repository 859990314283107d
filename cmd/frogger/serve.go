package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
	flagServePreset string
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve [game]",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent game.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.frogger/host_key

Examples:
  frogger serve                           # Listen on :23234 with auto-generated key
  frogger serve --ssh :2222               # Listen on port 2222
  frogger serve --host-key ./my_host_key  # Use specific host key
  frogger serve --preset calm             # Slower lanes for every session

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagServePreset, "preset", "", "Speed preset: classic, calm, rush")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 0, "Maximum concurrent players (0 for no limit)")
}

func runServe(cmd *cobra.Command, args []string) error {
	info, err := lookupGame(args)
	if err != nil {
		return err
	}
	gameID := info.ID

	preset, err := config.ParsePreset(flagServePreset)
	if err != nil {
		return err
	}
	if _, err := config.LoadFrogger(flagServeConfig); err != nil {
		return err
	}
	frogger.SetConfigPath(flagServeConfig)
	frogger.SetPreset(string(preset))

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = gameID
	cfg.Preset = string(preset)
	cfg.TickRate = flagFPS
	cfg.MaxSessions = flagMaxSessions
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("SSH server ready", "address", cfg.Address, "connect", connectHint(cfg.Address))
	return server.ListenAndServe(cmd.Context())
}

// connectHint is the ssh command a local player runs to reach addr.
func connectHint(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh " + addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	if port == "22" {
		return "ssh " + host
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}
