package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the host key file, generated on first start.
	// Empty means ~/.frogger/host_key.
	HostKeyPath string

	DBPath string

	// GameID is the registered game every session plays.
	GameID string

	// Preset is recorded with every saved run.
	Preset string

	TickRate int

	// MaxSessions caps concurrent players. Zero means no cap.
	MaxSessions int

	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.frogger/scores.db",
		GameID:      "frogger",
		TickRate:    60,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer hosts one independent game per SSH session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	active   atomic.Int64
	sessions atomic.Int64
}

// NewSSHServer validates the config, opens the run ledger and prepares the listener.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if _, err := registry.Lookup(cfg.GameID); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "frogger-ssh",
	})

	// Sessions still play without a ledger
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Middleware runs last to first: the gate sees the session before the game does.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: creating SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".frogger", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: creating host key directory: %w", err)
	}
	return path, nil
}

// runtimeConfig builds the config for a session on a width x height PTY.
func (s *SSHServer) runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.config.TickRate,
	}
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "frogger needs an interactive terminal, connect with ssh -t")
		return nil, nil
	}

	game, err := registry.Create(s.config.GameID)
	if err != nil {
		s.logger.Error("cannot create game", "game", s.config.GameID, "error", err)
		return nil, nil
	}

	n := s.sessions.Add(1)
	model := NewModel(game, s.store, s.runtimeConfig(pty.Window.Width, pty.Window.Height), Options{
		Player: sess.User(),
		Preset: s.config.Preset,
		Logger: s.logger.With("user", sess.User(), "session", n),
	})

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// admit reports whether one more concurrent session fits under MaxSessions.
// On success the caller must call release.
func (s *SSHServer) admit() bool {
	n := s.active.Add(1)
	if s.config.MaxSessions > 0 && n > int64(s.config.MaxSessions) {
		s.active.Add(-1)
		return false
	}
	return true
}

func (s *SSHServer) release() {
	s.active.Add(-1)
}

// sessionMiddleware enforces the session cap and logs each session.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		remote := sess.RemoteAddr().String()
		if !s.admit() {
			s.logger.Warn("session rejected", "user", sess.User(), "remote", remote, "max", s.config.MaxSessions)
			wish.Fatalln(sess, "the pond is full, try again later")
			return
		}
		defer s.release()

		start := time.Now()
		s.logger.Info("session started", "user", sess.User(), "remote", remote, "active", s.active.Load())
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "remote", remote,
			"duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe serves until ctx is done or the process gets SIGINT/SIGTERM,
// then shuts down. A listener failure is returned.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("starting SSH server", "address", s.config.Address, "game", s.config.GameID)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if s.store != nil {
			s.store.Close()
		}
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh server: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down", "active", s.active.Load())
		return s.Shutdown()
	}
}

// Shutdown stops accepting sessions, waits for open ones and closes the ledger.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
