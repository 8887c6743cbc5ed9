package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/logging"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2222").
	Address string

	// HostKeyPath is the path to the host key file. Wish generates the key
	// on first start if the file does not exist.
	HostKeyPath string

	// IdleTimeout closes sessions without traffic. Zero disables it.
	IdleTimeout time.Duration

	// Session is the template every SSH session's game starts from.
	// Runtime screen size and Player are filled in per session.
	Session Options

	// Bell rings the remote terminal bell on collisions.
	Bell bool
}

// SSHServer serves one independent game per SSH session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = logging.NewWriter(os.Stderr, log.InfoLevel)
	}

	srv := &SSHServer{
		config: cfg,
		logger: logging.Category(logger, logging.CategorySSH),
	}

	if cfg.HostKeyPath == "" {
		return nil, errors.New("tui: host key path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sessionOptions derives the game options for one SSH session.
func (s *SSHServer) sessionOptions(user string, width, height int) Options {
	opts := s.config.Session
	opts.Runtime = core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.config.Session.Runtime.TickRate,
	}
	opts.Frontend = "ssh"
	opts.Player = user
	opts.Audio = nil
	// Screenshots and the clipboard would act on the server, not the player.
	opts.ScreenshotDir = ""
	opts.Clipboard = nil
	return opts
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		wish.Fatalln(sess, "pong needs an interactive terminal (ssh -t)")
		return nil, nil
	}

	opts := s.sessionOptions(sess.User(), pty.Window.Width, pty.Window.Height)
	opts.Lipgloss = bubbletea.MakeRenderer(sess)

	if s.config.Bell {
		bell := audio.NewBell(sess.Stderr(), logging.Category(s.logger, logging.CategoryAudio))
		opts.Audio = bell
		go func() {
			<-sess.Context().Done()
			bell.Close()
		}()
	}

	return NewModel(opts), []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// Serve runs the SSH server until ctx is cancelled, then shuts it down.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("tui: ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
