package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pong SSH server",
	Long: `Start an SSH server that gives every connection its own match.

Matches from all users go to the server's journal, labelled with the
SSH user name. The host key is generated on first start.

Examples:
  pong serve                            # Listen on :2222
  pong serve --ssh :23234               # Listen on port 23234
  pong serve --host-key ./pong_host_key # Use specific host key
  pong serve --idle-timeout 300         # Disconnect after 5 idle minutes

Users can connect with:
  ssh -t localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in seconds (0 disables)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		e.cfg.Server.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		e.cfg.Server.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		e.cfg.Server.IdleTimeoutSec = flagIdleTimeout
	}

	// The server has no game on its own terminal, so it also logs to stderr.
	level, err := logging.ParseVerbosity(e.cfg.Log.Level)
	if err != nil {
		return e.failed(err)
	}
	logger := logging.NewWriter(os.Stderr, level)

	session := tui.Options{
		Runtime:    core.RuntimeConfig{TickRate: e.cfg.Display.TickRate},
		Theme:      tui.ThemeFromConfig(e.cfg.Display),
		HoldWindow: e.cfg.Input.HoldWindow(),
		Logger:     logger,
	}
	if store := e.openStore(); store != nil {
		defer store.Close()
		session.Journal = store
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     e.cfg.Server.Address,
		HostKeyPath: e.cfg.Server.HostKey,
		IdleTimeout: e.cfg.Server.IdleTimeout(),
		Session:     session,
		Bell:        e.cfg.Audio.Enabled,
	}, logger)
	if err != nil {
		return e.failed(fmt.Errorf("creating server: %w", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting pong SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Serve(ctx); err != nil {
		return e.failed(fmt.Errorf("server: %w", err))
	}
	return nil
}
