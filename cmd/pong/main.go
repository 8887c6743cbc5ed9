// pong is a two-paddle Pong game against a CPU opponent.
//
// Usage:
//
//	pong                    - Play in the terminal (same as "pong play")
//	pong window             - Play in a desktop window
//	pong serve              - Start an SSH server for remote play
//	pong stats              - Browse the match journal
//
// Global flags:
//
//	--config <path>     - Config file (.yaml or .toml)
//	--fps <rate>        - Terminal tick rate
//	--db <path>         - Match journal database (default: ~/.pong/matches.db)
//	--log-level <name>  - fatal, error, warning, info or verbose
//	--log-file <path>   - Log file (default: ~/.pong/pong.log)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagPlayer   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two paddles, one ball, first to five",
	Long: `Pong against a CPU opponent. The left paddle is yours.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  stats    - Browse or export the match journal

Examples:
  pong
  pong window --scale 1.5
  pong serve --ssh :2222
  pong stats --export matches.parquet`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log verbosity: fatal, error, warning, info, verbose")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name recorded in the journal")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}

// env is the configuration and logger shared by every command.
type env struct {
	cfg    config.Config
	logger *log.Logger
	closer io.Closer
}

// setup loads the config, applies flag overrides and opens the log file.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(flagConfig)
	var skipped *config.SkippedError
	switch {
	case errors.As(err, &skipped):
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	case err != nil:
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Display.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	e := &env{cfg: cfg}
	logger, closer, logErr := logging.New(cfg.Log)
	if logErr != nil {
		// Logging is optional; the game still runs.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", logErr)
		logger, closer = logging.Discard(), nil
	}
	e.logger, e.closer = logger, closer
	if skipped != nil {
		e.logger.Warn("config file skipped", "path", skipped.Path, "error", skipped.Err)
	}
	return e, nil
}

// failed logs err before it is returned to cobra.
func (e *env) failed(err error) error {
	e.logger.Error("command failed", "error", err)
	return err
}

func (e *env) close() {
	if e.closer != nil {
		e.closer.Close()
	}
}

// dbPath returns the journal path from config.
func (e *env) dbPath() string {
	if e.cfg.Storage.Path != "" {
		return e.cfg.Storage.Path
	}
	return config.DataPath("matches.db")
}

// openStore opens the match journal. It returns nil when the journal is
// disabled or cannot be opened; games still run without it.
func (e *env) openStore() *storage.Store {
	logger := logging.Category(e.logger, logging.CategoryStorage)
	if !e.cfg.Storage.Enabled {
		logger.Debug("journal disabled")
		return nil
	}

	path := e.dbPath()
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match journal: %v\n", err)
		logger.Warn("journal unavailable", "path", path, "error", err)
		return nil
	}
	logger.Info("journal opened", "path", path)
	return store
}
