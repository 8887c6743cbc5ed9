package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play Pong with sound.

Controls:
  W/Up       - Paddle up
  S/Down     - Paddle down
  Space      - Serve
  P/Esc      - Pause
  Ctrl+Y     - Copy the game state to the clipboard
  Q          - Quit

Examples:
  pong window
  pong window --scale 2`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window size relative to 640x480")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	if cmd.Flags().Changed("scale") {
		e.cfg.Window.Scale = flagScale
	}

	opts := window.Options{
		Title:     e.cfg.Window.Title,
		Scale:     e.cfg.Window.Scale,
		Colors:    window.ColorsFromConfig(e.cfg.Display),
		Logger:    e.logger,
		Player:    flagPlayer,
		Clipboard: clipboard.WriteAll,
	}

	if store := e.openStore(); store != nil {
		defer store.Close()
		opts.Journal = store
	}
	if e.cfg.Audio.Enabled {
		opts.Audio = window.NewTones(e.cfg.Audio.Volume, logging.Category(e.logger, logging.CategoryAudio))
	}

	game, err := window.Run(opts)
	if err != nil {
		return e.failed(fmt.Errorf("running window: %w", err))
	}
	printResult(game)
	return nil
}
