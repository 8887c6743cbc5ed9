package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Pong in the terminal against the CPU. First to 5 points wins.

Controls:
  W/Up       - Paddle up
  S/Down     - Paddle down
  Space      - Serve
  P/Esc      - Pause
  Ctrl+S     - Save a screenshot to ~/.pong/screenshots
  Ctrl+Y     - Copy the frame to the clipboard
  Q/Ctrl+C   - Quit

Examples:
  pong play
  pong play --fps 120
  pong play --config ./pong.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: e.cfg.Display.TickRate,
		},
		Theme:         tui.ThemeFromConfig(e.cfg.Display),
		HoldWindow:    e.cfg.Input.HoldWindow(),
		Logger:        e.logger,
		Player:        flagPlayer,
		ScreenshotDir: config.DataPath("screenshots"),
		Clipboard:     tui.SystemClipboard,
	}

	if store := e.openStore(); store != nil {
		defer store.Close()
		opts.Journal = store
	}
	if e.cfg.Audio.Enabled {
		bell := audio.NewBell(os.Stderr, logging.Category(e.logger, logging.CategoryAudio))
		defer bell.Close()
		opts.Audio = bell
	}

	game, err := tui.Run(opts)
	if err != nil {
		return e.failed(fmt.Errorf("running game: %w", err))
	}
	printResult(game)
	return nil
}

// printResult reports the final score after the frontend exits.
func printResult(g *pong.Game) {
	score := g.Score()
	fmt.Printf("Final score: YOU %d : %d CPU\n", score[pong.SideLeft], score[pong.SideRight])
	if winner, ok := g.Winner(); ok {
		if winner == pong.SideLeft {
			fmt.Println("You win!")
		} else {
			fmt.Println("The CPU wins.")
		}
	}
}
