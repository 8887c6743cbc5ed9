package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagPlain  bool
	flagExport string
	flagLimit  int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Browse the match journal",
	Long: `Show finished matches from the journal.

By default an interactive table is opened. Use --plain for text output
or --export to write every match to a Parquet file.

Examples:
  pong stats
  pong stats --plain --limit 5
  pong stats --export matches.parquet`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print matches as text")
	statsCmd.Flags().StringVar(&flagExport, "export", "", "Write all matches to a Parquet file")
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches for --plain")
}

func runStats(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	store, err := storage.Open(e.dbPath())
	if err != nil {
		return e.failed(fmt.Errorf("opening match journal: %w", err))
	}
	defer store.Close()

	switch {
	case flagExport != "":
		n, err := store.ExportParquet(flagExport)
		if err != nil {
			return e.failed(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d matches to %s\n", n, flagExport)

	case flagPlain:
		if err := printStats(cmd.OutOrStdout(), store, flagLimit); err != nil {
			return e.failed(err)
		}

	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunStats(store, width, height); err != nil {
			return e.failed(err)
		}
	}
	return nil
}

// printStats writes the summary and recent matches to w.
func printStats(w io.Writer, store *storage.Store, limit int) error {
	summary, err := store.Summary()
	if err != nil {
		return err
	}
	matches, err := store.RecentMatches(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Match Journal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.SummaryLine(*summary))

	if len(matches) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'pong' to record the first match!")
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-12s  %-5s  %-6s  %-5s  %-5s  %s\n", "Date", "Score", "Result", "Rally", "Time", "Player")
	fmt.Fprintf(w, "  %-12s  %-5s  %-6s  %-5s  %-5s  %s\n", "----", "-----", "------", "-----", "----", "------")
	for _, row := range tui.MatchRows(matches) {
		fmt.Fprintf(w, "  %-12s  %-5s  %-6s  %-5s  %-5s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
	}
	return nil
}
