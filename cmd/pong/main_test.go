package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/logging"
)

// execute runs the root command with fresh flag values in a scratch home.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	flagConfig, flagDBPath, flagLogLevel, flagLogFile = "", "", "", ""
	flagPlain, flagExport, flagLimit = false, "", 10

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-file", filepath.Join(home, "pong.log")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStatsPlain(t *testing.T) {
	out, err := execute(t, "stats", "--plain", "--db", filepath.Join(t.TempDir(), "matches.db"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "No matches recorded yet.") {
		t.Errorf("output = %q, expected the empty journal message", out)
	}
}

func TestCommandErrorsAreReturned(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "missing config file",
			args: []string{"stats", "--plain", "--config", filepath.Join(t.TempDir(), "nope.yaml")},
			want: "config: failed to read",
		},
		{
			name: "export below a regular file",
			args: []string{"stats", "--db", filepath.Join(t.TempDir(), "matches.db"),
				"--export", filepath.Join(blocker, "out.parquet")},
			want: "storage: create export dir",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			if err == nil {
				t.Fatal("Execute() error = nil, expected the command to return an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestOpenStoreLogsUnderStorageCategory(t *testing.T) {
	var buf bytes.Buffer
	e := &env{cfg: config.Default(), logger: logging.NewWriter(&buf, log.DebugLevel)}
	e.cfg.Storage.Path = filepath.Join(t.TempDir(), "matches.db")

	store := e.openStore()
	if store == nil {
		t.Fatal("openStore() = nil, expected an open journal")
	}
	defer store.Close()

	logged := buf.String()
	if !strings.Contains(logged, "pong/storage") || !strings.Contains(logged, "journal opened") {
		t.Errorf("log = %q, expected a pong/storage journal opened entry", logged)
	}

	buf.Reset()
	e.cfg.Storage.Enabled = false
	if e.openStore() != nil {
		t.Error("openStore() should return nil when the journal is disabled")
	}
	if !strings.Contains(buf.String(), "pong/storage") {
		t.Errorf("log = %q, expected the disabled journal under pong/storage", buf.String())
	}
}
