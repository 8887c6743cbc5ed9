package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
display:
  tick_rate: 30
  paddle_color: magenta
log:
  level: verbose
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Display.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Display.TickRate)
	}
	if cfg.Display.PaddleColor != "magenta" {
		t.Errorf("PaddleColor = %q, expected magenta", cfg.Display.PaddleColor)
	}
	if cfg.Log.Level != "verbose" {
		t.Errorf("Log.Level = %q, expected verbose", cfg.Log.Level)
	}
	// Omitted keys keep their defaults.
	if cfg.Server.Address != ":2222" {
		t.Errorf("Server.Address = %q, expected :2222", cfg.Server.Address)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.toml")
	writeFile(t, path, `
[input]
hold_ms = 220

[audio]
enabled = false

[server]
address = "127.0.0.1:2323"
idle_timeout_sec = 30
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Input.HoldMS != 220 {
		t.Errorf("HoldMS = %d, expected 220", cfg.Input.HoldMS)
	}
	if cfg.Audio.Enabled {
		t.Error("Audio.Enabled = true, expected false")
	}
	if cfg.Server.Address != "127.0.0.1:2323" {
		t.Errorf("Server.Address = %q", cfg.Server.Address)
	}
	if got := cfg.Server.IdleTimeout().Seconds(); got != 30 {
		t.Errorf("IdleTimeout() = %vs, expected 30s", got)
	}
	if cfg.Display.TickRate != 60 {
		t.Errorf("TickRate = %d, expected default 60", cfg.Display.TickRate)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "display: [unclosed")
	_, err := Load(bad)
	if err == nil {
		t.Fatal("Load() of invalid YAML should fail")
	}
	if !strings.HasPrefix(err.Error(), "config: failed to parse") {
		t.Errorf("error = %q, expected a parse error", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("with no files, Load() = %+v, expected defaults", cfg)
	}

	writeFile(t, filepath.Join(work, "configs", "pong.yaml"), "window:\n  title: Local\n")
	cfg, _ = Load("")
	if cfg.Window.Title != "Local" {
		t.Errorf("Window.Title = %q, expected the ./configs value", cfg.Window.Title)
	}

	writeFile(t, filepath.Join(home, AppDir, "pong.toml"), "[window]\ntitle = \"Home\"\n")
	cfg, _ = Load("")
	if cfg.Window.Title != "Home" {
		t.Errorf("Window.Title = %q, expected the ~/.pong value", cfg.Window.Title)
	}
}

func TestLoadReportsBrokenImplicitFile(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	broken := filepath.Join(home, AppDir, "pong.yaml")
	writeFile(t, broken, "display: [not a map\n")

	cfg, err := Load("")
	var skipped *SkippedError
	if !errors.As(err, &skipped) {
		t.Fatalf("Load() error = %v, expected *SkippedError", err)
	}
	if skipped.Path != broken {
		t.Errorf("SkippedError.Path = %q, expected %q", skipped.Path, broken)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected the defaults as fallback", cfg)
	}

	writeFile(t, filepath.Join(work, "configs", "pong.toml"), "[window]\ntitle = \"Local\"\n")
	cfg, err = Load("")
	if !errors.As(err, &skipped) {
		t.Errorf("Load() error = %v, expected the broken home file to still be reported", err)
	}
	if cfg.Window.Title != "Local" {
		t.Errorf("Window.Title = %q, expected the next file in the search order", cfg.Window.Title)
	}
}

func TestNormalize(t *testing.T) {
	cfg, err := Parse([]byte(`
display:
  tick_rate: 5000
  ball_glyph: ""
input:
  hold_ms: -1
audio:
  volume: 4
window:
  scale: 0
`), FormatYAML)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	def := Default()
	if cfg.Display.TickRate != def.Display.TickRate {
		t.Errorf("TickRate = %d, expected %d", cfg.Display.TickRate, def.Display.TickRate)
	}
	if cfg.Display.BallGlyph != def.Display.BallGlyph {
		t.Errorf("BallGlyph = %q, expected %q", cfg.Display.BallGlyph, def.Display.BallGlyph)
	}
	if cfg.Input.HoldWindow() != def.Input.HoldWindow() {
		t.Errorf("HoldWindow() = %v, expected %v", cfg.Input.HoldWindow(), def.Input.HoldWindow())
	}
	if cfg.Audio.Volume != def.Audio.Volume {
		t.Errorf("Volume = %v, expected %v", cfg.Audio.Volume, def.Audio.Volume)
	}
	if cfg.Window.Scale != 1 {
		t.Errorf("Window.Scale = %v, expected 1", cfg.Window.Scale)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"pong.yaml", FormatYAML},
		{"pong.yml", FormatYAML},
		{"pong.toml", FormatTOML},
		{"PONG.TOML", FormatTOML},
		{"pong", FormatYAML},
	}

	for _, tc := range tests {
		if got := FormatOf(tc.path); got != tc.expected {
			t.Errorf("FormatOf(%q) = %v, expected %v", tc.path, got, tc.expected)
		}
	}
}

func TestDataPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := DataPath("matches.db"); got != filepath.Join(home, AppDir, "matches.db") {
		t.Errorf("DataPath() = %q", got)
	}
}
