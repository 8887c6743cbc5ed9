// Package config provides YAML and TOML configuration loading for the
// game frontends. Physics values are fixed in the simulation and are not
// configurable here.
package config

import "time"

// Config is the complete frontend configuration.
type Config struct {
	Display DisplayConfig `yaml:"display" toml:"display"`
	Input   InputConfig   `yaml:"input" toml:"input"`
	Audio   AudioConfig   `yaml:"audio" toml:"audio"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Window  WindowConfig  `yaml:"window" toml:"window"`
}

// DisplayConfig controls the terminal frontend.
type DisplayConfig struct {
	TickRate    int    `yaml:"tick_rate" toml:"tick_rate"` // Frames per second
	BallGlyph   string `yaml:"ball_glyph" toml:"ball_glyph"`
	PaddleGlyph string `yaml:"paddle_glyph" toml:"paddle_glyph"`
	NetGlyph    string `yaml:"net_glyph" toml:"net_glyph"` // Empty hides the net
	BallColor   string `yaml:"ball_color" toml:"ball_color"`
	PaddleColor string `yaml:"paddle_color" toml:"paddle_color"`
	TextColor   string `yaml:"text_color" toml:"text_color"`
	NetColor    string `yaml:"net_color" toml:"net_color"`
}

// InputConfig controls keyboard handling in terminals.
type InputConfig struct {
	// HoldMS is how long a key press counts as held. Terminals only report
	// presses, so this bridges auto-repeat gaps.
	HoldMS int `yaml:"hold_ms" toml:"hold_ms"`
}

// HoldWindow returns HoldMS as a duration.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// AudioConfig controls sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float64 `yaml:"volume" toml:"volume"` // 0..1, window frontend only
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"` // Empty means ~/.pong/pong.log
}

// StorageConfig controls the match journal.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Path    string `yaml:"path" toml:"path"` // Empty means ~/.pong/matches.db
}

// ServerConfig controls `pong serve`.
type ServerConfig struct {
	Address        string `yaml:"address" toml:"address"`
	HostKey        string `yaml:"host_key" toml:"host_key"`
	IdleTimeoutSec int    `yaml:"idle_timeout_sec" toml:"idle_timeout_sec"`
}

// IdleTimeout returns IdleTimeoutSec as a duration.
func (c ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSec) * time.Second
}

// WindowConfig controls the desktop window frontend.
type WindowConfig struct {
	Title string  `yaml:"title" toml:"title"`
	Scale float64 `yaml:"scale" toml:"scale"` // Window size relative to the 640x480 field
}

// normalize replaces out-of-range values with defaults.
func (c *Config) normalize() {
	def := Default()

	if c.Display.TickRate < MinTickRate || c.Display.TickRate > MaxTickRate {
		c.Display.TickRate = def.Display.TickRate
	}
	if c.Display.BallGlyph == "" {
		c.Display.BallGlyph = def.Display.BallGlyph
	}
	if c.Display.PaddleGlyph == "" {
		c.Display.PaddleGlyph = def.Display.PaddleGlyph
	}
	if c.Input.HoldMS <= 0 {
		c.Input.HoldMS = def.Input.HoldMS
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		c.Audio.Volume = def.Audio.Volume
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Server.IdleTimeoutSec < 0 {
		c.Server.IdleTimeoutSec = 0
	}
	if c.Window.Scale <= 0 {
		c.Window.Scale = def.Window.Scale
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
}
