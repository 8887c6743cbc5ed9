package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte

// Tick rate limits for the terminal frontend.
const (
	MinTickRate = 10
	MaxTickRate = 240
)

// Default returns the hard-coded configuration, used when even the
// embedded defaults cannot be parsed.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			TickRate:    60,
			BallGlyph:   "●",
			PaddleGlyph: "█",
			NetGlyph:    "│",
			BallColor:   "bright-white",
			PaddleColor: "cyan",
			TextColor:   "yellow",
			NetColor:    "gray",
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.3,
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Enabled: true,
		},
		Server: ServerConfig{
			Address:        ":2222",
			HostKey:        ".ssh/pong_ed25519",
			IdleTimeoutSec: 600,
		},
		Window: WindowConfig{
			Title: "Pong",
			Scale: 1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
