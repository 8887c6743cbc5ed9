package core

// RuntimeConfig contains the frontend settings a game loop is started with.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal) or pixels (window)
	ScreenH  int // Screen height in characters (terminal) or pixels (window)
	TickRate int // Frames per second the frontend aims for (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
