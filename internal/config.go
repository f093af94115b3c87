package internal

type Config struct {
	Amount uint32 // Pairs inserted by each accumulate command
	Stats  bool   // Print a memory table after every command
	Color  bool   // Colorize the menu and timing lines
	Debug  bool
	Gops   bool // Start the gops diagnostics agent
}

const DEFAULT_AMOUNT = 5_000_000
const DEFAULT_STATS = true

func DefaultConfig() *Config {
	return &Config{
		Amount: DEFAULT_AMOUNT,
		Stats:  DEFAULT_STATS,
	}
}
