package app

// Config carries the GUI host settings.
type Config struct {
	// Scale is the pixel size of one cell.
	Scale int
	// TPS is the number of generations advanced per second while running.
	TPS int
}

// NewConfig returns the default GUI configuration.
func NewConfig() Config {
	return Config{Scale: 8, TPS: 10}
}
