package app

import (
	"flag"
	"os"
	"path/filepath"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int
	Height      int
	Zoom        int
	Seed        int64
	SettingsDir string
	Stable      string
	Message     string
	Verbose     bool
}

// NewConfig returns a Config populated with sensible defaults. The viewport
// matches a 144x168 watch screen.
func NewConfig() *Config {
	return &Config{
		Width:       144,
		Height:      168,
		Zoom:        3,
		Seed:        42,
		SettingsDir: defaultSettingsDir(),
		Stable:      "halt",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.IntVar(&c.Zoom, "zoom", c.Zoom, "window pixels per viewport pixel")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid")
	fs.StringVar(&c.SettingsDir, "settings", c.SettingsDir, "directory holding persisted settings")
	fs.StringVar(&c.Stable, "stable", c.Stable, "timer policy once the grid is stable: halt or tick")
	fs.StringVar(&c.Message, "config", c.Message, `JSON configuration message applied at startup, e.g. {"FPS":30}`)
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log state transitions")
}

func defaultSettingsDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".conway"
	}
	return filepath.Join(dir, "conway-ca")
}
