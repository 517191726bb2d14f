package config

import (
	"flag"
	"io"
)

// Flags holds command-line overrides. Zero values mean "not set".
type Flags struct {
	Config     string
	Debug      bool
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	Bounds     bool
	Mute       bool
}

// RegisterFlags binds the shared demo flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.BoolVar(&f.Bounds, "bounds", false, "Show bounding boxes at start (race)")
	fs.BoolVar(&f.Mute, "mute", false, "Disable sound cues")
	return f
}

// ParseFlags registers and parses the process flags. Call this early in main().
func ParseFlags() *Flags {
	f := RegisterFlags(flag.CommandLine)
	flag.Parse()
	return f
}

// ParseArgs parses args with a private flag set; errors are returned rather
// than exiting.
func ParseArgs(name string, args []string) (*Flags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Windowed {
		cfg.Graphics.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if f.Bounds {
		cfg.Race.ShowBounds = true
	}
	if f.Mute {
		cfg.Audio.Enabled = false
	}
}
