package config

import "flag"

// Flags are the command-line overrides; zero values leave the config as is.
type Flags struct {
	Config  string
	Debug   bool
	Level   string
	LogFile string
	Width   int
	Height  int
	Prefabs string
}

// Register binds the flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging and the physics overlay")
	fs.StringVar(&f.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file as well")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.StringVar(&f.Prefabs, "prefabs", "", "Directory with prefab overrides")
}

// Parse registers the flags on a new FlagSet named name and parses args.
func Parse(name string, args []string) (*Flags, *flag.FlagSet, error) {
	f := &Flags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f.Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs, nil
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
		cfg.Debug.Overlay = true
	}
	if f.Level != "" {
		cfg.Logging.Level = f.Level
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.Prefabs != "" {
		cfg.Prefabs.Dir = f.Prefabs
	}
}
