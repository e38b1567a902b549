// Package config handles runtime settings for the game and simulator.
package config

// Config holds all runtime settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
	Debug   DebugConfig   `yaml:"debug"`
	Prefabs PrefabsConfig `yaml:"prefabs"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer toggles.
type DebugConfig struct {
	// Overlay starts with the physics overlay shown; F1 toggles it.
	Overlay      bool `yaml:"overlay"`
	WatchPrefabs bool `yaml:"watch_prefabs"`
}

// PrefabsConfig locates prefab overrides on disk.
type PrefabsConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Platformer",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Prefabs: PrefabsConfig{
			Dir: "prefabs",
		},
	}
}
