// Package config provides configuration management for the golox CLI.
//
// Configuration is layered: built-in defaults, then an optional YAML file,
// then GOLOX_ environment variables, then command-line flags. Later layers
// override earlier ones.
package config

// Config holds all CLI configuration options.
type Config struct {
	Output      string `koanf:"output"`
	Verbose     bool   `koanf:"verbose"`
	NoColor     bool   `koanf:"no_color"`
	HistoryFile string `koanf:"history_file"`
	Watch       bool   `koanf:"watch"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=table, non-TTY=text
	DefaultWatch  = true
)
