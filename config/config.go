// Package config loads javagen settings from layered TOML files and JAVAGEN_* environment variables.
package config

// Config represents the javagen configuration
type Config struct {
	Render  RenderConfig  `mapstructure:"render" toml:"render"`
	Output  OutputConfig  `mapstructure:"output" toml:"output"`
	Imports ImportsConfig `mapstructure:"imports" toml:"imports"`
	Log     LogConfig     `mapstructure:"log" toml:"log"`
	Watch   WatchConfig   `mapstructure:"watch" toml:"watch"`
}

// RenderConfig configures how the text sinks turn directives into text
type RenderConfig struct {
	Indent        string `mapstructure:"indent" toml:"indent"`                 // Text for one nesting level (default: two spaces)
	LineSeparator string `mapstructure:"line_separator" toml:"line_separator"` // "\n" or "\r\n"
	Banner        bool   `mapstructure:"banner" toml:"banner"`                 // Write a "generated by" comment above each unit
}

// OutputConfig configures the file sink
type OutputConfig struct {
	Dir       string `mapstructure:"dir" toml:"dir"`             // Root of the generated source tree
	Overwrite bool   `mapstructure:"overwrite" toml:"overwrite"` // Replace existing files (default: true)
}

// ImportsConfig configures the import policy
type ImportsConfig struct {
	// Enabled forces auto imports for every document, not only those that request them
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
}

// LogConfig configures logging
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json"`           // JSON structured output
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity"` // Same scale as the -v flag count
}

// WatchConfig configures `javagen watch`
type WatchConfig struct {
	DebounceMS int      `mapstructure:"debounce_ms" toml:"debounce_ms"` // Quiet period before re-rendering
	Extensions []string `mapstructure:"extensions" toml:"extensions"`   // Document extensions to watch
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// FileName is the name of user and project config files
const FileName = "javagen.toml"
