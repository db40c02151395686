package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Render defaults
	v.SetDefault("render.indent", "  ")
	v.SetDefault("render.line_separator", "\n")
	v.SetDefault("render.banner", false)

	// Output defaults
	v.SetDefault("output.dir", "generated")
	v.SetDefault("output.overwrite", true)

	// Import policy defaults
	v.SetDefault("imports.enabled", false)

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)

	// Watch defaults
	v.SetDefault("watch.debounce_ms", 300)
	v.SetDefault("watch.extensions", []string{".yaml", ".yml"})
}

// Default returns the configuration produced by the defaults alone
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static; a failure here is a programming error
		panic(err)
	}
	return &cfg
}
