package config

import (
	"strings"

	"github.com/teranos/javagen/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Indentation must be blank so it never changes the meaning of the output
	if strings.Trim(c.Render.Indent, " \t") != "" {
		return errors.WithHint(
			errors.Newf("render.indent must contain only spaces or tabs, got %q", c.Render.Indent),
			`use "  " or "\t"`,
		)
	}

	switch c.Render.LineSeparator {
	case "\n", "\r\n":
	default:
		return errors.Newf("render.line_separator must be \"\\n\" or \"\\r\\n\", got %q", c.Render.LineSeparator)
	}

	if c.Output.Dir == "" {
		return errors.New("output.dir cannot be empty")
	}

	// Verbosity: 0 = user output only, negative = invalid
	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	return nil
}
