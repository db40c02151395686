package logger

// Output controls what categories of information the CLI prints at each verbosity level.
//
// Verbosity Levels:
//
//	0 (default) - Generated source, diagnostics, errors
//	1 (-v)      - + Files written, per-document status
//	2 (-vv)     - + Timing, loaded config
//	3 (-vvv)    - + Code buffer dumps

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults     OutputCategory = iota // Generated source
	OutputDiagnostics                       // Inline diagnostics raised by the compiler
	OutputErrors                            // Errors with hints

	// Level 1 (-v)
	OutputProgress // Files written, documents reloaded

	// Level 2 (-vv)
	OutputTiming // Render timing
	OutputConfig // Config values loaded

	// Level 3 (-vvv)
	OutputCodeDump // Code buffer instruction listing
)

var categoryLevels = map[OutputCategory]int{
	OutputResults:     VerbosityUser,
	OutputDiagnostics: VerbosityUser,
	OutputErrors:      VerbosityUser,
	OutputProgress:    VerbosityInfo,
	OutputTiming:      VerbosityDebug,
	OutputConfig:      VerbosityDebug,
	OutputCodeDump:    VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:     "results",
	OutputDiagnostics: "diagnostics",
	OutputErrors:      "errors",
	OutputProgress:    "progress",
	OutputTiming:      "timing",
	OutputConfig:      "config",
	OutputCodeDump:    "code-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
