package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/javagen/cmd/javagen/commands"
	"github.com/teranos/javagen/config"
	"github.com/teranos/javagen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "javagen",
	Short: "javagen - Java source generator",
	Long: `javagen - Render Java compilation units from declarative documents.

Documents are YAML descriptions of packages, types, members and statements.
javagen records each one into an instruction buffer, compiles it and writes
the formatted source.

Available commands:
  render  - Render documents to stdout or to the output tree
  watch   - Re-render documents as they change
  tags    - List the instruction tags
  config  - Show or initialize configuration
  version - Show build information

Examples:
  javagen render greeter.yaml --stdout   # Print the generated source
  javagen render docs/*.yaml -o src      # Write files below src/
  javagen watch docs                     # Re-render on change
  javagen config show                    # Show the effective configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLog, _ := cmd.Flags().GetBool("json-log")

		// Flags win over the config file, which wins over defaults
		if cfg, err := config.Load(); err == nil {
			if !cmd.Flags().Changed("verbose") {
				verbosity = cfg.Log.Verbosity
			}
			if !cmd.Flags().Changed("json-log") {
				jsonLog = cfg.Log.JSON
			}
		}

		if err := logger.Initialize(jsonLog, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON")

	rootCmd.AddCommand(commands.RenderCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.TagsCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
