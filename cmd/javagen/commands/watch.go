package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/javagen/config"
	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/logger"
)

// WatchCmd re-renders documents in a directory as they change
var WatchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-render documents as they change",
	Long: `Watch a directory and re-render every document written to it.

Changes are collected for watch.debounce_ms before rendering, so an editor
saving several files at once triggers one pass. Only files with an
extension listed in watch.extensions are rendered.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var watchOutDir string

func init() {
	WatchCmd.Flags().StringVarP(&watchOutDir, "out", "o", "", "Output directory (default: output.dir)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	log := logger.ComponentLogger("watch")
	r := newRenderer(cfg)
	r.outDir = watchOutDir

	w, err := config.NewWatcher(time.Duration(cfg.Watch.DebounceMS)*time.Millisecond, dir)
	if err != nil {
		return err
	}
	w.SetFilter(func(path string) bool {
		return slices.Contains(cfg.Watch.Extensions, filepath.Ext(path))
	})

	// The watcher runs one handler batch at a time, so r is never shared.
	w.OnChange(func(paths []string) {
		for _, path := range paths {
			if _, err := os.Stat(path); err != nil {
				log.Debugw("Skipping removed document", logger.FieldPath, path)
				continue
			}
			if err := r.render(context.Background(), cmd.OutOrStdout(), path); err != nil {
				log.Errorw("Render failed", logger.FieldPath, path, logger.FieldError, err)
				pterm.Error.Printfln("%s: %v", path, err)
			}
		}
	})

	w.Start()
	pterm.Info.Printfln("Watching %s (Ctrl+C to stop)", dir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return w.Stop()
}
