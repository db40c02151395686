package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/javagen/code"
	"github.com/teranos/javagen/code/compiler"
	"github.com/teranos/javagen/code/proto"
	"github.com/teranos/javagen/code/template"
	"github.com/teranos/javagen/config"
	"github.com/teranos/javagen/errors"
)

// RenderCmd renders documents
var RenderCmd = &cobra.Command{
	Use:   "render <file>...",
	Short: "Render documents to Java source",
	Long: `Render each YAML document to Java source.

Files are written below the output directory (output.dir, or -o) at the
path their package and public type name give. With --stdout the source is
printed instead.

Elements found where the grammar does not allow them are rendered as
comments and listed as diagnostics; they do not fail the command.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

var (
	renderOutDir string
	renderStdout bool
)

func init() {
	RenderCmd.Flags().StringVarP(&renderOutDir, "out", "o", "", "Output directory (default: output.dir)")
	RenderCmd.Flags().BoolVar(&renderStdout, "stdout", false, "Print the source instead of writing files")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	r := newRenderer(cfg)
	r.stdout, r.outDir = renderStdout, renderOutDir
	failed := 0
	for _, path := range args {
		if err := r.render(cmd.Context(), cmd.OutOrStdout(), path); err != nil {
			pterm.Error.Printfln("%s: %v", path, err)
			failed++
		}
	}

	if failed > 0 {
		return errors.Newf("%d of %d documents failed", failed, len(args))
	}
	return nil
}

// renderer renders documents with one engine and one reused buffer.
type renderer struct {
	engine *code.Engine
	buf    *proto.Buffer
	stdout bool
	outDir string
}

func newRenderer(cfg *config.Config) *renderer {
	return &renderer{
		engine: code.NewEngine(cfg),
		buf:    proto.NewBuffer(1024),
	}
}

func (r *renderer) render(ctx context.Context, stdout io.Writer, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := template.LoadFile(path, r.buf); err != nil {
		return err
	}

	var res code.Result
	if r.stdout {
		out, result, err := r.engine.String(ctx, r.buf)
		if err != nil {
			return err
		}
		res = result
		fmt.Fprintln(stdout, out)
	} else {
		result, err := r.engine.WriteFile(ctx, r.buf, r.outDir)
		if err != nil {
			return err
		}
		res = result
		pterm.Success.Printfln("%s -> %s", path, res.Path)
	}

	printDiagnostics(path, res)
	return nil
}

func printDiagnostics(path string, res code.Result) {
	for _, d := range res.Diagnostics {
		if d.Severity == compiler.SeverityFatal {
			pterm.Error.Printfln("%s: %s", path, d.Message)
			continue
		}
		pterm.Warning.Printfln("%s: %s", path, d.Message)
	}
}
