// Package code renders recorded Java compilation units to text.
//
// An Engine owns one compiler and one import policy and serializes access to
// them, so a single Engine may be shared by the CLI's watch loop and its
// one-shot commands.
package code

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/teranos/javagen/code/compiler"
	"github.com/teranos/javagen/code/imports"
	"github.com/teranos/javagen/code/proto"
	"github.com/teranos/javagen/code/render"
	"github.com/teranos/javagen/code/sink"
	"github.com/teranos/javagen/config"
	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/logger"
	"github.com/teranos/javagen/version"
)

// Engine compiles and renders buffers.
type Engine struct {
	mu       sync.Mutex
	compiler *compiler.Compiler
	imports  *imports.List

	opts   sink.Options
	output config.OutputConfig
}

// Result describes one render.
type Result struct {
	RunID       string
	Unit        render.UnitInfo
	Diagnostics []compiler.Diagnostic

	// Cells is the recorded buffer length, Instructions the program length.
	Cells        int
	Instructions int
	Duration     time.Duration

	// Path is the file written, if any.
	Path string
}

// Failed reports whether compilation hit an internal failure. The output
// still exists but ends with the failure comment.
func (r Result) Failed() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == compiler.SeverityFatal {
			return true
		}
	}
	return false
}

// NewEngine returns an engine configured by cfg.
func NewEngine(cfg *config.Config) *Engine {
	list := imports.NewList()
	if cfg.Imports.Enabled {
		list.EnableAlways()
	}

	opts := sink.Options{
		Indent:        cfg.Render.Indent,
		LineSeparator: cfg.Render.LineSeparator,
	}
	if cfg.Render.Banner {
		opts.Banner = version.Get().Banner()
	}

	return &Engine{
		compiler: compiler.New(list),
		imports:  list,
		opts:     opts,
		output:   cfg.Output,
	}
}

// Options returns the sink options derived from the configuration.
func (e *Engine) Options() sink.Options { return e.opts }

// Render compiles buf and replays the program against s.
func (e *Engine) Render(ctx context.Context, buf *proto.Buffer, s render.Sink) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	res := Result{RunID: uuid.New().String()}
	log := logger.LoggerFromContext(logger.WithRunID(ctx, res.RunID))

	code := e.compiler.Compile(buf)
	res.Unit = e.imports.Unit()
	res.Diagnostics = e.compiler.Diagnostics()
	res.Cells = buf.Len()
	res.Instructions = code.Len()

	err := render.Interpret(code, e.compiler.Objects(), e.imports, s)
	res.Duration = time.Since(start)
	if err != nil {
		log.Errorw("Render failed",
			logger.FieldFile, res.Unit.FileName,
			logger.FieldError, err)
		return res, errors.Wrapf(err, "failed to render %s", unitName(res.Unit))
	}

	for _, d := range res.Diagnostics {
		log.Warnw("Diagnostic",
			logger.FieldFile, res.Unit.FileName,
			"severity", d.Severity.String(),
			"message", d.Message)
	}

	log.Infow("Rendered unit",
		logger.FieldFile, unitName(res.Unit),
		logger.FieldCells, res.Cells,
		logger.FieldCount, res.Instructions,
		logger.FieldDiagnostics, len(res.Diagnostics),
		logger.FieldDurationMS, res.Duration.Milliseconds())

	return res, nil
}

// String renders buf in memory.
func (e *Engine) String(ctx context.Context, buf *proto.Buffer) (string, Result, error) {
	s := sink.NewStringSink(e.opts)
	res, err := e.Render(ctx, buf, s)
	if err != nil {
		return "", res, err
	}
	return s.String(), res, nil
}

// WriteFile renders buf below dir, or below the configured output directory
// when dir is empty.
func (e *Engine) WriteFile(ctx context.Context, buf *proto.Buffer, dir string) (Result, error) {
	if dir == "" {
		dir = e.output.Dir
	}

	s := sink.NewFileSink(dir, e.output.Overwrite, e.opts)
	res, err := e.Render(ctx, buf, s)
	if written := s.Written(); len(written) > 0 {
		res.Path = written[len(written)-1]
	}
	return res, err
}

func unitName(u render.UnitInfo) string {
	switch {
	case u.FileName == "":
		return "<unnamed unit>"
	case u.PackageName == "":
		return u.FileName
	}
	return u.PackageName + "." + u.FileName
}
