package sink

import (
	"strings"

	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/code/render"
)

// Options configures how directives become text.
type Options struct {
	Indent        string // one nesting level
	LineSeparator string
	Banner        string // written as a line comment above the unit when set
}

// DefaultOptions matches the default configuration.
func DefaultOptions() Options {
	return Options{Indent: "  ", LineSeparator: "\n"}
}

// writer implements every render.Sink write operation into a string builder.
// StringSink and FileSink differ only in what they do at the unit boundaries.
type writer struct {
	Indenter
	opts Options
	out  strings.Builder
	unit render.UnitInfo

	// Line breaks are dropped until the first token so that a unit never
	// starts with blank lines.
	started bool
}

func newWriter(opts Options) writer {
	if opts.LineSeparator == "" {
		opts.LineSeparator = "\n"
	}
	return writer{Indenter: NewIndenter(opts.Indent), opts: opts}
}

func (w *writer) CompilationUnitStart(unit render.UnitInfo) {
	w.unit = unit
	w.out.Reset()
	w.Indenter.reset()
	w.started = false

	if w.opts.Banner != "" {
		w.out.WriteString("// ")
		w.out.WriteString(w.opts.Banner)
		w.out.WriteString(w.opts.LineSeparator)
		w.out.WriteString(w.opts.LineSeparator)
	}
}

func (w *writer) token(s string) {
	w.started = true
	w.out.WriteString(s)
}

func (w *writer) WriteIdentifier(name string)     { w.token(name) }
func (w *writer) WriteKeyword(k java.Keyword)     { w.token(k.String()) }
func (w *writer) WriteSymbol(s java.Symbol)       { w.token(s.String()) }
func (w *writer) WriteLiteral(text string)        { w.token(text) }
func (w *writer) WriteStringLiteral(value string) { w.token(java.Quote(value)) }
func (w *writer) WriteRaw(text string)            { w.token(text) }

func (w *writer) WriteComment(text string) {
	w.token("/* " + strings.ReplaceAll(text, "*/", "* /") + " */")
}

func (w *writer) WriteWhitespace(ws render.Whitespace) {
	sep := w.opts.LineSeparator

	switch ws {
	case render.Mandatory, render.Optional, render.BeforeNextCommaSeparatedItem:
		w.out.WriteString(" ")

	case render.AfterAnnotation,
		render.BeforeFirstMember,
		render.BeforeNextStatement,
		render.BeforeNonEmptyBlockEnd:
		w.newLine(sep + w.Indent(0))

	case render.BeforeNextMember:
		w.newLine(sep + sep + w.Indent(0))

	case render.BeforeFirstLineContent:
		w.out.WriteString(w.Indent(0))

	case render.BeforeEmptyBlockEnd:

	case render.NewLine:
		w.newLine(sep)
	}
}

func (w *writer) newLine(s string) {
	if w.started {
		w.out.WriteString(s)
	}
}

func (w *writer) WriteIndentation(i render.Indentation) {
	switch i {
	case render.EnterBlock:
		w.Increase(1)
	case render.ExitBlock:
		w.Decrease(1)
	case render.EnterParenthesis:
		w.Increase(2)
	case render.ExitParenthesis:
		w.Decrease(2)
	case render.Continuation:
		w.out.WriteString(w.Indent(2))
	}
}

// StringSink keeps the last rendered unit in memory.
type StringSink struct {
	writer
	text string
}

// NewStringSink returns an in-memory sink.
func NewStringSink(opts Options) *StringSink {
	return &StringSink{writer: newWriter(opts)}
}

func (s *StringSink) CompilationUnitEnd() error {
	s.text = s.out.String()
	return nil
}

// String returns the text of the last completed unit.
func (s *StringSink) String() string { return s.text }

// Unit returns the identity of the last unit started.
func (s *StringSink) Unit() render.UnitInfo { return s.unit }

var _ render.Sink = (*StringSink)(nil)
