// Package compiler walks a recorded instruction buffer and emits the
// rendering program for one Java compilation unit.
//
// # Architecture
//
// The compiler never builds a syntax tree. It reads the proto.Buffer with a
// cursor, jumping into a child's detail blob and returning from it with
// ordinary recursive calls (execute, dispatch). Declaration handlers first
// classify their children into threaded lists and single slots kept in the
// buffer's scratch area, then emit them in grammar order, so the front end
// may record members in any order.
//
// Every token is preceded by a pre-rule looked up from the class of the last
// emitted token (see whitespace.go). That table is the only place spacing is
// decided.
//
// Punctuation that depends on what comes next, such as the comma or
// semicolon after an enum constant, is reserved as a NOP slot and patched
// once the next element is known.
//
// # Errors
//
// An element the grammar does not expect at its position becomes an inline
// comment and a Diagnostic; compilation continues. A panic anywhere in the
// walk is recovered once: the program gets a trailing comment with the
// message and stack, and is still terminated with EOF.
package compiler

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/javagen/code/proto"
	"github.com/teranos/javagen/code/render"
	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/logger"
)

// ImportPolicy decides how class types are written and collects the unit's
// imports and file name while compiling.
type ImportPolicy interface {
	render.ImportList

	Reset()
	PackageName(pkg string)
	Enable()
	FileName(public bool, name string)
	// Resolve returns how many trailing simple names of pkg.names to
	// write, or 0 to write the fully qualified name.
	Resolve(pkg string, names []string) int
}

// Compiler compiles one buffer at a time. It is not safe for concurrent
// use; its buffers are reused between compilations.
type Compiler struct {
	buf     *proto.Buffer
	code    *render.Code
	imports ImportPolicy

	// cursor into buf
	pos int32
	// top of the scratch area, past the recorded region
	stack int32

	reg   registers
	diags []Diagnostic

	// reused by classType
	names []string

	log *zap.SugaredLogger
}

// New returns a compiler consulting imports.
func New(imports ImportPolicy) *Compiler {
	return &Compiler{
		code:    render.NewCode(256),
		imports: imports,
		log:     logger.ComponentLogger("code.compiler"),
	}
}

// Compile compiles buf and returns the rendering program, which stays valid
// until the next call. Compile never panics and the program always ends with EOF.
func (c *Compiler) Compile(buf *proto.Buffer) *render.Code {
	start := time.Now()

	c.buf = buf
	c.code.Reset()
	c.diags = c.diags[:0]
	c.imports.Reset()
	buf.TruncateObjects()
	c.pos = 0
	c.stack = int32(buf.Len())
	c.reg = newRegisters()

	c.run()

	c.code.Add(render.OpEOF, 0)

	c.log.Debugw("Compiled unit",
		logger.FieldCells, buf.Len(),
		logger.FieldCount, c.code.Len(),
		logger.FieldDiagnostics, len(c.diags),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return c.code
}

func (c *Compiler) run() {
	defer func() {
		if r := recover(); r != nil {
			c.fail(errors.Recovered(r))
		}
	}()

	c.compilationUnit()
}

// fail appends the trailing failure comment.
func (c *Compiler) fail(err error) {
	c.closeSlot()

	c.code.Whitespace(render.NewLine)
	c.code.Whitespace(render.NewLine)

	msg := fmt.Sprintf("%+v", err)
	at := c.code.Add(render.OpComment, c.buf.AddTransient(msg))
	c.diags = append(c.diags, Diagnostic{Severity: SeverityFatal, Message: err.Error(), Index: at})

	c.log.Errorw("Compilation failed",
		logger.FieldError, err,
		logger.FieldCount, c.code.Len())
}

// Code returns the program produced by the last Compile.
func (c *Compiler) Code() *render.Code { return c.code }

// Diagnostics returns the diagnostics raised by the last Compile.
func (c *Compiler) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Objects resolves the program's operands. It is valid until the buffer is modified.
func (c *Compiler) Objects() render.Objects { return c.buf }

// Imports returns the policy consulted during compilation.
func (c *Compiler) Imports() ImportPolicy { return c.imports }
