package compiler

import (
	"fmt"

	"github.com/teranos/javagen/code/render"
)

// Severity grades a diagnostic.
type Severity int

const (
	// SeverityError marks an element found where the grammar does not allow
	// it. The element is replaced by a comment and compilation continues.
	SeverityError Severity = iota
	// SeverityFatal marks a recovered internal failure; the program ends
	// after the failure comment.
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Diagnostic is one problem found while compiling.
type Diagnostic struct {
	Severity Severity
	Message  string
	// Index of the comment instruction carrying the message.
	Index int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (instruction %d)", d.Severity, d.Message, d.Index)
}

// report writes msg as an inline comment and records it.
func (c *Compiler) report(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	at := c.code.Add(render.OpComment, c.buf.AddTransient(msg))
	c.diags = append(c.diags, Diagnostic{Severity: SeverityError, Message: msg, Index: at})
	c.reg.last = classComment

	c.log.Debugw("Grammar violation",
		"message", msg,
		"instruction", at)
}

// raise is report plus the one-shot error flag, which stops the enclosing
// element iteration at its next check.
func (c *Compiler) raise(format string, args ...any) {
	c.reg.err = true
	c.report(format, args...)
}
