package compiler

import (
	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/code/proto"
	"github.com/teranos/javagen/code/render"
)

// argumentList emits the parenthesized Argument siblings under the cursor.
// New lines between arguments are kept; the trailing ones are left for the
// caller.
func (c *Compiler) argumentList() {
	c.sym(java.LeftParen)
	c.indent(render.EnterParenthesis)
	c.reg.last = classStart

	for n := 0; c.peekPastNewLines() == proto.Argument; n++ {
		c.newLines()
		if n > 0 {
			c.argumentComma()
		}
		c.execute(c.lang)
	}

	c.indent(render.ExitParenthesis)
	if c.lastIs(classNewLine) {
		c.ws(render.BeforeFirstLineContent)
	}
	c.sym(java.RightParen)
}

// argumentComma writes the separator before the next item, moving new lines
// already emitted after it: "a\n, b" becomes "a,\n b".
func (c *Compiler) argumentComma() {
	k := c.code.PopTrailing(render.OpWhitespace, int32(render.NewLine))

	c.comma()

	for range k {
		c.ws(render.NewLine)
	}
	if k > 0 {
		c.reg.last = classNewLine
	}
}

func (c *Compiler) arrayAccess() {
	c.sym(java.LeftBracket)
	c.reg.last = classStart

	c.lang()

	c.sym(java.RightBracket)
	c.reg.last = classPrimary
}

// arrayInitializer emits the Value children under the cursor as {a, b}.
func (c *Compiler) arrayInitializer() {
	c.pre(preBrace)
	c.sym(java.LeftBrace)
	c.indent(render.EnterBlock)
	c.reg.last = classStart

	for n := 0; c.peekPastNewLines() == proto.Value; n++ {
		c.newLines()
		if n > 0 {
			c.argumentComma()
		}
		c.execute(c.lang)
	}
	c.newLines()

	c.indent(render.ExitBlock)
	if c.lastIs(classNewLine) {
		c.ws(render.BeforeFirstLineContent)
	}
	c.sym(java.RightBrace)
	c.reg.last = classPrimary
}
