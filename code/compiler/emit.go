package compiler

import (
	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/code/proto"
	"github.com/teranos/javagen/code/render"
)

// Raw emitters leave the last token class alone.

func (c *Compiler) kw(k java.Keyword) { c.code.Keyword(int32(k)) }
func (c *Compiler) sym(s java.Symbol) { c.code.Symbol(int32(s)) }
func (c *Compiler) id(obj int32)      { c.code.Add(render.OpIdentifier, obj) }

func (c *Compiler) ws(w render.Whitespace)      { c.code.Whitespace(w) }
func (c *Compiler) indent(i render.Indentation) { c.code.Indentation(i) }

// Token emitters apply the pre rule and set the last token class.

func (c *Compiler) keyword(k java.Keyword) {
	c.pre(preKeyword)
	c.kw(k)
	c.reg.last = classKeyword
}

func (c *Compiler) identifier(obj int32) {
	c.pre(preIdentifier)
	c.id(obj)
	c.reg.last = classIdentifier
}

func (c *Compiler) symbol(s java.Symbol) {
	c.pre(preSymbol)
	c.sym(s)
	c.reg.last = classSymbol
}

func (c *Compiler) comma() {
	c.sym(java.Comma)
	c.reg.last = classComma
}

func (c *Compiler) semicolon() {
	c.sym(java.Semicolon)
	c.reg.last = classSymbol
}

// name emits the declaration name leaf under the cursor.
func (c *Compiler) name() {
	c.identifier(c.next())
}

// unnamed stores a default name for an element recorded without one.
func (c *Compiler) unnamed(name string) int32 {
	return c.buf.AddTransient(name)
}

// newLines consumes a run of new line references and emits one NEW_LINE
// for each of them.
func (c *Compiler) newLines() int {
	n := 0
	for c.is(proto.NewLine) {
		c.skip()
		c.ws(render.NewLine)
		n++
	}
	if n > 0 {
		c.reg.last = classNewLine
	}
	return n
}
