package compiler

import (
	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/code/proto"
	"github.com/teranos/javagen/code/render"
)

// blockStatement emits the Statement element under the cursor followed by
// its semicolon. A statement ending in a block has none.
func (c *Compiler) blockStatement() {
	c.ws(render.BeforeNextStatement)
	c.reg.last = classStart

	if tag := c.peek(); !startsStatement(tag) {
		c.skip()
		c.raise("no-op statement start '%s'", tag)
		c.failed()
		return
	}

	c.lang()

	if !c.lastIs(classBlock) {
		c.semicolon()
	}
}

func startsStatement(tag proto.Tag) bool {
	return tag == proto.EndElement ||
		tag.IsStatementStart() ||
		tag.IsExpressionStart() ||
		tag.IsType()
}

// lang emits the parts of the element under the cursor.
func (c *Compiler) lang() {
	for c.elemMore() {
		c.langItem()
	}
}

// langItem emits one statement or expression part and advances past it.
// Parts are siblings: a part may look at the ones following it, as an
// invocation does with its arguments.
func (c *Compiler) langItem() {
	tag := proto.Tag(c.next())
	loc := c.next()

	switch {
	case tag.IsOperator():
		c.symbol(java.Symbol(c.buf.Get(loc)))
		return
	case tag.IsType():
		c.at(loc, func() { c.typ(tag) })
		c.maybeLocalVariable()
		return
	}

	switch tag {
	case proto.Argument:
		c.at(loc, c.lang)

	case proto.ArrayAccess:
		c.at(loc, c.arrayAccess)

	case proto.ArrayInitializer:
		c.at(loc, c.arrayInitializer)

	case proto.Block:
		c.at(loc, c.block)

	case proto.DeclarationName:
		c.identifier(c.buf.Get(loc))

	case proto.Else:
		c.keyword(java.Else)

	case proto.ExpressionName:
		c.pre(preDot)
		c.id(c.buf.Get(loc))
		c.reg.last = classIdentifier

	case proto.If:
		c.ifCondition()

	case proto.Invoke:
		c.pre(preDot)
		c.id(c.buf.Get(loc))
		c.argumentList()
		c.reg.last = classPrimary

	case proto.New:
		c.newInstance()

	case proto.NewLine:
		c.newLineRun()

	case proto.NullLiteral:
		c.pre(preKeyword)
		c.kw(java.Null)
		c.reg.last = classPrimary

	case proto.PrimitiveLiteral:
		c.pre(prePrimitiveLiteral)
		c.code.Add(render.OpPrimitiveLiteral, c.buf.Get(loc))
		c.reg.last = classPrimary

	case proto.StringLiteral:
		c.pre(preStringLiteral)
		c.code.Add(render.OpStringLiteral, c.buf.Get(loc))
		c.reg.last = classPrimary

	case proto.Super:
		c.superCall()

	case proto.This:
		c.pre(preKeyword)
		c.kw(java.This)
		if c.is(proto.Argument) {
			c.argumentList()
		}
		c.reg.last = classPrimary

	case proto.Return:
		c.keyword(java.Return)

	case proto.Throw:
		c.keyword(java.Throw)

	case proto.Var:
		c.keyword(java.Var)
		c.maybeLocalVariable()

	default:
		c.raise("no-op statement part '%s'", tag)
	}
}

// maybeLocalVariable completes "Type name =" when a type or var is
// followed by a declaration name.
func (c *Compiler) maybeLocalVariable() {
	if !c.is(proto.DeclarationName) {
		return
	}

	c.execute(c.name)

	if c.more() {
		c.symbol(java.Assign)
	}
}

func (c *Compiler) block() {
	c.pre(preBlock)
	c.sym(java.LeftBrace)
	c.reg.last = classStart

	if !c.more() {
		c.ws(render.BeforeEmptyBlockEnd)
	} else {
		c.indent(render.EnterBlock)

		for c.elemMore() {
			switch c.peek() {
			case proto.Statement:
				c.execute(c.blockStatement)
			case proto.NewLine:
				c.skip()
			default:
				tag := c.skip()
				c.raise("no-op item @ block '%s'", tag)
			}
		}

		c.indent(render.ExitBlock)
		c.ws(render.BeforeNonEmptyBlockEnd)
	}

	c.sym(java.RightBrace)
	c.reg.last = classBlock
}

// ifCondition emits "if" and, when an argument follows, its parenthesized
// condition.
func (c *Compiler) ifCondition() {
	c.keyword(java.If)

	if !c.is(proto.Argument) {
		return
	}

	c.ws(render.Optional)
	c.sym(java.LeftParen)
	c.indent(render.EnterParenthesis)
	c.reg.last = classStart

	c.execute(c.lang)

	c.indent(render.ExitParenthesis)
	c.sym(java.RightParen)
	c.reg.last = classSymbol
}

// newInstance emits "new" followed by a class instance creation when a
// class type follows, or by an array type.
func (c *Compiler) newInstance() {
	c.keyword(java.New)

	switch c.peek() {
	case proto.ClassType, proto.ParameterizedType:
		c.dispatch(c.typ)
		c.argumentList()
		c.reg.last = classPrimary
	case proto.ArrayType:
		c.dispatch(c.typ)
	}
}

// superCall emits "super" as a constructor call or as a member access qualifier.
func (c *Compiler) superCall() {
	c.pre(preKeyword)
	c.kw(java.Super)

	switch c.peek() {
	case proto.EndElement:
		c.sym(java.LeftParen)
		c.sym(java.RightParen)
	case proto.Argument:
		c.argumentList()
	}

	c.reg.last = classPrimary
}

// newLineRun emits the new line just consumed and any that follow it. A
// dot-prefixed continuation after the run is indented further.
func (c *Compiler) newLineRun() {
	prev := c.reg.last

	c.ws(render.NewLine)
	c.newLines()
	c.reg.last = classNewLine

	if !c.peek().IsContinuation() {
		return
	}

	switch prev {
	case classPrimary, classIdentifier, classType:
		c.indent(render.Continuation)
		c.reg.last = prev
	}
}
