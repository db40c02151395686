package compiler

import (
	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/code/render"
)

// tokenClass is the class of the last emitted token.
type tokenClass uint8

const (
	classStart tokenClass = iota
	classAnnotation
	classBlock
	classComma
	classComment
	classEnumConstant
	classIdentifier
	classKeyword
	classNewLine
	classPrimary
	classSymbol
	classType

	classCount
)

var classNames = [classCount]string{
	classStart:        "start",
	classAnnotation:   "annotation",
	classBlock:        "block",
	classComma:        "comma",
	classComment:      "comment",
	classEnumConstant: "enum constant",
	classIdentifier:   "identifier",
	classKeyword:      "keyword",
	classNewLine:      "new line",
	classPrimary:      "primary",
	classSymbol:       "symbol",
	classType:         "type",
}

func (t tokenClass) String() string { return classNames[t] }

const noSlot = -1

// registers is the compiler-wide scratch state. Type declarations save it,
// start from a fresh copy and restore it when their body is done.
type registers struct {
	last tokenClass

	// object index of the enclosing type's simple name, or none
	simpleName int32

	publicFound   bool
	abstractFound bool
	topLevel      bool

	// code index of the reserved enum constant separator, or noSlot
	slot int

	// one-shot: set by raise, cleared by the next check
	err bool
}

func newRegisters() registers {
	return registers{last: classStart, simpleName: none, slot: noSlot}
}

// enterType returns the registers for a nested type declaration scope.
func (r registers) enterType() registers {
	fresh := newRegisters()
	fresh.topLevel = r.topLevel
	return fresh
}

func (c *Compiler) lastIs(t tokenClass) bool { return c.reg.last == t }

// failed reports and clears the error flag.
func (c *Compiler) failed() bool {
	err := c.reg.err
	c.reg.err = false
	return err
}

func (c *Compiler) reserveSlot() {
	c.reg.slot = c.code.Reserve()
}

func (c *Compiler) patchSlot(sym java.Symbol) {
	if c.reg.slot == noSlot {
		return
	}
	c.code.Patch(c.reg.slot, render.OpSymbol, int32(sym))
	c.reg.slot = noSlot
}

// closeSlot terminates a pending enum constant list, if any.
func (c *Compiler) closeSlot() {
	c.patchSlot(java.Semicolon)
}
