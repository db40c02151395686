// Package render holds the compiled rendering program and its interpreter.
//
// A compiler appends (opcode, operand) pairs to a Code buffer. Every
// formatting decision is already made at that point: Interpret replays the
// pairs in order against a Sink and branches on the opcode only.
package render

import (
	"fmt"
	"strings"
)

// Op is a render opcode.
type Op int32

const (
	OpEOF Op = iota
	OpNop
	OpAutoImports0
	OpAutoImports1
	OpComment
	OpIdentifier
	OpIndentation
	OpKeyword
	OpPrimitiveLiteral
	OpRaw
	OpStringLiteral
	OpSymbol
	OpWhitespace

	opCount
)

var opNames = [opCount]string{
	OpEOF:              "EOF",
	OpNop:              "NOP",
	OpAutoImports0:     "AUTO_IMPORTS0",
	OpAutoImports1:     "AUTO_IMPORTS1",
	OpComment:          "COMMENT",
	OpIdentifier:       "IDENTIFIER",
	OpIndentation:      "INDENTATION",
	OpKeyword:          "KEYWORD",
	OpPrimitiveLiteral: "PRIMITIVE_LITERAL",
	OpRaw:              "RAW",
	OpStringLiteral:    "STRING_LITERAL",
	OpSymbol:           "SYMBOL",
	OpWhitespace:       "WHITESPACE",
}

func (op Op) String() string {
	if op < 0 || op >= opCount {
		return fmt.Sprintf("Op(%d)", int32(op))
	}
	return opNames[op]
}

// Code is the linear rendering program. Each instruction takes two cells.
type Code struct {
	cells   []int32
	pending int
}

// NewCode returns an empty program with room for capacity instructions.
func NewCode(capacity int) *Code {
	return &Code{cells: make([]int32, 0, 2*capacity)}
}

// Reset empties the program, keeping its allocation.
func (c *Code) Reset() {
	c.cells = c.cells[:0]
	c.pending = 0
}

// Len returns the number of instructions.
func (c *Code) Len() int { return len(c.cells) / 2 }

// At returns instruction i.
func (c *Code) At(i int) (Op, int32) {
	return Op(c.cells[2*i]), c.cells[2*i+1]
}

// Add appends an instruction and returns its index.
func (c *Code) Add(op Op, operand int32) int {
	c.cells = append(c.cells, int32(op), operand)
	return c.Len() - 1
}

func (c *Code) Keyword(k int32) int { return c.Add(OpKeyword, k) }
func (c *Code) Symbol(s int32) int  { return c.Add(OpSymbol, s) }

func (c *Code) Whitespace(w Whitespace) int { return c.Add(OpWhitespace, int32(w)) }

func (c *Code) Indentation(i Indentation) int { return c.Add(OpIndentation, int32(i)) }

// Reserve appends a NOP placeholder to be patched later and returns its index.
func (c *Code) Reserve() int {
	c.pending++
	return c.Add(OpNop, -1)
}

// Patch overwrites the placeholder at index i.
// Patching anything other than an unpatched placeholder is a compiler bug.
func (c *Code) Patch(i int, op Op, operand int32) {
	if got, arg := c.At(i); got != OpNop || arg != -1 {
		panic(fmt.Sprintf("render: patch of %s at %d is not a reserved slot", got, i))
	}
	c.cells[2*i] = int32(op)
	c.cells[2*i+1] = operand
	c.pending--
}

// Pending returns the number of reserved slots not yet patched.
func (c *Code) Pending() int { return c.pending }

// PopTrailing removes consecutive trailing instructions equal to (op, operand)
// and returns how many were removed.
func (c *Code) PopTrailing(op Op, operand int32) int {
	n := 0
	for c.Len() > 0 {
		last, arg := c.At(c.Len() - 1)
		if last != op || arg != operand {
			break
		}
		c.cells = c.cells[:len(c.cells)-2]
		n++
	}
	return n
}

// Objects resolves operands that index the object table.
type Objects interface {
	ObjectString(i int32) string
}

// Dump lists the program one instruction per line, for debugging.
func (c *Code) Dump(objects Objects) string {
	var b strings.Builder
	for i := 0; i < c.Len(); i++ {
		op, arg := c.At(i)
		fmt.Fprintf(&b, "%4d %-17s ", i, op)
		switch op {
		case OpComment, OpIdentifier, OpPrimitiveLiteral, OpRaw, OpStringLiteral:
			if objects != nil {
				fmt.Fprintf(&b, "%q", objects.ObjectString(arg))
			} else {
				fmt.Fprintf(&b, "#%d", arg)
			}
		case OpKeyword:
			b.WriteString(keywordText(arg))
		case OpSymbol:
			b.WriteString(symbolText(arg))
		case OpWhitespace:
			b.WriteString(Whitespace(arg).String())
		case OpIndentation:
			b.WriteString(Indentation(arg).String())
		case OpNop:
			if arg == -1 {
				b.WriteString("reserved")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
