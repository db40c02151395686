package render

import (
	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/errors"
)

// UnitInfo identifies the compilation unit being written.
type UnitInfo struct {
	// PackageName is empty for the unnamed package.
	PackageName string
	// FileName is the simple name of the public top level type, without extension.
	FileName string
}

// Sink receives the replayed program.
type Sink interface {
	CompilationUnitStart(unit UnitInfo)
	CompilationUnitEnd() error

	WriteIdentifier(name string)
	WriteKeyword(k java.Keyword)
	WriteSymbol(s java.Symbol)
	WriteLiteral(text string)
	WriteStringLiteral(value string)
	WriteComment(text string)
	WriteRaw(text string)
	WriteWhitespace(w Whitespace)
	WriteIndentation(i Indentation)
}

// ImportList is what the interpreter needs from the import policy once
// compilation is over.
type ImportList interface {
	// Imports returns the qualified names to import, sorted.
	Imports() []string
	Unit() UnitInfo
}

// Interpret replays code against sink. Operands of text opcodes are resolved
// through objects. It stops at the first EOF and returns the sink's
// CompilationUnitEnd error.
func Interpret(code *Code, objects Objects, imports ImportList, sink Sink) error {
	sink.CompilationUnitStart(imports.Unit())

	for i := 0; i < code.Len(); i++ {
		op, arg := code.At(i)

		switch op {
		case OpEOF:
			return sink.CompilationUnitEnd()

		case OpNop:

		case OpAutoImports0:
			writeImports(imports.Imports(), false, sink)

		case OpAutoImports1:
			writeImports(imports.Imports(), true, sink)

		case OpComment:
			sink.WriteComment(objects.ObjectString(arg))

		case OpIdentifier:
			sink.WriteIdentifier(objects.ObjectString(arg))

		case OpIndentation:
			sink.WriteIndentation(Indentation(arg))

		case OpKeyword:
			sink.WriteKeyword(java.Keyword(arg))

		case OpPrimitiveLiteral:
			sink.WriteLiteral(objects.ObjectString(arg))

		case OpRaw:
			sink.WriteRaw(objects.ObjectString(arg))

		case OpStringLiteral:
			sink.WriteStringLiteral(objects.ObjectString(arg))

		case OpSymbol:
			sink.WriteSymbol(java.Symbol(arg))

		case OpWhitespace:
			sink.WriteWhitespace(Whitespace(arg))

		default:
			return errors.Newf("render: unknown opcode %d at instruction %d", int32(op), i)
		}
	}

	return errors.New("render: program has no EOF")
}

// writeImports expands an AUTO_IMPORTS instruction. After a package
// declaration the imports are set off by a blank line.
func writeImports(names []string, afterPackage bool, sink Sink) {
	if len(names) == 0 {
		return
	}

	if afterPackage {
		sink.WriteWhitespace(NewLine)
		sink.WriteWhitespace(NewLine)
	}

	for i, name := range names {
		if i > 0 {
			sink.WriteWhitespace(NewLine)
		}
		sink.WriteKeyword(java.Import)
		sink.WriteWhitespace(Mandatory)
		sink.WriteIdentifier(name)
		sink.WriteSymbol(java.Semicolon)
	}
}
