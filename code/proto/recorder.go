package proto

import (
	"fmt"

	"github.com/teranos/javagen/code/java"
)

// Ref is a reference site: the tag of a recorded instruction and the
// location of its detail blob.
type Ref struct {
	Tag Tag
	Loc int32
}

// The methods below record instructions in the encoding the compiler reads.
// Each returns the Ref a parent element stores for the recorded child.

// Element records an element blob holding children and returns a reference to it.
func (b *Buffer) Element(tag Tag, children ...Ref) Ref {
	loc := int32(b.n)
	b.grow(b.n + 2*len(children) + 1)
	for _, c := range children {
		b.cells[b.n] = int32(c.Tag)
		b.cells[b.n+1] = c.Loc
		b.n += 2
	}
	b.cells[b.n] = int32(EndElement)
	b.n++
	return Ref{Tag: tag, Loc: loc}
}

// CompilationUnit records the root element.
func (b *Buffer) CompilationUnit(children ...Ref) {
	ref := b.Element(Noop, children...)
	b.root = ref.Loc
}

// Mark records a leaf without payload.
func (b *Buffer) Mark(tag Tag) Ref {
	return Ref{Tag: tag, Loc: int32(b.n)}
}

// Name records a leaf whose payload is the object index of s.
func (b *Buffer) Name(tag Tag, s string) Ref {
	loc := b.Append(b.AddObject(s))
	return Ref{Tag: tag, Loc: loc}
}

// Keyword records a leaf whose payload is a keyword ordinal.
// Used for PrimitiveType and Modifier.
func (b *Buffer) Keyword(tag Tag, k java.Keyword) Ref {
	loc := b.Append(int32(k))
	return Ref{Tag: tag, Loc: loc}
}

// Modifiers records a Modifiers leaf: a count followed by that many keyword ordinals.
func (b *Buffer) Modifiers(ks ...java.Keyword) Ref {
	loc := b.Append(int32(len(ks)))
	for _, k := range ks {
		b.Append(int32(k))
	}
	return Ref{Tag: Modifiers, Loc: loc}
}

// ClassType records a ClassType leaf: the package name, then the simple
// names from the top level type down to the nested one.
func (b *Buffer) ClassType(pkg string, names ...string) Ref {
	if len(names) == 0 {
		panic("proto: class type without a simple name")
	}
	loc := b.Append(b.AddObject(pkg), int32(len(names)))
	for _, name := range names {
		b.Append(b.AddObject(name))
	}
	return Ref{Tag: ClassType, Loc: loc}
}

// Operator records an operator leaf, choosing the tag from the operator's group.
// It panics when sym is punctuation rather than an operator.
func (b *Buffer) Operator(sym java.Symbol) Ref {
	tag, ok := OperatorTag(sym)
	if !ok {
		panic(fmt.Sprintf("proto: %q is not an operator", sym))
	}
	loc := b.Append(int32(sym))
	return Ref{Tag: tag, Loc: loc}
}

// OperatorTag returns the tag recording sym.
func OperatorTag(sym java.Symbol) (Tag, bool) {
	switch sym.Kind() {
	case java.AssignmentOp:
		return AssignmentOperator, true
	case java.EqualityOp:
		return EqualityOperator, true
	case java.RelationalOp:
		return RelationalOperator, true
	case java.AdditiveOp:
		return AdditiveOperator, true
	case java.MultiplicativeOp:
		return MultiplicativeOperator, true
	case java.ConditionalOp:
		return ConditionalOperator, true
	}
	return 0, false
}
