// Package proto defines the recorded instruction buffer: a flat, growable
// sequence of int32 cells where negative values are grammar tags and
// non-negative values are payloads (object indices, buffer locations,
// keyword and symbol ordinals, counts).
//
// # Encoding
//
// Every child of an element is a two cell reference site (tag, location).
// The location points at the child's detail blob:
//
//   - elements: a run of child references terminated by EndElement
//   - leaves: a fixed width payload, specific to the tag
//
// Tags are assigned in contiguous ranges per category so that category
// membership is a single range comparison. Adding a tag means inserting it
// inside its category's range and shifting the ones after it.
package proto

import "fmt"

// Tag identifies the grammar category of a recorded instruction.
type Tag int32

// Control
const (
	EndElement Tag = -1 - iota
	Noop
	NewLine
)

// Types
const (
	ArrayType Tag = -4 - iota
	ClassType
	ParameterizedType
	PrimitiveType
	TypeVariable
)

// Type auxiliaries
const (
	ArrayDimension Tag = -9 - iota
	Ellipsis
	TypeParameter
	Void
)

// Declarations
const (
	Annotation Tag = -13 - iota
	AutoImports
	ClassDeclaration
	ConstructorDeclaration
	DeclarationName
	EnumConstant
	EnumDeclaration
	ExtendsClause
	FieldDeclaration
	ImplementsClause
	InterfaceDeclaration
	MethodDeclaration
	Modifier
	Modifiers
	PackageDeclaration
	Parameter
	Statement
)

// Statement starts
const (
	Block Tag = -30 - iota
	If
	Return
	Super
	Throw
	Var
)

// Statement parts
const (
	Argument Tag = -36 - iota
	Else
	Value
)

// Expression starts
const (
	ArrayInitializer Tag = -39 - iota
	New
	NullLiteral
	PrimitiveLiteral
	StringLiteral
	This
	ExpressionName
	Invoke
)

// Expression parts
const (
	ArrayAccess Tag = -47 - iota
	AssignmentOperator
	EqualityOperator
	RelationalOperator
	AdditiveOperator
	MultiplicativeOperator
	ConditionalOperator
)

// Category boundaries. Tags decrease, so each range is [Last, First].
const (
	ControlFirst = EndElement
	ControlLast  = NewLine

	TypeFirst = ArrayType
	TypeLast  = TypeVariable

	TypeAuxFirst = ArrayDimension
	TypeAuxLast  = Void

	DeclarationFirst = Annotation
	DeclarationLast  = Statement

	StatementStartFirst = Block
	StatementStartLast  = Var

	StatementPartFirst = Argument
	StatementPartLast  = Value

	ExpressionStartFirst = ArrayInitializer
	ExpressionStartLast  = Invoke

	ExpressionPartFirst = ArrayAccess
	ExpressionPartLast  = ConditionalOperator

	OperatorFirst = AssignmentOperator
	OperatorLast  = ConditionalOperator

	WhitespaceFirst = NewLine
	WhitespaceLast  = NewLine

	ContinuationFirst = ExpressionName
	ContinuationLast  = Invoke

	minTag = ConditionalOperator
)

func in(t, first, last Tag) bool { return t <= first && t >= last }

func (t Tag) IsControl() bool         { return in(t, ControlFirst, ControlLast) }
func (t Tag) IsType() bool            { return in(t, TypeFirst, TypeLast) }
func (t Tag) IsTypeAux() bool         { return in(t, TypeAuxFirst, TypeAuxLast) }
func (t Tag) IsDeclaration() bool     { return in(t, DeclarationFirst, DeclarationLast) }
func (t Tag) IsStatementStart() bool  { return in(t, StatementStartFirst, StatementStartLast) }
func (t Tag) IsStatementPart() bool   { return in(t, StatementPartFirst, StatementPartLast) }
func (t Tag) IsExpressionStart() bool { return in(t, ExpressionStartFirst, ExpressionStartLast) }
func (t Tag) IsExpressionPart() bool  { return in(t, ExpressionPartFirst, ExpressionPartLast) }
func (t Tag) IsOperator() bool        { return in(t, OperatorFirst, OperatorLast) }
func (t Tag) IsWhitespace() bool      { return in(t, WhitespaceFirst, WhitespaceLast) }

// IsContinuation reports whether t may follow a new line inside an
// expression as a dot-prefixed continuation (a chained name or invocation).
func (t Tag) IsContinuation() bool { return in(t, ContinuationFirst, ContinuationLast) }

// Valid reports whether t is a defined tag.
func (t Tag) Valid() bool { return t <= ControlFirst && t >= minTag }

// Category names the range t belongs to.
type Category int

const (
	CategoryInvalid Category = iota
	CategoryControl
	CategoryType
	CategoryTypeAux
	CategoryDeclaration
	CategoryStatementStart
	CategoryStatementPart
	CategoryExpressionStart
	CategoryExpressionPart
)

var categoryNames = [...]string{
	CategoryInvalid:         "invalid",
	CategoryControl:         "control",
	CategoryType:            "type",
	CategoryTypeAux:         "type auxiliary",
	CategoryDeclaration:     "declaration",
	CategoryStatementStart:  "statement start",
	CategoryStatementPart:   "statement part",
	CategoryExpressionStart: "expression start",
	CategoryExpressionPart:  "expression part",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "invalid"
	}
	return categoryNames[c]
}

// CategoryOf returns the category whose range contains t.
func CategoryOf(t Tag) Category {
	switch {
	case t.IsControl():
		return CategoryControl
	case t.IsType():
		return CategoryType
	case t.IsTypeAux():
		return CategoryTypeAux
	case t.IsDeclaration():
		return CategoryDeclaration
	case t.IsStatementStart():
		return CategoryStatementStart
	case t.IsStatementPart():
		return CategoryStatementPart
	case t.IsExpressionStart():
		return CategoryExpressionStart
	case t.IsExpressionPart():
		return CategoryExpressionPart
	}
	return CategoryInvalid
}

var tagNames = map[Tag]string{
	EndElement:             "EndElement",
	Noop:                   "Noop",
	NewLine:                "NewLine",
	ArrayType:              "ArrayType",
	ClassType:              "ClassType",
	ParameterizedType:      "ParameterizedType",
	PrimitiveType:          "PrimitiveType",
	TypeVariable:           "TypeVariable",
	ArrayDimension:         "ArrayDimension",
	Ellipsis:               "Ellipsis",
	TypeParameter:          "TypeParameter",
	Void:                   "Void",
	Annotation:             "Annotation",
	AutoImports:            "AutoImports",
	ClassDeclaration:       "ClassDeclaration",
	ConstructorDeclaration: "ConstructorDeclaration",
	DeclarationName:        "DeclarationName",
	EnumConstant:           "EnumConstant",
	EnumDeclaration:        "EnumDeclaration",
	ExtendsClause:          "ExtendsClause",
	FieldDeclaration:       "FieldDeclaration",
	ImplementsClause:       "ImplementsClause",
	InterfaceDeclaration:   "InterfaceDeclaration",
	MethodDeclaration:      "MethodDeclaration",
	Modifier:               "Modifier",
	Modifiers:              "Modifiers",
	PackageDeclaration:     "PackageDeclaration",
	Parameter:              "Parameter",
	Statement:              "Statement",
	Block:                  "Block",
	If:                     "If",
	Return:                 "Return",
	Super:                  "Super",
	Throw:                  "Throw",
	Var:                    "Var",
	Argument:               "Argument",
	Else:                   "Else",
	Value:                  "Value",
	ArrayInitializer:       "ArrayInitializer",
	New:                    "New",
	NullLiteral:            "NullLiteral",
	PrimitiveLiteral:       "PrimitiveLiteral",
	StringLiteral:          "StringLiteral",
	This:                   "This",
	ExpressionName:         "ExpressionName",
	Invoke:                 "Invoke",
	ArrayAccess:            "ArrayAccess",
	AssignmentOperator:     "AssignmentOperator",
	EqualityOperator:       "EqualityOperator",
	RelationalOperator:     "RelationalOperator",
	AdditiveOperator:       "AdditiveOperator",
	MultiplicativeOperator: "MultiplicativeOperator",
	ConditionalOperator:    "ConditionalOperator",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", int32(t))
}

// AllTags returns every defined tag from EndElement down.
func AllTags() []Tag {
	tags := make([]Tag, 0, -minTag)
	for t := ControlFirst; t >= minTag; t-- {
		tags = append(tags, t)
	}
	return tags
}
