package java

// Symbol is a punctuation or operator token.
type Symbol int32

const (
	_ Symbol = iota

	// Separators
	At
	Comma
	Dot
	Ellipsis
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	LeftParen
	RightParen
	Semicolon
	LeftAngle
	RightAngle
	Colon
	Question
	Ampersand

	// Assignment operators
	Assign
	AddAssign
	SubAssign
	MulAssign
	DivAssign

	// Equality operators
	Equal
	NotEqual

	// Relational operators
	Less
	LessEqual
	Greater
	GreaterEqual

	// Additive operators
	Plus
	Minus

	// Multiplicative operators
	Star
	Slash
	Percent

	// Conditional operators
	AndAnd
	OrOr

	symbolCount
)

var symbolText = [symbolCount]string{
	At:           "@",
	Comma:        ",",
	Dot:          ".",
	Ellipsis:     "...",
	LeftBrace:    "{",
	RightBrace:   "}",
	LeftBracket:  "[",
	RightBracket: "]",
	LeftParen:    "(",
	RightParen:   ")",
	Semicolon:    ";",
	LeftAngle:    "<",
	RightAngle:   ">",
	Colon:        ":",
	Question:     "?",
	Ampersand:    "&",
	Assign:       "=",
	AddAssign:    "+=",
	SubAssign:    "-=",
	MulAssign:    "*=",
	DivAssign:    "/=",
	Equal:        "==",
	NotEqual:     "!=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Percent:      "%",
	AndAnd:       "&&",
	OrOr:         "||",
}

// String returns the source text of the symbol.
func (s Symbol) String() string {
	if s <= 0 || s >= symbolCount {
		return "Symbol(?)"
	}
	return symbolText[s]
}

// Valid reports whether s names a symbol.
func (s Symbol) Valid() bool {
	return s > 0 && s < symbolCount
}

// OperatorKind groups operators the way the grammar does.
type OperatorKind int

const (
	NotOperator OperatorKind = iota
	AssignmentOp
	EqualityOp
	RelationalOp
	AdditiveOp
	MultiplicativeOp
	ConditionalOp
)

// Kind returns the operator group of s, or NotOperator for punctuation.
func (s Symbol) Kind() OperatorKind {
	switch {
	case s >= Assign && s <= DivAssign:
		return AssignmentOp
	case s >= Equal && s <= NotEqual:
		return EqualityOp
	case s >= Less && s <= GreaterEqual:
		return RelationalOp
	case s >= Plus && s <= Minus:
		return AdditiveOp
	case s >= Star && s <= Percent:
		return MultiplicativeOp
	case s >= AndAnd && s <= OrOr:
		return ConditionalOp
	}
	return NotOperator
}

// ParseOperator looks up an operator by its source text.
// Punctuation such as "(" is not an operator and is not found.
func ParseOperator(text string) (Symbol, bool) {
	for s := Assign; s < symbolCount; s++ {
		if symbolText[s] == text {
			return s, true
		}
	}
	return 0, false
}
