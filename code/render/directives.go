package render

import (
	"fmt"

	"github.com/teranos/javagen/code/java"
)

// Whitespace is a whitespace directive. The sink decides the literal text.
type Whitespace int32

const (
	Mandatory Whitespace = iota
	Optional
	AfterAnnotation
	BeforeFirstMember
	BeforeNextMember
	BeforeNextStatement
	BeforeNextCommaSeparatedItem
	BeforeFirstLineContent
	BeforeEmptyBlockEnd
	BeforeNonEmptyBlockEnd
	NewLine

	whitespaceCount
)

var whitespaceNames = [whitespaceCount]string{
	Mandatory:                    "MANDATORY",
	Optional:                     "OPTIONAL",
	AfterAnnotation:              "AFTER_ANNOTATION",
	BeforeFirstMember:            "BEFORE_FIRST_MEMBER",
	BeforeNextMember:             "BEFORE_NEXT_MEMBER",
	BeforeNextStatement:          "BEFORE_NEXT_STATEMENT",
	BeforeNextCommaSeparatedItem: "BEFORE_NEXT_COMMA_SEPARATED_ITEM",
	BeforeFirstLineContent:       "BEFORE_FIRST_LINE_CONTENT",
	BeforeEmptyBlockEnd:          "BEFORE_EMPTY_BLOCK_END",
	BeforeNonEmptyBlockEnd:       "BEFORE_NON_EMPTY_BLOCK_END",
	NewLine:                      "NEW_LINE",
}

func (w Whitespace) String() string {
	if w < 0 || w >= whitespaceCount {
		return fmt.Sprintf("Whitespace(%d)", int32(w))
	}
	return whitespaceNames[w]
}

// Whitespaces returns every directive.
func Whitespaces() []Whitespace {
	out := make([]Whitespace, whitespaceCount)
	for i := range out {
		out[i] = Whitespace(i)
	}
	return out
}

// Indentation is an indentation directive.
type Indentation int32

const (
	EnterBlock Indentation = iota
	ExitBlock
	EnterParenthesis
	ExitParenthesis
	Continuation

	indentationCount
)

var indentationNames = [indentationCount]string{
	EnterBlock:       "ENTER_BLOCK",
	ExitBlock:        "EXIT_BLOCK",
	EnterParenthesis: "ENTER_PARENTHESIS",
	ExitParenthesis:  "EXIT_PARENTHESIS",
	Continuation:     "CONTINUATION",
}

func (i Indentation) String() string {
	if i < 0 || i >= indentationCount {
		return fmt.Sprintf("Indentation(%d)", int32(i))
	}
	return indentationNames[i]
}

func keywordText(v int32) string { return java.Keyword(v).String() }
func symbolText(v int32) string  { return java.Symbol(v).String() }
