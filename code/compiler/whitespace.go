package compiler

import (
	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/code/render"
)

// category is the kind of token about to be emitted.
type category uint8

const (
	preIdentifier category = iota
	preKeyword
	preSymbol
	preDot
	preType
	prePrimitiveLiteral
	preStringLiteral
	preAnnotation
	preModifier
	preBrace // array initializer
	preBlock

	categoryCount
)

var categoryNames = [categoryCount]string{
	preIdentifier:       "identifier",
	preKeyword:          "keyword",
	preSymbol:           "symbol",
	preDot:              "dot",
	preType:             "type",
	prePrimitiveLiteral: "primitive literal",
	preStringLiteral:    "string literal",
	preAnnotation:       "annotation",
	preModifier:         "modifier",
	preBrace:            "brace",
	preBlock:            "block",
}

func (k category) String() string { return categoryNames[k] }

type ruleKind uint8

const (
	emitNothing ruleKind = iota
	emitWhitespace
	emitDot
)

// rule is what precedes a token: nothing, one whitespace directive, or
// (dot category only) the member access dot.
type rule struct {
	kind ruleKind
	ws   render.Whitespace
}

func space(ws render.Whitespace) rule { return rule{kind: emitWhitespace, ws: ws} }

var (
	mandatory = space(render.Mandatory)
	optional  = space(render.Optional)
	afterAnn  = space(render.AfterAnnotation)
	nextItem  = space(render.BeforeNextCommaSeparatedItem)
	lineStart = space(render.BeforeFirstLineContent)
	dot       = rule{kind: emitDot}
)

// rules is indexed by [next token category][last token class]. Pairs not
// listed emit nothing.
var rules = [categoryCount][classCount]rule{
	preIdentifier: {
		classComma:      nextItem,
		classComment:    optional,
		classIdentifier: mandatory,
		classKeyword:    mandatory,
		classNewLine:    lineStart,
		classSymbol:     optional,
		classType:       mandatory,
	},
	preKeyword: {
		classAnnotation: afterAnn,
		classBlock:      optional,
		classComma:      nextItem,
		classComment:    optional,
		classIdentifier: mandatory,
		classKeyword:    mandatory,
		classNewLine:    lineStart,
		classPrimary:    mandatory,
		classSymbol:     optional,
		classType:       mandatory,
	},
	preSymbol: {
		classComment:    optional,
		classIdentifier: optional,
		classKeyword:    optional,
		classNewLine:    lineStart,
		classPrimary:    optional,
		classType:       optional,
	},
	preDot: {
		classComma:      nextItem,
		classComment:    dot,
		classIdentifier: dot,
		classKeyword:    mandatory,
		classNewLine:    lineStart,
		classPrimary:    dot,
		classSymbol:     optional,
		classType:       dot,
	},
	preType: {
		classAnnotation: afterAnn,
		classComma:      nextItem,
		classComment:    optional,
		classKeyword:    mandatory,
		classNewLine:    lineStart,
		classSymbol:     optional,
	},
	prePrimitiveLiteral: {
		classComma:   nextItem,
		classComment: optional,
		classKeyword: mandatory,
		classNewLine: lineStart,
		classSymbol:  optional,
	},
	preStringLiteral: {
		classComma:   nextItem,
		classComment: optional,
		classKeyword: optional,
		classNewLine: lineStart,
		classSymbol:  optional,
	},
	preAnnotation: {
		classAnnotation: afterAnn,
		classComma:      nextItem,
		classComment:    optional,
		classKeyword:    mandatory,
	},
	preModifier: {
		classAnnotation: afterAnn,
		classComma:      nextItem,
		classComment:    optional,
		classKeyword:    mandatory,
	},
	preBrace: {
		classComma:   nextItem,
		classComment: optional,
		classKeyword: optional,
		classNewLine: lineStart,
		classSymbol:  optional,
		classType:    optional,
	},
	preBlock: {
		classComment: optional,
		classKeyword: optional,
		classSymbol:  optional,
	},
}

// pre emits whatever must separate the last token from a token of category k.
func (c *Compiler) pre(k category) {
	r := rules[k][c.reg.last]
	switch r.kind {
	case emitWhitespace:
		c.code.Whitespace(r.ws)
	case emitDot:
		c.code.Symbol(int32(java.Dot))
	}
}
