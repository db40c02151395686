package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordNames(t *testing.T) {
	seen := make(map[string]Keyword)
	for _, k := range Keywords() {
		name := k.String()
		require.NotEmpty(t, name, "keyword %d has no text", k)
		if prev, dup := seen[name]; dup {
			t.Fatalf("keywords %d and %d share text %q", prev, k, name)
		}
		seen[name] = k

		parsed, ok := ParseKeyword(name)
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}

	_, ok := ParseKeyword("Class")
	assert.False(t, ok)
	assert.Equal(t, "Keyword(?)", Keyword(0).String())
}

func TestKeywordClasses(t *testing.T) {
	tests := []struct {
		k         Keyword
		primitive bool
		modifier  bool
	}{
		{Int, true, false},
		{Boolean, true, false},
		{Void, false, false},
		{Public, false, true},
		{Abstract, false, true},
		{Default, false, true},
		{Class, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.k.String(), func(t *testing.T) {
			assert.Equal(t, tt.primitive, tt.k.IsPrimitive())
			assert.Equal(t, tt.modifier, tt.k.IsModifier())
		})
	}
}

func TestParseOperator(t *testing.T) {
	tests := []struct {
		text string
		want Symbol
		kind OperatorKind
	}{
		{"=", Assign, AssignmentOp},
		{"+=", AddAssign, AssignmentOp},
		{"==", Equal, EqualityOp},
		{"!=", NotEqual, EqualityOp},
		{"<", Less, RelationalOp},
		{">=", GreaterEqual, RelationalOp},
		{"+", Plus, AdditiveOp},
		{"%", Percent, MultiplicativeOp},
		{"&&", AndAnd, ConditionalOp},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s, ok := ParseOperator(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, s)
			assert.Equal(t, tt.kind, s.Kind())
			assert.Equal(t, tt.text, s.String())
		})
	}

	_, ok := ParseOperator("(")
	assert.False(t, ok, "punctuation is not an operator")
	assert.Equal(t, NotOperator, Semicolon.Kind())
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{`say "hi"`, `"say \"hi\""`},
		{"a\\b", `"a\\b"`},
		{"line\nnext\ttab", `"line\nnext\ttab"`},
		{"\x01", `"\u0001"`},
		{"olá", `"olá"`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.in))
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("foo"))
	assert.True(t, IsIdentifier("_x1"))
	assert.True(t, IsIdentifier("$tmp"))
	assert.False(t, IsIdentifier(""))
	assert.False(t, IsIdentifier("1x"))
	assert.False(t, IsIdentifier("class"))
	assert.False(t, IsIdentifier("a-b"))
}
