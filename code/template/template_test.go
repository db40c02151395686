package template

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/javagen/code"
	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/code/proto"
	"github.com/teranos/javagen/config"
	"github.com/teranos/javagen/errors"
)

func render(t *testing.T, doc string) string {
	t.Helper()
	b := proto.NewBuffer(64)
	require.NoError(t, Load([]byte(doc), b))

	out, res, err := code.NewEngine(config.Default()).String(context.Background(), b)
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
	return out
}

const greeter = `
package: com.example
auto_imports: true
types:
  - name: Greeter
    modifiers: [public]
    fields:
      - type: java.util.List<String>
        name: names
    methods:
      - name: greet
        returns: String
        parameters:
          - {type: String, name: who}
        body:
          - [return, {string: "Hello, "}, "+", {name: who}]
`

func TestLoadGreeter(t *testing.T) {
	want := "package com.example;\n\n" +
		"import java.util.List;\n\n" +
		"public class Greeter {\n" +
		"  List<String> names;\n\n" +
		"  String greet(String who) {\n" +
		"    return \"Hello, \" + who;\n" +
		"  }\n" +
		"}"
	assert.Equal(t, want, render(t, greeter))
}

func TestLoadStatements(t *testing.T) {
	doc := `
types:
  - name: Foo
    fields:
      - type: int[]
        name: a
        init:
          - array:
              - [{literal: 1}]
              - [{literal: 2}]
    constructors:
      - parameters:
          - {type: int, name: x}
        body:
          - [{call: super, args: [[{name: x}]]}]
    methods:
      - name: run
        body:
          - - var
            - declare: x
            - new: StringBuilder
          - - if:
                - name: x
                - "=="
                - null
            - block:
                - [return]
            - else
            - block: []
          - - name: items
            - index: [{literal: 0}]
            - "="
            - string: a
          - - invoke: f
              args:
                - [{literal: 1}]
                - [{string: s}]
`
	want := "class Foo {\n" +
		"  int[] a = {1, 2};\n\n" +
		"  Foo(int x) {\n" +
		"    super(x);\n" +
		"  }\n\n" +
		"  void run() {\n" +
		"    var x = new StringBuilder();\n" +
		"    if (x == null) {\n" +
		"      return;\n" +
		"    } else {}\n" +
		"    items[0] = \"a\";\n" +
		"    f(1, \"s\");\n" +
		"  }\n" +
		"}"
	assert.Equal(t, want, render(t, doc))
}

func TestLoadDeclarations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "enum constants with arguments",
			doc: `
types:
  - kind: enum
    name: E
    constants:
      - name: A
        args: [[{literal: 1}]]
      - name: B
`,
			want: "enum E {\n  A(1),\n\n  B;\n}",
		},
		{
			name: "bounded type parameter",
			doc: `
types:
  - kind: interface
    name: Sorted
    type_parameters:
      - name: T
        bounds: ["Comparable<T>"]
`,
			want: "interface Sorted<T extends Comparable<T>> {}",
		},
		{
			name: "generic method",
			doc: `
types:
  - name: Util
    methods:
      - name: id
        modifiers: [static]
        type_parameters: [{name: T}]
        returns: T
        parameters: [{type: T, name: v}]
        body:
          - [return, {name: v}]
`,
			want: "class Util {\n  static <T> T id(T v) {\n    return v;\n  }\n}",
		},
		{
			name: "varargs and clauses",
			doc: `
types:
  - name: Point
    extends: [Base]
    implements: [Runnable, Cloneable]
    constructors:
      - parameters:
          - {type: int, name: x}
          - {modifiers: [final], type: String, varargs: true, name: tags}
`,
			want: "class Point extends Base implements Runnable, Cloneable {\n  Point(int x, final String... tags) {}\n}",
		},
		{
			name: "annotated method",
			doc: `
types:
  - name: Foo
    methods:
      - annotations: [{type: Override}]
        modifiers: [public]
        returns: String
        name: toString
        body:
          - [return, {string: x}]
`,
			want: "class Foo {\n  @Override\n  public String toString() {\n    return \"x\";\n  }\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.doc))
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		unknown bool
	}{
		{name: "empty", doc: ""},
		{name: "no types", doc: "package: a.b\n"},
		{name: "unknown key", doc: "types: [{name: A, colour: red}]\n"},
		{name: "unknown kind", doc: "types: [{kind: record, name: A}]\n"},
		{name: "bad modifier", doc: "types: [{name: A, modifiers: [int]}]\n"},
		{name: "constants outside an enum", doc: "types: [{name: A, constants: [{name: X}]}]\n"},
		{name: "unknown word", doc: "types: [{name: A, methods: [{name: f, body: [[goto]]}]}]\n"},
		{name: "two kinds in one part", doc: "types: [{name: A, methods: [{name: f, body: [[{name: x, literal: 1}]]}]}]\n"},
		{name: "bad call", doc: "types: [{name: A, methods: [{name: f, body: [[{call: outer}]]}]}]\n"},
		{name: "part is a list", doc: "types: [{name: A, methods: [{name: f, body: [[[x]]]}]}]\n"},
		{name: "unknown field type", doc: "types: [{name: A, fields: [{type: 'List<', name: x}]}]\n", unknown: true},
		{name: "keyword as type", doc: "types: [{name: A, methods: [{name: f, returns: class}]}]\n", unknown: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Load([]byte(tt.doc), proto.NewBuffer(16))
			require.Error(t, err)
			if tt.unknown {
				assert.True(t, errors.Is(err, errors.ErrUnknownType), "%v", err)
			} else {
				assert.True(t, errors.IsInvalidDocument(err), "%v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greeter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(greeter), 0o644))

	b := proto.NewBuffer(16)
	require.NoError(t, LoadFile(path, b))
	assert.NotEqual(t, proto.Null, b.Root())

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestRecordResetsBuffer(t *testing.T) {
	doc, err := Parse([]byte(greeter))
	require.NoError(t, err)

	b := proto.NewBuffer(16)
	require.NoError(t, Record(doc, b))
	n, objects := b.Len(), b.NumObjects()

	require.NoError(t, Record(doc, b))
	assert.Equal(t, n, b.Len())
	assert.Equal(t, objects, b.NumObjects())
}

func TestParseType(t *testing.T) {
	vars := func(s string) bool { return s == "T" }

	tests := []struct {
		in   string
		want typeRef
	}{
		{"int", typeRef{primitive: java.Int}},
		{"int[][]", typeRef{primitive: java.Int, dims: 2}},
		{"T", typeRef{variable: "T"}},
		{"T[]", typeRef{variable: "T", dims: 1}},
		{"String", typeRef{names: []string{"String"}}},
		{"Map.Entry", typeRef{names: []string{"Map", "Entry"}}},
		{"java.util.Map.Entry", typeRef{pkg: "java.util", names: []string{"Map", "Entry"}}},
		{"com.acme.widget", typeRef{pkg: "com.acme", names: []string{"widget"}}},
		{
			"java.util.Map<String, int[]>",
			typeRef{
				pkg:   "java.util",
				names: []string{"Map"},
				args: []typeRef{
					{names: []string{"String"}},
					{primitive: java.Int, dims: 1},
				},
			},
		},
		{
			"List<List<T>>[]",
			typeRef{
				names: []string{"List"},
				args: []typeRef{{
					names: []string{"List"},
					args:  []typeRef{{variable: "T"}},
				}},
				dims: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseType(tt.in, vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"List<",
		"Map<>",
		"Map<String",
		"int<String>",
		"T<String>",
		"a..b",
		"List]",
		"int[",
		"class",
		"? extends Number",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := parseType(in, func(s string) bool { return s == "T" })
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrUnknownType))
		})
	}
}
