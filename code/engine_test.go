package code

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/code/proto"
	"github.com/teranos/javagen/config"
	"github.com/teranos/javagen/errors"
)

func sampleUnit() *proto.Buffer {
	b := proto.NewBuffer(32)
	b.CompilationUnit(
		b.Name(proto.PackageDeclaration, "com.example"),
		b.Mark(proto.AutoImports),
		b.Element(proto.ClassDeclaration,
			b.Modifiers(java.Public),
			b.Name(proto.DeclarationName, "Greeter"),
			b.Element(proto.FieldDeclaration,
				b.ClassType("java.util", "List"),
				b.Name(proto.DeclarationName, "names"))))
	return b
}

func TestEngineString(t *testing.T) {
	e := NewEngine(config.Default())

	out, res, err := e.String(context.Background(), sampleUnit())
	require.NoError(t, err)

	assert.Equal(t, "package com.example;\n\nimport java.util.List;\n\npublic class Greeter {\n  List names;\n}", out)
	assert.Equal(t, "com.example", res.Unit.PackageName)
	assert.Equal(t, "Greeter", res.Unit.FileName)
	assert.NotEmpty(t, res.RunID)
	assert.Empty(t, res.Diagnostics)
	assert.False(t, res.Failed())
	assert.Positive(t, res.Cells)
	assert.Positive(t, res.Instructions)
}

func TestEngineRunIDsDiffer(t *testing.T) {
	e := NewEngine(config.Default())

	_, first, err := e.String(context.Background(), sampleUnit())
	require.NoError(t, err)
	_, second, err := e.String(context.Background(), sampleUnit())
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestEngineOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Indent = "\t"
	cfg.Render.LineSeparator = "\r\n"
	cfg.Render.Banner = true

	e := NewEngine(cfg)
	out, _, err := e.String(context.Background(), sampleUnit())
	require.NoError(t, err)

	assert.Contains(t, out, "// Generated by javagen")
	assert.Contains(t, out, "{\r\n\tList names;\r\n}")
}

func TestEngineImportsAlwaysEnabled(t *testing.T) {
	b := proto.NewBuffer(32)
	b.CompilationUnit(
		b.Element(proto.ClassDeclaration,
			b.Name(proto.DeclarationName, "Foo"),
			b.Element(proto.FieldDeclaration,
				b.ClassType("java.util", "Map"),
				b.Name(proto.DeclarationName, "m"))))

	cfg := config.Default()
	out, _, err := NewEngine(cfg).String(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, "class Foo {\n  java.util.Map m;\n}", out)

	cfg.Imports.Enabled = true
	out, _, err = NewEngine(cfg).String(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, "class Foo {\n  Map m;\n}", out)
}

func TestEngineWriteFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Output.Overwrite = false
	e := NewEngine(cfg)

	res, err := e.WriteFile(context.Background(), sampleUnit(), dir)
	require.NoError(t, err)

	want := filepath.Join(dir, "com", "example", "Greeter.java")
	assert.Equal(t, want, res.Path)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "public class Greeter {")

	_, err = e.WriteFile(context.Background(), sampleUnit(), dir)
	require.Error(t, err)
	assert.True(t, errors.IsOutputExists(err))
}

func TestEngineReportsDiagnostics(t *testing.T) {
	b := proto.NewBuffer(32)
	b.CompilationUnit(
		b.Element(proto.ClassDeclaration,
			b.Name(proto.DeclarationName, "Foo"),
			b.Element(proto.MethodDeclaration,
				b.Name(proto.DeclarationName, "run"),
				b.Element(proto.Statement, b.Mark(proto.Else)))))

	out, res, err := NewEngine(config.Default()).String(context.Background(), b)
	require.NoError(t, err)
	assert.Contains(t, out, "/* no-op statement start 'Else' */")
	require.Len(t, res.Diagnostics, 1)
	assert.False(t, res.Failed())
}
