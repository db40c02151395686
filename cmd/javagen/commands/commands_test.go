package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/javagen/code/proto"
	"github.com/teranos/javagen/config"
)

const doc = `
package: com.example
types:
  - name: Point
    modifiers: [public]
    fields:
      - {type: int, name: x}
`

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "point.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestRendererStdout(t *testing.T) {
	r := newRenderer(config.Default())
	r.stdout = true

	var out bytes.Buffer
	require.NoError(t, r.render(context.Background(), &out, writeDoc(t)))
	assert.Equal(t, "package com.example;\n\npublic class Point {\n  int x;\n}\n", out.String())
}

func TestRendererWritesFiles(t *testing.T) {
	dir := t.TempDir()
	r := newRenderer(config.Default())
	r.outDir = dir

	var out bytes.Buffer
	require.NoError(t, r.render(context.Background(), &out, writeDoc(t)))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(filepath.Join(dir, "com", "example", "Point.java"))
	require.NoError(t, err)
	assert.Equal(t, "package com.example;\n\npublic class Point {\n  int x;\n}\n", string(data))
}

func TestRendererReportsBadDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("types: []\n"), 0o644))

	r := newRenderer(config.Default())
	r.stdout = true
	assert.Error(t, r.render(context.Background(), &bytes.Buffer{}, path))
}

func TestTagTable(t *testing.T) {
	data := tagTable()
	require.Len(t, data, len(proto.AllTags())+1)
	assert.Equal(t, []string{"Value", "Tag", "Category"}, data[0])
	assert.Equal(t, []string{"-1", "EndElement", "control"}, data[1])
}

func TestFormatConfig(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		format string
		want   string
	}{
		{"toml", "[render]"},
		{"yaml", "render:"},
		{"json", "\"Render\""},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := formatConfig(cfg, tt.format)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}

	_, err := formatConfig(cfg, "ini")
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)

	require.NoError(t, runConfigInit(ConfigCmd, []string{path}))
	cfg, err := config.Read(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	assert.Error(t, runConfigInit(ConfigCmd, []string{path}))
}
