package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teranos/javagen/code/render"
)

func TestResolve(t *testing.T) {
	type ref struct {
		pkg   string
		names []string
		want  int
	}

	tests := []struct {
		name    string
		pkg     string
		enabled bool
		refs    []ref
		imports []string
	}{
		{
			name: "disabled qualifies other packages",
			pkg:  "com.example",
			refs: []ref{
				{"java.util", []string{"List"}, 0},
				{"java.lang", []string{"String"}, 1},
				{"com.example", []string{"Foo"}, 1},
				{"", []string{"Bare"}, 1},
			},
		},
		{
			name:    "enabled imports top level types",
			pkg:     "com.example",
			enabled: true,
			refs: []ref{
				{"java.util", []string{"Map", "Entry"}, 2},
				{"java.util", []string{"Map"}, 1},
				{"java.util", []string{"List"}, 1},
				{"java.lang", []string{"Object"}, 1},
			},
			imports: []string{"java.util.List", "java.util.Map"},
		},
		{
			name:    "first binding of a simple name wins",
			enabled: true,
			refs: []ref{
				{"java.util", []string{"List"}, 1},
				{"java.awt", []string{"List"}, 0},
				{"java.util", []string{"List"}, 1},
			},
			imports: []string{"java.util.List"},
		},
		{
			name:    "java.lang names can be shadowed only by qualification",
			enabled: true,
			refs: []ref{
				{"java.lang", []string{"String"}, 1},
				{"com.other", []string{"String"}, 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList()
			l.PackageName(tt.pkg)
			if tt.enabled {
				l.Enable()
			}
			for _, r := range tt.refs {
				assert.Equal(t, r.want, l.Resolve(r.pkg, r.names), "%s.%v", r.pkg, r.names)
			}
			if tt.imports == nil {
				assert.Empty(t, l.Imports())
			} else {
				assert.Equal(t, tt.imports, l.Imports())
			}
		})
	}
}

func TestDeclaredTypeShadowsImport(t *testing.T) {
	l := NewList()
	l.PackageName("com.example")
	l.Enable()
	l.FileName(true, "Date")

	assert.Zero(t, l.Resolve("java.util", []string{"Date"}))
	assert.Empty(t, l.Imports())
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name  string
		decls []struct {
			public bool
			name   string
		}
		want string
	}{
		{"none", nil, ""},
		{"first wins", []struct {
			public bool
			name   string
		}{{false, "A"}, {false, "B"}}, "A"},
		{"public wins", []struct {
			public bool
			name   string
		}{{false, "A"}, {true, "B"}, {true, "C"}}, "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList()
			l.PackageName("p")
			for _, d := range tt.decls {
				l.FileName(d.public, d.name)
			}
			assert.Equal(t, render.UnitInfo{PackageName: "p", FileName: tt.want}, l.Unit())
		})
	}
}

func TestReset(t *testing.T) {
	l := NewList()
	l.PackageName("p")
	l.Enable()
	l.FileName(true, "Foo")
	l.Resolve("java.util", []string{"List"})

	l.Reset()
	assert.False(t, l.Enabled())
	assert.Empty(t, l.Imports())
	assert.Equal(t, render.UnitInfo{}, l.Unit())
	assert.Zero(t, l.Resolve("java.util", []string{"List"}))
}

func TestEnableAlwaysSurvivesReset(t *testing.T) {
	l := NewList()
	l.EnableAlways()
	l.Reset()

	assert.True(t, l.Enabled())
	assert.Equal(t, 1, l.Resolve("java.util", []string{"List"}))
	assert.Equal(t, []string{"java.util.List"}, l.Imports())
}
