// Package imports decides how class type names are written and which
// import declarations a compilation unit needs.
package imports

import (
	"sort"

	"github.com/teranos/javagen/code/render"
)

const javaLang = "java.lang"

// List is the default import policy.
//
// A top level type is imported the first time it is referenced. A later
// type with the same simple name from another package is written fully
// qualified. Types from java.lang, from the unit's own package and from the
// unnamed package never need an import. Without auto imports only those
// types are written by simple name.
type List struct {
	pkg      string
	enabled  bool
	always   bool
	fileName string
	public   bool

	// simple name -> qualified top level name
	bySimple map[string]string
	imports  map[string]struct{}
}

// NewList returns an empty policy with auto imports disabled.
func NewList() *List {
	return &List{
		bySimple: make(map[string]string),
		imports:  make(map[string]struct{}),
	}
}

// Reset prepares the list for a new compilation unit.
func (l *List) Reset() {
	l.pkg = ""
	l.enabled = l.always
	l.fileName = ""
	l.public = false
	clear(l.bySimple)
	clear(l.imports)
}

// PackageName records the unit's package.
func (l *List) PackageName(pkg string) { l.pkg = pkg }

// Enable turns on auto imports for the current unit.
func (l *List) Enable() { l.enabled = true }

// EnableAlways turns on auto imports for every unit, whether or not it asks for them.
func (l *List) EnableAlways() {
	l.always = true
	l.enabled = true
}

// Enabled reports whether auto imports are on.
func (l *List) Enabled() bool { return l.enabled }

// FileName offers a top level type name as the unit's file name. The first
// public type wins; without one, the first type does.
func (l *List) FileName(public bool, name string) {
	switch {
	case l.fileName == "":
	case public && !l.public:
	default:
		return
	}
	l.fileName = name
	l.public = public
	l.claim(name, qualify(l.pkg, name))
}

// Resolve returns how many of the trailing simple names to write for the
// class type pkg.names[0].names[1]...: len(names) when the top level name
// is visible by simple name, 0 when the type must be fully qualified.
func (l *List) Resolve(pkg string, names []string) int {
	if len(names) == 0 {
		return 0
	}
	top := names[0]
	qualified := qualify(pkg, top)

	local := pkg == "" || pkg == javaLang || pkg == l.pkg
	if !local && !l.enabled {
		return 0
	}
	if !l.claim(top, qualified) {
		return 0
	}
	if !local {
		l.imports[qualified] = struct{}{}
	}
	return len(names)
}

// claim binds simple to qualified unless simple is already bound to another type.
func (l *List) claim(simple, qualified string) bool {
	if prev, ok := l.bySimple[simple]; ok {
		return prev == qualified
	}
	l.bySimple[simple] = qualified
	return true
}

// Imports returns the qualified names to import, sorted.
func (l *List) Imports() []string {
	out := make([]string, 0, len(l.imports))
	for name := range l.imports {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Unit returns the unit identity gathered during compilation.
func (l *List) Unit() render.UnitInfo {
	return render.UnitInfo{PackageName: l.pkg, FileName: l.fileName}
}

func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
