// Package java holds the lexical vocabulary of the generated language:
// reserved keywords, punctuation and operator symbols, and string literal quoting.
package java

// Keyword is a reserved word of the Java language.
// The zero value is not a valid keyword.
type Keyword int32

const (
	_ Keyword = iota
	Abstract
	Assert
	Boolean
	Break
	Byte
	Case
	Catch
	Char
	Class
	Const
	Continue
	Default
	Do
	Double
	Else
	Enum
	Extends
	Final
	Finally
	Float
	For
	Goto
	If
	Implements
	Import
	Instanceof
	Int
	Interface
	Long
	Native
	New
	Package
	Private
	Protected
	Public
	Return
	Short
	Static
	Strictfp
	Super
	Switch
	Synchronized
	This
	Throw
	Throws
	Transient
	Try
	Var
	Void
	Volatile
	While
	Null
	True
	False

	keywordCount
)

var keywordNames = [keywordCount]string{
	Abstract:     "abstract",
	Assert:       "assert",
	Boolean:      "boolean",
	Break:        "break",
	Byte:         "byte",
	Case:         "case",
	Catch:        "catch",
	Char:         "char",
	Class:        "class",
	Const:        "const",
	Continue:     "continue",
	Default:      "default",
	Do:           "do",
	Double:       "double",
	Else:         "else",
	Enum:         "enum",
	Extends:      "extends",
	Final:        "final",
	Finally:      "finally",
	Float:        "float",
	For:          "for",
	Goto:         "goto",
	If:           "if",
	Implements:   "implements",
	Import:       "import",
	Instanceof:   "instanceof",
	Int:          "int",
	Interface:    "interface",
	Long:         "long",
	Native:       "native",
	New:          "new",
	Package:      "package",
	Private:      "private",
	Protected:    "protected",
	Public:       "public",
	Return:       "return",
	Short:        "short",
	Static:       "static",
	Strictfp:     "strictfp",
	Super:        "super",
	Switch:       "switch",
	Synchronized: "synchronized",
	This:         "this",
	Throw:        "throw",
	Throws:       "throws",
	Transient:    "transient",
	Try:          "try",
	Var:          "var",
	Void:         "void",
	Volatile:     "volatile",
	While:        "while",
	Null:         "null",
	True:         "true",
	False:        "false",
}

var keywordsByName = func() map[string]Keyword {
	m := make(map[string]Keyword, keywordCount)
	for k := Keyword(1); k < keywordCount; k++ {
		m[keywordNames[k]] = k
	}
	return m
}()

// String returns the source text of the keyword.
func (k Keyword) String() string {
	if k <= 0 || k >= keywordCount {
		return "Keyword(?)"
	}
	return keywordNames[k]
}

// Valid reports whether k names a keyword.
func (k Keyword) Valid() bool {
	return k > 0 && k < keywordCount
}

// IsPrimitive reports whether k names a primitive type.
func (k Keyword) IsPrimitive() bool {
	switch k {
	case Boolean, Byte, Char, Double, Float, Int, Long, Short:
		return true
	}
	return false
}

// IsModifier reports whether k may appear in a modifier list.
func (k Keyword) IsModifier() bool {
	switch k {
	case Abstract, Default, Final, Native, Private, Protected, Public,
		Static, Strictfp, Synchronized, Transient, Volatile:
		return true
	}
	return false
}

// ParseKeyword looks up a keyword by its source text.
func ParseKeyword(s string) (Keyword, bool) {
	k, ok := keywordsByName[s]
	return k, ok
}

// Keywords returns every keyword in declaration order.
func Keywords() []Keyword {
	out := make([]Keyword, 0, keywordCount-1)
	for k := Keyword(1); k < keywordCount; k++ {
		out = append(out, k)
	}
	return out
}
