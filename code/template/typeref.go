package template

import (
	"strings"
	"unicode"

	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/errors"
)

// typeRef is a parsed type reference such as java.util.Map<String, int[]>[].
type typeRef struct {
	primitive java.Keyword
	variable  string
	pkg       string
	names     []string
	args      []typeRef
	dims      int
}

// typeParser reads one type reference. Names listed in vars are type
// variables.
type typeParser struct {
	src  string
	pos  int
	vars func(string) bool
}

func parseType(s string, vars func(string) bool) (typeRef, error) {
	p := &typeParser{src: s, vars: vars}

	t, err := p.typ()
	if err == nil {
		p.space()
		if p.pos < len(p.src) {
			err = errors.Newf("unexpected %q", p.src[p.pos:])
		}
	}
	if err != nil {
		return typeRef{}, errors.Wrapf(errors.ErrUnknownType, "%q: %s", s, err)
	}
	return t, nil
}

func (p *typeParser) typ() (typeRef, error) {
	p.space()
	name := p.dotted()
	if name == "" {
		return typeRef{}, errors.New("expected a type name")
	}

	t, err := p.base(name)
	if err != nil {
		return typeRef{}, err
	}

	if p.accept("<") {
		if t.primitive != 0 || t.variable != "" {
			return typeRef{}, errors.Newf("%s takes no type arguments", name)
		}
		for {
			arg, err := p.typ()
			if err != nil {
				return typeRef{}, err
			}
			t.args = append(t.args, arg)
			if p.accept(",") {
				continue
			}
			if !p.accept(">") {
				return typeRef{}, errors.New("expected , or >")
			}
			break
		}
	}

	for p.accept("[") {
		if !p.accept("]") {
			return typeRef{}, errors.New("expected ]")
		}
		t.dims++
	}
	return t, nil
}

// base classifies a dotted name. Package segments are the ones before the
// first capitalized segment.
func (p *typeParser) base(name string) (typeRef, error) {
	if k, ok := java.ParseKeyword(name); ok {
		if !k.IsPrimitive() {
			return typeRef{}, errors.Newf("%s is not a type", name)
		}
		return typeRef{primitive: k}, nil
	}

	segments := strings.Split(name, ".")
	for _, s := range segments {
		if !java.IsIdentifier(s) {
			return typeRef{}, errors.Newf("%q is not an identifier", s)
		}
	}

	if len(segments) == 1 && p.vars != nil && p.vars(name) {
		return typeRef{variable: name}, nil
	}

	split := len(segments) - 1
	for i, s := range segments {
		if unicode.IsUpper(rune(s[0])) {
			split = i
			break
		}
	}

	return typeRef{
		pkg:   strings.Join(segments[:split], "."),
		names: segments[split:],
	}, nil
}

func (p *typeParser) dotted() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := rune(p.src[p.pos])
		if c != '.' && c != '_' && c != '$' && !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *typeParser) accept(tok string) bool {
	p.space()
	if strings.HasPrefix(p.src[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *typeParser) space() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}
