// Package template reads declarative YAML descriptions of Java compilation
// units and records them into a proto.Buffer.
//
// A document looks like:
//
//	package: com.example
//	auto_imports: true
//	types:
//	  - kind: class
//	    name: Greeter
//	    modifiers: [public]
//	    fields:
//	      - type: java.util.List<String>
//	        name: names
//	    methods:
//	      - name: greet
//	        returns: String
//	        parameters:
//	          - {type: String, name: who}
//	        body:
//	          - [return, {string: "Hello, "}, "+", {name: who}]
//
// Statement bodies are lists of parts, recorded as the flat sibling
// sequences the compiler reads.
package template

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teranos/javagen/errors"
)

// Document is one compilation unit.
type Document struct {
	Package     string     `yaml:"package,omitempty"`
	AutoImports bool       `yaml:"auto_imports,omitempty"`
	Types       []TypeDecl `yaml:"types"`
}

// TypeDecl is a class, interface or enum declaration.
type TypeDecl struct {
	// Kind is "class", "interface" or "enum". Empty means class.
	Kind           string       `yaml:"kind,omitempty"`
	Name           string       `yaml:"name"`
	Annotations    []Annotation `yaml:"annotations,omitempty"`
	Modifiers      []string     `yaml:"modifiers,omitempty"`
	TypeParameters []TypeParam  `yaml:"type_parameters,omitempty"`
	Extends        []string     `yaml:"extends,omitempty"`
	Implements     []string     `yaml:"implements,omitempty"`

	Constants    []EnumConstant `yaml:"constants,omitempty"`
	Fields       []Field        `yaml:"fields,omitempty"`
	Constructors []Method       `yaml:"constructors,omitempty"`
	Methods      []Method       `yaml:"methods,omitempty"`
	Types        []TypeDecl     `yaml:"types,omitempty"`
}

// Annotation is @Type(values...).
type Annotation struct {
	Type   string `yaml:"type"`
	Values []Expr `yaml:"values,omitempty"`
}

// TypeParam is a type variable with optional bounds.
type TypeParam struct {
	Name   string   `yaml:"name"`
	Bounds []string `yaml:"bounds,omitempty"`
}

// EnumConstant is NAME or NAME(args...).
type EnumConstant struct {
	Name string `yaml:"name"`
	Args []Expr `yaml:"args,omitempty"`
}

// Field declares one variable.
type Field struct {
	Annotations []Annotation `yaml:"annotations,omitempty"`
	Modifiers   []string     `yaml:"modifiers,omitempty"`
	Type        string       `yaml:"type"`
	Name        string       `yaml:"name"`
	Init        Expr         `yaml:"init,omitempty"`
}

// Method is a method or, under constructors, a constructor. Returns is
// ignored for constructors; empty or "void" means void.
type Method struct {
	Annotations    []Annotation `yaml:"annotations,omitempty"`
	Modifiers      []string     `yaml:"modifiers,omitempty"`
	TypeParameters []TypeParam  `yaml:"type_parameters,omitempty"`
	Returns        string       `yaml:"returns,omitempty"`
	Name           string       `yaml:"name,omitempty"`
	Parameters     []Parameter  `yaml:"parameters,omitempty"`
	Body           []Expr       `yaml:"body,omitempty"`
}

// Parameter is a formal parameter. Varargs renders the type as T...
type Parameter struct {
	Modifiers []string `yaml:"modifiers,omitempty"`
	Type      string   `yaml:"type"`
	Varargs   bool     `yaml:"varargs,omitempty"`
	Name      string   `yaml:"name"`
}

// Expr is a sequence of statement or expression parts.
type Expr []Part

// Part is one statement or expression part. In YAML it is either a bare
// word (return, throw, var, null, this, super, else, newline, or an
// operator such as "+") or a mapping with exactly one of the keys below.
type Part struct {
	Word string `yaml:"-"`

	Name    string  `yaml:"name,omitempty"`    // expression name
	Declare string  `yaml:"declare,omitempty"` // local variable name
	Invoke  string  `yaml:"invoke,omitempty"`  // method name, with Args
	String  *string `yaml:"string,omitempty"`
	Literal string  `yaml:"literal,omitempty"`
	Type    string  `yaml:"type,omitempty"`
	New     string  `yaml:"new,omitempty"`  // class or array type, with Args
	Call    string  `yaml:"call,omitempty"` // this or super, with Args
	If      Expr    `yaml:"if,omitempty"`
	Block   *[]Expr `yaml:"block,omitempty"`
	Index   Expr    `yaml:"index,omitempty"`
	Array   *[]Expr `yaml:"array,omitempty"`

	Args []Expr `yaml:"args,omitempty"`
}

// part decodes the mapping form without recursing into UnmarshalYAML.
type part Part

// UnmarshalYAML accepts the bare word and mapping forms of a part.
func (p *Part) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*p = Part{Word: n.Value}
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return errors.NewInvalidDocumentError("line %d: a part is a word or a mapping", n.Line)
	}

	var v part
	if err := n.Decode(&v); err != nil {
		return err
	}
	*p = Part(v)
	return nil
}

// Parse decodes a document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	return decode(bytes.NewReader(data))
}

// ParseFile reads and decodes the document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	doc, err := decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return doc, nil
}

func decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.NewInvalidDocumentError("empty document")
		}
		if errors.IsInvalidDocument(err) {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrInvalidDocument, err.Error())
	}

	if len(doc.Types) == 0 {
		return nil, errors.WithHint(
			errors.NewInvalidDocumentError("document declares no types"),
			"add at least one entry under types:",
		)
	}
	return &doc, nil
}
