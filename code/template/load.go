package template

import (
	"slices"

	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/code/proto"
	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/logger"
)

// words are the bare-word parts other than operators.
var words = map[string]proto.Tag{
	"else":    proto.Else,
	"newline": proto.NewLine,
	"null":    proto.NullLiteral,
	"return":  proto.Return,
	"super":   proto.Super,
	"this":    proto.This,
	"throw":   proto.Throw,
	"var":     proto.Var,
}

// recorder records a document into a buffer. vars is the stack of type
// variable names in scope.
type recorder struct {
	b    *proto.Buffer
	vars []string
}

// Record resets b and records doc as its compilation unit.
func Record(doc *Document, b *proto.Buffer) error {
	b.Reset()
	r := &recorder{b: b}

	var children []proto.Ref
	if doc.Package != "" {
		children = append(children, b.Name(proto.PackageDeclaration, doc.Package))
	}
	if doc.AutoImports {
		children = append(children, b.Mark(proto.AutoImports))
	}

	for i := range doc.Types {
		ref, err := r.typeDecl(&doc.Types[i])
		if err != nil {
			return err
		}
		children = append(children, ref)
	}

	b.CompilationUnit(children...)

	logger.Debugw("Recorded document",
		logger.FieldCount, len(doc.Types),
		logger.FieldCells, b.Len())
	return nil
}

// Load parses data and records it into b.
func Load(data []byte, b *proto.Buffer) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	return Record(doc, b)
}

// LoadFile parses the document at path and records it into b.
func LoadFile(path string, b *proto.Buffer) error {
	doc, err := ParseFile(path)
	if err != nil {
		return err
	}
	if err := Record(doc, b); err != nil {
		return errors.Wrapf(err, "failed to record %s", path)
	}
	return nil
}

func (r *recorder) isVar(name string) bool { return slices.Contains(r.vars, name) }

func (r *recorder) typeDecl(t *TypeDecl) (proto.Ref, error) {
	var tag proto.Tag
	switch t.Kind {
	case "", "class":
		tag = proto.ClassDeclaration
	case "interface":
		tag = proto.InterfaceDeclaration
	case "enum":
		tag = proto.EnumDeclaration
	default:
		return proto.Ref{}, errors.NewInvalidDocumentError("type %s: unknown kind %q", t.Name, t.Kind)
	}

	scope := len(r.vars)
	defer func() { r.vars = r.vars[:scope] }()

	ref, err := r.typeDeclParts(tag, t)
	if err != nil {
		return proto.Ref{}, errors.Wrapf(err, "type %s", t.Name)
	}
	return ref, nil
}

func (r *recorder) typeDeclParts(tag proto.Tag, t *TypeDecl) (proto.Ref, error) {
	b := r.b

	children, err := r.annotations(t.Annotations)
	if err != nil {
		return proto.Ref{}, err
	}

	mods, err := r.modifiers(t.Modifiers)
	if err != nil {
		return proto.Ref{}, err
	}
	children = append(children, mods...)

	if t.Name != "" {
		children = append(children, b.Name(proto.DeclarationName, t.Name))
	}

	params, err := r.typeParameters(t.TypeParameters)
	if err != nil {
		return proto.Ref{}, err
	}
	children = append(children, params...)

	for _, clause := range []struct {
		tag   proto.Tag
		types []string
	}{{proto.ExtendsClause, t.Extends}, {proto.ImplementsClause, t.Implements}} {
		if len(clause.types) == 0 {
			continue
		}
		types, err := r.types(clause.types)
		if err != nil {
			return proto.Ref{}, err
		}
		children = append(children, b.Element(clause.tag, types...))
	}

	if len(t.Constants) > 0 && tag != proto.EnumDeclaration {
		return proto.Ref{}, errors.NewInvalidDocumentError("constants are only allowed in an enum")
	}
	for _, c := range t.Constants {
		ref, err := r.enumConstant(c)
		if err != nil {
			return proto.Ref{}, err
		}
		children = append(children, ref)
	}

	for _, f := range t.Fields {
		ref, err := r.field(f)
		if err != nil {
			return proto.Ref{}, errors.Wrapf(err, "field %s", f.Name)
		}
		children = append(children, ref)
	}

	for i := range t.Constructors {
		ref, err := r.executable(proto.ConstructorDeclaration, &t.Constructors[i])
		if err != nil {
			return proto.Ref{}, errors.Wrapf(err, "constructor %d", i)
		}
		children = append(children, ref)
	}

	for i := range t.Methods {
		m := &t.Methods[i]
		ref, err := r.executable(proto.MethodDeclaration, m)
		if err != nil {
			return proto.Ref{}, errors.Wrapf(err, "method %s", m.Name)
		}
		children = append(children, ref)
	}

	for i := range t.Types {
		ref, err := r.typeDecl(&t.Types[i])
		if err != nil {
			return proto.Ref{}, err
		}
		children = append(children, ref)
	}

	return b.Element(tag, children...), nil
}

func (r *recorder) annotations(as []Annotation) ([]proto.Ref, error) {
	refs := make([]proto.Ref, 0, len(as))
	for _, a := range as {
		typ, err := r.typ(a.Type)
		if err != nil {
			return nil, errors.Wrap(err, "annotation")
		}

		children := []proto.Ref{typ}
		for _, v := range a.Values {
			value, err := r.element(proto.Value, v)
			if err != nil {
				return nil, errors.Wrapf(err, "annotation %s", a.Type)
			}
			children = append(children, value)
		}
		refs = append(refs, r.b.Element(proto.Annotation, children...))
	}
	return refs, nil
}

func (r *recorder) modifiers(names []string) ([]proto.Ref, error) {
	if len(names) == 0 {
		return nil, nil
	}

	ks := make([]java.Keyword, 0, len(names))
	for _, name := range names {
		k, ok := java.ParseKeyword(name)
		if !ok || !k.IsModifier() {
			return nil, errors.NewInvalidDocumentError("%q is not a modifier", name)
		}
		ks = append(ks, k)
	}
	return []proto.Ref{r.b.Modifiers(ks...)}, nil
}

// typeParameters records params and brings their names into scope before
// the bounds are parsed, so T extends Comparable<T> resolves.
func (r *recorder) typeParameters(params []TypeParam) ([]proto.Ref, error) {
	for _, p := range params {
		r.vars = append(r.vars, p.Name)
	}

	refs := make([]proto.Ref, 0, len(params))
	for _, p := range params {
		if !java.IsIdentifier(p.Name) {
			return nil, errors.NewInvalidDocumentError("type parameter %q is not an identifier", p.Name)
		}
		bounds, err := r.types(p.Bounds)
		if err != nil {
			return nil, errors.Wrapf(err, "type parameter %s", p.Name)
		}
		children := append([]proto.Ref{r.b.Name(proto.DeclarationName, p.Name)}, bounds...)
		refs = append(refs, r.b.Element(proto.TypeParameter, children...))
	}
	return refs, nil
}

func (r *recorder) enumConstant(c EnumConstant) (proto.Ref, error) {
	var children []proto.Ref
	if c.Name != "" {
		children = append(children, r.b.Name(proto.DeclarationName, c.Name))
	}

	args, err := r.args(c.Args)
	if err != nil {
		return proto.Ref{}, errors.Wrapf(err, "enum constant %s", c.Name)
	}
	children = append(children, args...)

	return r.b.Element(proto.EnumConstant, children...), nil
}

func (r *recorder) field(f Field) (proto.Ref, error) {
	children, err := r.annotations(f.Annotations)
	if err != nil {
		return proto.Ref{}, err
	}

	mods, err := r.modifiers(f.Modifiers)
	if err != nil {
		return proto.Ref{}, err
	}
	children = append(children, mods...)

	typ, err := r.typ(f.Type)
	if err != nil {
		return proto.Ref{}, err
	}
	children = append(children, typ)

	if f.Name != "" {
		children = append(children, r.b.Name(proto.DeclarationName, f.Name))
	}

	init, err := r.expr(f.Init)
	if err != nil {
		return proto.Ref{}, err
	}
	children = append(children, init...)

	return r.b.Element(proto.FieldDeclaration, children...), nil
}

func (r *recorder) executable(tag proto.Tag, m *Method) (proto.Ref, error) {
	scope := len(r.vars)
	defer func() { r.vars = r.vars[:scope] }()

	children, err := r.annotations(m.Annotations)
	if err != nil {
		return proto.Ref{}, err
	}

	mods, err := r.modifiers(m.Modifiers)
	if err != nil {
		return proto.Ref{}, err
	}
	children = append(children, mods...)

	params, err := r.typeParameters(m.TypeParameters)
	if err != nil {
		return proto.Ref{}, err
	}
	children = append(children, params...)

	if tag == proto.MethodDeclaration {
		switch m.Returns {
		case "", "void":
			children = append(children, r.b.Mark(proto.Void))
		default:
			typ, err := r.typ(m.Returns)
			if err != nil {
				return proto.Ref{}, errors.Wrap(err, "return type")
			}
			children = append(children, typ)
		}

		if m.Name != "" {
			children = append(children, r.b.Name(proto.DeclarationName, m.Name))
		}
	}

	for _, p := range m.Parameters {
		ref, err := r.parameter(p)
		if err != nil {
			return proto.Ref{}, errors.Wrapf(err, "parameter %s", p.Name)
		}
		children = append(children, ref)
	}

	for i, s := range m.Body {
		ref, err := r.element(proto.Statement, s)
		if err != nil {
			return proto.Ref{}, errors.Wrapf(err, "statement %d", i)
		}
		children = append(children, ref)
	}

	return r.b.Element(tag, children...), nil
}

func (r *recorder) parameter(p Parameter) (proto.Ref, error) {
	children, err := r.modifiers(p.Modifiers)
	if err != nil {
		return proto.Ref{}, err
	}

	typ, err := r.typ(p.Type)
	if err != nil {
		return proto.Ref{}, err
	}
	children = append(children, typ)

	if p.Varargs {
		children = append(children, r.b.Mark(proto.Ellipsis))
	}
	if p.Name != "" {
		children = append(children, r.b.Name(proto.DeclarationName, p.Name))
	}

	return r.b.Element(proto.Parameter, children...), nil
}

// types records a list of type references.
func (r *recorder) types(ss []string) ([]proto.Ref, error) {
	refs := make([]proto.Ref, 0, len(ss))
	for _, s := range ss {
		ref, err := r.typ(s)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (r *recorder) typ(s string) (proto.Ref, error) {
	t, err := parseType(s, r.isVar)
	if err != nil {
		return proto.Ref{}, err
	}
	return r.typeRef(t), nil
}

func (r *recorder) typeRef(t typeRef) proto.Ref {
	b := r.b

	var ref proto.Ref
	switch {
	case t.primitive != 0:
		ref = b.Keyword(proto.PrimitiveType, t.primitive)
	case t.variable != "":
		ref = b.Name(proto.TypeVariable, t.variable)
	default:
		ref = b.ClassType(t.pkg, t.names...)
	}

	if len(t.args) > 0 {
		children := []proto.Ref{ref}
		for _, arg := range t.args {
			children = append(children, r.typeRef(arg))
		}
		ref = b.Element(proto.ParameterizedType, children...)
	}

	if t.dims > 0 {
		children := []proto.Ref{ref}
		for range t.dims {
			children = append(children, b.Mark(proto.ArrayDimension))
		}
		ref = b.Element(proto.ArrayType, children...)
	}

	return ref
}

// element records e as the children of a tag element.
func (r *recorder) element(tag proto.Tag, e Expr) (proto.Ref, error) {
	parts, err := r.expr(e)
	if err != nil {
		return proto.Ref{}, err
	}
	return r.b.Element(tag, parts...), nil
}

// args records each expression as an Argument element.
func (r *recorder) args(es []Expr) ([]proto.Ref, error) {
	refs := make([]proto.Ref, 0, len(es))
	for _, e := range es {
		ref, err := r.element(proto.Argument, e)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// expr records the parts of e as a flat sibling sequence.
func (r *recorder) expr(e Expr) ([]proto.Ref, error) {
	var refs []proto.Ref
	for _, p := range e {
		part, err := r.part(p)
		if err != nil {
			return nil, err
		}
		refs = append(refs, part...)
	}
	return refs, nil
}

func (r *recorder) part(p Part) ([]proto.Ref, error) {
	b := r.b

	if p.Word != "" {
		if tag, ok := words[p.Word]; ok {
			return []proto.Ref{b.Mark(tag)}, nil
		}
		if sym, ok := java.ParseOperator(p.Word); ok {
			return []proto.Ref{b.Operator(sym)}, nil
		}
		return nil, errors.NewInvalidDocumentError("unknown word %q", p.Word)
	}

	if n := p.keys(); n != 1 {
		return nil, errors.NewInvalidDocumentError("a part needs exactly one kind, found %d", n)
	}

	switch {
	case p.Name != "":
		return []proto.Ref{b.Name(proto.ExpressionName, p.Name)}, nil

	case p.Declare != "":
		return []proto.Ref{b.Name(proto.DeclarationName, p.Declare)}, nil

	case p.Invoke != "":
		args, err := r.args(p.Args)
		if err != nil {
			return nil, errors.Wrapf(err, "invoke %s", p.Invoke)
		}
		return append([]proto.Ref{b.Name(proto.Invoke, p.Invoke)}, args...), nil

	case p.String != nil:
		return []proto.Ref{b.Name(proto.StringLiteral, *p.String)}, nil

	case p.Literal != "":
		return []proto.Ref{b.Name(proto.PrimitiveLiteral, p.Literal)}, nil

	case p.Type != "":
		typ, err := r.typ(p.Type)
		if err != nil {
			return nil, err
		}
		return []proto.Ref{typ}, nil

	case p.New != "":
		t, err := parseType(p.New, r.isVar)
		if err != nil {
			return nil, err
		}
		refs := []proto.Ref{b.Mark(proto.New), r.typeRef(t)}
		if t.dims == 0 {
			args, err := r.args(p.Args)
			if err != nil {
				return nil, errors.Wrapf(err, "new %s", p.New)
			}
			refs = append(refs, args...)
		}
		return refs, nil

	case p.Call != "":
		var tag proto.Tag
		switch p.Call {
		case "this":
			tag = proto.This
		case "super":
			tag = proto.Super
		default:
			return nil, errors.NewInvalidDocumentError("call must be this or super, got %q", p.Call)
		}
		args, err := r.args(p.Args)
		if err != nil {
			return nil, err
		}
		return append([]proto.Ref{b.Mark(tag)}, args...), nil

	case p.If != nil:
		cond, err := r.element(proto.Argument, p.If)
		if err != nil {
			return nil, errors.Wrap(err, "if")
		}
		return []proto.Ref{b.Mark(proto.If), cond}, nil

	case p.Block != nil:
		statements := make([]proto.Ref, 0, len(*p.Block))
		for _, s := range *p.Block {
			ref, err := r.element(proto.Statement, s)
			if err != nil {
				return nil, errors.Wrap(err, "block")
			}
			statements = append(statements, ref)
		}
		return []proto.Ref{b.Element(proto.Block, statements...)}, nil

	case p.Index != nil:
		ref, err := r.element(proto.ArrayAccess, p.Index)
		if err != nil {
			return nil, err
		}
		return []proto.Ref{ref}, nil

	default:
		values := make([]proto.Ref, 0, len(*p.Array))
		for _, v := range *p.Array {
			ref, err := r.element(proto.Value, v)
			if err != nil {
				return nil, errors.Wrap(err, "array")
			}
			values = append(values, ref)
		}
		return []proto.Ref{b.Element(proto.ArrayInitializer, values...)}, nil
	}
}

// keys counts the kinds set on a mapping part. Args qualifies a kind and is
// not counted.
func (p *Part) keys() int {
	n := 0
	for _, set := range []bool{
		p.Name != "", p.Declare != "", p.Invoke != "", p.String != nil,
		p.Literal != "", p.Type != "", p.New != "", p.Call != "",
		p.If != nil, p.Block != nil, p.Index != nil, p.Array != nil,
	} {
		if set {
			n++
		}
	}
	return n
}
