package compiler

import (
	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/code/proto"
	"github.com/teranos/javagen/code/render"
)

func (c *Compiler) compilationUnit() {
	root := c.buf.Root()
	if root == proto.Null {
		return
	}

	c.pos = root
	c.reg.last = classStart

	for c.more() {
		c.reg.err = false

		switch c.peek() {
		case proto.PackageDeclaration:
			c.execute(c.packageDeclaration)
		case proto.AutoImports:
			c.skip()
			c.autoImports()
		case proto.ClassDeclaration, proto.EnumDeclaration, proto.InterfaceDeclaration:
			c.preTopLevel()
			c.dispatch(c.typeDeclaration)
		case proto.NewLine:
			c.skip()
		default:
			tag := c.skip()
			c.report("no-op item @ compilation unit '%s'", tag)
		}
	}
}

func (c *Compiler) packageDeclaration() {
	obj := c.next()
	c.imports.PackageName(c.buf.ObjectString(obj))

	c.keyword(java.Package)
	c.ws(render.Mandatory)
	c.id(obj)
	c.semicolon()
}

// autoImports marks where the interpreter writes the import declarations
// collected while compiling the rest of the unit.
func (c *Compiler) autoImports() {
	c.imports.Enable()

	if c.lastIs(classSymbol) {
		c.code.Add(render.OpAutoImports1, 0)
	} else {
		c.code.Add(render.OpAutoImports0, 0)
	}
	c.reg.last = classSymbol
}

func (c *Compiler) preTopLevel() {
	if c.lastIs(classSymbol) {
		c.ws(render.BeforeNextMember)
	}
	c.reg.topLevel = true
}

// typeParts holds the classified children of a type declaration.
type typeParts struct {
	annotations, modifiers, typeParams int32
	name                               int32
	extends, implements                int32
	constants, members                 int32
}

func typeKeyword(tag proto.Tag) java.Keyword {
	switch tag {
	case proto.EnumDeclaration:
		return java.Enum
	case proto.InterfaceDeclaration:
		return java.Interface
	}
	return java.Class
}

func (c *Compiler) typeDeclaration(tag proto.Tag) {
	saved := c.reg
	c.reg = saved.enterType()
	start := c.stack

	kw := typeKeyword(tag)
	d := typeParts{none, none, none, none, none, none, none, none}

	for c.more() {
		switch c.peek() {
		case proto.Annotation:
			d.annotations = c.listAdd(d.annotations)
		case proto.Modifier, proto.Modifiers:
			d.modifiers = c.listAdd(d.modifiers)
		case proto.TypeParameter:
			d.typeParams = c.listAdd(d.typeParams)
		case proto.DeclarationName:
			d.name = c.singleSet(d.name)
		case proto.ExtendsClause:
			d.extends = c.listAdd(d.extends)
		case proto.ImplementsClause:
			d.implements = c.listAdd(d.implements)
		case proto.EnumConstant:
			d.constants = c.listAdd(d.constants)
		case proto.ClassDeclaration, proto.ConstructorDeclaration, proto.EnumDeclaration,
			proto.FieldDeclaration, proto.InterfaceDeclaration, proto.MethodDeclaration:
			d.members = c.listAdd(d.members)
		case proto.NewLine:
			c.skip()
		default:
			t := c.skip()
			c.report("no-op item @ %s declaration '%s'", kw, t)
		}
	}

	c.listExecute(d.annotations, c.annotation)
	c.listSwitch(d.modifiers, c.modifier)
	c.keyword(kw)
	c.typeName(d.name)

	if d.typeParams != none {
		c.typeParameters(d.typeParams)
		c.reg.last = classType
	}

	c.clauses(d.extends, java.Extends)
	c.clauses(d.implements, java.Implements)
	c.body(kw, d.constants, d.members)

	c.stack = start
	err := c.reg.err
	c.reg = saved
	c.reg.err = err
	c.reg.last = classSymbol
}

func (c *Compiler) typeName(slot int32) {
	var obj int32
	if slot == none {
		obj = c.unnamed("Unnamed")
	} else {
		obj = c.payload(slot)
	}

	c.reg.simpleName = obj
	if c.reg.topLevel {
		c.imports.FileName(c.reg.publicFound, c.buf.ObjectString(obj))
	}
	c.identifier(obj)
}

// clauses emits the extends or implements clauses in list as one clause.
func (c *Compiler) clauses(list int32, kw java.Keyword) {
	n := 0
	c.listExecute(list, func() {
		if n == 0 {
			c.keyword(kw)
		} else {
			c.comma()
		}
		n++
		c.typeList()
	})
}

func (c *Compiler) body(kw java.Keyword, constants, members int32) {
	c.symbol(java.LeftBrace)
	c.reg.last = classStart

	if constants == none && members == none {
		c.ws(render.BeforeEmptyBlockEnd)
	} else {
		c.indent(render.EnterBlock)

		switch {
		case constants != none:
			c.listExecute(constants, c.enumConstant)
			c.closeSlot()
			c.reg.last = classSymbol
		case kw == java.Enum:
			c.ws(render.BeforeFirstMember)
			c.semicolon()
		}

		c.listSwitch(members, c.bodyMember)

		c.indent(render.ExitBlock)
		c.ws(render.BeforeNonEmptyBlockEnd)
	}

	c.sym(java.RightBrace)
	c.reg.last = classSymbol
}

func (c *Compiler) bodyMember(tag proto.Tag) {
	c.reg.topLevel = false

	if c.lastIs(classStart) {
		c.ws(render.BeforeFirstMember)
	} else {
		c.ws(render.BeforeNextMember)
	}
	c.reg.last = classStart

	switch tag {
	case proto.ClassDeclaration, proto.EnumDeclaration, proto.InterfaceDeclaration:
		c.typeDeclaration(tag)
	case proto.ConstructorDeclaration:
		c.executable(true)
	case proto.MethodDeclaration:
		c.executable(false)
	case proto.FieldDeclaration:
		c.field()
	}
}

// enumConstant emits one constant and reserves the slot for the comma or
// semicolon that follows it.
func (c *Compiler) enumConstant() {
	switch c.reg.last {
	case classEnumConstant:
		c.patchSlot(java.Comma)
		c.ws(render.BeforeNextMember)
	case classStart:
		c.ws(render.BeforeFirstMember)
	default:
		c.ws(render.BeforeNextMember)
	}
	c.reg.last = classStart

	name, args := none, none
	for c.more() {
		switch c.peek() {
		case proto.DeclarationName:
			name = c.singleSet(name)
		case proto.Argument:
			if args == none {
				args = c.pos
			}
			c.skip()
		case proto.NewLine:
			c.skip()
		default:
			tag := c.skip()
			c.report("no-op item @ enum constant '%s'", tag)
		}
	}

	if name == none {
		c.identifier(c.unnamed("UNNAMED"))
	} else {
		c.identifier(c.payload(name))
	}

	if args != none {
		c.pos = args
		c.argumentList()
	}

	c.reserveSlot()
	c.reg.last = classEnumConstant
}

func (c *Compiler) annotation() {
	c.pre(preAnnotation)
	c.sym(java.At)
	c.reg.last = classStart

	if c.peek().IsType() {
		c.dispatch(c.typ)
	} else {
		c.report("annotation without a type")
	}

	if c.more() {
		c.sym(java.LeftParen)
		c.reg.last = classStart

		for n := 0; c.elemMore(); n++ {
			if !c.is(proto.Value) {
				tag := c.skip()
				c.raise("no-op item @ annotation '%s'", tag)
				continue
			}
			if n > 0 {
				c.comma()
			}
			c.execute(c.lang)
		}

		c.sym(java.RightParen)
	}

	c.reg.last = classAnnotation
}

func (c *Compiler) modifier(tag proto.Tag) {
	if tag == proto.Modifier {
		c.modifierKeyword(java.Keyword(c.next()))
		return
	}
	for n := c.next(); n > 0; n-- {
		c.modifierKeyword(java.Keyword(c.next()))
	}
}

func (c *Compiler) modifierKeyword(k java.Keyword) {
	c.pre(preModifier)

	switch k {
	case java.Abstract:
		c.reg.abstractFound = true
	case java.Public:
		c.reg.publicFound = true
	}

	c.kw(k)
	c.reg.last = classKeyword
}

func (c *Compiler) typeParameters(list int32) {
	c.sym(java.LeftAngle)
	c.reg.last = classStart

	n := 0
	c.listExecute(list, func() {
		if n > 0 {
			c.comma()
		}
		n++
		c.typeParameter()
	})

	c.sym(java.RightAngle)
}

// typeParameter emits a name and its bounds: T extends A & B.
func (c *Compiler) typeParameter() {
	bounds := 0
	for c.elemMore() {
		switch tag := c.peek(); {
		case tag == proto.DeclarationName:
			c.execute(c.name)
		case tag.IsType():
			if bounds == 0 {
				c.keyword(java.Extends)
			} else {
				c.symbol(java.Ampersand)
			}
			bounds++
			c.dispatch(c.typ)
		default:
			c.skip()
			c.raise("no-op item @ type parameter '%s'", tag)
		}
	}
}

func (c *Compiler) field() {
	start := c.stack
	annotations, modifiers, typ := none, none, none

classify:
	for c.more() {
		switch tag := c.peek(); {
		case tag == proto.Annotation:
			annotations = c.listAdd(annotations)
		case tag == proto.Modifier || tag == proto.Modifiers:
			modifiers = c.listAdd(modifiers)
		case tag.IsType():
			typ = c.singleSet(typ)
		case tag == proto.NewLine:
			c.skip()
		default:
			break classify
		}
	}

	c.listExecute(annotations, c.annotation)
	c.listSwitch(modifiers, c.modifier)

	if typ == none {
		c.report("field without a type")
	} else {
		c.singleSwitch(typ, c.typ)
	}

	c.variables()
	c.semicolon()

	c.stack = start
}

// variables emits the declarators under the cursor: name [= initializer], ...
func (c *Compiler) variables() {
	n := 0
	for c.elemMore() {
		if n > 0 {
			c.comma()
		}
		n++

		if c.is(proto.DeclarationName) {
			c.execute(c.name)
		} else {
			c.identifier(c.unnamed("unnamed"))
		}

		if c.more() && !c.is(proto.DeclarationName) {
			c.symbol(java.Assign)
			for c.more() && !c.is(proto.DeclarationName) {
				c.langItem()
			}
		}
	}

	if n == 0 {
		c.identifier(c.unnamed("unnamed"))
	}
}

// executableParts holds the classified children of a method or constructor.
type executableParts struct {
	annotations, modifiers, typeParams int32
	result, name                       int32
	params, statements                 int32
}

func (c *Compiler) executable(constructor bool) {
	start := c.stack
	c.reg.abstractFound = false

	what := "method"
	if constructor {
		what = "constructor"
	}

	d := executableParts{none, none, none, none, none, none, none}

	for c.more() {
		switch tag := c.peek(); {
		case tag == proto.Annotation:
			d.annotations = c.listAdd(d.annotations)
		case tag == proto.Modifier || tag == proto.Modifiers:
			d.modifiers = c.listAdd(d.modifiers)
		case tag == proto.TypeParameter:
			d.typeParams = c.listAdd(d.typeParams)
		case tag.IsType() || tag == proto.Void:
			d.result = c.singleSet(d.result)
		case tag == proto.DeclarationName:
			d.name = c.singleSet(d.name)
		case tag == proto.Parameter:
			d.params = c.listAdd(d.params)
		case tag == proto.Statement:
			d.statements = c.listAdd(d.statements)
		case tag == proto.NewLine:
			c.skip()
		default:
			c.skip()
			c.report("no-op item @ %s declaration '%s'", what, tag)
		}
	}

	c.listExecute(d.annotations, c.annotation)
	c.listSwitch(d.modifiers, c.modifier)

	if d.typeParams != none {
		switch c.reg.last {
		case classKeyword, classComment:
			c.ws(render.Optional)
		case classAnnotation:
			c.ws(render.AfterAnnotation)
		}
		c.typeParameters(d.typeParams)
		c.reg.last = classSymbol
	}

	var name int32
	if constructor {
		name = c.reg.simpleName
		if name == none {
			name = c.unnamed("Constructor")
		}
	} else {
		if d.result == none {
			c.voidKeyword()
		} else {
			c.singleSwitch(d.result, c.result)
		}

		if d.name == none {
			name = c.unnamed("unnamed")
		} else {
			name = c.payload(d.name)
		}
	}
	c.identifier(name)

	c.sym(java.LeftParen)
	c.reg.last = classStart

	n := 0
	c.listExecute(d.params, func() {
		if n > 0 {
			c.comma()
		}
		n++
		c.parameter()
	})

	c.sym(java.RightParen)
	c.reg.last = classSymbol

	c.executableBody(d.statements)

	c.stack = start
}

func (c *Compiler) result(tag proto.Tag) {
	if tag == proto.Void {
		c.voidKeyword()
		return
	}
	c.typ(tag)
}

func (c *Compiler) voidKeyword() {
	c.pre(preType)
	c.kw(java.Void)
	c.reg.last = classKeyword
}

func (c *Compiler) parameter() {
	for c.elemMore() {
		switch tag := c.peek(); {
		case tag == proto.Modifier || tag == proto.Modifiers:
			c.dispatch(c.modifier)
		case tag.IsType():
			c.dispatch(c.typ)
		case tag == proto.Ellipsis:
			c.skip()
			c.sym(java.Ellipsis)
			c.reg.last = classSymbol
		case tag == proto.DeclarationName:
			c.execute(c.name)
		default:
			c.skip()
			c.raise("no-op item @ parameter '%s'", tag)
		}
	}
}

func (c *Compiler) executableBody(statements int32) {
	if c.reg.abstractFound {
		c.semicolon()
		return
	}

	c.ws(render.Optional)
	c.sym(java.LeftBrace)

	if statements == none {
		c.ws(render.BeforeEmptyBlockEnd)
	} else {
		c.indent(render.EnterBlock)
		c.listExecute(statements, c.blockStatement)
		c.indent(render.ExitBlock)
		c.ws(render.BeforeNonEmptyBlockEnd)
	}

	c.sym(java.RightBrace)
	c.reg.last = classSymbol
}
