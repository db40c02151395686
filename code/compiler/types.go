package compiler

import (
	"github.com/teranos/javagen/code/java"
	"github.com/teranos/javagen/code/proto"
)

// typ emits the type whose detail blob is under the cursor.
func (c *Compiler) typ(tag proto.Tag) {
	switch tag {
	case proto.ArrayType:
		c.arrayType()
	case proto.ClassType:
		c.classType()
	case proto.ParameterizedType:
		c.parameterizedType()
	case proto.PrimitiveType:
		c.pre(preType)
		c.kw(java.Keyword(c.next()))
		c.reg.last = classType
	case proto.TypeVariable:
		c.pre(preType)
		c.id(c.next())
		c.reg.last = classType
	default:
		c.raise("no-op type '%s'", tag)
	}
}

// typeList emits the types of the element under the cursor separated by commas.
func (c *Compiler) typeList() {
	for n := 0; c.elemMore(); n++ {
		if n > 0 {
			c.comma()
		}
		c.dispatch(c.typ)
	}
}

// classType writes the simple name when the import policy allows it and the
// qualified name otherwise. Nested types keep their enclosing names.
func (c *Compiler) classType() {
	pkg := c.next()
	count := int(c.next())
	first := c.pos

	c.names = c.names[:0]
	for range count {
		c.names = append(c.names, c.buf.ObjectString(c.next()))
	}

	k := c.imports.Resolve(c.buf.ObjectString(pkg), c.names)

	c.pre(preType)

	if k == 0 {
		if c.buf.ObjectString(pkg) != "" {
			c.id(pkg)
			c.sym(java.Dot)
		}
		k = count
	}

	for i := count - k; i < count; i++ {
		if i > count-k {
			c.sym(java.Dot)
		}
		c.id(c.buf.Get(first + int32(i)))
	}

	c.reg.last = classType
}

// parameterizedType: the first child is the raw type, the rest are its
// type arguments.
func (c *Compiler) parameterizedType() {
	if !c.more() {
		c.raise("parameterized type without a raw type")
		return
	}

	c.dispatch(c.typ)

	c.sym(java.LeftAngle)
	c.reg.last = classStart

	c.typeList()

	c.sym(java.RightAngle)
	c.reg.last = classType
}

// arrayType: the component type followed by one ArrayDimension per pair of brackets.
func (c *Compiler) arrayType() {
	if c.more() {
		c.dispatch(c.typ)
	}

	for c.more() {
		if tag := c.skip(); tag != proto.ArrayDimension {
			c.report("no-op item @ array type '%s'", tag)
			continue
		}
		c.sym(java.LeftBracket)
		c.sym(java.RightBracket)
	}

	c.reg.last = classType
}
