package compiler

import "github.com/teranos/javagen/code/proto"

func (c *Compiler) peek() proto.Tag { return proto.Tag(c.buf.Get(c.pos)) }

func (c *Compiler) next() int32 {
	v := c.buf.Get(c.pos)
	c.pos++
	return v
}

func (c *Compiler) is(tag proto.Tag) bool { return c.peek() == tag }

// more reports whether the current element has children left.
func (c *Compiler) more() bool { return c.peek() != proto.EndElement }

// elemMore is more, except that a pending error stops the iteration.
func (c *Compiler) elemMore() bool {
	if c.failed() {
		return false
	}
	return c.more()
}

// peekPastNewLines returns the first tag at or after the cursor that is not a new line.
func (c *Compiler) peekPastNewLines() proto.Tag {
	for i := c.pos; ; i += 2 {
		tag := proto.Tag(c.buf.Get(i))
		if !tag.IsWhitespace() {
			return tag
		}
	}
}

// execute runs fn at the detail blob of the reference under the cursor and
// returns to the next reference.
func (c *Compiler) execute(fn func()) proto.Tag {
	tag := proto.Tag(c.next())
	loc := c.next()

	ret := c.pos
	c.pos = loc
	fn()
	c.pos = ret

	return tag
}

// dispatch is execute for handlers that branch on the tag.
func (c *Compiler) dispatch(fn func(proto.Tag)) proto.Tag {
	tag := proto.Tag(c.next())
	loc := c.next()

	ret := c.pos
	c.pos = loc
	fn(tag)
	c.pos = ret

	return tag
}

// at runs fn with the cursor at loc.
func (c *Compiler) at(loc int32, fn func()) {
	ret := c.pos
	c.pos = loc
	fn()
	c.pos = ret
}

// payload returns the first payload cell of the leaf held by slot.
func (c *Compiler) payload(slot int32) int32 {
	return c.buf.Get(c.buf.Get(slot + 1))
}

// skip steps over the reference under the cursor.
func (c *Compiler) skip() proto.Tag {
	tag := proto.Tag(c.next())
	c.pos++
	return tag
}

// push writes v at the top of the scratch area and returns its location.
func (c *Compiler) push(v int32) int32 {
	loc := c.stack
	c.buf.Set(loc, v)
	c.stack++
	return loc
}
