package compiler

import "github.com/teranos/javagen/code/proto"

// none is the handle of a list or slot that was never written.
const none int32 = -1

// Threaded list layout in the scratch area:
//
//	head: location of the tail node's next cell
//	node: tag, detail location, next node location or proto.Null
//
// The first node always follows its head directly.

// listAdd appends the reference under the cursor to list and returns the
// list handle, creating the list when it is none.
func (c *Compiler) listAdd(list int32) int32 {
	if list == none {
		list = c.push(proto.Null)
	} else {
		tailNext := c.buf.Get(list)
		c.buf.Set(tailNext, c.stack)
	}

	c.push(c.next())
	c.push(c.next())
	next := c.push(proto.Null)
	c.buf.Set(list, next)

	return list
}

// listSwitch calls fn for every node of list in append order, with the
// cursor at the node's detail blob.
func (c *Compiler) listSwitch(list int32, fn func(proto.Tag)) {
	if list == none {
		return
	}

	ret := c.pos
	for node := list + 1; ; {
		tag := proto.Tag(c.buf.Get(node))
		c.pos = c.buf.Get(node + 1)
		fn(tag)

		next := c.buf.Get(node + 2)
		if next == proto.Null {
			break
		}
		node = next
	}
	c.pos = ret
}

// listExecute is listSwitch for handlers that do not need the tag.
func (c *Compiler) listExecute(list int32, fn func()) {
	c.listSwitch(list, func(proto.Tag) { fn() })
}

// singleSet stores the reference under the cursor in slot, overwriting a
// previous value, and returns the slot handle.
func (c *Compiler) singleSet(slot int32) int32 {
	tag := c.next()
	loc := c.next()

	if slot == none {
		slot = c.push(tag)
		c.push(loc)
	} else {
		c.buf.Set(slot, tag)
		c.buf.Set(slot+1, loc)
	}

	return slot
}

// singleSwitch calls fn with the cursor at the detail blob held by slot.
func (c *Compiler) singleSwitch(slot int32, fn func(proto.Tag)) {
	ret := c.pos
	c.pos = c.buf.Get(slot + 1)
	fn(proto.Tag(c.buf.Get(slot)))
	c.pos = ret
}
