package proto

import (
	"fmt"
	"math"
)

// Null marks an absent location: an empty list, an unset slot, the end of a chain.
// It is distinct from every tag and every valid index.
const Null int32 = math.MinInt32

const minCapacity = 64

// Buffer holds one recorded instruction tree.
//
// Cells [0, Len()) are the recorded region and never move once written.
// Cells past Len() are scratch space a compiler may use for its lists and
// slots through Set; scratch content is only meaningful during one compilation.
type Buffer struct {
	cells []int32
	n     int

	objects  []any
	recorded int

	root int32
}

// NewBuffer returns an empty buffer with room for capacity cells.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{
		cells: make([]int32, capacity),
		root:  Null,
	}
}

// Reset empties the buffer, keeping its allocations.
func (b *Buffer) Reset() {
	b.n = 0
	clear(b.objects)
	b.objects = b.objects[:0]
	b.recorded = 0
	b.root = Null
}

// Len returns the length of the recorded region.
func (b *Buffer) Len() int { return b.n }

// Cap returns the number of allocated cells.
func (b *Buffer) Cap() int { return len(b.cells) }

// Root returns the location of the compilation unit element, or Null if none was recorded.
func (b *Buffer) Root() int32 { return b.root }

// SetRoot marks loc as the compilation unit element.
func (b *Buffer) SetRoot(loc int32) { b.root = loc }

// Append records values at the end of the recorded region and returns the
// location of the first one.
func (b *Buffer) Append(values ...int32) int32 {
	start := b.n
	b.grow(b.n + len(values))
	copy(b.cells[b.n:], values)
	b.n += len(values)
	return int32(start)
}

// Get returns the cell at i.
func (b *Buffer) Get(i int32) int32 {
	return b.cells[i]
}

// Set writes v at scratch location i, growing the buffer if needed.
// The recorded region is read-only.
func (b *Buffer) Set(i int32, v int32) {
	if int(i) < b.n {
		panic(fmt.Sprintf("proto: write to recorded cell %d (len %d)", i, b.n))
	}
	b.grow(int(i) + 1)
	b.cells[i] = v
}

// grow doubles the cell slice until it holds at least size cells.
func (b *Buffer) grow(size int) {
	if size <= len(b.cells) {
		return
	}
	newCap := len(b.cells) * 2
	if newCap < minCapacity {
		newCap = minCapacity
	}
	for newCap < size {
		newCap *= 2
	}
	cells := make([]int32, newCap)
	copy(cells, b.cells)
	b.cells = cells
}

// AddObject stores v in the object table and returns its index.
// Objects added through AddObject survive TruncateObjects.
func (b *Buffer) AddObject(v any) int32 {
	b.TruncateObjects()
	b.objects = append(b.objects, v)
	b.recorded = len(b.objects)
	return int32(b.recorded - 1)
}

// AddTransient stores v in the object table until the next TruncateObjects.
// Compilers use it for values they synthesize, such as diagnostic messages.
func (b *Buffer) AddTransient(v any) int32 {
	b.objects = append(b.objects, v)
	return int32(len(b.objects) - 1)
}

// TruncateObjects drops every transient object.
func (b *Buffer) TruncateObjects() {
	clear(b.objects[b.recorded:])
	b.objects = b.objects[:b.recorded]
}

// Object returns the object at index i.
func (b *Buffer) Object(i int32) any {
	return b.objects[i]
}

// ObjectString returns the object at index i formatted as text.
func (b *Buffer) ObjectString(i int32) string {
	switch v := b.objects[i].(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// NumObjects returns the size of the object table, transient objects included.
func (b *Buffer) NumObjects() int { return len(b.objects) }
