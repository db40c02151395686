package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/javagen/code/java"
)

// Category membership written out tag by tag, independent of the range constants.
var membership = map[Category][]Tag{
	CategoryControl:         {EndElement, Noop, NewLine},
	CategoryType:            {ArrayType, ClassType, ParameterizedType, PrimitiveType, TypeVariable},
	CategoryTypeAux:         {ArrayDimension, Ellipsis, TypeParameter, Void},
	CategoryDeclaration:     {Annotation, AutoImports, ClassDeclaration, ConstructorDeclaration, DeclarationName, EnumConstant, EnumDeclaration, ExtendsClause, FieldDeclaration, ImplementsClause, InterfaceDeclaration, MethodDeclaration, Modifier, Modifiers, PackageDeclaration, Parameter, Statement},
	CategoryStatementStart:  {Block, If, Return, Super, Throw, Var},
	CategoryStatementPart:   {Argument, Else, Value},
	CategoryExpressionStart: {ArrayInitializer, New, NullLiteral, PrimitiveLiteral, StringLiteral, This, ExpressionName, Invoke},
	CategoryExpressionPart:  {ArrayAccess, AssignmentOperator, EqualityOperator, RelationalOperator, AdditiveOperator, MultiplicativeOperator, ConditionalOperator},
}

func contains(tags []Tag, t Tag) bool {
	for _, x := range tags {
		if x == t {
			return true
		}
	}
	return false
}

func TestTagRangesAreDisjoint(t *testing.T) {
	predicates := map[Category]func(Tag) bool{
		CategoryControl:         Tag.IsControl,
		CategoryType:            Tag.IsType,
		CategoryTypeAux:         Tag.IsTypeAux,
		CategoryDeclaration:     Tag.IsDeclaration,
		CategoryStatementStart:  Tag.IsStatementStart,
		CategoryStatementPart:   Tag.IsStatementPart,
		CategoryExpressionStart: Tag.IsExpressionStart,
		CategoryExpressionPart:  Tag.IsExpressionPart,
	}

	total := 0
	for _, tags := range membership {
		total += len(tags)
	}
	require.Len(t, AllTags(), total, "every tag belongs to exactly one category")

	// Sweep past both ends of the tag space as well.
	for tag := Tag(2); tag >= minTag-3; tag-- {
		matched := 0
		for cat, pred := range predicates {
			want := contains(membership[cat], tag)
			assert.Equal(t, want, pred(tag), "%s in %s", tag, cat)
			if pred(tag) {
				matched++
				assert.Equal(t, cat, CategoryOf(tag))
			}
		}
		if tag.Valid() {
			assert.Equal(t, 1, matched, "%s matched %d categories", tag, matched)
		} else {
			assert.Zero(t, matched, "%s is not a tag", tag)
			assert.Equal(t, CategoryInvalid, CategoryOf(tag))
		}
	}
}

func TestDerivedPredicates(t *testing.T) {
	operators := []Tag{AssignmentOperator, EqualityOperator, RelationalOperator, AdditiveOperator, MultiplicativeOperator, ConditionalOperator}
	continuations := []Tag{ExpressionName, Invoke}

	for _, tag := range AllTags() {
		assert.Equal(t, contains(operators, tag), tag.IsOperator(), tag.String())
		assert.Equal(t, contains(continuations, tag), tag.IsContinuation(), tag.String())
		assert.Equal(t, tag == NewLine, tag.IsWhitespace(), tag.String())
	}
}

func TestTagNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, tag := range AllTags() {
		name := tag.String()
		assert.NotContains(t, name, "Tag(", "tag %d has no name", int32(tag))
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
	assert.Equal(t, "Tag(7)", Tag(7).String())
}

func TestBufferGrowsByDoubling(t *testing.T) {
	b := NewBuffer(1)
	for i := int32(0); i < 1000; i++ {
		loc := b.Append(i)
		require.Equal(t, i, loc)
	}
	assert.Equal(t, 1000, b.Len())
	assert.Equal(t, 1024, b.Cap())
	for i := int32(0); i < 1000; i++ {
		assert.Equal(t, i, b.Get(i))
	}
}

func TestBufferScratch(t *testing.T) {
	b := NewBuffer(4)
	b.Append(1, 2)

	assert.Panics(t, func() { b.Set(1, 9) }, "recorded cells are read-only")

	b.Set(500, 7)
	assert.Equal(t, int32(7), b.Get(500))
	assert.Equal(t, 2, b.Len(), "scratch writes do not extend the recorded region")
	assert.Equal(t, int32(2), b.Get(1))
}

func TestObjectTable(t *testing.T) {
	b := NewBuffer(8)
	a := b.AddObject("a")
	tmp := b.AddTransient("diagnostic")
	assert.Equal(t, 2, b.NumObjects())
	assert.Equal(t, "diagnostic", b.ObjectString(tmp))

	b.TruncateObjects()
	assert.Equal(t, 1, b.NumObjects())
	assert.Equal(t, "a", b.Object(a))

	b.AddTransient("x")
	c := b.AddObject("c")
	assert.Equal(t, int32(1), c, "recording drops transient objects first")

	b.Reset()
	assert.Zero(t, b.NumObjects())
	assert.Zero(t, b.Len())
	assert.Equal(t, Null, b.Root())
}

func TestRecorder(t *testing.T) {
	b := NewBuffer(16)

	name := b.Name(DeclarationName, "a")
	typ := b.Keyword(PrimitiveType, java.Int)
	field := b.Element(FieldDeclaration, typ, name)
	b.CompilationUnit(field)

	require.NotEqual(t, Null, b.Root())
	root := b.Root()
	assert.Equal(t, int32(FieldDeclaration), b.Get(root))
	assert.Equal(t, field.Loc, b.Get(root+1))
	assert.Equal(t, int32(EndElement), b.Get(root+2))

	assert.Equal(t, int32(PrimitiveType), b.Get(field.Loc))
	assert.Equal(t, int32(java.Int), b.Get(typ.Loc))
	assert.Equal(t, "a", b.Object(b.Get(name.Loc)))

	ct := b.ClassType("java.util", "Map", "Entry")
	assert.Equal(t, "java.util", b.Object(b.Get(ct.Loc)))
	assert.Equal(t, int32(2), b.Get(ct.Loc+1))
	assert.Equal(t, "Entry", b.Object(b.Get(ct.Loc+3)))

	mods := b.Modifiers(java.Public, java.Final)
	assert.Equal(t, []int32{2, int32(java.Public), int32(java.Final)},
		[]int32{b.Get(mods.Loc), b.Get(mods.Loc + 1), b.Get(mods.Loc + 2)})
}

func TestOperatorTag(t *testing.T) {
	tests := []struct {
		sym  java.Symbol
		want Tag
	}{
		{java.Assign, AssignmentOperator},
		{java.Equal, EqualityOperator},
		{java.Less, RelationalOperator},
		{java.Minus, AdditiveOperator},
		{java.Star, MultiplicativeOperator},
		{java.OrOr, ConditionalOperator},
	}
	for _, tt := range tests {
		t.Run(tt.sym.String(), func(t *testing.T) {
			got, ok := OperatorTag(tt.sym)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsOperator())
		})
	}

	_, ok := OperatorTag(java.Comma)
	assert.False(t, ok)
	assert.Panics(t, func() { NewBuffer(1).Operator(java.Semicolon) })
}
