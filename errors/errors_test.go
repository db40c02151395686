package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("error"), "try this fix")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "try this fix", hints[0])
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, Recovered(nil))
}

func TestRecovered(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "boom", "boom"},
		{"error", New("broken buffer"), "broken buffer"},
		{"runtime value", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Recovered(tt.value)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
		})
	}
}

func TestSentinels(t *testing.T) {
	err := NewInvalidDocumentError("unknown tag %q", "Bogus")
	assert.True(t, IsInvalidDocument(err))
	assert.Contains(t, err.Error(), "Bogus")
	assert.False(t, IsOutputExists(err))

	wrapped := Wrap(ErrOutputExists, "Foo.java")
	assert.True(t, IsOutputExists(wrapped))
	assert.False(t, IsInvalidDocument(nil))
}

func ExampleWrap() {
	baseErr := New("permission denied")
	err := Wrap(baseErr, "failed to write Foo.java")
	fmt.Println(err)
	// Output: failed to write Foo.java: permission denied
}
