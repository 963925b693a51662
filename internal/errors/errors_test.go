package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	wrapped := Wrap(&codedError{code: "E42"}, "loading row")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "E42", got.code)

	_, ok = AsType[*codedError](io.EOF)
	assert.False(t, ok)
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrapf(io.ErrUnexpectedEOF, "reading %s", "body")

	assert.True(t, Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, "reading body: unexpected EOF", err.Error())
	assert.Nil(t, Wrap(nil, "nothing"))
}
