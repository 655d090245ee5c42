package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFull  = New("full")
	errGone  = New("gone")
	errOther = New("other")
)

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errGone, "reserve capacity")

	assert.True(t, IsAny(wrapped, errFull, errGone))
	assert.False(t, IsAny(wrapped, errFull, errOther))
	assert.False(t, IsAny(nil, errFull))
}

func TestAsType(t *testing.T) {
	err := Wrapf(&codedError{code: 409}, "order %d", 7)

	coded, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, 409, coded.code)

	_, ok = AsType[*codedError](errOther)
	assert.False(t, ok)
}

func TestWrapKeepsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))
	assert.NoError(t, WithStack(nil))
	assert.Equal(t, "order 7: gone", Wrapf(errGone, "order %d", 7).Error())
}
