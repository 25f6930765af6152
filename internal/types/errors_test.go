package types

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathErrorUnwrap(t *testing.T) {
	err := &PathError{Path: "/nope", Err: os.ErrNotExist}
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "/nope")
}

func TestReadErrorUnwrap(t *testing.T) {
	cause := errors.New("device gone")
	err := &ReadError{Path: "/a/x.txt", Err: cause}
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "x.txt")
}

func TestDeleteErrorUnwrap(t *testing.T) {
	err := &DeleteError{Path: "/a/x.txt", Err: os.ErrPermission}
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestErrorsAsTaxonomy(t *testing.T) {
	var wrapped error = &ReadError{Path: "/f", Err: os.ErrClosed}

	var readErr *ReadError
	assert.True(t, errors.As(wrapped, &readErr))
	assert.Equal(t, "/f", readErr.Path)

	var pathErr *PathError
	assert.False(t, errors.As(wrapped, &pathErr))
}

func TestInputError(t *testing.T) {
	err := &InputError{Message: "index 9 out of range (1-3)"}
	assert.Equal(t, "index 9 out of range (1-3)", err.Error())
}
