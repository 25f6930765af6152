package types

import "fmt"

// PathError reports an unusable scan root. It is the only error that is
// fatal to a whole run.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %q: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// ReadError reports a file that could not be read during traversal or
// hashing. The file is skipped and the run continues.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// DeleteError reports a single failed deletion. Sibling deletions in the
// same plan continue regardless.
type DeleteError struct {
	Path string
	Err  error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("delete %q: %v", e.Path, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// InputError reports a malformed operator token. It is never fatal; the
// resolver re-prompts.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }
