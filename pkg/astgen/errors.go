package astgen

import "fmt"

// ReadError reports that the target file could not be read at the start of
// a run. Nothing has been written when it is returned; the target is
// untouched.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read target %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports that the regenerated content could not be persisted.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write target %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
