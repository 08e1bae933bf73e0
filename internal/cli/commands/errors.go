package commands

import "errors"

// ErrReported marks errors whose details were already written to the
// user. The root command skips printing them a second time; the exit
// code mapping still sees the underlying cause through Unwrap.
var ErrReported = errors.New("already reported")

type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

func (e *reportedError) Is(target error) bool {
	return target == ErrReported
}

// Reported wraps err as already shown to the user.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}
