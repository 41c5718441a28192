package plot

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by container operations given a bad index.
var ErrIndexOutOfRange = errors.New("index out of range")

// InvariantError reports a violated precondition, such as mapping onto a
// zero-sized pixel rectangle. It is raised with panic, never returned:
// a bad mapping corrupts every tick and label placed afterwards.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("plot: %s: %s", e.Op, e.Msg)
}

func invariant(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
