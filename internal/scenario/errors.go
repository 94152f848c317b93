package scenario

import (
	"errors"
	"fmt"
)

// ErrUnsupportedErrorType is returned by BuildError when the requested
// error type is not in the registry.
var ErrUnsupportedErrorType = errors.New("unsupported error type")

// InvalidSequenceError reports a malformed progress step sequence.
type InvalidSequenceError struct {
	Index  int    // offending step, -1 when the sequence as a whole is bad
	Reason string
}

func (e *InvalidSequenceError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid progress sequence: %s", e.Reason)
	}
	return fmt.Sprintf("invalid progress sequence at step %d: %s", e.Index, e.Reason)
}
