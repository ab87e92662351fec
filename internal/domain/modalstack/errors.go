package modalstack

import "errors"

// ErrOverflow is returned by Push when the stack is at its limit.
var ErrOverflow = errors.New("modal stack limit reached")
