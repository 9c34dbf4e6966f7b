package vec

import "errors"

// ErrOutOfRange indicates a checked access at an index not below Len.
var ErrOutOfRange = errors.New("vec: index out of range")
