package dwgsvg

import "errors"

// Sentinel errors corresponding to the source's three error codes
// (§6). Callers compare with errors.Is.
var (
	ErrInvalidDWG = errors.New("dwgsvg: invalid or nil model")
	ErrIOError    = errors.New("dwgsvg: io error")
	ErrOutOfMem   = errors.New("dwgsvg: allocation failure")
)
