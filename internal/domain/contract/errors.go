package contract

import "errors"

// ErrNotFound is returned by repositories when no document matches. Callers
// test for it with errors.Is.
var ErrNotFound = errors.New("not found")
