// Package mmfile exposes a file's bytes as one read-only slice so that
// complete-mode parsers can borrow sub-slices without copying.
package mmfile

import "errors"

// ErrTooLarge is returned when a file does not fit in the address space.
var ErrTooLarge = errors.New("mmfile: file too large to map")

func noop() error { return nil }
