package engine

import "github.com/pingcap/errors"

// Construction-time errors. Once an Engine is built, per-cell dispatch
// inside Tick never returns an error (spec.md §7: no recoverable error
// class inside run()); these only guard the boundary.
var (
	ErrInvalidGridSize = errors.New("engine: grid width and height must be positive")
	ErrInvalidOptSize  = errors.New("engine: opt size must be non-negative")
	ErrInvalidChunk    = errors.New("engine: chunk size must be positive")
)

// wrapf is a thin convenience around errors.Annotatef, kept to one call
// site style across the engine's boundary code.
func wrapf(err error, format string, args ...any) error {
	return errors.Annotatef(err, format, args...)
}
