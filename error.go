package wikitext

import "github.com/pkg/errors"

// ResourceError is the sole error this package returns (spec.md §7.2).
// It plays the same structural role as the teacher's Error type in
// error.go (Sender/position metadata wrapping a cause), rebuilt on
// github.com/pkg/errors so the original cause survives through
// Cause()/Unwrap() the way periwiki's service layer expects errors to.
type ResourceError struct {
	// Depth is the frame depth at which the ceiling was hit.
	Depth int
	cause error
}

func (e *ResourceError) Error() string {
	return errors.Wrapf(e.cause, "wikitext: frame depth exceeded (limit %d)", maxFrameDepth).Error()
}

func (e *ResourceError) Unwrap() error { return e.cause }
func (e *ResourceError) Cause() error  { return e.cause }

var errDepthExceeded = errors.New("too deeply nested")

func newResourceError(depth int) *ResourceError {
	return &ResourceError{Depth: depth, cause: errDepthExceeded}
}

// depthLimitSignal is panicked by depthGuard when maxFrameDepth is
// exceeded and recovered at the top of Tokenize; this keeps every
// intermediate handler free of plumbing an error return through what
// is otherwise a boolean success/fail contract (spec.md §4.9).
type depthLimitSignal struct{ depth int }
