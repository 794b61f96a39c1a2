package render

import (
	"errors"
	"fmt"
)

// ErrRecursionLimitExceeded is returned when children nest deeper than the
// renderer allows, which includes slices that contain themselves.
var ErrRecursionLimitExceeded = errors.New("render: recursion limit exceeded")

// DepthError reports where the nesting limit was hit.
type DepthError struct {
	Tag   string // Tag being rendered when the limit was hit
	Limit int    // Configured maximum depth
}

// Error implements the error interface.
func (e *DepthError) Error() string {
	return fmt.Sprintf("render: children of %s nest deeper than %d levels", e.Tag, e.Limit)
}

// Is reports whether target is ErrRecursionLimitExceeded.
func (e *DepthError) Is(target error) bool {
	return target == ErrRecursionLimitExceeded
}
