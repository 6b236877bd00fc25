package field

import "errors"

// Domain errors for gridded fields. All are fatal and detected eagerly at
// the point of mismatch; the kernel never retries.
var (
	// ErrShapeMismatch indicates field or grid dimensions that disagree.
	ErrShapeMismatch = errors.New("field: shape mismatch")

	// ErrNonMonotonicDepth indicates a depth axis that is not strictly increasing.
	ErrNonMonotonicDepth = errors.New("field: depth axis not monotonically increasing")

	// ErrBadDepthSource indicates a depth argument that is neither a depth
	// axis nor a grid carrying one.
	ErrBadDepthSource = errors.New("field: unsupported depth axis source")
)
