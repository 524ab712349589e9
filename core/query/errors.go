package query

import "errors"

// Compilation errors. All of them are deterministic, caller-input-driven and
// surfaced synchronously by the builder or compiler call that detected them;
// none is transient and none warrants a retry.
var (
	// ErrMalformedFilter is returned when a filter with zero terms is
	// attached to a query or compiled.
	ErrMalformedFilter = errors.New("arachne/query: malformed filter: no terms")

	// ErrInvalidPrune is returned when a prune filter is attached to a
	// plain collection source. PRUNE is only meaningful on traversals.
	ErrInvalidPrune = errors.New("arachne/query: prune on non-traversal source")

	// ErrInvalidTraversalDepth is returned when a traversal's minimum depth
	// exceeds its maximum depth.
	ErrInvalidTraversalDepth = errors.New("arachne/query: invalid traversal depth bounds")

	// ErrUnsupportedOperand is returned when a comparison operand cannot be
	// serialized to a safe AQL literal.
	ErrUnsupportedOperand = errors.New("arachne/query: unsupported operand type")
)

// IsMalformedFilterErr returns true if err is or wraps ErrMalformedFilter.
func IsMalformedFilterErr(err error) bool {
	return errors.Is(err, ErrMalformedFilter)
}

// IsInvalidPruneErr returns true if err is or wraps ErrInvalidPrune.
func IsInvalidPruneErr(err error) bool {
	return errors.Is(err, ErrInvalidPrune)
}

// IsInvalidTraversalDepthErr returns true if err is or wraps
// ErrInvalidTraversalDepth.
func IsInvalidTraversalDepthErr(err error) bool {
	return errors.Is(err, ErrInvalidTraversalDepth)
}

// IsUnsupportedOperandErr returns true if err is or wraps
// ErrUnsupportedOperand.
func IsUnsupportedOperandErr(err error) bool {
	return errors.Is(err, ErrUnsupportedOperand)
}
