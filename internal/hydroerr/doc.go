// Package hydroerr provides standardized error values for the hydrology core.
//
// # Core Types
//
//   - Error: a library-level error carrying a machine-readable code and an
//     optional wrapped cause.
//
// # Usage
//
// Checking a predefined error:
//
//	if errors.Is(err, hydroerr.ErrNaNHeight) {
//	    // reject the input
//	}
//
// Wrapping a predefined error with call-site context:
//
//	if h != h {
//	    return hydroerr.Wrap(hydroerr.ErrNaNHeight, fmt.Sprintf("cell %d", i))
//	}
//
// # Error Categories
//
//   - Malformed input: ErrNaNHeight, ErrNegativeAdjacency, ErrEmptyAdjacency.
//   - Mesh inconsistency: ErrExhaustedShores.
//   - Implementation bugs caught by internal assertions: ErrStaleLakeReference.
package hydroerr
