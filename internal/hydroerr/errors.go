package hydroerr

import "fmt"

// Error is a library-level error carrying a stable, machine-readable code.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any, for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target shares this error's Code, so wrapped instances
// still satisfy errors.Is(err, hydroerr.ErrNaNHeight) after Wrap.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// Malformed input errors: the core has no defined behaviour on these inputs
// and rejects them up front rather than producing silent garbage.
var (
	ErrNaNHeight         = &Error{Code: "NAN_HEIGHT", Message: "height field contains NaN"}
	ErrNegativeAdjacency = &Error{Code: "NEGATIVE_ADJACENCY", Message: "adjacency list contains a negative cell index"}
	ErrEmptyAdjacency    = &Error{Code: "EMPTY_ADJACENCY", Message: "a cell has an empty adjacency list"}
)

// ErrExhaustedShores indicates a mesh inconsistency: lake expansion reached
// an empty shore heap, meaning a depression has no boundary or downhill
// exit. This cannot happen on a connected mesh with a border; it is fatal.
var ErrExhaustedShores = &Error{Code: "EXHAUSTED_SHORES", Message: "lake expansion exhausted its shore queue"}

// ErrStaleLakeReference indicates an internal bug: after generate_lakes
// returns, some cell's association still points at a lake id that was
// dissolved by a merge.
var ErrStaleLakeReference = &Error{Code: "STALE_LAKE_REFERENCE", Message: "cell association references a dissolved lake"}

// Wrap attaches call-site context to a predefined error while preserving its
// code for errors.Is.
func Wrap(base *Error, context string) *Error {
	return &Error{Code: base.Code, Message: context, Err: base}
}
