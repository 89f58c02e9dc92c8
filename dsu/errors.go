package dsu

import "errors"

// Sentinel errors for dsu operations. Call sites wrap them with context;
// match with errors.Is.
var (
	// ErrInvalidArgument indicates a malformed construction parameter (negative size).
	ErrInvalidArgument = errors.New("dsu: invalid argument")

	// ErrIndexOutOfRange indicates an index outside 0..Len()-1.
	ErrIndexOutOfRange = errors.New("dsu: index out of range")

	// ErrPreconditionFailed indicates a quick-find Union referenced an index
	// whose label was never initialized. The label array is left untouched.
	ErrPreconditionFailed = errors.New("dsu: precondition failed")

	// ErrUnknownStrategy indicates an unrecognized Strategy value or name.
	ErrUnknownStrategy = errors.New("dsu: unknown strategy")
)
