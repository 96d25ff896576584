package blind

import "errors"

// The closed set of failure conditions surfaced by this package.
//
// Every error returned by a fallible operation wraps exactly one of
// these sentinels, so callers can dispatch with errors.Is. A rejected
// signature is not an error; Verify reports it as a plain false.
var (
	// ErrInvalidEncoding indicates bytes that do not decode to a valid
	// group element or scalar: wrong length, an x coordinate off the
	// curve, a scalar not reduced modulo the group order, or the
	// identity element where a proper point is required.
	ErrInvalidEncoding = errors.New("blind: invalid encoding")

	// ErrRngFailure indicates that the secure randomness source failed.
	// It is propagated immediately; retrying without caller involvement
	// would risk masking a weak source.
	ErrRngFailure = errors.New("blind: randomness source failure")

	// ErrProtocolMisuse indicates an operation invoked out of sequence,
	// such as signing twice with the same session. The session is dead;
	// the caller must start over from a fresh one.
	ErrProtocolMisuse = errors.New("blind: protocol misuse")
)
