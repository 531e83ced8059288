// Package instance loads ρMNK-landscape files and evaluates bitstrings
// against the M correlated NK fitness landscapes they describe.
//
// File format (spec §6), whitespace-separated tokens, comment lines
// beginning with 'c' skipped anywhere they occur:
//
//	[c-prefixed comment lines, any number]
//	p rMNK
//	<rho:float> <M:uint> <N:uint> <K:uint>
//	p links
//	<M·N·(K+1) unsigned ints, read in order (i, j, m)>
//	p tables
//	<M·N·2^(K+1) doubles, read in order (i, j, m)>
//
// Loading is strict: any missing header, non-numeric token, out-of-range
// index, or short read is reported as ErrMalformedInstance, wrapped with
// the offending token and its approximate source line.
package instance

import (
	"errors"
	"fmt"
)

// ErrMalformedInstance is the sentinel wrapped by every parse failure in
// Load. Callers discriminate with errors.Is(err, ErrMalformedInstance);
// the wrapped message carries the offending token/line for diagnostics.
var ErrMalformedInstance = errors.New("instance: malformed instance file")

// malformed wraps ErrMalformedInstance with positional context. It is the
// single error constructor used throughout load.go so every failure path
// is consistent and greppable.
func malformed(line int, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInstance, line, msg)
}
