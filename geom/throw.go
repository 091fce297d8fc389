package geom

import "github.com/pkg/errors"

// Threading error returns through every level of the ring-stitching
// recursion would bloat the clipping code for failures that indicate an
// internal inconsistency rather than bad input. Those paths panic with a
// clipError instead, and the public entry point recovers and converts to a
// plain error. Panics of any other type are re-raised untouched.

type clipError error

func fatalf(format string, args ...interface{}) {
	panic(clipError(errors.Errorf(format, args...)))
}

func recoverClipError(r interface{}) error {
	if r != nil {
		if ce, ok := r.(clipError); ok {
			return ce
		}
		panic(r)
	}
	return nil
}
