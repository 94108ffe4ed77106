package props

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPath marks a stored track key that fails to decode.
	ErrMalformedPath = errors.New("props: malformed path")
	// ErrNotFound marks a pointer that does not resolve to a leaf prop.
	ErrNotFound = errors.New("props: prop not found")
	// ErrTreeConflict marks a track projection whose pointer collides with an
	// already inserted binding. Resolution guarantees disjoint pointers, so a
	// conflict indicates a bug upstream and is never silently overwritten.
	ErrTreeConflict = errors.New("props: track tree conflict")
	// ErrNoEvaluator reports a sanitize expression with no evaluator to run it.
	ErrNoEvaluator = errors.New("props: evaluator not configured")
)

// PathError captures the offending stored key alongside the decode failure.
type PathError struct {
	Key string
	Err error
}

func (e *PathError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("props: path %q: %v", e.Key, e.Err)
}

func (e *PathError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func malformedPath(key string, cause error) error {
	return &PathError{Key: key, Err: fmt.Errorf("%w: %v", ErrMalformedPath, cause)}
}
