package store

import (
	"errors"
	"fmt"

	"github.com/rzbill/registry/pkg/types"
)

// The closed error set of the store contract. Backends surface nothing else:
// a miss is ErrNotFound, a value that cannot be encoded or decoded is a
// *SerializationError, and any backend-level failure (contention, I/O) is
// ErrUnavailable, which callers should treat as retryable.
var (
	// ErrNotFound indicates no resource is stored under the given ref.
	ErrNotFound = errors.New("resource not found")

	// ErrUnavailable indicates a backend failure unrelated to the resource
	// itself. Retryable.
	ErrUnavailable = errors.New("store unavailable")
)

// SerializationError reports a value that could not be serialized on write,
// or a stored document that does not match the type requested on read.
type SerializationError struct {
	Ref types.Ref
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization failed for %s: %v", e.Ref, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSerializationError reports whether err is a serialization failure.
func IsSerializationError(err error) bool {
	var se *SerializationError
	return errors.As(err, &se)
}
