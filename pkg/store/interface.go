// Package store provides the persistence boundary of the registry: a typed
// get/put contract keyed by a resource ref, with pluggable backends.
package store

import (
	"context"

	"github.com/rzbill/registry/pkg/types"
)

// Store is the contract every backend honors. A store is a flat map from ref
// to serialized document: kind polymorphism lives entirely in serialization,
// so backends never maintain a registry of resource kinds.
//
// Every operation is all-or-nothing; no partial write is observable. Errors
// form the closed set in errors.go. A read immediately after another caller's
// write is only guaranteed to observe it if the callers order themselves.
type Store interface {
	// Open initializes and opens the store.
	Open(path string) error

	// Close closes the store and releases resources.
	Close() error

	// Write serializes the resource and stores it under its own ref,
	// overwriting any prior value there.
	Write(ctx context.Context, res types.Resource) error

	// Get retrieves the resource stored under ref and deserializes it into
	// out, which must be a pointer to the caller's expected type. A miss
	// returns ErrNotFound; a document that does not decode into out returns
	// a *SerializationError.
	Get(ctx context.Context, ref types.Ref, out interface{}) error

	// Delete removes the resource stored under ref. A miss returns
	// ErrNotFound.
	Delete(ctx context.Context, ref types.Ref) error
}
