package store

import (
	"context"

	"github.com/rzbill/registry/pkg/types"
)

// Read retrieves the resource under ref as the caller's declared type. It is
// the typed face of the erased Store.Get: the store stays ignorant of the
// universe of kinds while each call site stays type-safe.
func Read[T any](ctx context.Context, s Store, ref types.Ref) (*T, error) {
	var out T
	if err := s.Get(ctx, ref, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
