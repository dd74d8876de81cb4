package store

import (
	"fmt"

	"github.com/rzbill/registry/pkg/types"
)

// MakeKey creates the standardized on-disk key for a ref.
func MakeKey(ref types.Ref) []byte {
	return []byte(fmt.Sprintf("%s/%s/%s", ref.APIVersion, ref.Kind, ref.Name))
}
