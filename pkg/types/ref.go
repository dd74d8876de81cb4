package types

import "fmt"

// Ref is the canonical reference to a resource in the registry: the
// (apiVersion, kind, name) triple. It is a plain comparable value, so two
// independently constructed refs with the same fields are equal and hash the
// same, which is what store lookups rely on.
type Ref struct {
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`
	Kind       string `json:"kind" yaml:"kind"`
	Name       string `json:"name" yaml:"name"`
}

// IsZero reports whether the ref has no fields set.
func (r Ref) IsZero() bool {
	return r == Ref{}
}

// String renders the ref as apiVersion/kind/name, e.g. "core/v1/project/default".
func (r Ref) String() string {
	return fmt.Sprintf("%s/%s/%s", r.APIVersion, r.Kind, r.Name)
}
