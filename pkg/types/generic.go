package types

// Generic represents a user-given resource: an envelope around an arbitrary
// serializable spec payload. Unlike the built-in kinds its group is instance
// data, chosen by the caller, which is what lets new kinds be defined without
// declaring a new Go type. The group is not validated against any registry of
// definitions here.
type Generic[T any] struct {
	ResourceGroup `yaml:",inline"`

	Metadata ResourceMetadata `json:"metadata" yaml:"metadata"`

	Spec T `json:"spec" yaml:"spec"`
}

// NewGeneric creates a generic resource of the given group wrapping spec.
func NewGeneric[T any](group ResourceGroup, name string, spec T) *Generic[T] {
	return &Generic[T]{
		ResourceGroup: group,
		Metadata:      NewMetadata(name),
		Spec:          spec,
	}
}

// ResourceRef implements Resource. The ref is derived from the instance's own
// group, not a kind constant.
func (g *Generic[T]) ResourceRef() Ref {
	return g.ResourceGroup.RefFor(g.Metadata.Name)
}

// Validate checks that the envelope is well formed. The spec payload is
// opaque and not validated.
func (g *Generic[T]) Validate() error {
	if g.APIVersion == "" || g.Kind == "" {
		return NewValidationError("invalid resource: apiVersion and kind are required")
	}
	if g.Metadata.Name == "" {
		return NewValidationError("invalid resource: metadata.name is required")
	}
	return nil
}
