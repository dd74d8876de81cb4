package types

// Namespace represents a slice of a project's resources. Its name is flat
// across the whole registry; the owning project is recorded on the metadata,
// not folded into the identity.
type Namespace struct {
	ResourceGroup `yaml:",inline"`

	Metadata ResourceMetadata `json:"metadata" yaml:"metadata"`
}

// NewNamespace creates a namespace owned by the given project ref. The ref is
// recorded verbatim; whether the project actually exists is not checked here.
func NewNamespace(project Ref, name string) *Namespace {
	metadata := NewMetadata(name)
	metadata.OwnerRef = &project

	return &Namespace{
		ResourceGroup: GroupNamespace,
		Metadata:      metadata,
	}
}

// ResourceRef implements Resource.
func (n *Namespace) ResourceRef() Ref {
	return GroupNamespace.RefFor(n.Metadata.Name)
}

// Validate checks that the namespace is well formed.
func (n *Namespace) Validate() error {
	if err := ValidateName(n.Metadata.Name); err != nil {
		return WrapValidationError(err, "invalid namespace")
	}
	if n.Metadata.OwnerRef == nil || n.Metadata.OwnerRef.IsZero() {
		return NewValidationError("invalid namespace: owning project ref is required")
	}
	return nil
}
