package types

import "github.com/google/uuid"

// ResourceMetadata carries the common identifying fields of every resource.
type ResourceMetadata struct {
	// Human-readable name for the resource; part of its ref
	Name string `json:"name" yaml:"name"`

	// Unique identifier stamped at construction
	UID string `json:"uid,omitempty" yaml:"uid,omitempty"`

	// Labels attached to the resource for organization
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Annotations attached to the resource
	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`

	// OwnerRef names the resource that logically contains this one, e.g. a
	// namespace's owner is a project. At most one owner per resource, so
	// ownership forms a forest. The registry does not check that the owner
	// exists or that chains are acyclic; that is a concern for a higher
	// reconciliation layer. Omitted from serialized form when absent.
	OwnerRef *Ref `json:"ownerRef,omitempty" yaml:"ownerRef,omitempty"`
}

// NewMetadata returns metadata for a named resource with a fresh UID.
func NewMetadata(name string) ResourceMetadata {
	return ResourceMetadata{
		Name: name,
		UID:  uuid.New().String(),
	}
}

// ValidateName checks that a resource name follows DNS label conventions:
// lowercase alphanumerics and '-', not starting or ending with '-'.
func ValidateName(name string) error {
	if name == "" {
		return NewValidationError("resource name is required")
	}

	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
			return NewValidationError("resource name must consist of lowercase alphanumeric characters or '-'")
		}
	}

	if name[0] == '-' || name[len(name)-1] == '-' {
		return NewValidationError("resource name must not start or end with '-'")
	}

	return nil
}
