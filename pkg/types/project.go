package types

// Project represents the broadest tenant. It owns no other resource and is
// the root of every ownership chain.
type Project struct {
	ResourceGroup `yaml:",inline"`

	Metadata ResourceMetadata `json:"metadata" yaml:"metadata"`
}

// NewProject creates a project with the fixed core/v1 group.
func NewProject(name string) *Project {
	return &Project{
		ResourceGroup: GroupProject,
		Metadata:      NewMetadata(name),
	}
}

// ResourceRef implements Resource.
func (p *Project) ResourceRef() Ref {
	return GroupProject.RefFor(p.Metadata.Name)
}

// Validate checks that the project is well formed.
func (p *Project) Validate() error {
	return WrapValidationError(ValidateName(p.Metadata.Name), "invalid project")
}
