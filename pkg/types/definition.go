package types

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ResourceDefinition is a meta-resource describing the schema a kind's
// instances must satisfy. It is itself a storable resource.
type ResourceDefinition struct {
	ResourceGroup `yaml:",inline"`

	Metadata ResourceMetadata `json:"metadata" yaml:"metadata"`

	Spec ResourceDefinitionSpec `json:"spec" yaml:"spec"`
}

// ResourceDefinitionSpec declares the group, naming, and schema versions of a
// defined kind.
type ResourceDefinitionSpec struct {
	Group    string            `json:"group" yaml:"group"`
	Names    ResourceNames     `json:"names" yaml:"names"`
	Versions []ResourceVersion `json:"versions" yaml:"versions"`
}

// ResourceNames holds the naming of a defined kind.
type ResourceNames struct {
	Kind string `json:"kind" yaml:"kind"`
}

// ResourceVersion captures the schema of one version of a kind. Definitions
// may list several versions; the registry does not reconcile between them.
type ResourceVersion struct {
	Name   string        `json:"name" yaml:"name"`
	Schema SchemaVariant `json:"schema" yaml:"schema"`
}

// SchemaVariant is a tagged union over the supported schema formats. JSON
// Schema is the only case today; exactly one field must be set.
type SchemaVariant struct {
	JSONSchema json.RawMessage `json:"jsonSchema,omitempty" yaml:"jsonSchema,omitempty"`
}

// NewResourceDefinition creates a definition named after the kind it defines,
// e.g. "project.core".
func NewResourceDefinition(spec ResourceDefinitionSpec) *ResourceDefinition {
	name := spec.Names.Kind
	if spec.Group != "" {
		name = fmt.Sprintf("%s.%s", spec.Names.Kind, spec.Group)
	}

	return &ResourceDefinition{
		ResourceGroup: GroupResourceDefinition,
		Metadata:      NewMetadata(name),
		Spec:          spec,
	}
}

// ResourceRef implements Resource.
func (d *ResourceDefinition) ResourceRef() Ref {
	return GroupResourceDefinition.RefFor(d.Metadata.Name)
}

// ProjectDefinition returns the definition of the built-in project kind. Its
// single version's schema validates every project the constructors produce.
func ProjectDefinition() (*ResourceDefinition, error) {
	return definitionFor(GroupProject, &Project{})
}

// NamespaceDefinition returns the definition of the built-in namespace kind.
func NamespaceDefinition() (*ResourceDefinition, error) {
	return definitionFor(GroupNamespace, &Namespace{})
}

// definitionFor builds a single-version definition for a built-in kind, with
// the schema reflected from the kind's Go shape so it cannot drift from what
// the constructors serialize.
func definitionFor(group ResourceGroup, instance any) (*ResourceDefinition, error) {
	schema, err := schemaFor(instance)
	if err != nil {
		return nil, fmt.Errorf("reflect schema for %s: %w", group.Kind, err)
	}

	g, version := group.GroupVersion()
	return NewResourceDefinition(ResourceDefinitionSpec{
		Group: g,
		Names: ResourceNames{Kind: group.Kind},
		Versions: []ResourceVersion{{
			Name:   version,
			Schema: SchemaVariant{JSONSchema: schema},
		}},
	}), nil
}

// schemaFor reflects a JSON Schema document from a resource's Go shape. The
// top-level type is expanded in place and nested types are inlined, so the
// document stands alone with apiVersion, kind, and metadata as top-level
// properties.
func schemaFor(instance any) (json.RawMessage, error) {
	reflector := jsonschema.Reflector{
		Anonymous:                 true,
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}

	return json.Marshal(reflector.Reflect(instance))
}
