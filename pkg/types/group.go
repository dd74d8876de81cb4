package types

import "strings"

// APIVersionCore is the apiVersion shared by the built-in registry kinds.
const APIVersionCore = "core/v1"

// Kinds of the built-in resources.
const (
	// KindProject is the kind string for projects.
	KindProject = "project"

	// KindNamespace is the kind string for namespaces.
	KindNamespace = "namespace"

	// KindResourceDefinition is the kind string for resource definitions.
	KindResourceDefinition = "resourcedefinition"
)

// ResourceGroup declares what a resource is. It is embedded in every concrete
// kind so apiVersion and kind serialize flattened at the top level of the
// document rather than nested under a group key.
type ResourceGroup struct {
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`
	Kind       string `json:"kind" yaml:"kind"`
}

// Groups of the built-in resources. Constant per kind; only Generic carries a
// caller-chosen group.
var (
	GroupProject            = ResourceGroup{APIVersion: APIVersionCore, Kind: KindProject}
	GroupNamespace          = ResourceGroup{APIVersion: APIVersionCore, Kind: KindNamespace}
	GroupResourceDefinition = ResourceGroup{APIVersion: APIVersionCore, Kind: KindResourceDefinition}
)

// RefFor returns the ref for a named resource of this group.
func (g ResourceGroup) RefFor(name string) Ref {
	return Ref{APIVersion: g.APIVersion, Kind: g.Kind, Name: name}
}

// GroupVersion splits the apiVersion into its group and version parts, e.g.
// "core/v1" -> ("core", "v1"). An apiVersion with no slash is all version and
// belongs to the empty group.
func (g ResourceGroup) GroupVersion() (group, version string) {
	group, version, found := strings.Cut(g.APIVersion, "/")
	if !found {
		return "", g.APIVersion
	}
	return group, version
}
