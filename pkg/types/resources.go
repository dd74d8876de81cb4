package types

import (
	"encoding/json"
	"fmt"
)

// Resources is a closed union over the resource variants a caller can read
// without knowing the concrete type ahead of time: a built-in Project or
// Namespace, or any other envelope carried as a Generic with a raw spec.
//
// Decoding tries each variant in order and the first structural match wins.
// That makes it a best-effort convenience for "read whatever is there", not a
// correctness guarantee; callers that know the kind should read the typed
// form instead. Backends never need this type.
type Resources struct {
	Project   *Project
	Namespace *Namespace
	Unknown   *Generic[json.RawMessage]
}

// Resource returns the variant that is set, or nil for an empty union.
func (r *Resources) Resource() Resource {
	switch {
	case r.Project != nil:
		return r.Project
	case r.Namespace != nil:
		return r.Namespace
	case r.Unknown != nil:
		return r.Unknown
	}
	return nil
}

// ResourceRef implements Resource, delegating to the set variant.
func (r *Resources) ResourceRef() Ref {
	if res := r.Resource(); res != nil {
		return res.ResourceRef()
	}
	return Ref{}
}

// MarshalJSON serializes the set variant's document.
func (r *Resources) MarshalJSON() ([]byte, error) {
	res := r.Resource()
	if res == nil {
		return nil, fmt.Errorf("empty resource union")
	}
	return json.Marshal(res)
}

// UnmarshalJSON decodes the first matching variant. Candidates are tried in
// declaration order: project, namespace, then the generic fallback.
func (r *Resources) UnmarshalJSON(data []byte) error {
	*r = Resources{}

	candidates := []func([]byte) bool{
		func(data []byte) bool {
			var p Project
			if err := json.Unmarshal(data, &p); err != nil || p.ResourceGroup != GroupProject {
				return false
			}
			r.Project = &p
			return true
		},
		func(data []byte) bool {
			var n Namespace
			if err := json.Unmarshal(data, &n); err != nil || n.ResourceGroup != GroupNamespace {
				return false
			}
			r.Namespace = &n
			return true
		},
		func(data []byte) bool {
			var g Generic[json.RawMessage]
			if err := json.Unmarshal(data, &g); err != nil || g.APIVersion == "" || g.Kind == "" {
				return false
			}
			r.Unknown = &g
			return true
		},
	}

	for _, match := range candidates {
		if match(data) {
			return nil
		}
	}

	return fmt.Errorf("document matches no resource variant")
}
