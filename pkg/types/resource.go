package types

// Resource is the capability every storable type implements: produce the ref
// that identifies it. The projection must be pure, derived only from the
// value's current fields; it never touches storage.
type Resource interface {
	ResourceRef() Ref
}
