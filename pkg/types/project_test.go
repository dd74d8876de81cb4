package types

import (
	"encoding/json"
	"testing"
)

func TestProjectRef(t *testing.T) {
	p := NewProject("default")

	want := Ref{APIVersion: "core/v1", Kind: "project", Name: "default"}
	if got := p.ResourceRef(); got != want {
		t.Fatalf("ResourceRef() = %#v, want %#v", got, want)
	}

	// Two independently constructed projects with the same name must derive
	// equal refs, regardless of differing UIDs.
	other := NewProject("default")
	if p.ResourceRef() != other.ResourceRef() {
		t.Fatalf("refs of identically named projects differ: %v vs %v", p.ResourceRef(), other.ResourceRef())
	}
}

func TestProjectEnvelopeFlattening(t *testing.T) {
	data, err := json.Marshal(NewProject("default"))
	if err != nil {
		t.Fatalf("marshal project: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}

	// apiVersion and kind sit at the top level, not nested under a group key.
	for _, key := range []string{"apiVersion", "kind", "metadata"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("document missing top-level %q: %s", key, data)
		}
	}
	if _, ok := doc["group"]; ok {
		t.Errorf("document nests the envelope under a group key: %s", data)
	}

	var metadata map[string]json.RawMessage
	if err := json.Unmarshal(doc["metadata"], &metadata); err != nil {
		t.Fatalf("unmarshal metadata: %v", err)
	}

	// An absent owner is omitted entirely, never serialized as null.
	if raw, ok := metadata["ownerRef"]; ok {
		t.Errorf("ownerRef should be omitted when absent, got %s", raw)
	}
}

func TestProjectValidate(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{name: "default"},
		{name: "my-project-01"},
		{name: "", wantErr: true},
		{name: "UpperCase", wantErr: true},
		{name: "-leading", wantErr: true},
		{name: "trailing-", wantErr: true},
		{name: "under_score", wantErr: true},
	}

	for _, tt := range tests {
		err := NewProject(tt.name).Validate()
		if tt.wantErr && err == nil {
			t.Errorf("Validate(%q) expected error, got none", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Validate(%q) unexpected error: %v", tt.name, err)
		}
		if tt.wantErr && !IsValidationError(err) {
			t.Errorf("Validate(%q) returned %T, want *ValidationError", tt.name, err)
		}
	}
}
