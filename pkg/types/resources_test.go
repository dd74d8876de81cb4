package types

import (
	"encoding/json"
	"testing"
)

func TestResourcesDecode(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string // which variant should be set
	}{
		{
			name: "project",
			doc:  `{"apiVersion":"core/v1","kind":"project","metadata":{"name":"default"}}`,
			want: "project",
		},
		{
			name: "namespace",
			doc:  `{"apiVersion":"core/v1","kind":"namespace","metadata":{"name":"default","ownerRef":{"apiVersion":"core/v1","kind":"project","name":"default"}}}`,
			want: "namespace",
		},
		{
			name: "custom kind falls through to the generic variant",
			doc:  `{"apiVersion":"josh/v1","kind":"Repo","metadata":{"name":"controlplane"},"spec":{"url":"git://x"}}`,
			want: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Resources
			if err := json.Unmarshal([]byte(tt.doc), &r); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			got := ""
			switch {
			case r.Project != nil:
				got = "project"
			case r.Namespace != nil:
				got = "namespace"
			case r.Unknown != nil:
				got = "unknown"
			}
			if got != tt.want {
				t.Fatalf("decoded variant %q, want %q", got, tt.want)
			}
			if r.ResourceRef().IsZero() {
				t.Fatal("decoded union has zero ref")
			}
		})
	}
}

func TestResourcesDecodeRejectsNonResources(t *testing.T) {
	for _, doc := range []string{`{}`, `{"metadata":{"name":"x"}}`, `42`, `"text"`} {
		var r Resources
		if err := json.Unmarshal([]byte(doc), &r); err == nil {
			t.Errorf("unmarshal(%s) expected error, got variant %#v", doc, r.Resource())
		}
	}
}

func TestResourcesRoundTrip(t *testing.T) {
	project := NewProject("default")
	u := Resources{Project: project}

	data, err := json.Marshal(&u)
	if err != nil {
		t.Fatalf("marshal union: %v", err)
	}

	var back Resources
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal union: %v", err)
	}
	if back.Project == nil {
		t.Fatalf("round trip lost the project variant: %s", data)
	}
	if back.Project.Metadata.Name != "default" {
		t.Fatalf("round trip changed the name: %#v", back.Project)
	}
}
