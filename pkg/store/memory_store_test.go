package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzbill/registry/pkg/types"
)

type repoSpec struct {
	URL string `json:"url"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	project := types.NewProject("test")
	require.NoError(t, s.Write(ctx, project))

	out, err := Read[types.Project](ctx, s, project.ResourceRef())
	require.NoError(t, err)
	assert.Equal(t, project, out)
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemoryStore()

	var out types.Namespace
	err := s.Get(context.Background(), types.Ref{APIVersion: "x", Kind: "y", Name: "z"}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsNotFound(err))
}

func TestMemoryStoreOverwrite(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	group := types.ResourceGroup{APIVersion: "josh/v1", Kind: "Repo"}
	first := types.NewGeneric(group, "controlplane", repoSpec{URL: "git://first"})
	second := types.NewGeneric(group, "controlplane", repoSpec{URL: "git://second"})
	require.Equal(t, first.ResourceRef(), second.ResourceRef())

	require.NoError(t, s.Write(ctx, first))
	require.NoError(t, s.Write(ctx, second))

	// The second write replaces the first; no duplicate entries per ref.
	out, err := Read[types.Generic[repoSpec]](ctx, s, first.ResourceRef())
	require.NoError(t, err)
	assert.Equal(t, "git://second", out.Spec.URL)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStoreOwnerLinkageScenario(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	project := types.NewProject("default")
	ns := types.NewNamespace(project.ResourceRef(), "default")

	require.NoError(t, s.Write(ctx, project))
	require.NoError(t, s.Write(ctx, ns))

	out, err := Read[types.Namespace](ctx, s, ns.ResourceRef())
	require.NoError(t, err)
	require.NotNil(t, out.Metadata.OwnerRef)
	assert.Equal(t, types.Ref{APIVersion: "core/v1", Kind: "project", Name: "default"}, *out.Metadata.OwnerRef)
}

func TestMemoryStoreGenericPayload(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	repo := types.NewGeneric(
		types.ResourceGroup{APIVersion: "josh/v1", Kind: "Repo"},
		"controlplane",
		repoSpec{URL: "https://example.com/controlplane.git"},
	)
	require.NoError(t, s.Write(ctx, repo))

	out, err := Read[types.Generic[repoSpec]](ctx, s, repo.ResourceRef())
	require.NoError(t, err)
	assert.Equal(t, repo, out)
	assert.Equal(t, repo.Spec, out.Spec)
}

func TestMemoryStoreSerializationError(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	project := types.NewProject("default")
	require.NoError(t, s.Write(ctx, project))

	// The stored document's metadata is an object; asking for a string
	// target is a shape mismatch, distinct from a lookup miss.
	var out struct {
		Metadata string `json:"metadata"`
	}
	err := s.Get(ctx, project.ResourceRef(), &out)
	require.Error(t, err)
	assert.True(t, IsSerializationError(err))
	assert.False(t, IsNotFound(err))

	var se *SerializationError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, project.ResourceRef(), se.Ref)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	project := types.NewProject("doomed")
	require.NoError(t, s.Write(ctx, project))
	require.NoError(t, s.Delete(ctx, project.ResourceRef()))

	var out types.Project
	assert.ErrorIs(t, s.Get(ctx, project.ResourceRef(), &out), ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, project.ResourceRef()), ErrNotFound)
}

func TestMemoryStoreResourcesUnionRead(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	project := types.NewProject("default")
	ns := types.NewNamespace(project.ResourceRef(), "default")
	require.NoError(t, s.Write(ctx, project))
	require.NoError(t, s.Write(ctx, ns))

	out, err := Read[types.Resources](ctx, s, ns.ResourceRef())
	require.NoError(t, err)
	require.NotNil(t, out.Namespace)
	assert.Equal(t, ns.ResourceRef(), out.ResourceRef())
}

func TestMemoryStoreResourceDefinitionRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	def, err := types.ProjectDefinition()
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, def))

	out, err := Read[types.ResourceDefinition](ctx, s, def.ResourceRef())
	require.NoError(t, err)
	assert.Equal(t, def, out)
}

func TestMemoryStoreWriteUnserializable(t *testing.T) {
	s := NewMemoryStore()

	bad := types.NewGeneric(
		types.ResourceGroup{APIVersion: "x/v1", Kind: "Bad"},
		"bad",
		make(chan int), // channels cannot be serialized
	)
	err := s.Write(context.Background(), bad)
	require.Error(t, err)
	assert.True(t, IsSerializationError(err))
	assert.Equal(t, 0, s.Len(), "failed write must leave no observable change")
}
