package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitinmeharia/rule-engine/internal/domain"
)

func TestMemoryNamespaceStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryNamespaceStore()

	t.Run("seeded_namespaces", func(t *testing.T) {
		namespaces, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, namespaces, 2)
		assert.Equal(t, "payments", namespaces[0].ID)
	})

	t.Run("create_and_get", func(t *testing.T) {
		ns := &domain.Namespace{ID: "risk-rules", Description: "Risk scoring", CreatedBy: "test-client"}
		require.NoError(t, store.Create(ctx, ns))
		assert.False(t, ns.CreatedAt.IsZero())

		got, err := store.GetByID(ctx, "risk-rules")
		require.NoError(t, err)
		assert.Equal(t, "Risk scoring", got.Description)
		assert.Equal(t, "test-client", got.CreatedBy)
	})

	t.Run("duplicate_create", func(t *testing.T) {
		err := store.Create(ctx, &domain.Namespace{ID: "risk-rules", CreatedBy: "test-client"})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("get_missing", func(t *testing.T) {
		_, err := store.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}
