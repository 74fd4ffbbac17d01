package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmashkova/restopick/config"
	"github.com/vmashkova/restopick/models"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	session, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Nil(t, session)

	put := NewSession()
	put.Filters[models.CategoryBudget] = "Дорого"
	require.NoError(t, store.Put(ctx, testUser, put))

	got, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Дорого", got.Filters[models.CategoryBudget])

	require.NoError(t, store.Remove(ctx, testUser))

	got, err = store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionStoreIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	require.NoError(t, store.Put(ctx, 1, NewSession()))

	got, err := store.Get(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSqliteSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	store, err := NewSqliteSessionStore(t.TempDir() + "/sessions.db")
	require.NoError(t, err)
	defer store.Close()

	session := NewSession()
	session.Step = StepCuisine
	session.Filters[models.CategoryBudget] = "Средне"
	session.Pages[models.CategoryCuisine] = 1
	require.NoError(t, store.Put(ctx, testUser, session))

	got, err := store.Get(ctx, testUser)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, StepCuisine, got.Step)
	assert.Equal(t, "Средне", got.Filters[models.CategoryBudget])
	assert.Equal(t, 1, got.Pages[models.CategoryCuisine])

	// Upsert replaces, not duplicates.
	session.Step = StepAtmosphere
	require.NoError(t, store.Put(ctx, testUser, session))

	got, err = store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, StepAtmosphere, got.Step)

	require.NoError(t, store.Remove(ctx, testUser))
	got, err = store.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewSessionStoreBackends(t *testing.T) {
	store, err := NewSessionStore(config.Sessions{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemorySessionStore{}, store)

	store, err = NewSessionStore(config.Sessions{})
	require.NoError(t, err)
	assert.IsType(t, &MemorySessionStore{}, store)

	_, err = NewSessionStore(config.Sessions{Backend: "etcd"})
	assert.Error(t, err)
}
