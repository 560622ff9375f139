package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dern-support-gateway/models"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := &Session{
		ID:    "s1",
		Token: "token-123",
		User:  &models.SessionUser{ID: "u1", Role: models.RoleUser},
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "token-123", got.Token)
	assert.Equal(t, "u1", got.User.ID)
	assert.True(t, got.Authenticated())
	assert.Equal(t, models.RoleUser, got.Role())
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "yo'q")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, &Session{ID: "s1", Token: "t"}))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Mavjud bo'lmagan sessiyani o'chirish xato emas
	assert.NoError(t, store.Delete(ctx, "s1"))
}

func TestMemoryStoreSubscribe(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var events []string
	unsubscribe := store.Subscribe(func(id string) {
		events = append(events, id)
	})

	require.NoError(t, store.Save(ctx, &Session{ID: "s1", Token: "t"}))
	require.NoError(t, store.Delete(ctx, "s1"))

	assert.Equal(t, []string{"s1", "s1"}, events)

	unsubscribe()
	require.NoError(t, store.Save(ctx, &Session{ID: "s2", Token: "t"}))
	assert.Len(t, events, 2)
}

func TestSessionAuthenticated(t *testing.T) {
	assert.False(t, (&Session{}).Authenticated())
	assert.False(t, (&Session{ID: "s1"}).Authenticated())
	assert.True(t, (&Session{ID: "s1", Token: "t"}).Authenticated())

	assert.Equal(t, "", (&Session{}).Role())
}
