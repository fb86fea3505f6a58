package auth

import (
	"testing"

	"startuphub/domain"
	"startuphub/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	return NewStore(mem, zap.NewNop()), mem
}

func TestStore_SaveWritesBothKeys(t *testing.T) {
	// Arrange
	store, mem := newTestStore(t)
	user := domain.User{ID: "u1", Email: "founder@acme.io", Role: domain.RoleStartup}

	// Act
	err := store.Save("tok-abc", user)

	// Assert
	require.NoError(t, err)
	token, ok := mem.Get(KeyAccessToken)
	require.True(t, ok)
	assert.Equal(t, "tok-abc", token)
	_, ok = mem.Get(KeyUser)
	assert.True(t, ok)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, user, current)
	assert.True(t, store.IsAuthenticated())
}

func TestStore_ClearRemovesBothKeysAndNotifies(t *testing.T) {
	// Arrange
	store, mem := newTestStore(t)
	require.NoError(t, store.Save("tok", domain.User{ID: "u1"}))

	notified := 0
	store.OnClear(func() { notified++ })

	// Act
	store.Clear()

	// Assert
	_, ok := mem.Get(KeyAccessToken)
	assert.False(t, ok)
	_, ok = mem.Get(KeyUser)
	assert.False(t, ok)
	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, 1, notified)
}

func TestStore_CorruptUserRecordReadsAsAbsent(t *testing.T) {
	// Arrange
	store, mem := newTestStore(t)
	require.NoError(t, mem.Set(KeyUser, "{not json"))

	// Act
	_, ok := store.Current()

	// Assert
	assert.False(t, ok)
}

func TestStore_EmptyStorageIsLoggedOut(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.IsAuthenticated())
	_, ok := store.Token()
	assert.False(t, ok)
	_, ok = store.Current()
	assert.False(t, ok)
}
