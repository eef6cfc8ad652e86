package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore(t *testing.T, maxEntries int) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	store, err := NewMemoryStore(maxEntries, zap.NewNop(), WithClock(clock.Now))
	require.NoError(t, err)
	return store, clock
}

func TestMemoryStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, 10)

	require.NoError(t, store.Set(ctx, "group:g1", []byte(`{"name":"Tuesday"}`), 0))

	val, found, err := store.Get(ctx, "group:g1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"name":"Tuesday"}`), val)
}

func TestMemoryStore_Get_NotFound(t *testing.T) {
	store, _ := newTestStore(t, 10)

	val, found, err := store.Get(context.Background(), "group:missing")

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, val)
}

func TestMemoryStore_Set_CopiesValue(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, 10)

	buf := []byte("abc")
	require.NoError(t, store.Set(ctx, "user:u1", buf, 0))
	buf[0] = 'z'

	val, _, _ := store.Get(ctx, "user:u1")
	assert.Equal(t, []byte("abc"), val)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t, 10)

	require.NoError(t, store.Set(ctx, "prayer_stats:g1", []byte("1"), 60*time.Second))

	expiresAt, ok := store.ExpiresAt("prayer_stats:g1")
	require.True(t, ok)
	assert.Equal(t, int64(60000), expiresAt.Sub(clock.now).Milliseconds())

	clock.Advance(59 * time.Second)
	_, found, _ := store.Get(ctx, "prayer_stats:g1")
	assert.True(t, found)

	clock.Advance(time.Second)
	_, found, _ = store.Get(ctx, "prayer_stats:g1")
	assert.False(t, found)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_NoExpiry(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t, 10)

	require.NoError(t, store.Set(ctx, "user:u1", []byte("x"), 0))

	expiresAt, ok := store.ExpiresAt("user:u1")
	assert.True(t, ok)
	assert.True(t, expiresAt.IsZero())

	clock.Advance(365 * 24 * time.Hour)
	_, found, _ := store.Get(ctx, "user:u1")
	assert.True(t, found)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, 10)

	require.NoError(t, store.Set(ctx, "group:g1", []byte("x"), 0))
	require.NoError(t, store.Delete(ctx, "group:g1"))

	_, found, _ := store.Get(ctx, "group:g1")
	assert.False(t, found)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "group:g1"))
}

func TestMemoryStore_ListKeys_SkipsExpired(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t, 10)

	require.NoError(t, store.Set(ctx, "group:g1", []byte("1"), 0))
	require.NoError(t, store.Set(ctx, "group:g2", []byte("2"), 10*time.Second))
	require.NoError(t, store.Set(ctx, "user:u1", []byte("3"), 0))

	keys, err := store.ListKeys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"group:g1", "group:g2", "user:u1"}, keys)

	clock.Advance(10 * time.Second)
	keys, err = store.ListKeys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"group:g1", "user:u1"}, keys)
}

func TestMemoryStore_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, 2)

	require.NoError(t, store.Set(ctx, "group:g1", []byte("1"), 0))
	require.NoError(t, store.Set(ctx, "group:g2", []byte("2"), 0))
	_, _, _ = store.Get(ctx, "group:g1")
	require.NoError(t, store.Set(ctx, "group:g3", []byte("3"), 0))

	_, found, _ := store.Get(ctx, "group:g2")
	assert.False(t, found)
	_, found, _ = store.Get(ctx, "group:g1")
	assert.True(t, found)
	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_Close(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, 10)

	require.NoError(t, store.Set(ctx, "group:g1", []byte("1"), 0))
	assert.NoError(t, store.Close())
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_RemoveExpired_KeepsFreshWrite(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t, 10)

	require.NoError(t, store.Set(ctx, "group:g1", []byte("old"), time.Second))
	clock.Advance(2 * time.Second)
	expiredAt := clock.Now()

	// A writer replaces the entry after a reader saw it expired
	require.NoError(t, store.Set(ctx, "group:g1", []byte("new"), time.Minute))
	store.removeExpired("group:g1", expiredAt)

	val, found, err := store.Get(ctx, "group:g1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("new"), val)
}

func TestMemoryStore_RemoveExpired_DropsStaleEntry(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t, 10)

	require.NoError(t, store.Set(ctx, "group:g1", []byte("old"), time.Second))
	clock.Advance(2 * time.Second)

	store.removeExpired("group:g1", clock.Now())

	assert.Equal(t, 0, store.Len())
}
