package noop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-pray-cache/internal/interfaces"
)

func TestNoOpStore(t *testing.T) {
	ctx := context.Background()
	store := NewNoOpStore()

	assert.NoError(t, store.Set(ctx, "group:g1", []byte("x"), time.Minute))

	val, found, err := store.Get(ctx, "group:g1")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, val)

	assert.NoError(t, store.Delete(ctx, "group:g1"))
}

func TestNoOpStore_CannotListKeys(t *testing.T) {
	var store interfaces.Store = NewNoOpStore()

	_, ok := store.(interfaces.KeyLister)
	assert.False(t, ok)
}
