package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -package=mock -source=store.go -destination=mock/store.go

// Store is the key/value capability the cache coordinator depends on
type Store interface {
	// Get returns the stored value; a miss is found == false with a nil error
	Get(ctx context.Context, key string) (val []byte, found bool, err error)
	// Set stores val; ttl == 0 means the entry does not expire
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}

// KeyLister is the optional capability used by prefix sweeps
type KeyLister interface {
	ListKeys(ctx context.Context) ([]string, error)
}

// ListingStore is a Store that can also enumerate its keys
type ListingStore interface {
	Store
	KeyLister
}
