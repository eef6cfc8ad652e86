package noop

import (
	"context"
	"time"

	"go-pray-cache/internal/interfaces"
)

// Ensure NoOpStore implements interfaces.Store
var _ interfaces.Store = (*NoOpStore)(nil)

// NoOpStore is a no-operation store for disabled cache levels.
// It deliberately does not implement interfaces.KeyLister.
type NoOpStore struct{}

// NewNoOpStore creates a new no-operation store instance
func NewNoOpStore() *NoOpStore {
	return &NoOpStore{}
}

// Get always returns a miss
func (n *NoOpStore) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing
func (n *NoOpStore) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

// Delete does nothing
func (n *NoOpStore) Delete(_ context.Context, _ string) error {
	return nil
}
