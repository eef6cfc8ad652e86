package interfaces

import (
	"context"

	"go-pray-cache/internal/models"
)

//go:generate mockgen -package=mock -source=invalidator.go -destination=mock/invalidator.go

// Invalidator evicts cached data after writes
type Invalidator interface {
	Invalidate(ctx context.Context, prefix models.Prefix, parts ...string) error
	InvalidateGroup(ctx context.Context, groupID string) error
	InvalidateUser(ctx context.Context, userID string) error
	InvalidateMembership(ctx context.Context, userID, groupID string) error
	InvalidatePrayerStats(ctx context.Context, groupID string) error
	InvalidateByPrefix(ctx context.Context, prefix models.Prefix) (int, error)
}
