// Package prayer holds the cached read paths and invalidating write paths
// of the prayer group domain. Persistence lives behind the repository interfaces.
package prayer

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"go-pray-cache/internal/cache/coordinator"
	"go-pray-cache/internal/interfaces"
	"go-pray-cache/internal/models"
)

// ErrNotFound is returned when the repository has no such entity
var ErrNotFound = errors.New("not found")

// RoleMember is the role given to users joining a group
const RoleMember = "member"

// base carries what every service shares
type base struct {
	cache  *coordinator.Coordinator
	ttls   interfaces.TTLResolver
	logger *zap.Logger
}

func (b base) ttl(policy models.Policy) models.TTL {
	return b.ttls.TTL(policy)
}

// afterWrite runs invalidations once a write has been persisted.
// A failed invalidation leaves the entry stale until its TTL runs out; it is logged, not returned.
func (b base) afterWrite(ctx context.Context, op string, invalidations ...func(context.Context) error) {
	for _, invalidate := range invalidations {
		if err := invalidate(ctx); err != nil {
			b.logger.Warn("Cache invalidation after write failed",
				zap.String("operation", op),
				zap.Error(err))
		}
	}
}
