package prayer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-pray-cache/internal/cache/coordinator"
	"go-pray-cache/internal/interfaces"
	"go-pray-cache/internal/models"
)

// GroupService serves prayer groups
type GroupService struct {
	base
	groups interfaces.GroupRepository
}

// NewGroupService creates a new GroupService
func NewGroupService(groups interfaces.GroupRepository, cache *coordinator.Coordinator, ttls interfaces.TTLResolver, logger *zap.Logger) *GroupService {
	return &GroupService{
		base:   base{cache: cache, ttls: ttls, logger: logger},
		groups: groups,
	}
}

// Get returns the group, reading through group:<id>
func (s *GroupService) Get(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	group, err := coordinator.GetOrSetEntity(ctx, s.cache, models.PrefixGroup, []string{id.String()},
		func(ctx context.Context) (*models.Group, error) {
			return s.groups.FindByID(ctx, id)
		}, s.ttl(models.PolicyMedium))
	if err != nil {
		return nil, fmt.Errorf("failed to get group %s: %w", id, err)
	}
	if group == nil {
		return nil, ErrNotFound
	}
	return group, nil
}

// Rename updates the group name and evicts the cached group
func (s *GroupService) Rename(ctx context.Context, id uuid.UUID, name string) error {
	if err := s.groups.UpdateName(ctx, id, name); err != nil {
		return fmt.Errorf("failed to rename group %s: %w", id, err)
	}

	s.afterWrite(ctx, "group.rename", func(ctx context.Context) error {
		return s.cache.InvalidateGroup(ctx, id.String())
	})
	return nil
}
