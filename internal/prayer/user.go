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

// UserService serves user profiles
type UserService struct {
	base
	users interfaces.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(users interfaces.UserRepository, cache *coordinator.Coordinator, ttls interfaces.TTLResolver, logger *zap.Logger) *UserService {
	return &UserService{
		base:  base{cache: cache, ttls: ttls, logger: logger},
		users: users,
	}
}

// Get returns the user, reading through user:<id>
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := coordinator.GetOrSetEntity(ctx, s.cache, models.PrefixUser, []string{id.String()},
		func(ctx context.Context) (*models.User, error) {
			return s.users.FindByID(ctx, id)
		}, s.ttl(models.PolicyLong))
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// UpdateName changes the display name and evicts the cached user
func (s *UserService) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	if err := s.users.UpdateName(ctx, id, name); err != nil {
		return fmt.Errorf("failed to update user %s: %w", id, err)
	}

	s.afterWrite(ctx, "user.update_name", func(ctx context.Context) error {
		return s.cache.InvalidateUser(ctx, id.String())
	})
	return nil
}
