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

// MembershipService answers and changes group membership
type MembershipService struct {
	base
	memberships interfaces.MembershipRepository
	groups      interfaces.GroupRepository
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(
	memberships interfaces.MembershipRepository,
	groups interfaces.GroupRepository,
	cache *coordinator.Coordinator,
	ttls interfaces.TTLResolver,
	logger *zap.Logger,
) *MembershipService {
	return &MembershipService{
		base:        base{cache: cache, ttls: ttls, logger: logger},
		memberships: memberships,
		groups:      groups,
	}
}

// IsMember reports whether userID belongs to groupID, reading through membership:<user>:<group>.
// A negative answer is cached like a positive one.
func (s *MembershipService) IsMember(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	member, err := coordinator.GetOrSetEntity(ctx, s.cache, models.PrefixMembership, []string{userID.String(), groupID.String()},
		func(ctx context.Context) (bool, error) {
			return s.memberships.Exists(ctx, userID, groupID)
		}, s.ttl(models.PolicyShort))
	if err != nil {
		return false, fmt.Errorf("failed to check membership of %s in %s: %w", userID, groupID, err)
	}
	return member, nil
}

// Join adds userID to groupID
func (s *MembershipService) Join(ctx context.Context, userID, groupID uuid.UUID) error {
	if err := s.memberships.Add(ctx, userID, groupID, RoleMember); err != nil {
		return fmt.Errorf("failed to add %s to group %s: %w", userID, groupID, err)
	}

	s.invalidate(ctx, "membership.join", userID, groupID)
	return nil
}

// Leave removes userID from groupID
func (s *MembershipService) Leave(ctx context.Context, userID, groupID uuid.UUID) error {
	if err := s.memberships.Remove(ctx, userID, groupID); err != nil {
		return fmt.Errorf("failed to remove %s from group %s: %w", userID, groupID, err)
	}

	s.invalidate(ctx, "membership.leave", userID, groupID)
	return nil
}

// JoinByInviteCode resolves the invite code and joins the group it names
func (s *MembershipService) JoinByInviteCode(ctx context.Context, userID uuid.UUID, code string) (*models.Group, error) {
	group, err := s.groups.FindByInviteCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve invite code: %w", err)
	}
	if group == nil {
		return nil, ErrNotFound
	}

	if err := s.Join(ctx, userID, group.ID); err != nil {
		return nil, err
	}
	return group, nil
}

// invalidate evicts the membership answer and the group's stats, whose member count changed
func (s *MembershipService) invalidate(ctx context.Context, op string, userID, groupID uuid.UUID) {
	s.afterWrite(ctx, op,
		func(ctx context.Context) error {
			return s.cache.InvalidateMembership(ctx, userID.String(), groupID.String())
		},
		func(ctx context.Context) error {
			return s.cache.InvalidatePrayerStats(ctx, groupID.String())
		})
}
