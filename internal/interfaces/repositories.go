package interfaces

import (
	"context"

	"github.com/google/uuid"

	"go-pray-cache/internal/models"
)

//go:generate mockgen -package=mock -source=repositories.go -destination=mock/repositories.go

// GroupRepository is the persistence boundary for groups
type GroupRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
	FindByInviteCode(ctx context.Context, code string) (*models.Group, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
}

// UserRepository is the persistence boundary for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
}

// MembershipRepository is the persistence boundary for group memberships
type MembershipRepository interface {
	Exists(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
	Add(ctx context.Context, userID, groupID uuid.UUID, role string) error
	Remove(ctx context.Context, userID, groupID uuid.UUID) error
}

// PrayerRepository is the persistence boundary for prayer items and reactions
type PrayerRepository interface {
	Stats(ctx context.Context, groupID uuid.UUID) (*models.PrayerStats, error)
	AddReaction(ctx context.Context, itemID, userID uuid.UUID) (groupID uuid.UUID, err error)
	MarkAnswered(ctx context.Context, itemID uuid.UUID) (groupID uuid.UUID, err error)
}
