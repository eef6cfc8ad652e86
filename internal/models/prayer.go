package models

import (
	"time"

	"github.com/google/uuid"
)

// Group is a prayer group as cached for lookups
type Group struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	InviteCode  string    `json:"invite_code"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is a member profile
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Membership links a user to a group
type Membership struct {
	UserID   uuid.UUID `json:"user_id"`
	GroupID  uuid.UUID `json:"group_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// PrayerStats aggregates prayer activity for a group
type PrayerStats struct {
	GroupID       uuid.UUID `json:"group_id"`
	TotalItems    int       `json:"total_items"`
	AnsweredItems int       `json:"answered_items"`
	TotalPrayers  int       `json:"total_prayers"`
	MemberCount   int       `json:"member_count"`
}
