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

// PrayerStatsService serves per-group prayer statistics
type PrayerStatsService struct {
	base
	prayers interfaces.PrayerRepository
}

// NewPrayerStatsService creates a new PrayerStatsService
func NewPrayerStatsService(prayers interfaces.PrayerRepository, cache *coordinator.Coordinator, ttls interfaces.TTLResolver, logger *zap.Logger) *PrayerStatsService {
	return &PrayerStatsService{
		base:    base{cache: cache, ttls: ttls, logger: logger},
		prayers: prayers,
	}
}

// Get returns the stats of a group, reading through prayer_stats:<group>
func (s *PrayerStatsService) Get(ctx context.Context, groupID uuid.UUID) (*models.PrayerStats, error) {
	stats, err := coordinator.GetOrSetEntity(ctx, s.cache, models.PrefixPrayerStats, []string{groupID.String()},
		func(ctx context.Context) (*models.PrayerStats, error) {
			return s.prayers.Stats(ctx, groupID)
		}, s.ttl(models.PolicyShort))
	if err != nil {
		return nil, fmt.Errorf("failed to get prayer stats for %s: %w", groupID, err)
	}
	if stats == nil {
		return nil, ErrNotFound
	}
	return stats, nil
}

// RecordPrayer records that userID prayed for itemID
func (s *PrayerStatsService) RecordPrayer(ctx context.Context, itemID, userID uuid.UUID) error {
	groupID, err := s.prayers.AddReaction(ctx, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to record prayer for item %s: %w", itemID, err)
	}

	s.afterWrite(ctx, "prayer.record", func(ctx context.Context) error {
		return s.cache.InvalidatePrayerStats(ctx, groupID.String())
	})
	return nil
}

// MarkAnswered marks itemID as answered
func (s *PrayerStatsService) MarkAnswered(ctx context.Context, itemID uuid.UUID) error {
	groupID, err := s.prayers.MarkAnswered(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to mark item %s answered: %w", itemID, err)
	}

	s.afterWrite(ctx, "prayer.mark_answered", func(ctx context.Context) error {
		return s.cache.InvalidatePrayerStats(ctx, groupID.String())
	})
	return nil
}

// ResetAllStats evicts the stats of every group and returns how many entries went
func (s *PrayerStatsService) ResetAllStats(ctx context.Context) (int, error) {
	deleted, err := s.cache.InvalidateByPrefix(ctx, models.PrefixPrayerStats)
	if err != nil {
		return deleted, fmt.Errorf("failed to reset prayer stats: %w", err)
	}

	s.logger.Info("Prayer stats reset", zap.Int("deleted", deleted))
	return deleted, nil
}
