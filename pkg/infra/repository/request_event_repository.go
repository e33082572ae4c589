package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain/requestevent"
	"gorm.io/gorm"
)

type RequestEventRepository struct {
	db *gorm.DB
}

func NewRequestEventRepository(db *gorm.DB) requestevent.Repository {
	return &RequestEventRepository{
		db: db,
	}
}

func (r *RequestEventRepository) Create(ctx context.Context, event *requestevent.RequestEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create request event: %w", err)
	}
	return nil
}

func (r *RequestEventRepository) CountByIP(ctx context.Context, ip string, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&requestevent.RequestEvent{}).
		Where("ip_address = ? AND timestamp >= ?", ip, since.UTC()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count request events by ip: %w", err)
	}
	return count, nil
}

func (r *RequestEventRepository) CountByUser(ctx context.Context, userID string, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&requestevent.RequestEvent{}).
		Where("user_id = ? AND timestamp >= ?", userID, since.UTC()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count request events by user: %w", err)
	}
	return count, nil
}

func (r *RequestEventRepository) StatsByIP(ctx context.Context, since time.Time) ([]requestevent.IPStats, error) {
	var stats []requestevent.IPStats
	if err := r.db.WithContext(ctx).
		Model(&requestevent.RequestEvent{}).
		Select("ip_address, COUNT(*) AS requests, AVG(bot_score) AS avg_bot_score").
		Where("timestamp >= ?", since.UTC()).
		Group("ip_address").
		Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate request events: %w", err)
	}
	return stats, nil
}

func (r *RequestEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("timestamp < ?", cutoff.UTC()).
		Delete(&requestevent.RequestEvent{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge request events: %w", res.Error)
	}
	return res.RowsAffected, nil
}
