package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	"gorm.io/gorm"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type SecurityEventRepository struct {
	db *gorm.DB
}

func NewSecurityEventRepository(db *gorm.DB) securityevent.Repository {
	return &SecurityEventRepository{
		db: db,
	}
}

func (r *SecurityEventRepository) Create(ctx context.Context, event *securityevent.SecurityEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create security event: %w", err)
	}
	return nil
}

func (r *SecurityEventRepository) ExistsForUserSince(
	ctx context.Context,
	eventType securityevent.Type,
	userID string,
	since time.Time,
) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&securityevent.SecurityEvent{}).
		Where("event_type = ? AND user_id = ? AND timestamp >= ?", eventType, userID, since.UTC()).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to lookup security events: %w", err)
	}
	return count > 0, nil
}

func (r *SecurityEventRepository) List(ctx context.Context, filter securityevent.Filter) ([]securityevent.SecurityEvent, error) {
	q := r.db.WithContext(ctx).Model(&securityevent.SecurityEvent{})
	if filter.EventType != "" {
		q = q.Where("event_type = ?", filter.EventType)
	}
	if filter.Severity != "" {
		q = q.Where("severity = ?", filter.Severity)
	}
	if filter.IP != "" {
		q = q.Where("ip_address = ?", filter.IP)
	}
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if !filter.Since.IsZero() {
		q = q.Where("timestamp >= ?", filter.Since.UTC())
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	var events []securityevent.SecurityEvent
	if err := q.Order("timestamp DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list security events: %w", err)
	}
	return events, nil
}

func (r *SecurityEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("timestamp < ?", cutoff.UTC()).
		Delete(&securityevent.SecurityEvent{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge security events: %w", res.Error)
	}
	return res.RowsAffected, nil
}
