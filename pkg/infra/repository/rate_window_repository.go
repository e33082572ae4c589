package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain/ratewindow"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var rateWindowKey = []clause.Column{{Name: "ip_address"}, {Name: "endpoint"}, {Name: "window_start"}}

type RateWindowRepository struct {
	db *gorm.DB
}

func NewRateWindowRepository(db *gorm.DB) ratewindow.Repository {
	return &RateWindowRepository{
		db: db,
	}
}

func (r *RateWindowRepository) Increment(ctx context.Context, ip, endpoint string, start, end time.Time) error {
	w := &ratewindow.RateWindow{
		ID:           uuid.New(),
		IPAddress:    ip,
		Endpoint:     endpoint,
		WindowStart:  start.UTC(),
		WindowEnd:    end.UTC(),
		RequestCount: 1,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: rateWindowKey,
			DoUpdates: clause.Assignments(map[string]interface{}{
				"request_count": gorm.Expr("rate_windows.request_count + 1"),
			}),
		}).
		Create(w).Error; err != nil {
		return fmt.Errorf("failed to increment rate window: %w", err)
	}
	return nil
}

// FindActiveBlock returns the blocked window of ip that is still running at
// now, or nil when there is none.
func (r *RateWindowRepository) FindActiveBlock(ctx context.Context, ip string, now time.Time) (*ratewindow.RateWindow, error) {
	w := new(ratewindow.RateWindow)
	err := r.db.WithContext(ctx).
		Where("ip_address = ? AND is_blocked = ? AND window_end > ?", ip, true, now.UTC()).
		Order("window_end DESC").
		First(w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find ip block: %w", err)
	}
	return w, nil
}

func (r *RateWindowRepository) Block(ctx context.Context, ip, endpoint string, start, end time.Time) (*ratewindow.RateWindow, error) {
	w := &ratewindow.RateWindow{
		ID:          uuid.New(),
		IPAddress:   ip,
		Endpoint:    endpoint,
		WindowStart: start.UTC(),
		WindowEnd:   end.UTC(),
		IsBlocked:   true,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   rateWindowKey,
			DoUpdates: clause.AssignmentColumns([]string{"window_end", "is_blocked"}),
		}).
		Create(w).Error; err != nil {
		return nil, fmt.Errorf("failed to block ip: %w", err)
	}
	return w, nil
}

func (r *RateWindowRepository) Unblock(ctx context.Context, ip string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&ratewindow.RateWindow{}).
		Where("ip_address = ? AND is_blocked = ?", ip, true).
		Update("is_blocked", false)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to unblock ip: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *RateWindowRepository) ListBlocked(ctx context.Context, now time.Time) ([]ratewindow.RateWindow, error) {
	var windows []ratewindow.RateWindow
	if err := r.db.WithContext(ctx).
		Where("is_blocked = ? AND window_end > ?", true, now.UTC()).
		Order("window_end DESC").
		Find(&windows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ip blocks: %w", err)
	}
	return windows, nil
}
