package ratewindow

import (
	"time"

	"github.com/google/uuid"
)

// RateWindow counts requests of one IP on one endpoint inside a fixed window.
// IsBlocked is only ever written by an administrator.
type RateWindow struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	IPAddress    string    `json:"ip_address" gorm:"not null;uniqueIndex:idx_rate_windows_key"`
	Endpoint     string    `json:"endpoint" gorm:"not null;uniqueIndex:idx_rate_windows_key"`
	WindowStart  time.Time `json:"window_start" gorm:"not null;uniqueIndex:idx_rate_windows_key"`
	WindowEnd    time.Time `json:"window_end" gorm:"not null"`
	RequestCount int64     `json:"request_count"`
	IsBlocked    bool      `json:"is_blocked"`
}

func (RateWindow) TableName() string {
	return "rate_windows"
}

func (w *RateWindow) Expired(now time.Time) bool {
	return !now.Before(w.WindowEnd)
}

// WindowFor returns the minute-aligned window containing t.
func WindowFor(t time.Time, size time.Duration) (time.Time, time.Time) {
	start := t.UTC().Truncate(size)
	return start, start.Add(size)
}
