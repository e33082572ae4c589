package requestevent

import (
	"time"

	"github.com/google/uuid"
)

// RequestEvent is one inbound request as seen by the guard. Rows are immutable.
type RequestEvent struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       *string   `json:"user_id,omitempty" gorm:"index"`
	IPAddress    string    `json:"ip_address" gorm:"not null;index"`
	Endpoint     string    `json:"endpoint"`
	Symbol       *string   `json:"symbol,omitempty"`
	UserAgent    string    `json:"user_agent"`
	Referer      string    `json:"referer"`
	Timestamp    time.Time `json:"timestamp" gorm:"not null;index"`
	IsSuspicious bool      `json:"is_suspicious"`
	BotScore     int       `json:"bot_score"`
}

func (RequestEvent) TableName() string {
	return "request_events"
}

// IPStats aggregates the request events of a single IP over a time range.
type IPStats struct {
	IP          string  `json:"ip" gorm:"column:ip_address"`
	Requests    int64   `json:"requests" gorm:"column:requests"`
	AvgBotScore float64 `json:"avg_bot_score" gorm:"column:avg_bot_score"`
}

func New(ip, endpoint, userAgent, referer string, userID, symbol *string, score int, suspicious bool, at time.Time) *RequestEvent {
	return &RequestEvent{
		ID:           uuid.New(),
		UserID:       userID,
		IPAddress:    ip,
		Endpoint:     endpoint,
		Symbol:       symbol,
		UserAgent:    userAgent,
		Referer:      referer,
		Timestamp:    at.UTC(),
		IsSuspicious: suspicious,
		BotScore:     score,
	}
}
