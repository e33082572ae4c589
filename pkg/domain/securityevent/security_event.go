package securityevent

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type (
	Type     string
	Severity string
)

const (
	TypeSuspiciousUserAlert       Type = "suspicious_user_alert"
	TypeSuspiciousRequest         Type = "suspicious_request"
	TypeRateLimitExceededAdvisory Type = "rate_limit_exceeded_advisory"
	TypePatternAnalysis           Type = "pattern_analysis"

	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// BotIndicator is a diagnostic label attached to a security event.
type BotIndicator struct {
	Type       string `json:"type"`
	Pattern    string `json:"pattern,omitempty"`
	Confidence int    `json:"confidence"`
}

type (
	DataJSON       map[string]interface{}
	IndicatorsJSON []BotIndicator
)

func (d DataJSON) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *DataJSON) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, d)
}

func (i IndicatorsJSON) Value() (driver.Value, error) {
	if i == nil {
		return nil, nil
	}
	return json.Marshal(i)
}

func (i *IndicatorsJSON) Scan(value interface{}) error {
	if value == nil {
		*i = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, i)
}

type SecurityEvent struct {
	ID                uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	IPAddress         string         `json:"ip_address" gorm:"not null;index"`
	UserID            *string        `json:"user_id,omitempty" gorm:"index"`
	EventType         Type           `json:"event_type" gorm:"not null;index"`
	Severity          Severity       `json:"severity" gorm:"not null"`
	Description       string         `json:"description"`
	Data              DataJSON       `json:"data" gorm:"type:jsonb"`
	RequestsPerMinute int64          `json:"requests_per_minute"`
	RequestsPerHour   int64          `json:"requests_per_hour"`
	RequestsPerDay    int64          `json:"requests_per_day"`
	BotIndicators     IndicatorsJSON `json:"bot_indicators" gorm:"type:jsonb"`
	Timestamp         time.Time      `json:"timestamp" gorm:"not null;index"`
}

func (SecurityEvent) TableName() string {
	return "security_events"
}

// Counts is the request volume snapshot stored with an event.
type Counts struct {
	Minute int64 `json:"minute"`
	Hour   int64 `json:"hour"`
	Day    int64 `json:"day"`
}

func New(eventType Type, severity Severity, ip string, userID *string, description string, data map[string]interface{}, at time.Time) *SecurityEvent {
	return &SecurityEvent{
		ID:          uuid.New(),
		IPAddress:   ip,
		UserID:      userID,
		EventType:   eventType,
		Severity:    severity,
		Description: description,
		Data:        data,
		Timestamp:   at.UTC(),
	}
}

func (e *SecurityEvent) WithCounts(c Counts) *SecurityEvent {
	e.RequestsPerMinute = c.Minute
	e.RequestsPerHour = c.Hour
	e.RequestsPerDay = c.Day
	return e
}

func (e *SecurityEvent) WithIndicators(indicators []BotIndicator) *SecurityEvent {
	e.BotIndicators = indicators
	return e
}
