package securityevent

import (
	"context"
	"time"
)

type Filter struct {
	EventType Type
	Severity  Severity
	IP        string
	UserID    string
	Since     time.Time
	Limit     int
	Offset    int
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=security_event_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Create(ctx context.Context, event *SecurityEvent) error
	ExistsForUserSince(ctx context.Context, eventType Type, userID string, since time.Time) (bool, error)
	List(ctx context.Context, filter Filter) ([]SecurityEvent, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Exporter ships persisted events to an external stream.
type Exporter interface {
	Name() string
	Export(ctx context.Context, event *SecurityEvent) error
	Close()
}
