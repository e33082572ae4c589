package requestevent

import (
	"context"
	"time"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=request_event_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Create(ctx context.Context, event *RequestEvent) error
	CountByIP(ctx context.Context, ip string, since time.Time) (int64, error)
	CountByUser(ctx context.Context, userID string, since time.Time) (int64, error)
	StatsByIP(ctx context.Context, since time.Time) ([]IPStats, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Counter answers "how many requests did this IP make since t".
//
//go:generate mockery --name=Counter --dir=. --output=./mocks --filename=counter_mock.go --case=underscore --with-expecter
type Counter interface {
	CountByIP(ctx context.Context, ip string, since time.Time) (int64, error)
}
