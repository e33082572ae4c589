package ratewindow

import (
	"context"
	"time"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=rate_window_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Increment(ctx context.Context, ip, endpoint string, start, end time.Time) error
	FindActiveBlock(ctx context.Context, ip string, now time.Time) (*RateWindow, error)
	Block(ctx context.Context, ip, endpoint string, start, end time.Time) (*RateWindow, error)
	Unblock(ctx context.Context, ip string) (int64, error)
	ListBlocked(ctx context.Context, now time.Time) ([]RateWindow, error)
}
