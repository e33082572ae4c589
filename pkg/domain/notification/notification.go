package notification

import (
	"context"
	"time"
)

type (
	Type     string
	Priority string
)

const (
	TypeBan           Type = "ban"
	TypeUnban         Type = "unban"
	TypeRateLimit     Type = "rate_limit"
	TypeAccountReview Type = "account_review"

	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
)

type Notification struct {
	UserID    string    `json:"user_id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Priority  Priority  `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

func PriorityFor(t Type) Priority {
	switch t {
	case TypeBan, TypeRateLimit:
		return PriorityHigh
	default:
		return PriorityNormal
	}
}

func New(userID string, t Type, title, message string) *Notification {
	return &Notification{
		UserID:    userID,
		Type:      t,
		Title:     title,
		Message:   message,
		Priority:  PriorityFor(t),
		CreatedAt: time.Now().UTC(),
	}
}

//go:generate mockery --name=Sink --dir=. --output=./mocks --filename=sink_mock.go --case=underscore --with-expecter
type Sink interface {
	Send(ctx context.Context, n *Notification) error
}
