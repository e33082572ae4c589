package membership

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain"
	"github.com/NeuralTrust/RiskGate/pkg/domain/membership"
	"github.com/NeuralTrust/RiskGate/pkg/domain/notification"
	"github.com/sirupsen/logrus"
)

const (
	banTitle     = "Account Suspended"
	banMessage   = "Your account has been suspended by an administrator. Contact support if you believe this is a mistake."
	unbanTitle   = "Account Restored"
	unbanMessage = "Your account has been restored. Thank you for your patience."
)

type Update struct {
	Plan              *string
	RateLimitOverride *int64
	// ClearOverride removes any override; it wins over RateLimitOverride.
	ClearOverride bool
}

//go:generate mockery --name=Manager --dir=. --output=./mocks --filename=manager_mock.go --case=underscore --with-expecter
type Manager interface {
	// Get returns the free plan default for users without a record.
	Get(ctx context.Context, userID string) (*membership.Membership, error)
	Update(ctx context.Context, userID string, u Update) (*membership.Membership, error)
	Ban(ctx context.Context, userID string, reason string) (*membership.Membership, error)
	Unban(ctx context.Context, userID string) (*membership.Membership, error)
}

type manager struct {
	logger *logrus.Logger
	repo   membership.Repository
	sink   notification.Sink
}

func NewManager(logger *logrus.Logger, repo membership.Repository, sink notification.Sink) Manager {
	return &manager{
		logger: logger,
		repo:   repo,
		sink:   sink,
	}
}

func (m *manager) Get(ctx context.Context, userID string) (*membership.Membership, error) {
	record, err := m.repo.Get(ctx, userID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return membership.Default(userID), nil
		}
		return nil, err
	}
	return record, nil
}

func (m *manager) Update(ctx context.Context, userID string, u Update) (*membership.Membership, error) {
	record, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Plan != nil {
		plan, err := membership.ParsePlan(*u.Plan)
		if err != nil {
			return nil, err
		}
		record.Plan = plan
	}
	switch {
	case u.ClearOverride:
		record.RateLimitOverride = nil
	case u.RateLimitOverride != nil:
		if *u.RateLimitOverride <= 0 {
			return nil, fmt.Errorf("rate_limit_override must be positive")
		}
		v := *u.RateLimitOverride
		record.RateLimitOverride = &v
	}
	if err := m.save(ctx, record); err != nil {
		return nil, err
	}
	m.logger.WithFields(logrus.Fields{
		"user_id":             userID,
		"plan":                record.Plan,
		"rate_limit_override": record.RateLimitOverride,
	}).Info("membership updated")
	return record, nil
}

func (m *manager) Ban(ctx context.Context, userID string, reason string) (*membership.Membership, error) {
	record, err := m.setBanned(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	m.logger.WithFields(logrus.Fields{"user_id": userID, "reason": reason}).Warn("user banned by administrator")

	msg := banMessage
	if reason != "" {
		msg = fmt.Sprintf("%s Reason: %s", banMessage, reason)
	}
	m.notify(ctx, notification.New(userID, notification.TypeBan, banTitle, msg))
	return record, nil
}

func (m *manager) Unban(ctx context.Context, userID string) (*membership.Membership, error) {
	record, err := m.setBanned(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	m.logger.WithField("user_id", userID).Info("user unbanned by administrator")
	m.notify(ctx, notification.New(userID, notification.TypeUnban, unbanTitle, unbanMessage))
	return record, nil
}

func (m *manager) setBanned(ctx context.Context, userID string, banned bool) (*membership.Membership, error) {
	record, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	record.IsBanned = banned
	if err := m.save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (m *manager) save(ctx context.Context, record *membership.Membership) error {
	record.UpdatedAt = time.Now().UTC()
	return m.repo.Save(ctx, record)
}

func (m *manager) notify(ctx context.Context, n *notification.Notification) {
	if m.sink == nil {
		return
	}
	if err := m.sink.Send(ctx, n); err != nil {
		m.logger.WithError(err).WithField("user_id", n.UserID).Warn("failed to send membership notification")
	}
}
