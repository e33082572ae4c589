package membership_test

import (
	"context"
	"errors"
	"testing"

	appmembership "github.com/NeuralTrust/RiskGate/pkg/app/membership"
	"github.com/NeuralTrust/RiskGate/pkg/domain"
	"github.com/NeuralTrust/RiskGate/pkg/domain/membership"
	membershipmocks "github.com/NeuralTrust/RiskGate/pkg/domain/membership/mocks"
	"github.com/NeuralTrust/RiskGate/pkg/domain/notification"
	notificationmocks "github.com/NeuralTrust/RiskGate/pkg/domain/notification/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (appmembership.Manager, *membershipmocks.Repository, *notificationmocks.Sink) {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	repo := membershipmocks.NewRepository(t)
	sink := notificationmocks.NewSink(t)
	return appmembership.NewManager(l, repo, sink), repo, sink
}

func TestManager_GetDefaultsToFree(t *testing.T) {
	m, repo, _ := newManager(t)
	repo.EXPECT().Get(mock.Anything, "u1").Return(nil, domain.NewNotFoundError("membership", "u1"))

	got, err := m.Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, membership.PlanFree, got.Plan)
	assert.False(t, got.IsBanned)
}

func TestManager_BanSendsHighPriorityNotification(t *testing.T) {
	m, repo, sink := newManager(t)
	repo.EXPECT().Get(mock.Anything, "u2").Return(&membership.Membership{UserID: "u2", Plan: membership.PlanSilver}, nil)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(r *membership.Membership) bool {
		return r.UserID == "u2" && r.IsBanned && r.Plan == membership.PlanSilver
	})).Return(nil)
	sink.EXPECT().Send(mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Type == notification.TypeBan && n.Priority == notification.PriorityHigh && n.UserID == "u2"
	})).Return(nil)

	got, err := m.Ban(context.Background(), "u2", "scraping")

	require.NoError(t, err)
	assert.True(t, got.IsBanned)
}

func TestManager_UnbanClearsFlag(t *testing.T) {
	m, repo, sink := newManager(t)
	repo.EXPECT().Get(mock.Anything, "u3").Return(&membership.Membership{UserID: "u3", Plan: membership.PlanFree, IsBanned: true}, nil)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	sink.EXPECT().Send(mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Type == notification.TypeUnban && n.Priority == notification.PriorityNormal
	})).Return(nil)

	got, err := m.Unban(context.Background(), "u3")

	require.NoError(t, err)
	assert.False(t, got.IsBanned)
}

func TestManager_UpdatePlanAndOverride(t *testing.T) {
	m, repo, _ := newManager(t)
	repo.EXPECT().Get(mock.Anything, "u4").Return(nil, domain.NewNotFoundError("membership", "u4"))
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	plan := "gold"
	override := int64(120)
	got, err := m.Update(context.Background(), "u4", appmembership.Update{Plan: &plan, RateLimitOverride: &override})

	require.NoError(t, err)
	assert.Equal(t, membership.PlanGold, got.Plan)
	require.NotNil(t, got.RateLimitOverride)
	assert.Equal(t, int64(120), *got.RateLimitOverride)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestManager_UpdateRejectsUnknownPlan(t *testing.T) {
	m, repo, _ := newManager(t)
	repo.EXPECT().Get(mock.Anything, "u5").Return(&membership.Membership{UserID: "u5", Plan: membership.PlanFree}, nil)

	plan := "platinum"
	_, err := m.Update(context.Background(), "u5", appmembership.Update{Plan: &plan})

	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
}

func TestManager_SaveFailureSkipsNotification(t *testing.T) {
	m, repo, sink := newManager(t)
	repo.EXPECT().Get(mock.Anything, "u6").Return(&membership.Membership{UserID: "u6", Plan: membership.PlanFree}, nil)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := m.Ban(context.Background(), "u6", "")

	assert.Error(t, err)
	sink.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
