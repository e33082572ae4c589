package quota_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/quota"
	"github.com/NeuralTrust/RiskGate/pkg/domain"
	"github.com/NeuralTrust/RiskGate/pkg/domain/membership"
	membershipmocks "github.com/NeuralTrust/RiskGate/pkg/domain/membership/mocks"
	requestmocks "github.com/NeuralTrust/RiskGate/pkg/domain/requestevent/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 17, 14, 42, 5, 0, time.UTC)

func newChecker(t *testing.T) (quota.Checker, *membershipmocks.Repository, *requestmocks.Repository) {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	m := membershipmocks.NewRepository(t)
	r := requestmocks.NewRepository(t)
	return quota.NewChecker(l, m, r), m, r
}

func expectUsage(r *requestmocks.Repository, userID string, monthly, daily, hourly int64) {
	month, day, hour := quota.Boundaries(now)
	r.EXPECT().CountByUser(mock.Anything, userID, month).Return(monthly, nil)
	r.EXPECT().CountByUser(mock.Anything, userID, day).Return(daily, nil)
	r.EXPECT().CountByUser(mock.Anything, userID, hour).Return(hourly, nil)
}

func TestBoundaries(t *testing.T) {
	month, day, hour := quota.Boundaries(now)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), month)
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, time.Date(2024, 5, 17, 14, 0, 0, 0, time.UTC), hour)
}

func TestCanMakeAPICall_GoldAlwaysPasses(t *testing.T) {
	c, m, _ := newChecker(t)
	m.EXPECT().Get(mock.Anything, "gold-user").Return(&membership.Membership{UserID: "gold-user", Plan: membership.PlanGold}, nil)

	v, err := c.CanMakeAPICall(context.Background(), "gold-user", now)

	require.NoError(t, err)
	assert.True(t, v.Allowed)
	assert.Equal(t, membership.PlanGold, v.Plan)
}

func TestCanMakeAPICall_FreeAtMonthlyCeilingIsDenied(t *testing.T) {
	c, m, r := newChecker(t)
	m.EXPECT().Get(mock.Anything, "u1").Return(&membership.Membership{UserID: "u1", Plan: membership.PlanFree}, nil)
	expectUsage(r, "u1", 15, 0, 0)

	v, err := c.CanMakeAPICall(context.Background(), "u1", now)

	require.NoError(t, err)
	assert.False(t, v.Allowed)
	assert.Equal(t, "monthly", v.Exceeded)
}

func TestCanMakeAPICall_FreeBelowCeilingPasses(t *testing.T) {
	c, m, r := newChecker(t)
	m.EXPECT().Get(mock.Anything, "u2").Return(&membership.Membership{UserID: "u2", Plan: membership.PlanFree}, nil)
	expectUsage(r, "u2", 14, 4, 1)

	v, err := c.CanMakeAPICall(context.Background(), "u2", now)

	require.NoError(t, err)
	assert.True(t, v.Allowed)
	assert.Equal(t, quota.Usage{Monthly: 14, Daily: 4, Hourly: 1}, v.Usage)
}

func TestCanMakeAPICall_MissingMembershipIsFree(t *testing.T) {
	c, m, r := newChecker(t)
	m.EXPECT().Get(mock.Anything, "new").Return(nil, domain.NewNotFoundError("membership", "new"))
	expectUsage(r, "new", 3, 3, 2)

	v, err := c.CanMakeAPICall(context.Background(), "new", now)

	require.NoError(t, err)
	assert.Equal(t, membership.PlanFree, v.Plan)
	assert.False(t, v.Allowed)
	assert.Equal(t, "hourly", v.Exceeded)
}

func TestCanMakeAPICall_FailsOpen(t *testing.T) {
	c, m, r := newChecker(t)
	m.EXPECT().Get(mock.Anything, "u3").Return(&membership.Membership{UserID: "u3", Plan: membership.PlanBronze}, nil)
	r.EXPECT().CountByUser(mock.Anything, "u3", mock.Anything).Return(int64(0), errors.New("timeout"))

	v, err := c.CanMakeAPICall(context.Background(), "u3", now)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.True(t, v.Allowed)
	assert.True(t, v.Degraded)
}

func TestExceeded(t *testing.T) {
	limits := membership.PlanBronze.Limits()
	assert.Equal(t, "", quota.Exceeded(quota.Usage{Monthly: 1499, Daily: 49, Hourly: 9}, limits))
	assert.Equal(t, "daily", quota.Exceeded(quota.Usage{Monthly: 100, Daily: 50, Hourly: 0}, limits))
	assert.Equal(t, "", quota.Exceeded(quota.Usage{Monthly: 1 << 40}, membership.PlanGold.Limits()))
}
