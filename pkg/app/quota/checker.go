package quota

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain"
	"github.com/NeuralTrust/RiskGate/pkg/domain/membership"
	"github.com/NeuralTrust/RiskGate/pkg/domain/requestevent"
	"github.com/NeuralTrust/RiskGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Usage struct {
	Monthly int64 `json:"monthly"`
	Daily   int64 `json:"daily"`
	Hourly  int64 `json:"hourly"`
}

type Verdict struct {
	Allowed  bool              `json:"allowed"`
	Plan     membership.Plan   `json:"plan"`
	Usage    Usage             `json:"usage"`
	Limits   membership.Limits `json:"limits"`
	Exceeded string            `json:"exceeded,omitempty"`
	Degraded bool              `json:"degraded,omitempty"`
}

//go:generate mockery --name=Checker --dir=. --output=./mocks --filename=checker_mock.go --case=underscore --with-expecter
type Checker interface {
	// CanMakeAPICall reports whether the user is still inside every ceiling of
	// the plan. Counts are the calls already logged, so the current request is
	// allowed when each counter is strictly below its ceiling.
	CanMakeAPICall(ctx context.Context, userID string, now time.Time) (Verdict, error)
}

type checker struct {
	logger      *logrus.Logger
	memberships membership.Repository
	requests    requestevent.Repository
}

func NewChecker(logger *logrus.Logger, memberships membership.Repository, requests requestevent.Repository) Checker {
	return &checker{
		logger:      logger,
		memberships: memberships,
		requests:    requests,
	}
}

func (c *checker) CanMakeAPICall(ctx context.Context, userID string, now time.Time) (Verdict, error) {
	if now.IsZero() {
		now = time.Now()
	}
	m, err := c.memberships.Get(ctx, userID)
	if err != nil {
		if !domain.IsNotFoundError(err) {
			return c.failOpen(userID, Verdict{Plan: membership.PlanFree}, fmt.Errorf("membership lookup: %w", err))
		}
		m = membership.Default(userID)
	}

	v := Verdict{Plan: m.Plan, Limits: m.Plan.Limits()}
	if v.Limits.Unlimited() {
		v.Allowed = true
		return c.decide(v), nil
	}

	usage, err := c.usage(ctx, userID, now)
	if err != nil {
		v.Degraded = true
		return c.failOpen(userID, v, fmt.Errorf("usage counts: %w", err))
	}
	v.Usage = usage
	v.Exceeded = Exceeded(usage, v.Limits)
	v.Allowed = v.Exceeded == ""
	return c.decide(v), nil
}

// Exceeded names the first ceiling the usage has reached, or "" when every
// counter is below its ceiling.
func Exceeded(u Usage, l membership.Limits) string {
	switch {
	case l.Monthly != membership.Unlimited && u.Monthly >= l.Monthly:
		return "monthly"
	case l.Daily != membership.Unlimited && u.Daily >= l.Daily:
		return "daily"
	case l.Hourly != membership.Unlimited && u.Hourly >= l.Hourly:
		return "hourly"
	}
	return ""
}

// Boundaries returns the calendar month start, calendar day start and top of
// the hour for now, in UTC.
func Boundaries(now time.Time) (month, day, hour time.Time) {
	now = now.UTC()
	month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	hour = now.Truncate(time.Hour)
	return month, day, hour
}

func (c *checker) usage(ctx context.Context, userID string, now time.Time) (Usage, error) {
	var u Usage
	month, day, hour := Boundaries(now)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := c.requests.CountByUser(gctx, userID, month)
		u.Monthly = n
		return err
	})
	g.Go(func() error {
		n, err := c.requests.CountByUser(gctx, userID, day)
		u.Daily = n
		return err
	})
	g.Go(func() error {
		n, err := c.requests.CountByUser(gctx, userID, hour)
		u.Hourly = n
		return err
	})
	if err := g.Wait(); err != nil {
		return Usage{}, err
	}
	return u, nil
}

func (c *checker) decide(v Verdict) Verdict {
	prometheus.QuotaDecisions.WithLabelValues(string(v.Plan), strconv.FormatBool(v.Allowed)).Inc()
	return v
}

func (c *checker) failOpen(userID string, v Verdict, err error) (Verdict, error) {
	c.logger.WithError(err).WithField("user_id", userID).Warn("quota check degraded, allowing request")
	prometheus.FailOpenTotal.WithLabelValues("quota").Inc()
	v.Allowed = true
	v.Degraded = true
	return c.decide(v), fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}
