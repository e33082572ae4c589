package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/securitylog"
	"github.com/NeuralTrust/RiskGate/pkg/domain"
	"github.com/NeuralTrust/RiskGate/pkg/domain/membership"
	"github.com/NeuralTrust/RiskGate/pkg/domain/notification"
	"github.com/NeuralTrust/RiskGate/pkg/domain/ratewindow"
	"github.com/NeuralTrust/RiskGate/pkg/domain/requestevent"
	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	"github.com/NeuralTrust/RiskGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type Type string

const (
	TypeBan       Type = "ban"
	TypeIPBlock   Type = "ip_block"
	TypeRateLimit Type = "rate_limit"

	ReasonBanned      = "Account banned by administrator"
	ReasonIPBlocked   = "IP address blocked by administrator"
	ReasonRateLimited = "Rate limit exceeded"
)

type Query struct {
	IP       string
	UserID   *string
	Endpoint string
	Now      time.Time
}

type Decision struct {
	Limited  bool                 `json:"limited"`
	Reason   string               `json:"reason,omitempty"`
	Type     Type                 `json:"type,omitempty"`
	Counts   securityevent.Counts `json:"counts"`
	Limits   settings.Limits      `json:"limits"`
	Exceeded []string             `json:"exceeded,omitempty"`
	// Advisory is set when a ceiling was crossed but enforcement is off.
	Advisory bool `json:"advisory"`
	Degraded bool `json:"degraded,omitempty"`
}

//go:generate mockery --name=Limiter --dir=. --output=./mocks --filename=limiter_mock.go --case=underscore --with-expecter
type Limiter interface {
	// Check never blocks on a store failure: the returned decision is then
	// not limited, marked Degraded, and err carries the cause.
	Check(ctx context.Context, q Query) (Decision, error)
}

type limiter struct {
	logger      *logrus.Logger
	memberships membership.Repository
	windows     ratewindow.Repository
	counter     requestevent.Counter
	emitter     securitylog.Emitter
	sink        notification.Sink
	settings    settings.Provider
}

func NewLimiter(
	logger *logrus.Logger,
	memberships membership.Repository,
	windows ratewindow.Repository,
	counter requestevent.Counter,
	emitter securitylog.Emitter,
	sink notification.Sink,
	provider settings.Provider,
) Limiter {
	return &limiter{
		logger:      logger,
		memberships: memberships,
		windows:     windows,
		counter:     counter,
		emitter:     emitter,
		sink:        sink,
		settings:    provider,
	}
}

func (l *limiter) Check(ctx context.Context, q Query) (Decision, error) {
	now := q.Now
	if now.IsZero() {
		now = time.Now()
	}
	cfg := l.settings.Current(ctx)
	var degraded []error

	var member *membership.Membership
	if q.UserID != nil && *q.UserID != "" {
		m, err := l.memberships.Get(ctx, *q.UserID)
		switch {
		case err == nil:
			member = m
		case domain.IsNotFoundError(err):
		default:
			degraded = append(degraded, fmt.Errorf("membership lookup: %w", err))
		}
	}
	if member != nil && member.IsBanned {
		return l.decide(Decision{Limited: true, Reason: ReasonBanned, Type: TypeBan}), nil
	}

	block, err := l.windows.FindActiveBlock(ctx, q.IP, now)
	if err != nil {
		degraded = append(degraded, fmt.Errorf("ip block lookup: %w", err))
	} else if block != nil {
		return l.decide(Decision{Limited: true, Reason: ReasonIPBlocked, Type: TypeIPBlock}), nil
	}

	limits := cfg.Limits
	if member != nil && member.RateLimitOverride != nil && *member.RateLimitOverride > 0 {
		limits.PerMinute = *member.RateLimitOverride
	}

	counts, err := Snapshot(ctx, l.counter, q.IP, now)
	if err != nil {
		degraded = append(degraded, fmt.Errorf("request counts: %w", err))
		return l.failOpen(q, Decision{Limits: limits, Degraded: true}, degraded)
	}

	d := Decision{Counts: counts, Limits: limits, Exceeded: Exceeded(counts, limits)}
	if len(d.Exceeded) == 0 {
		if len(degraded) > 0 {
			d.Degraded = true
			return l.failOpen(q, d, degraded)
		}
		return l.decide(d), nil
	}

	if cfg.AutoEnforce() {
		d.Limited = true
		d.Reason = ReasonRateLimited
		d.Type = TypeRateLimit
		l.notifyRateLimited(ctx, q)
		return l.decide(d), nil
	}

	d.Advisory = true
	l.emitAdvisory(ctx, q, d, now)
	if len(degraded) > 0 {
		d.Degraded = true
		return l.failOpen(q, d, degraded)
	}
	return l.decide(d), nil
}

// Exceeded lists the windows whose count is above the ceiling.
func Exceeded(c securityevent.Counts, limits settings.Limits) []string {
	var out []string
	if limits.PerMinute > 0 && c.Minute > limits.PerMinute {
		out = append(out, "minute")
	}
	if limits.PerHour > 0 && c.Hour > limits.PerHour {
		out = append(out, "hour")
	}
	if limits.PerDay > 0 && c.Day > limits.PerDay {
		out = append(out, "day")
	}
	return out
}

func (l *limiter) emitAdvisory(ctx context.Context, q Query, d Decision, now time.Time) {
	event := securityevent.New(
		securityevent.TypeRateLimitExceededAdvisory,
		securityevent.SeverityMedium,
		q.IP,
		q.UserID,
		"Rate limit exceeded (advisory, not enforced)",
		map[string]interface{}{
			"endpoint": q.Endpoint,
			"exceeded": d.Exceeded,
			"limits":   d.Limits,
		},
		now,
	).WithCounts(d.Counts)

	if err := l.emitter.Emit(ctx, event); err != nil {
		l.logger.WithError(err).WithField("ip", q.IP).Warn("failed to log rate limit advisory")
	}
}

func (l *limiter) notifyRateLimited(ctx context.Context, q Query) {
	if q.UserID == nil || *q.UserID == "" || l.sink == nil {
		return
	}
	n := notification.New(*q.UserID, notification.TypeRateLimit,
		"Rate Limit Reached",
		"Your request rate is above the allowed limit. Please slow down and try again shortly.")
	if err := l.sink.Send(ctx, n); err != nil {
		l.logger.WithError(err).WithField("user_id", *q.UserID).Warn("failed to send rate limit notification")
	}
}

func (l *limiter) decide(d Decision) Decision {
	prometheus.RateLimitDecisions.WithLabelValues(labelFor(d), strconv.FormatBool(d.Limited)).Inc()
	return d
}

func (l *limiter) failOpen(q Query, d Decision, errs []error) (Decision, error) {
	err := errors.Join(errs...)
	l.logger.WithError(err).WithField("ip", q.IP).Warn("rate limit check degraded, allowing request")
	prometheus.FailOpenTotal.WithLabelValues("rate_limiter").Inc()
	return l.decide(d), fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}

func labelFor(d Decision) string {
	switch {
	case d.Type != "":
		return string(d.Type)
	case d.Advisory:
		return "advisory"
	default:
		return "none"
	}
}
