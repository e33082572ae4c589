package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain/requestevent"
	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	"github.com/sirupsen/logrus"
)

const DefaultRetention = 30 * 24 * time.Hour

type purger struct {
	logger    *logrus.Logger
	requests  requestevent.Repository
	events    securityevent.Repository
	retention time.Duration
	now       func() time.Time
}

// NewPurger deletes request and security events older than retention.
func NewPurger(
	logger *logrus.Logger,
	requests requestevent.Repository,
	events securityevent.Repository,
	retention time.Duration,
) Job {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &purger{
		logger:    logger,
		requests:  requests,
		events:    events,
		retention: retention,
		now:       time.Now,
	}
}

func (p *purger) Name() string {
	return JobPurge
}

func (p *purger) Run(ctx context.Context) (Report, error) {
	cutoff := p.now().UTC().Add(-p.retention)

	requests, err := p.requests.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return Report{}, fmt.Errorf("failed to purge request events: %w", err)
	}
	events, err := p.events.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return Report{}, fmt.Errorf("failed to purge security events: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"cutoff":          cutoff,
		"request_events":  requests,
		"security_events": events,
	}).Info("purged expired events")

	return Report{
		Job: JobPurge,
		Details: map[string]interface{}{
			"cutoff":          cutoff,
			"request_events":  requests,
			"security_events": events,
		},
	}, nil
}
