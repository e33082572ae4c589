package securitylog

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	"github.com/NeuralTrust/RiskGate/pkg/infra/prometheus"
	"github.com/NeuralTrust/RiskGate/pkg/infra/worker"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Emitter --dir=. --output=./mocks --filename=emitter_mock.go --case=underscore --with-expecter
type Emitter interface {
	// Emit persists the event and schedules its export. Export failures are
	// logged by the worker and never reach the caller.
	Emit(ctx context.Context, event *securityevent.SecurityEvent) error
}

type emitter struct {
	logger    *logrus.Logger
	repo      securityevent.Repository
	exporters []securityevent.Exporter
	worker    worker.Worker
}

func NewEmitter(
	logger *logrus.Logger,
	repo securityevent.Repository,
	w worker.Worker,
	exporters ...securityevent.Exporter,
) Emitter {
	return &emitter{
		logger:    logger,
		repo:      repo,
		exporters: exporters,
		worker:    w,
	}
}

func (e *emitter) Emit(ctx context.Context, event *securityevent.SecurityEvent) error {
	if err := e.repo.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to persist security event: %w", err)
	}
	prometheus.SecurityEventsTotal.WithLabelValues(string(event.EventType), string(event.Severity)).Inc()

	e.logger.WithFields(logrus.Fields{
		"event_id":   event.ID.String(),
		"event_type": event.EventType,
		"severity":   event.Severity,
		"ip":         event.IPAddress,
	}).Info(event.Description)

	if e.worker == nil {
		return nil
	}
	for _, exp := range e.exporters {
		exp := exp
		e.worker.Enqueue(func(ctx context.Context) {
			if err := exp.Export(ctx, event); err != nil {
				prometheus.ExportsTotal.WithLabelValues(exp.Name(), "error").Inc()
				e.logger.WithError(err).WithField("exporter", exp.Name()).Error("failed to export security event")
				return
			}
			prometheus.ExportsTotal.WithLabelValues(exp.Name(), "ok").Inc()
		}, exp.Name()+":"+event.ID.String())
	}
	return nil
}
