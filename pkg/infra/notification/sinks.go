package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NeuralTrust/RiskGate/pkg/domain/notification"
	"github.com/NeuralTrust/RiskGate/pkg/infra/cache"
	"github.com/sirupsen/logrus"
)

const DefaultChannel = "riskgate:notifications"

type logSink struct {
	logger *logrus.Logger
}

// NewLogSink writes notifications to the log only.
func NewLogSink(logger *logrus.Logger) notification.Sink {
	return &logSink{logger: logger}
}

func (s *logSink) Send(_ context.Context, n *notification.Notification) error {
	s.logger.WithFields(logrus.Fields{
		"user_id":  n.UserID,
		"type":     n.Type,
		"priority": n.Priority,
		"title":    n.Title,
	}).Info("user notification")
	return nil
}

// envelope is the JSON published on the notification channel.
type envelope struct {
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Priority  string `json:"priority"`
	CreatedAt int64  `json:"created_at"`
}

type redisSink struct {
	client  cache.Client
	channel string
}

// NewRedisSink publishes notifications for the delivery service that owns
// the in-app inbox.
func NewRedisSink(client cache.Client, channel string) notification.Sink {
	if channel == "" {
		channel = DefaultChannel
	}
	return &redisSink{client: client, channel: channel}
}

func (s *redisSink) Send(ctx context.Context, n *notification.Notification) error {
	payload, err := json.Marshal(envelope{
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Priority:  string(n.Priority),
		CreatedAt: n.CreatedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	if err := s.client.Publish(ctx, s.channel, payload); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

type fanOut struct {
	sinks []notification.Sink
}

// NewFanOut sends to every sink and joins their errors.
func NewFanOut(sinks ...notification.Sink) notification.Sink {
	return &fanOut{sinks: sinks}
}

func (f *fanOut) Send(ctx context.Context, n *notification.Notification) error {
	var errs []error
	for _, s := range f.sinks {
		if err := s.Send(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
