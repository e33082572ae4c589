package ipblock

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain"
	"github.com/NeuralTrust/RiskGate/pkg/domain/ratewindow"
	"github.com/sirupsen/logrus"
)

const (
	DefaultDuration = 24 * time.Hour
	AllEndpoints    = "*"
)

//go:generate mockery --name=Manager --dir=. --output=./mocks --filename=manager_mock.go --case=underscore --with-expecter
type Manager interface {
	Block(ctx context.Context, ip, endpoint string, duration time.Duration) (*ratewindow.RateWindow, error)
	Unblock(ctx context.Context, ip string) (int64, error)
	List(ctx context.Context) ([]ratewindow.RateWindow, error)
}

type manager struct {
	logger *logrus.Logger
	repo   ratewindow.Repository
	now    func() time.Time
}

func NewManager(logger *logrus.Logger, repo ratewindow.Repository) Manager {
	return &manager{
		logger: logger,
		repo:   repo,
		now:    time.Now,
	}
}

func (m *manager) Block(ctx context.Context, ip, endpoint string, duration time.Duration) (*ratewindow.RateWindow, error) {
	if net.ParseIP(ip) == nil {
		return nil, domain.ErrInvalidIP
	}
	if endpoint == "" {
		endpoint = AllEndpoints
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	start := m.now().UTC()
	w, err := m.repo.Block(ctx, ip, endpoint, start, start.Add(duration))
	if err != nil {
		return nil, fmt.Errorf("failed to block %s: %w", ip, err)
	}
	m.logger.WithFields(logrus.Fields{
		"ip":       ip,
		"endpoint": endpoint,
		"until":    w.WindowEnd,
	}).Warn("ip blocked by administrator")
	return w, nil
}

func (m *manager) Unblock(ctx context.Context, ip string) (int64, error) {
	if net.ParseIP(ip) == nil {
		return 0, domain.ErrInvalidIP
	}
	n, err := m.repo.Unblock(ctx, ip)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, domain.NewNotFoundError("ip block", ip)
	}
	m.logger.WithFields(logrus.Fields{"ip": ip, "windows": n}).Info("ip unblocked by administrator")
	return n, nil
}

func (m *manager) List(ctx context.Context) ([]ratewindow.RateWindow, error) {
	return m.repo.ListBlocked(ctx, m.now())
}
