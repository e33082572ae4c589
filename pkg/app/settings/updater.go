package settings

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	"github.com/sirupsen/logrus"
)

type UpdateResult struct {
	Settings settings.Settings `json:"settings"`
	Rejected []string          `json:"rejected,omitempty"`
}

//go:generate mockery --name=Updater --dir=. --output=./mocks --filename=updater_mock.go --case=underscore --with-expecter
type Updater interface {
	// Update merges patch into the stored settings. Invalid keys are dropped
	// and reported instead of failing the whole update.
	Update(ctx context.Context, patch map[string]interface{}) (UpdateResult, error)
}

type invalidator interface {
	Invalidate()
}

type updater struct {
	logger   *logrus.Logger
	repo     settings.Repository
	provider settings.Provider
}

func NewUpdater(logger *logrus.Logger, repo settings.Repository, provider settings.Provider) Updater {
	return &updater{
		logger:   logger,
		repo:     repo,
		provider: provider,
	}
}

func (u *updater) Update(ctx context.Context, patch map[string]interface{}) (UpdateResult, error) {
	current := u.provider.Current(ctx)
	next, rejected := settings.DecodeWith(current, patch)

	raw, err := next.ToMap()
	if err != nil {
		return UpdateResult{}, err
	}
	if err := u.repo.Store(ctx, raw); err != nil {
		return UpdateResult{}, fmt.Errorf("failed to save settings: %w", err)
	}
	if inv, ok := u.provider.(invalidator); ok {
		inv.Invalidate()
	}

	u.logger.WithFields(logrus.Fields{
		"keys":     keys(patch),
		"rejected": rejected,
	}).Info("risk settings updated")

	return UpdateResult{Settings: next, Rejected: rejected}, nil
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
