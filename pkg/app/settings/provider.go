package settings

import (
	"context"

	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	"github.com/NeuralTrust/RiskGate/pkg/infra/cache"
	"github.com/sirupsen/logrus"
)

const currentKey = "current"

type cachedProvider struct {
	logger   *logrus.Logger
	repo     settings.Repository
	defaults settings.Settings
	cache    *cache.TTLMap
}

// NewProvider serves the stored settings layered over defaults. A lookup is
// cached in ttlMap; an unreachable or malformed store yields the defaults for
// one TTL as well, so an outage does not cost a round trip per request.
func NewProvider(
	logger *logrus.Logger,
	repo settings.Repository,
	defaults settings.Settings,
	ttlMap *cache.TTLMap,
) settings.Provider {
	if ttlMap == nil {
		ttlMap = cache.NewTTLMap(cache.DefaultLocalCacheTTL)
	}
	return &cachedProvider{
		logger:   logger,
		repo:     repo,
		defaults: defaults,
		cache:    ttlMap,
	}
}

func (p *cachedProvider) Current(ctx context.Context) settings.Settings {
	if v, ok := p.cache.Get(currentKey); ok {
		if s, ok := v.(settings.Settings); ok {
			return s
		}
	}

	s := p.load(ctx)
	p.cache.Set(currentKey, s)
	return s
}

func (p *cachedProvider) load(ctx context.Context) settings.Settings {
	raw, err := p.repo.Load(ctx)
	if err != nil {
		p.logger.WithError(err).Warn("risk settings unavailable, using defaults")
		return p.defaults
	}
	if raw == nil {
		return p.defaults
	}
	s, rejected := settings.DecodeWith(p.defaults, raw)
	if len(rejected) > 0 {
		p.logger.WithField("keys", rejected).Warn("ignoring invalid risk settings")
	}
	return s
}

// Invalidate drops the cached copy so the next Current reloads.
func (p *cachedProvider) Invalidate() {
	p.cache.Delete(currentKey)
}
