package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/securitylog"
	"github.com/NeuralTrust/RiskGate/pkg/domain/requestevent"
	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	"github.com/NeuralTrust/RiskGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type AnalysisConfig struct {
	Window      time.Duration
	MaxRequests int64
	MaxAvgScore float64
}

func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		Window:      time.Hour,
		MaxRequests: 50,
		MaxAvgScore: 70,
	}
}

type patternAnalyzer struct {
	logger   *logrus.Logger
	requests requestevent.Repository
	emitter  securitylog.Emitter
	cfg      AnalysisConfig
	now      func() time.Time
}

// NewPatternAnalyzer flags IPs whose traffic over the last window is heavy
// or whose average bot score is high.
func NewPatternAnalyzer(
	logger *logrus.Logger,
	requests requestevent.Repository,
	emitter securitylog.Emitter,
	cfg AnalysisConfig,
) Job {
	def := DefaultAnalysisConfig()
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = def.MaxRequests
	}
	if cfg.MaxAvgScore <= 0 {
		cfg.MaxAvgScore = def.MaxAvgScore
	}
	return &patternAnalyzer{
		logger:   logger,
		requests: requests,
		emitter:  emitter,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (a *patternAnalyzer) Name() string {
	return JobPatternAnalysis
}

func (a *patternAnalyzer) Run(ctx context.Context) (Report, error) {
	now := a.now().UTC()
	stats, err := a.requests.StatsByIP(ctx, now.Add(-a.cfg.Window))
	if err != nil {
		return Report{}, fmt.Errorf("failed to load ip stats: %w", err)
	}

	flagged := 0
	failed := 0
	for _, st := range stats {
		severity, ok := a.Classify(st)
		if !ok {
			continue
		}
		event := securityevent.New(
			securityevent.TypePatternAnalysis,
			severity,
			st.IP, nil,
			"Suspicious traffic pattern detected",
			map[string]interface{}{
				"requests":      st.Requests,
				"avg_bot_score": st.AvgBotScore,
				"window":        a.cfg.Window.String(),
			},
			now,
		).WithCounts(securityevent.Counts{Hour: st.Requests})

		if err := a.emitter.Emit(ctx, event); err != nil {
			failed++
			a.logger.WithError(err).WithField("ip", st.IP).Error("failed to log pattern analysis event")
			continue
		}
		flagged++
		prometheus.PatternAnalysisFlagged.WithLabelValues(string(severity)).Inc()
	}

	a.logger.WithFields(logrus.Fields{
		"ips":     len(stats),
		"flagged": flagged,
		"failed":  failed,
	}).Info("pattern analysis finished")

	report := Report{
		Job: JobPatternAnalysis,
		Details: map[string]interface{}{
			"ips_analyzed": len(stats),
			"flagged":      flagged,
		},
	}
	if failed > 0 {
		return report, fmt.Errorf("failed to log %d of %d pattern events", failed, failed+flagged)
	}
	return report, nil
}

// Classify returns the severity for an IP's stats: high when both the volume
// and the average score are over the thresholds, medium when one is.
func (a *patternAnalyzer) Classify(st requestevent.IPStats) (securityevent.Severity, bool) {
	heavy := st.Requests > a.cfg.MaxRequests
	botty := st.AvgBotScore > a.cfg.MaxAvgScore
	switch {
	case heavy && botty:
		return securityevent.SeverityHigh, true
	case heavy || botty:
		return securityevent.SeverityMedium, true
	}
	return "", false
}
