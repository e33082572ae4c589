package scoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain/requestevent"
	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	"github.com/NeuralTrust/RiskGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	MaxScore = 100
	MinScore = 0

	signaturePoints    = 20
	missingAjaxPoints  = 5
	missingLanguagePts = 10
	missingEncodingPts = 10
	burstPoints        = 30
	elevatedPoints     = 15
	burstThreshold     = 20
	elevatedThreshold  = 10
	FrequencyWindow    = 60 * time.Second
)

//go:generate mockery --name=Scorer --dir=. --output=./mocks --filename=scorer_mock.go --case=underscore --with-expecter
type Scorer interface {
	// Score never fails the caller: when the history is unreadable the
	// returned result is Degraded and err explains why.
	Score(ctx context.Context, req Request) (Result, error)
}

type scorer struct {
	logger   *logrus.Logger
	counter  requestevent.Counter
	settings settings.Provider
}

func NewScorer(logger *logrus.Logger, counter requestevent.Counter, provider settings.Provider) Scorer {
	return &scorer{
		logger:   logger,
		counter:  counter,
		settings: provider,
	}
}

func (s *scorer) Score(ctx context.Context, req Request) (Result, error) {
	cfg := s.settings.Current(ctx)

	now := req.Timestamp
	if now.IsZero() {
		now = time.Now()
	}
	recent, err := s.counter.CountByIP(ctx, req.IP, now.Add(-FrequencyWindow))
	if err != nil {
		s.logger.WithError(err).WithField("ip", req.IP).Warn("request history unavailable, scoring without frequency")
		prometheus.FailOpenTotal.WithLabelValues("scorer").Inc()
		res := Compute(req, 0, cfg.Signatures)
		res.Degraded = true
		prometheus.BotScore.Observe(float64(res.Score))
		return res, fmt.Errorf("frequency lookup failed: %w", err)
	}

	res := Compute(req, recent, cfg.Signatures)
	prometheus.BotScore.Observe(float64(res.Score))
	return res, nil
}

// Compute is the pure point sum over the request signals and the number of
// requests the IP made in the trailing FrequencyWindow.
func Compute(req Request, recent int64, signatures []string) Result {
	res := Result{RecentRequests: recent}

	ua := strings.ToLower(req.UserAgent)
	for _, sig := range signatures {
		if sig == "" {
			continue
		}
		if strings.Contains(ua, strings.ToLower(sig)) {
			res.SignaturePoints += signaturePoints
			res.MatchedSignatures = append(res.MatchedSignatures, sig)
		}
	}
	if !req.HasAjaxHeader {
		res.AjaxPoints = missingAjaxPoints
	}
	if !req.HasAcceptLanguage {
		res.LanguagePoints = missingLanguagePts
	}
	if !req.HasAcceptEncoding {
		res.EncodingPoints = missingEncodingPts
	}
	res.FrequencyPoints = FrequencyPoints(recent)

	res.Score = Clamp(res.SignaturePoints + res.AjaxPoints + res.LanguagePoints + res.EncodingPoints + res.FrequencyPoints)
	return res
}

func FrequencyPoints(recent int64) int {
	switch {
	case recent > burstThreshold:
		return burstPoints
	case recent > elevatedThreshold:
		return elevatedPoints
	default:
		return 0
	}
}

func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
