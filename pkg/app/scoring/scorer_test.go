package scoring_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/scoring"
	"github.com/NeuralTrust/RiskGate/pkg/domain/requestevent/mocks"
	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15"

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	return l
}

func browserRequest(ip string) scoring.Request {
	return scoring.Request{
		IP:                ip,
		Endpoint:          "/v1/quotes/AAPL",
		UserAgent:         browserUA,
		HasAjaxHeader:     true,
		HasAcceptLanguage: true,
		HasAcceptEncoding: true,
		Timestamp:         time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestScorer_CleanBrowserRequestScoresZero(t *testing.T) {
	counter := mocks.NewCounter(t)
	req := browserRequest("10.0.0.1")
	counter.EXPECT().
		CountByIP(mock.Anything, "10.0.0.1", req.Timestamp.Add(-scoring.FrequencyWindow)).
		Return(int64(0), nil)

	s := scoring.NewScorer(testLogger(), counter, settings.Static(settings.Defaults()))
	res, err := s.Score(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
	assert.False(t, res.Degraded)
	assert.Empty(t, res.MatchedSignatures)
}

func TestScorer_AnonymousPythonClientExample(t *testing.T) {
	counter := mocks.NewCounter(t)
	counter.EXPECT().CountByIP(mock.Anything, "203.0.113.9", mock.Anything).Return(int64(25), nil)

	cfg := settings.Defaults()
	cfg.Signatures = []string{"python"}
	s := scoring.NewScorer(testLogger(), counter, settings.Static(cfg))

	res, err := s.Score(context.Background(), scoring.Request{
		IP:            "203.0.113.9",
		UserAgent:     "python-requests/2.28",
		HasAjaxHeader: true,
		Timestamp:     time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, 20, res.SignaturePoints)
	assert.Equal(t, 10, res.LanguagePoints)
	assert.Equal(t, 10, res.EncodingPoints)
	assert.Equal(t, 30, res.FrequencyPoints)
	assert.Equal(t, 70, res.Score)
}

func TestScorer_DegradesWhenHistoryUnavailable(t *testing.T) {
	counter := mocks.NewCounter(t)
	storeErr := errors.New("connection refused")
	counter.EXPECT().CountByIP(mock.Anything, mock.Anything, mock.Anything).Return(int64(0), storeErr)

	s := scoring.NewScorer(testLogger(), counter, settings.Static(settings.Defaults()))
	res, err := s.Score(context.Background(), scoring.Request{IP: "10.0.0.2", UserAgent: "curl/8.1"})

	assert.ErrorIs(t, err, storeErr)
	assert.True(t, res.Degraded)
	assert.Equal(t, 0, res.FrequencyPoints)
	assert.Equal(t, 20+5+10+10, res.Score)
}

func TestCompute_TwoSignaturesScoreAtLeastForty(t *testing.T) {
	res := scoring.Compute(scoring.Request{
		UserAgent:         "python-requests/2.31.0",
		HasAjaxHeader:     true,
		HasAcceptLanguage: true,
		HasAcceptEncoding: true,
	}, 0, settings.DefaultSignatures())

	assert.GreaterOrEqual(t, res.SignaturePoints, 40)
	assert.Contains(t, res.MatchedSignatures, "python")
	assert.Contains(t, res.MatchedSignatures, "requests")
}

func TestCompute_SignatureMatchIsCaseInsensitive(t *testing.T) {
	res := scoring.Compute(scoring.Request{
		UserAgent:         "Mozilla/5.0 HeadlessChrome/120.0",
		HasAjaxHeader:     true,
		HasAcceptLanguage: true,
		HasAcceptEncoding: true,
	}, 0, []string{"headless"})

	assert.Equal(t, 20, res.Score)
}

func TestCompute_MissingHeadersAddPoints(t *testing.T) {
	res := scoring.Compute(scoring.Request{UserAgent: browserUA}, 0, settings.DefaultSignatures())

	assert.Equal(t, 5, res.AjaxPoints)
	assert.Equal(t, 10, res.LanguagePoints)
	assert.Equal(t, 10, res.EncodingPoints)
	assert.Equal(t, 25, res.Score)
}

func TestFrequencyPoints(t *testing.T) {
	tests := []struct {
		recent int64
		want   int
	}{
		{0, 0},
		{10, 0},
		{11, 15},
		{15, 15},
		{20, 15},
		{21, 30},
		{25, 30},
		{1000, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoring.FrequencyPoints(tt.recent), "recent=%d", tt.recent)
	}
}

func TestCompute_ScoreIsAlwaysClamped(t *testing.T) {
	everything := "bot crawler spider scraper curl wget python requests selenium headless puppeteer"
	cases := []scoring.Request{
		{},
		{UserAgent: everything},
		{UserAgent: everything, HasAjaxHeader: true, HasAcceptLanguage: true, HasAcceptEncoding: true},
		browserRequest("10.0.0.3"),
	}
	for _, req := range cases {
		for _, recent := range []int64{0, 11, 21, 1 << 20} {
			res := scoring.Compute(req, recent, settings.DefaultSignatures())
			assert.GreaterOrEqual(t, res.Score, scoring.MinScore)
			assert.LessOrEqual(t, res.Score, scoring.MaxScore)
		}
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, scoring.Clamp(-5))
	assert.Equal(t, 42, scoring.Clamp(42))
	assert.Equal(t, 100, scoring.Clamp(250))
}
