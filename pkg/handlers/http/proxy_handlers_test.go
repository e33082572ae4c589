package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/eventlog"
	recordermocks "github.com/NeuralTrust/RiskGate/pkg/app/eventlog/mocks"
	"github.com/NeuralTrust/RiskGate/pkg/app/quota"
	quotamocks "github.com/NeuralTrust/RiskGate/pkg/app/quota/mocks"
	"github.com/NeuralTrust/RiskGate/pkg/app/ratelimit"
	limitermocks "github.com/NeuralTrust/RiskGate/pkg/app/ratelimit/mocks"
	"github.com/NeuralTrust/RiskGate/pkg/app/scoring"
	scorermocks "github.com/NeuralTrust/RiskGate/pkg/app/scoring/mocks"
	"github.com/NeuralTrust/RiskGate/pkg/common"
	"github.com/NeuralTrust/RiskGate/pkg/domain"
	"github.com/NeuralTrust/RiskGate/pkg/domain/membership"
	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	"github.com/NeuralTrust/RiskGate/pkg/infra/httpx"
	httpxmocks "github.com/NeuralTrust/RiskGate/pkg/infra/httpx/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	return l
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func jsonRequest(method, target string, body interface{}) *nethttp.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, r io.Reader, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r).Decode(out))
}

func TestScoreHandler(t *testing.T) {
	scorer := scorermocks.NewScorer(t)
	scorer.EXPECT().Score(mock.Anything, mock.MatchedBy(func(r scoring.Request) bool {
		return r.IP == "203.0.113.9" && r.UserAgent == "python-requests/2.31" && !r.HasAcceptLanguage
	})).Return(scoring.Result{Score: 65, SignaturePoints: 40, MatchedSignatures: []string{"python", "requests"}}, nil)

	app := fiber.New()
	app.Post("/v1/risk/score", NewScoreHandler(testLogger(), scorer).Handle)

	resp, err := app.Test(jsonRequest("POST", "/v1/risk/score", map[string]interface{}{
		"ip":         "203.0.113.9",
		"user_agent": "python-requests/2.31",
		"headers":    map[string]string{"Accept-Encoding": "gzip"},
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out ScoreResponse
	decodeBody(t, resp.Body, &out)
	assert.Equal(t, 65, out.Score)
	assert.Equal(t, 40, out.Components.SignaturePoints)
}

func TestScoreHandler_InvalidIP(t *testing.T) {
	app := fiber.New()
	app.Post("/v1/risk/score", NewScoreHandler(testLogger(), scorermocks.NewScorer(t)).Handle)

	resp, err := app.Test(jsonRequest("POST", "/v1/risk/score", map[string]interface{}{"ip": "nope"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogEventHandler(t *testing.T) {
	scorer := scorermocks.NewScorer(t)
	recorder := recordermocks.NewRecorder(t)
	event := securityevent.New(securityevent.TypeSuspiciousRequest, securityevent.SeverityMedium, "203.0.113.9", nil, "suspicious", nil, fixedNow)

	scorer.EXPECT().Score(mock.Anything, mock.Anything).Return(scoring.Result{Score: 70}, nil)
	recorder.EXPECT().Record(mock.Anything, mock.MatchedBy(func(r scoring.Request) bool {
		return r.Endpoint == "/v1/screener" && r.UserID == nil
	}), scoring.Result{Score: 70}).Return(eventlog.Outcome{
		IsSuspicious: true,
		Events:       []*securityevent.SecurityEvent{event},
	})

	app := fiber.New()
	app.Post("/v1/risk/events", NewLogEventHandler(testLogger(), scorer, recorder).Handle)

	resp, err := app.Test(jsonRequest("POST", "/v1/risk/events", map[string]interface{}{
		"ip":       "203.0.113.9",
		"endpoint": "/v1/screener",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out LogEventResponse
	decodeBody(t, resp.Body, &out)
	assert.Equal(t, 70, out.Score)
	assert.True(t, out.IsSuspicious)
	require.Len(t, out.Events, 1)
	assert.Equal(t, securityevent.TypeSuspiciousRequest, out.Events[0].EventType)
}

func TestRateLimitHandler_DegradedStillAnswers(t *testing.T) {
	limiter := limitermocks.NewLimiter(t)
	limiter.EXPECT().Check(mock.Anything, mock.MatchedBy(func(q ratelimit.Query) bool {
		return q.IP == "198.51.100.4" && q.UserID != nil && *q.UserID == "u9"
	})).Return(ratelimit.Decision{Degraded: true}, domain.ErrStoreUnavailable)

	app := fiber.New()
	app.Post("/v1/risk/rate-limit", NewRateLimitHandler(testLogger(), limiter).Handle)

	resp, err := app.Test(jsonRequest("POST", "/v1/risk/rate-limit", map[string]interface{}{
		"ip":      "198.51.100.4",
		"user_id": "u9",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out ratelimit.Decision
	decodeBody(t, resp.Body, &out)
	assert.False(t, out.Limited)
	assert.True(t, out.Degraded)
}

func TestQuotaHandler(t *testing.T) {
	checker := quotamocks.NewChecker(t)
	checker.EXPECT().CanMakeAPICall(mock.Anything, "u1", mock.Anything).Return(quota.Verdict{
		Allowed: false,
		Plan:    membership.PlanFree,
		Usage:   quota.Usage{Monthly: 15},
		Limits:  membership.PlanFree.Limits(),
	}, nil)

	app := fiber.New()
	app.Get("/v1/quota/:user_id", NewQuotaHandler(testLogger(), checker).Handle)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/quota/u1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out quota.Verdict
	decodeBody(t, resp.Body, &out)
	assert.False(t, out.Allowed)
	assert.Equal(t, int64(15), out.Usage.Monthly)
}

func TestForwardedHandler_RelaysResponse(t *testing.T) {
	client := httpxmocks.NewUpstreamClient(t)
	client.EXPECT().Do(mock.Anything, mock.Anything).
		Run(func(req *fasthttp.Request, resp *fasthttp.Response) {
			assert.Equal(t, "http://backend:8000/v1/quotes/AAPL?range=1d", req.URI().String())
			assert.Equal(t, "42", string(req.Header.Peek(common.RiskScoreHeader)))
			assert.Equal(t, "trace-1", string(req.Header.Peek(common.TraceIDHeader)))
			assert.Equal(t, "u7", string(req.Header.Peek(common.UserIDHeader)))
			assert.Equal(t, "198.51.100.1, 0.0.0.0", string(req.Header.Peek(fiber.HeaderXForwardedFor)))
			resp.SetStatusCode(fiber.StatusOK)
			resp.Header.Set("X-Backend", "yes")
			resp.SetBodyString(`{"price":1}`)
		}).Return(nil)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(common.RiskResultContextKey, scoring.Result{Score: 42})
		c.Locals(common.TraceIdKey, "trace-1")
		userID := "u7"
		c.Locals(common.RiskRequestContextKey, scoring.Request{UserID: &userID})
		return c.Next()
	})
	app.Use(NewForwardedHandler(testLogger(), client, "http://backend:8000/").Handle)

	req := httptest.NewRequest("GET", "/v1/quotes/AAPL?range=1d", nil)
	req.Header.Set(common.UserIDHeader, "spoofed")
	req.Header.Set(fiber.HeaderXForwardedFor, "198.51.100.1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "yes", resp.Header.Get("X-Backend"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, `{"price":1}`, string(body))
}

func TestForwardedHandler_DropsUnattributedUserHeader(t *testing.T) {
	client := httpxmocks.NewUpstreamClient(t)
	client.EXPECT().Do(mock.Anything, mock.Anything).
		Run(func(req *fasthttp.Request, resp *fasthttp.Response) {
			assert.Empty(t, req.Header.Peek(common.UserIDHeader))
			resp.SetStatusCode(fiber.StatusOK)
		}).Return(nil)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(common.RiskRequestContextKey, scoring.Request{IP: "0.0.0.0"})
		return c.Next()
	})
	app.Use(NewForwardedHandler(testLogger(), client, "http://backend").Handle)

	req := httptest.NewRequest("GET", "/v1/quotes/AAPL", nil)
	req.Header.Set(common.UserIDHeader, "victim")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestForwardedHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "circuit open", err: httpx.ErrCircuitOpen, status: fiber.StatusServiceUnavailable},
		{name: "transport", err: errors.New("dial tcp: refused"), status: fiber.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := httpxmocks.NewUpstreamClient(t)
			client.EXPECT().Do(mock.Anything, mock.Anything).Return(tt.err)

			app := fiber.New()
			app.Use(NewForwardedHandler(testLogger(), client, "http://backend").Handle)

			resp, err := app.Test(httptest.NewRequest("GET", "/v1/screener", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestForwardedHandler_RelaysUpstream5xx(t *testing.T) {
	client := httpxmocks.NewUpstreamClient(t)
	client.EXPECT().Do(mock.Anything, mock.Anything).
		Run(func(_ *fasthttp.Request, resp *fasthttp.Response) {
			resp.SetStatusCode(fiber.StatusBadGateway)
		}).Return(httpx.ErrUpstreamStatus)

	app := fiber.New()
	app.Use(NewForwardedHandler(testLogger(), client, "http://backend").Handle)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/screener", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
