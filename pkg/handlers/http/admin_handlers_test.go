package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	ipblockmocks "github.com/NeuralTrust/RiskGate/pkg/app/ipblock/mocks"
	"github.com/NeuralTrust/RiskGate/pkg/app/maintenance"
	membershipmocks "github.com/NeuralTrust/RiskGate/pkg/app/membership/mocks"
	appsettings "github.com/NeuralTrust/RiskGate/pkg/app/settings"
	updatermocks "github.com/NeuralTrust/RiskGate/pkg/app/settings/mocks"
	"github.com/NeuralTrust/RiskGate/pkg/domain"
	"github.com/NeuralTrust/RiskGate/pkg/domain/membership"
	"github.com/NeuralTrust/RiskGate/pkg/domain/ratewindow"
	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	eventmocks "github.com/NeuralTrust/RiskGate/pkg/domain/securityevent/mocks"
	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetMembershipHandler(t *testing.T) {
	manager := membershipmocks.NewManager(t)
	manager.EXPECT().Get(mock.Anything, "u1").Return(membership.Default("u1"), nil)

	app := fiber.New()
	app.Get("/api/v1/memberships/:user_id", NewGetMembershipHandler(testLogger(), manager).Handle)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/memberships/u1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out membership.Membership
	decodeBody(t, resp.Body, &out)
	assert.Equal(t, membership.PlanFree, out.Plan)
}

func TestUpdateMembershipHandler(t *testing.T) {
	t.Run("updates plan", func(t *testing.T) {
		manager := membershipmocks.NewManager(t)
		manager.EXPECT().Update(mock.Anything, "u1", mock.Anything).
			Return(&membership.Membership{UserID: "u1", Plan: membership.PlanGold}, nil)

		app := fiber.New()
		app.Put("/api/v1/memberships/:user_id", NewUpdateMembershipHandler(testLogger(), manager).Handle)

		resp, err := app.Test(jsonRequest("PUT", "/api/v1/memberships/u1", map[string]interface{}{"plan": "gold"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("invalid plan is a bad request", func(t *testing.T) {
		manager := membershipmocks.NewManager(t)
		manager.EXPECT().Update(mock.Anything, "u1", mock.Anything).Return(nil, domain.ErrInvalidPlan)

		app := fiber.New()
		app.Put("/api/v1/memberships/:user_id", NewUpdateMembershipHandler(testLogger(), manager).Handle)

		resp, err := app.Test(jsonRequest("PUT", "/api/v1/memberships/u1", map[string]interface{}{"plan": "platinum"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("empty update is rejected before the manager", func(t *testing.T) {
		app := fiber.New()
		app.Put("/api/v1/memberships/:user_id", NewUpdateMembershipHandler(testLogger(), membershipmocks.NewManager(t)).Handle)

		resp, err := app.Test(jsonRequest("PUT", "/api/v1/memberships/u1", map[string]interface{}{}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestBanAndUnbanHandlers(t *testing.T) {
	manager := membershipmocks.NewManager(t)
	manager.EXPECT().Ban(mock.Anything, "u1", "scraping").
		Return(&membership.Membership{UserID: "u1", IsBanned: true}, nil)
	manager.EXPECT().Unban(mock.Anything, "u1").
		Return(&membership.Membership{UserID: "u1"}, nil)

	app := fiber.New()
	app.Post("/api/v1/memberships/:user_id/ban", NewBanUserHandler(testLogger(), manager).Handle)
	app.Delete("/api/v1/memberships/:user_id/ban", NewUnbanUserHandler(testLogger(), manager).Handle)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/memberships/u1/ban", map[string]interface{}{"reason": "scraping"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var banned membership.Membership
	decodeBody(t, resp.Body, &banned)
	assert.True(t, banned.IsBanned)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/v1/memberships/u1/ban", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestIPBlockHandlers(t *testing.T) {
	manager := ipblockmocks.NewManager(t)
	window := &ratewindow.RateWindow{IPAddress: "203.0.113.8", Endpoint: "*", IsBlocked: true, WindowEnd: fixedNow.Add(2 * time.Hour)}
	manager.EXPECT().Block(mock.Anything, "203.0.113.8", "", 2*time.Hour).Return(window, nil)
	manager.EXPECT().List(mock.Anything).Return([]ratewindow.RateWindow{*window}, nil)
	manager.EXPECT().Unblock(mock.Anything, "203.0.113.8").Return(int64(1), nil)
	manager.EXPECT().Unblock(mock.Anything, "198.51.100.1").Return(int64(0), domain.NewNotFoundError("ip block", "198.51.100.1"))

	app := fiber.New()
	app.Post("/api/v1/ip-blocks", NewCreateIPBlockHandler(testLogger(), manager).Handle)
	app.Get("/api/v1/ip-blocks", NewListIPBlocksHandler(testLogger(), manager).Handle)
	app.Delete("/api/v1/ip-blocks/:ip", NewDeleteIPBlockHandler(testLogger(), manager).Handle)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/ip-blocks", map[string]interface{}{"ip": "203.0.113.8", "duration": "2h"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/ip-blocks", nil))
	require.NoError(t, err)
	var blocks []ratewindow.RateWindow
	decodeBody(t, resp.Body, &blocks)
	assert.Len(t, blocks, 1)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/v1/ip-blocks/203.0.113.8", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/v1/ip-blocks/198.51.100.1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateIPBlockHandler_InvalidIP(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/ip-blocks", NewCreateIPBlockHandler(testLogger(), ipblockmocks.NewManager(t)).Handle)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/ip-blocks", map[string]interface{}{"ip": "localhost"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListSecurityEventsHandler_ParsesFilter(t *testing.T) {
	repo := eventmocks.NewRepository(t)
	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().List(mock.Anything, securityevent.Filter{
		EventType: securityevent.TypeSuspiciousUserAlert,
		Severity:  securityevent.SeverityHigh,
		UserID:    "u1",
		Since:     since,
		Limit:     10,
		Offset:    20,
	}).Return(nil, nil)

	app := fiber.New()
	app.Get("/api/v1/security-events", NewListSecurityEventsHandler(testLogger(), repo).Handle)

	resp, err := app.Test(httptest.NewRequest("GET",
		"/api/v1/security-events?type=suspicious_user_alert&severity=high&user_id=u1&since=2024-03-01T00:00:00Z&limit=10&offset=20", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var events []securityevent.SecurityEvent
	decodeBody(t, resp.Body, &events)
	assert.Empty(t, events)
}

func TestListSecurityEventsHandler_RejectsBadFilter(t *testing.T) {
	app := fiber.New()
	app.Get("/api/v1/security-events", NewListSecurityEventsHandler(testLogger(), eventmocks.NewRepository(t)).Handle)

	for _, q := range []string{"severity=critical", "since=yesterday"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/security-events?"+q, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestSettingsHandlers(t *testing.T) {
	current := settings.Defaults()
	next := current.Clone()
	next.AlertThreshold = 65

	updater := updatermocks.NewUpdater(t)
	updater.EXPECT().Update(mock.Anything, map[string]interface{}{"alert_threshold": float64(65), "bot_score_threshold": "x"}).
		Return(appsettings.UpdateResult{Settings: next, Rejected: []string{"bot_score_threshold"}}, nil)

	app := fiber.New()
	app.Get("/api/v1/settings", NewGetSettingsHandler(testLogger(), settings.Static(current)).Handle)
	app.Put("/api/v1/settings", NewUpdateSettingsHandler(testLogger(), updater).Handle)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/settings", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got map[string]interface{}
	decodeBody(t, resp.Body, &got)
	assert.Contains(t, got, "limits")

	resp, err = app.Test(jsonRequest("PUT", "/api/v1/settings", map[string]interface{}{
		"alert_threshold":     65,
		"bot_score_threshold": "x",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated struct {
		Rejected []string `json:"rejected"`
	}
	decodeBody(t, resp.Body, &updated)
	assert.Equal(t, []string{"bot_score_threshold"}, updated.Rejected)
}

type stubRunner struct {
	report maintenance.Report
	err    error
}

func (s *stubRunner) RunNow(_ context.Context, name string) (maintenance.Report, error) {
	if s.err != nil {
		return maintenance.Report{}, s.err
	}
	s.report.Job = name
	return s.report, nil
}

func TestRunJobHandler(t *testing.T) {
	tests := []struct {
		name   string
		runner *stubRunner
		status int
	}{
		{name: "ok", runner: &stubRunner{report: maintenance.Report{Details: map[string]interface{}{"request_events": 3}}}, status: fiber.StatusOK},
		{name: "unknown", runner: &stubRunner{err: maintenance.ErrUnknownJob}, status: fiber.StatusNotFound},
		{name: "running", runner: &stubRunner{err: maintenance.ErrJobRunning}, status: fiber.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/api/v1/jobs/:name", NewRunJobHandler(testLogger(), tt.runner).Handle)

			resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/jobs/purge", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestGetVersionHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/version", NewGetVersionHandler(testLogger()).Handle)

	resp, err := app.Test(httptest.NewRequest("GET", "/version", nil))
	require.NoError(t, err)
	var out map[string]interface{}
	decodeBody(t, resp.Body, &out)
	assert.Equal(t, "RiskGate", out["app_name"])
}
