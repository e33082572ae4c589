package router

import (
	"io"
	"net/http/httptest"
	"testing"

	handlers "github.com/NeuralTrust/RiskGate/pkg/handlers/http"
	"github.com/NeuralTrust/RiskGate/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named string

func (n named) Handle(c *fiber.Ctx) error {
	return c.SendString(string(n))
}

type passThrough struct{}

func (passThrough) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error { return c.Next() }
}

// headerGuard marks every request it sees so tests can tell where it ran.
type headerGuard struct{}

func (headerGuard) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Guarded", "1")
		return c.Next()
	}
}

type denyAll struct{}

func (denyAll) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusUnauthorized) }
}

func transport() handlers.HandlerTransport {
	return handlers.HandlerTransport{
		ForwardedHandler:          named("forwarded"),
		ScoreHandler:              named("score"),
		LogEventHandler:           named("events"),
		RateLimitHandler:          named("rate-limit"),
		QuotaHandler:              named("quota"),
		GetVersionHandler:         named("version"),
		GetMembershipHandler:      named("get-membership"),
		UpdateMembershipHandler:   named("update-membership"),
		BanUserHandler:            named("ban"),
		UnbanUserHandler:          named("unban"),
		CreateIPBlockHandler:      named("block"),
		DeleteIPBlockHandler:      named("unblock"),
		ListIPBlocksHandler:       named("blocks"),
		ListSecurityEventsHandler: named("events-list"),
		GetSettingsHandler:        named("get-settings"),
		UpdateSettingsHandler:     named("update-settings"),
		RunJobHandler:             named("job"),
	}
}

func TestProxyRouter_GuardOnlyWrapsForwardedTraffic(t *testing.T) {
	app := fiber.New()
	mw := &middleware.Transport{
		RecoverMiddleware: passThrough{},
		TraceMiddleware:   passThrough{},
		GuardMiddleware:   headerGuard{},
	}
	require.NoError(t, NewProxyRouter(mw, transport()).BuildRoutes(app))

	tests := []struct {
		method  string
		path    string
		guarded bool
	}{
		{"GET", "/health", false},
		{"GET", "/__/ping", false},
		{"POST", "/v1/risk/score", false},
		{"GET", "/v1/quota/u1", false},
		{"GET", "/v1/quotes/AAPL", true},
		{"POST", "/v1/alerts", true},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, tt.path)
		assert.Equal(t, tt.guarded, resp.Header.Get("X-Guarded") == "1", tt.path)
	}
}

func TestProxyRouter_RequiresForwardedHandler(t *testing.T) {
	err := NewProxyRouter(&middleware.Transport{}, handlers.HandlerTransport{}).BuildRoutes(fiber.New())
	assert.ErrorIs(t, err, ErrInvalidHandlerTransport)
}

func TestAdminRouter_APIRequiresAuth(t *testing.T) {
	app := fiber.New()
	mw := &middleware.Transport{
		RecoverMiddleware: passThrough{},
		TraceMiddleware:   passThrough{},
		AdminMiddleware:   denyAll{},
	}
	require.NoError(t, NewAdminRouter(mw, transport(), "http://localhost:8080").BuildRoutes(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/version", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, path := range []string{"/api/v1/settings", "/api/v1/ip-blocks", "/api/v1/memberships/u1"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestAdminRouter_ServesEmbeddedAPIDoc(t *testing.T) {
	app := fiber.New()
	mw := &middleware.Transport{
		RecoverMiddleware: passThrough{},
		TraceMiddleware:   passThrough{},
		AdminMiddleware:   denyAll{},
	}
	require.NoError(t, NewAdminRouter(mw, transport(), "http://localhost:8080").BuildRoutes(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/docs/doc.json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"title": "RiskGate Admin API"`)
	assert.Contains(t, string(body), "/api/v1/settings")

	resp, err = app.Test(httptest.NewRequest("GET", "/docs/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/swagger.json", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
