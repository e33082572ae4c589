package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/RiskGate/pkg/common"
	"github.com/NeuralTrust/RiskGate/pkg/infra/auth/jwt"
	jwtmocks "github.com/NeuralTrust/RiskGate/pkg/infra/auth/jwt/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminApp(t *testing.T, manager jwt.Manager) *fiber.App {
	app := fiber.New()
	app.Use(NewAdminAuthMiddleware(logrus.New(), manager).Middleware())
	app.Get("/api/v1/settings", func(c *fiber.Ctx) error {
		claims, ok := c.Locals(common.AdminClaimsContextKey).(*jwt.Claims)
		require.True(t, ok)
		return c.SendString(claims.Subject)
	})
	return app
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(m *jwtmocks.Manager)
		status int
	}{
		{name: "missing header", status: fiber.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", status: fiber.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", status: fiber.StatusUnauthorized},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *jwtmocks.Manager) {
				m.EXPECT().ValidateToken("bad").Return(nil, jwt.ErrInvalidToken)
			},
			status: fiber.StatusUnauthorized,
		},
		{
			name:   "not an admin",
			header: "Bearer viewer",
			setup: func(m *jwtmocks.Manager) {
				m.EXPECT().ValidateToken("viewer").Return(nil, jwt.ErrForbidden)
			},
			status: fiber.StatusForbidden,
		},
		{
			name:   "admin",
			header: "Bearer good",
			setup: func(m *jwtmocks.Manager) {
				claims := &jwt.Claims{Role: jwt.RoleAdmin}
				claims.Subject = "ops"
				m.EXPECT().ValidateToken("good").Return(claims, nil)
			},
			status: fiber.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := jwtmocks.NewManager(t)
			if tt.setup != nil {
				tt.setup(manager)
			}
			req := httptest.NewRequest("GET", "/api/v1/settings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := newAdminApp(t, manager).Test(req)

			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
