package middleware

import (
	"testing"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/config"
	"github.com/NeuralTrust/RiskGate/pkg/infra/auth/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fiber's app.Test connects from 0.0.0.0.
const testPeer = "0.0.0.0"

func newResolver(t *testing.T, trusted ...string) (*IdentityResolver, jwt.Manager) {
	t.Helper()
	tokens := jwt.NewJwtManager(&config.ServerConfig{SecretKey: "identity-secret"})
	r, err := NewIdentityResolver(trusted, tokens)
	require.NoError(t, err)
	return r, tokens
}

func resolve(t *testing.T, r *IdentityResolver, headers map[string]string) Identity {
	t.Helper()
	var who Identity
	capture(t, "/v1/quotes/AAPL", nil, headers, func(c *fiber.Ctx) string {
		who = r.Resolve(c)
		return ""
	})
	return who
}

func TestIdentityResolver_TrustedProxyHeaders(t *testing.T) {
	r, _ := newResolver(t, testPeer)

	who := resolve(t, r, map[string]string{
		"X-Forwarded-For": "203.0.113.1, 10.0.0.1",
		"X-User-ID":       "u1",
	})
	assert.Equal(t, "203.0.113.1", who.IP)
	require.NotNil(t, who.UserID)
	assert.Equal(t, "u1", *who.UserID)

	who = resolve(t, r, map[string]string{"X-Real-IP": "garbage", "CF-Connecting-IP": "192.0.2.9"})
	assert.Equal(t, "192.0.2.9", who.IP)
	assert.Nil(t, who.UserID)
}

func TestIdentityResolver_UntrustedPeerHeadersIgnored(t *testing.T) {
	r, _ := newResolver(t, "10.0.0.0/8")

	who := resolve(t, r, map[string]string{
		"X-Real-IP": "198.51.100.2",
		"X-User-ID": "someone-else",
	})
	assert.Equal(t, testPeer, who.IP)
	assert.Nil(t, who.UserID)
}

func TestIdentityResolver_UserTokenFromAnyPeer(t *testing.T) {
	r, tokens := newResolver(t)
	token, err := tokens.CreateUserToken("u42", time.Hour)
	require.NoError(t, err)

	who := resolve(t, r, map[string]string{
		"Authorization": "Bearer " + token,
		"X-User-ID":     "u1",
	})
	require.NotNil(t, who.UserID)
	assert.Equal(t, "u42", *who.UserID)
}

func TestIdentityResolver_RejectedTokensStayAnonymous(t *testing.T) {
	r, tokens := newResolver(t)
	admin, err := tokens.CreateToken("ops@example.com", time.Hour)
	require.NoError(t, err)
	forged, err := jwt.NewJwtManager(&config.ServerConfig{SecretKey: "other"}).CreateUserToken("u42", time.Hour)
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + admin, "Bearer " + forged, "Bearer ", "Basic dTpw"} {
		who := resolve(t, r, map[string]string{"Authorization": header})
		assert.Nil(t, who.UserID, header)
	}
}

func TestNewIdentityResolver_InvalidEntry(t *testing.T) {
	_, err := NewIdentityResolver([]string{"10.0.0.0/8", "not-an-ip"}, nil)
	assert.Error(t, err)

	r, err := NewIdentityResolver([]string{" 192.0.2.1 ", "2001:db8::1", ""}, nil)
	require.NoError(t, err)
	assert.True(t, r.trusts("192.0.2.1"))
	assert.True(t, r.trusts("2001:db8::1"))
	assert.False(t, r.trusts("192.0.2.2"))
}
