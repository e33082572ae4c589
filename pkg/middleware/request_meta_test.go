package middleware

import (
	"bytes"
	"compress/gzip"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NeuralTrust/RiskGate/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, target string, body []byte, headers map[string]string, fn func(c *fiber.Ctx) string) string {
	t.Helper()
	app := fiber.New()
	var got string
	app.All("/*", func(c *fiber.Ctx) error {
		got = fn(c)
		return c.SendStatus(fiber.StatusNoContent)
	})
	method := "GET"
	var reader *bytes.Reader
	if body != nil {
		method = "POST"
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, nil)
	if reader != nil {
		req = httptest.NewRequest(method, target, reader)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	_, err := app.Test(req)
	require.NoError(t, err)
	return got
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func TestClientIP_PrefersResolvedAddress(t *testing.T) {
	app := fiber.New()
	var resolved, socket string
	app.Get("/resolved", func(c *fiber.Ctx) error {
		c.Locals(common.ClientIPContextKey, "198.51.100.2")
		resolved = ClientIP(c)
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/socket", func(c *fiber.Ctx) error {
		socket = ClientIP(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/socket", nil)
	req.Header.Set("X-Real-IP", "203.0.113.1")
	_, err := app.Test(req)
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/resolved", nil))
	require.NoError(t, err)

	assert.Equal(t, "198.51.100.2", resolved)
	assert.Equal(t, "0.0.0.0", socket)
}

func TestSymbol(t *testing.T) {
	sym := func(c *fiber.Ctx) string { return deref(Symbol(c)) }

	assert.Equal(t, "MSFT", capture(t, "/v1/screener?symbol=msft", nil, nil, sym))
	assert.Equal(t, "BRK.B", capture(t, "/v1/quotes/brk.b/history", nil, nil, sym))
	assert.Equal(t, "", capture(t, "/v1/screener", nil, nil, sym))
	assert.Equal(t, "GOOG", capture(t, "/v1/alerts", []byte(`{"symbol":"goog"}`),
		map[string]string{"Content-Type": "application/json"}, sym))

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(`{"symbol":"nflx","price":420}`))
	require.NoError(t, zw.Close())
	assert.Equal(t, "NFLX", capture(t, "/v1/alerts", buf.Bytes(),
		map[string]string{"Content-Type": "application/json", "Content-Encoding": "gzip"}, sym))

	assert.Equal(t, "", capture(t, "/v1/alerts", []byte(strings.Repeat("x", 10)),
		map[string]string{"Content-Type": "application/json"}, sym))
}

func TestScoringRequest_HeaderSignals(t *testing.T) {
	signals := func(c *fiber.Ctx) string {
		r := ScoringRequest(c, Identity{IP: "203.0.113.7"}, c.Context().Time())
		var b strings.Builder
		for _, v := range []bool{r.HasAjaxHeader, r.HasAcceptLanguage, r.HasAcceptEncoding, r.IP == "203.0.113.7"} {
			if v {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		return b.String()
	}

	assert.Equal(t, "0001", capture(t, "/", nil, nil, signals))
	assert.Equal(t, "1111", capture(t, "/", nil, map[string]string{
		"X-Requested-With": "XMLHttpRequest",
		"Accept-Language":  "en",
		"Accept-Encoding":  "gzip",
	}, signals))
}
