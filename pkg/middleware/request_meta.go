package middleware

import (
	"strings"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/scoring"
	"github.com/NeuralTrust/RiskGate/pkg/common"
	"github.com/NeuralTrust/RiskGate/pkg/infra/httpx"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fastjson"
)

const quotesPathPrefix = "/v1/quotes/"

// ClientIP returns the address resolved by the risk guard, else the socket IP.
func ClientIP(c *fiber.Ctx) string {
	if ip, ok := c.Locals(common.ClientIPContextKey).(string); ok && ip != "" {
		return ip
	}
	return strings.TrimSpace(c.IP())
}

// Symbol looks for the ticker in the query, then in a /v1/quotes/<symbol>
// path, then in a JSON body field named "symbol".
func Symbol(c *fiber.Ctx) *string {
	if s := strings.TrimSpace(c.Query(common.SymbolQueryParam)); s != "" {
		return normalizeSymbol(s)
	}
	if rest, ok := strings.CutPrefix(c.Path(), quotesPathPrefix); ok {
		first, _, _ := strings.Cut(rest, "/")
		if first != "" {
			return normalizeSymbol(first)
		}
	}
	body := c.Request().Body()
	if len(body) == 0 || !strings.Contains(strings.ToLower(c.Get(fiber.HeaderContentType)), "json") {
		return nil
	}
	decoded, _, err := httpx.DecodeChain(c.Get(fiber.HeaderContentEncoding), body)
	if err != nil {
		return nil
	}
	v, err := fastjson.ParseBytes(decoded)
	if err != nil {
		return nil
	}
	if s := v.GetStringBytes(common.SymbolQueryParam); len(s) > 0 {
		return normalizeSymbol(string(s))
	}
	return nil
}

func normalizeSymbol(s string) *string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || len(s) > 16 {
		return nil
	}
	return &s
}

// ScoringRequest collects the request metadata the scorer looks at. The
// caller supplies the already resolved client address and user.
func ScoringRequest(c *fiber.Ctx, who Identity, now time.Time) scoring.Request {
	return scoring.Request{
		IP:                who.IP,
		UserID:            who.UserID,
		Endpoint:          c.Path(),
		Symbol:            Symbol(c),
		UserAgent:         c.Get(fiber.HeaderUserAgent),
		Referer:           c.Get(fiber.HeaderReferer),
		AcceptLanguage:    c.Get(fiber.HeaderAcceptLanguage),
		HasAjaxHeader:     c.Get(common.AjaxHeader) != "",
		HasAcceptLanguage: c.Get(fiber.HeaderAcceptLanguage) != "",
		HasAcceptEncoding: c.Get(fiber.HeaderAcceptEncoding) != "",
		Timestamp:         now,
	}
}
