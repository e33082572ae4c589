package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/NeuralTrust/RiskGate/pkg/app/scoring"
	"github.com/NeuralTrust/RiskGate/pkg/common"
	"github.com/NeuralTrust/RiskGate/pkg/infra/httpx"
	"github.com/NeuralTrust/RiskGate/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// hopHeaders are connection scoped and never relayed.
var hopHeaders = map[string]struct{}{
	"Connection":          {},
	"Keep-Alive":          {},
	"Proxy-Authenticate":  {},
	"Proxy-Authorization": {},
	"Te":                  {},
	"Trailer":             {},
	"Transfer-Encoding":   {},
	"Upgrade":             {},
	"Host":                {},
	"Content-Length":      {},
}

type forwardedHandler struct {
	logger  *logrus.Logger
	client  httpx.UpstreamClient
	baseURL string
}

// NewForwardedHandler relays guarded requests to the backend API.
func NewForwardedHandler(logger *logrus.Logger, client httpx.UpstreamClient, baseURL string) Handler {
	return &forwardedHandler{
		logger:  logger,
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (h *forwardedHandler) Handle(c *fiber.Ctx) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	h.buildRequest(c, req)

	err := h.client.Do(req, resp)
	switch {
	case errors.Is(err, httpx.ErrCircuitOpen):
		prometheus.UpstreamRequests.WithLabelValues(c.Method(), "circuit_open").Inc()
		h.logger.WithError(err).Warn("backend circuit open, rejecting request")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Backend temporarily unavailable"})
	case err != nil && !errors.Is(err, httpx.ErrUpstreamStatus):
		prometheus.UpstreamRequests.WithLabelValues(c.Method(), "error").Inc()
		h.logger.WithError(err).WithField("path", c.Path()).Error("failed to reach backend")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to reach backend"})
	}

	status := resp.StatusCode()
	prometheus.UpstreamRequests.WithLabelValues(c.Method(), strconv.Itoa(status)).Inc()

	resp.Header.VisitAll(func(key, value []byte) {
		if _, hop := hopHeaders[string(key)]; hop {
			return
		}
		c.Response().Header.AddBytesKV(key, value)
	})
	c.Status(status)
	return c.Send(resp.Body())
}

func (h *forwardedHandler) buildRequest(c *fiber.Ctx, req *fasthttp.Request) {
	req.SetRequestURI(h.baseURL + c.OriginalURL())
	req.Header.SetMethod(c.Method())
	c.Request().Header.VisitAll(func(key, value []byte) {
		if _, hop := hopHeaders[string(key)]; hop {
			return
		}
		req.Header.AddBytesKV(key, value)
	})
	if body := c.Request().Body(); len(body) > 0 {
		req.SetBodyRaw(body)
	}

	ip := strings.TrimSpace(c.IP())
	if prior := string(c.Request().Header.Peek(fiber.HeaderXForwardedFor)); prior != "" {
		req.Header.Set(fiber.HeaderXForwardedFor, prior+", "+ip)
	} else {
		req.Header.Set(fiber.HeaderXForwardedFor, ip)
	}
	// The backend only ever sees the user the guard attributed the request to.
	req.Header.Del(common.UserIDHeader)
	if r, ok := c.Locals(common.RiskRequestContextKey).(scoring.Request); ok && r.SignedIn() {
		req.Header.Set(common.UserIDHeader, *r.UserID)
	}
	if res, ok := c.Locals(common.RiskResultContextKey).(scoring.Result); ok {
		req.Header.Set(common.RiskScoreHeader, strconv.Itoa(res.Score))
	}
	if traceID, ok := c.Locals(common.TraceIdKey).(string); ok {
		req.Header.Set(common.TraceIDHeader, traceID)
	}
}
