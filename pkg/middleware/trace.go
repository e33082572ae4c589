package middleware

import (
	"context"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type traceMiddleware struct{}

// NewTraceMiddleware stamps each request with a trace id and its start time.
func NewTraceMiddleware() Middleware {
	return &traceMiddleware{}
}

func (m *traceMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(common.TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Locals(common.TraceIdKey, traceID)
		c.Locals(common.LatencyContextKey, time.Now())
		c.SetUserContext(context.WithValue(c.UserContext(), common.TraceIdKey, traceID))
		c.Set(common.TraceIDHeader, traceID)
		return c.Next()
	}
}
