package router

import (
	"net/http"
	"time"

	handlers "github.com/NeuralTrust/RiskGate/pkg/handlers/http"
	"github.com/NeuralTrust/RiskGate/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

const (
	HealthPath = "/health"
	PingPath   = "/__/ping"
)

type proxyRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewProxyRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &proxyRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *proxyRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h.ForwardedHandler == nil {
		return ErrInvalidHandlerTransport
	}

	router.Use(
		r.middlewareTransport.RecoverMiddleware.Middleware(),
		r.middlewareTransport.TraceMiddleware.Middleware(),
	)

	router.Get(HealthPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.Get(PingPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"message": "pong",
		})
	})

	risk := router.Group("/v1/risk")
	{
		risk.Post("/score", h.ScoreHandler.Handle)
		risk.Post("/events", h.LogEventHandler.Handle)
		risk.Post("/rate-limit", h.RateLimitHandler.Handle)
	}
	router.Get("/v1/quota/:user_id", h.QuotaHandler.Handle)

	router.Use(
		r.middlewareTransport.GuardMiddleware.Middleware(),
		h.ForwardedHandler.Handle,
	)
	return nil
}
