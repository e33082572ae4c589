package router

import (
	"strings"

	_ "github.com/NeuralTrust/RiskGate/docs"
	handlers "github.com/NeuralTrust/RiskGate/pkg/handlers/http"
	"github.com/NeuralTrust/RiskGate/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

type adminRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
	baseURL             string
}

func NewAdminRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	baseURL string,
) ServerRouter {
	return &adminRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		baseURL:             strings.TrimSuffix(baseURL, "/"),
	}
}

func (r *adminRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h.GetVersionHandler == nil {
		return ErrInvalidHandlerTransport
	}

	router.Use(
		r.middlewareTransport.RecoverMiddleware.Middleware(),
		r.middlewareTransport.TraceMiddleware.Middleware(),
	)

	// The spec is compiled into the binary; docs/doc.json serves it.
	router.Get("/docs/*", swagger.New(swagger.Config{
		URL: r.baseURL + "/docs/doc.json",
	}))

	router.Get("/version", h.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		v1.Use(r.middlewareTransport.AdminMiddleware.Middleware())

		memberships := v1.Group("/memberships")
		{
			memberships.Get("/:user_id", h.GetMembershipHandler.Handle)
			memberships.Put("/:user_id", h.UpdateMembershipHandler.Handle)
			memberships.Post("/:user_id/ban", h.BanUserHandler.Handle)
			memberships.Delete("/:user_id/ban", h.UnbanUserHandler.Handle)
		}

		ipBlocks := v1.Group("/ip-blocks")
		{
			ipBlocks.Post("", h.CreateIPBlockHandler.Handle)
			ipBlocks.Get("", h.ListIPBlocksHandler.Handle)
			ipBlocks.Delete("/:ip", h.DeleteIPBlockHandler.Handle)
		}

		v1.Get("/security-events", h.ListSecurityEventsHandler.Handle)

		v1.Get("/settings", h.GetSettingsHandler.Handle)
		v1.Put("/settings", h.UpdateSettingsHandler.Handle)

		v1.Post("/jobs/:name", h.RunJobHandler.Handle)
	}
	return nil
}
