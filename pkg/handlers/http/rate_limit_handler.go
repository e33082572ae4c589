package http

import (
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/ratelimit"
	"github.com/NeuralTrust/RiskGate/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type rateLimitHandler struct {
	logger  *logrus.Logger
	limiter ratelimit.Limiter
}

func NewRateLimitHandler(logger *logrus.Logger, limiter ratelimit.Limiter) Handler {
	return &rateLimitHandler{
		logger:  logger,
		limiter: limiter,
	}
}

// Handle @Summary Check rate limits
// @Description Runs the advisory limiter for an IP and optional user
// @Tags Risk
// @Accept json
// @Produce json
// @Param request body request.RateLimitRequest true "Subject"
// @Success 200 {object} ratelimit.Decision
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /v1/risk/rate-limit [post]
func (h *rateLimitHandler) Handle(c *fiber.Ctx) error {
	var req request.RateLimitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err)
	}

	decision, err := h.limiter.Check(c.UserContext(), ratelimit.Query{
		IP:       req.IP,
		UserID:   req.OptionalUserID(),
		Endpoint: req.Endpoint,
		Now:      time.Now().UTC(),
	})
	if err != nil {
		h.logger.WithError(err).Debug("rate limit check degraded")
	}
	return c.Status(fiber.StatusOK).JSON(decision)
}
