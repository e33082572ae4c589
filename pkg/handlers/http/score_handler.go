package http

import (
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/scoring"
	"github.com/NeuralTrust/RiskGate/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ScoreResponse struct {
	Score      int            `json:"score"`
	Components scoring.Result `json:"components"`
	Degraded   bool           `json:"degraded,omitempty"`
}

type scoreHandler struct {
	logger *logrus.Logger
	scorer scoring.Scorer
}

func NewScoreHandler(logger *logrus.Logger, scorer scoring.Scorer) Handler {
	return &scoreHandler{
		logger: logger,
		scorer: scorer,
	}
}

// Handle @Summary Score a request
// @Description Computes the bot score of a described request without logging it
// @Tags Risk
// @Accept json
// @Produce json
// @Param request body request.ScoreRequest true "Request metadata"
// @Success 200 {object} ScoreResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /v1/risk/score [post]
func (h *scoreHandler) Handle(c *fiber.Ctx) error {
	var req request.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err)
	}

	res, err := h.scorer.Score(c.UserContext(), req.ToScoring(time.Now().UTC()))
	if err != nil {
		h.logger.WithError(err).Debug("score computed without request history")
	}
	return c.Status(fiber.StatusOK).JSON(ScoreResponse{
		Score:      res.Score,
		Components: res,
		Degraded:   res.Degraded,
	})
}
