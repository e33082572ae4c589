package http

import (
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/eventlog"
	"github.com/NeuralTrust/RiskGate/pkg/app/scoring"
	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	"github.com/NeuralTrust/RiskGate/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LogEventResponse struct {
	Score        int                            `json:"score"`
	IsSuspicious bool                           `json:"is_suspicious"`
	Alerted      bool                           `json:"alerted"`
	Deduplicated bool                           `json:"deduplicated"`
	Events       []*securityevent.SecurityEvent `json:"events"`
}

type logEventHandler struct {
	logger   *logrus.Logger
	scorer   scoring.Scorer
	recorder eventlog.Recorder
}

func NewLogEventHandler(logger *logrus.Logger, scorer scoring.Scorer, recorder eventlog.Recorder) Handler {
	return &logEventHandler{
		logger:   logger,
		scorer:   scorer,
		recorder: recorder,
	}
}

// Handle @Summary Log a request
// @Description Scores a described request, stores it and applies the alert policy
// @Tags Risk
// @Accept json
// @Produce json
// @Param request body request.LogEventRequest true "Request metadata"
// @Success 200 {object} LogEventResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /v1/risk/events [post]
func (h *logEventHandler) Handle(c *fiber.Ctx) error {
	var req request.LogEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err)
	}

	ctx := c.UserContext()
	scoringReq := req.ToScoring(time.Now().UTC())
	res, err := h.scorer.Score(ctx, scoringReq)
	if err != nil {
		h.logger.WithError(err).Debug("score computed without request history")
	}
	outcome := h.recorder.Record(ctx, scoringReq, res)

	events := outcome.Events
	if events == nil {
		events = []*securityevent.SecurityEvent{}
	}
	return c.Status(fiber.StatusOK).JSON(LogEventResponse{
		Score:        res.Score,
		IsSuspicious: outcome.IsSuspicious,
		Alerted:      outcome.Alerted,
		Deduplicated: outcome.Deduplicated,
		Events:       events,
	})
}
