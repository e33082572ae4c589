package http

import (
	"context"

	"github.com/NeuralTrust/RiskGate/pkg/app/maintenance"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type JobRunner interface {
	RunNow(ctx context.Context, name string) (maintenance.Report, error)
}

type runJobHandler struct {
	logger *logrus.Logger
	runner JobRunner
}

func NewRunJobHandler(logger *logrus.Logger, runner JobRunner) Handler {
	return &runJobHandler{
		logger: logger,
		runner: runner,
	}
}

// Handle @Summary Run a maintenance job
// @Description Runs purge or pattern_analysis immediately and returns its report
// @Tags Jobs
// @Produce json
// @Param name path string true "Job name"
// @Success 200 {object} maintenance.Report
// @Failure 404 {object} map[string]interface{} "Unknown job"
// @Failure 500 {object} map[string]interface{} "Job failed"
// @Router /api/v1/jobs/{name} [post]
func (h *runJobHandler) Handle(c *fiber.Ctx) error {
	report, err := h.runner.RunNow(c.UserContext(), c.Params("name"))
	if err != nil {
		return handleError(c, h.logger, err, "maintenance job failed")
	}
	return c.Status(fiber.StatusOK).JSON(report)
}
