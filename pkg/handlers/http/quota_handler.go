package http

import (
	"strings"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/quota"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type quotaHandler struct {
	logger  *logrus.Logger
	checker quota.Checker
}

func NewQuotaHandler(logger *logrus.Logger, checker quota.Checker) Handler {
	return &quotaHandler{
		logger:  logger,
		checker: checker,
	}
}

// Handle @Summary Get plan quota
// @Description Reports whether the user can make another metered API call
// @Tags Risk
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} quota.Verdict
// @Failure 400 {object} map[string]interface{} "Invalid user"
// @Router /v1/quota/{user_id} [get]
func (h *quotaHandler) Handle(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("user_id"))
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}
	verdict, err := h.checker.CanMakeAPICall(c.UserContext(), userID, time.Now().UTC())
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Debug("quota check degraded")
	}
	return c.Status(fiber.StatusOK).JSON(verdict)
}
