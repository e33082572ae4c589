package http

import (
	appsettings "github.com/NeuralTrust/RiskGate/pkg/app/settings"
	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getSettingsHandler struct {
	logger   *logrus.Logger
	provider settings.Provider
}

func NewGetSettingsHandler(logger *logrus.Logger, provider settings.Provider) Handler {
	return &getSettingsHandler{
		logger:   logger,
		provider: provider,
	}
}

// Handle @Summary Get risk settings
// @Description Returns the thresholds, signatures and ceilings in force
// @Tags Settings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/settings [get]
func (h *getSettingsHandler) Handle(c *fiber.Ctx) error {
	out, err := h.provider.Current(c.UserContext()).ToMap()
	if err != nil {
		return handleError(c, h.logger, err, "failed to encode settings")
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

type updateSettingsHandler struct {
	logger  *logrus.Logger
	updater appsettings.Updater
}

func NewUpdateSettingsHandler(logger *logrus.Logger, updater appsettings.Updater) Handler {
	return &updateSettingsHandler{
		logger:  logger,
		updater: updater,
	}
}

// Handle @Summary Update risk settings
// @Description Merges the given keys into the stored settings; keys that fail to decode are reported and ignored
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Settings patch"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/settings [put]
func (h *updateSettingsHandler) Handle(c *fiber.Ctx) error {
	var patch map[string]interface{}
	if err := c.BodyParser(&patch); err != nil || len(patch) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	res, err := h.updater.Update(c.UserContext(), patch)
	if err != nil {
		return handleError(c, h.logger, err, "failed to update settings")
	}
	rejected := res.Rejected
	if rejected == nil {
		rejected = []string{}
	}
	out, err := res.Settings.ToMap()
	if err != nil {
		return handleError(c, h.logger, err, "failed to encode settings")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"settings": out,
		"rejected": rejected,
	})
}
