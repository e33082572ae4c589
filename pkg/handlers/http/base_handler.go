package http

import (
	"errors"

	"github.com/NeuralTrust/RiskGate/pkg/app/maintenance"
	"github.com/NeuralTrust/RiskGate/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// handleError maps domain errors onto status codes. Anything unrecognised is
// logged and reported as a 500.
func handleError(c *fiber.Ctx, logger *logrus.Logger, err error, msg string) error {
	switch {
	case domain.IsNotFoundError(err), errors.Is(err, maintenance.ErrUnknownJob):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, maintenance.ErrJobRunning):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidPlan), errors.Is(err, domain.ErrInvalidIP):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithError(err).Error(msg)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msg})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
