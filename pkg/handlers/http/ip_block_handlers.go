package http

import (
	"github.com/NeuralTrust/RiskGate/pkg/app/ipblock"
	"github.com/NeuralTrust/RiskGate/pkg/domain/ratewindow"
	"github.com/NeuralTrust/RiskGate/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createIPBlockHandler struct {
	logger  *logrus.Logger
	manager ipblock.Manager
}

func NewCreateIPBlockHandler(logger *logrus.Logger, manager ipblock.Manager) Handler {
	return &createIPBlockHandler{
		logger:  logger,
		manager: manager,
	}
}

// Handle @Summary Block an IP
// @Description Blocks an address on one endpoint or on all of them ("*")
// @Tags IP Blocks
// @Accept json
// @Produce json
// @Param request body request.CreateIPBlockRequest true "Block"
// @Success 201 {object} ratewindow.RateWindow
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/ip-blocks [post]
func (h *createIPBlockHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateIPBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err)
	}
	w, err := h.manager.Block(c.UserContext(), req.IP, req.Endpoint, req.ParsedDuration())
	if err != nil {
		return handleError(c, h.logger, err, "failed to block ip")
	}
	return c.Status(fiber.StatusCreated).JSON(w)
}

type deleteIPBlockHandler struct {
	logger  *logrus.Logger
	manager ipblock.Manager
}

func NewDeleteIPBlockHandler(logger *logrus.Logger, manager ipblock.Manager) Handler {
	return &deleteIPBlockHandler{
		logger:  logger,
		manager: manager,
	}
}

// Handle @Summary Unblock an IP
// @Tags IP Blocks
// @Param ip path string true "IP address"
// @Success 204 "IP unblocked"
// @Failure 404 {object} map[string]interface{} "No block found"
// @Router /api/v1/ip-blocks/{ip} [delete]
func (h *deleteIPBlockHandler) Handle(c *fiber.Ctx) error {
	if _, err := h.manager.Unblock(c.UserContext(), c.Params("ip")); err != nil {
		return handleError(c, h.logger, err, "failed to unblock ip")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type listIPBlocksHandler struct {
	logger  *logrus.Logger
	manager ipblock.Manager
}

func NewListIPBlocksHandler(logger *logrus.Logger, manager ipblock.Manager) Handler {
	return &listIPBlocksHandler{
		logger:  logger,
		manager: manager,
	}
}

// Handle @Summary List active IP blocks
// @Tags IP Blocks
// @Produce json
// @Success 200 {array} ratewindow.RateWindow
// @Router /api/v1/ip-blocks [get]
func (h *listIPBlocksHandler) Handle(c *fiber.Ctx) error {
	blocks, err := h.manager.List(c.UserContext())
	if err != nil {
		return handleError(c, h.logger, err, "failed to list ip blocks")
	}
	if blocks == nil {
		blocks = []ratewindow.RateWindow{}
	}
	return c.Status(fiber.StatusOK).JSON(blocks)
}
