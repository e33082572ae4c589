package http

import (
	"strings"

	"github.com/NeuralTrust/RiskGate/pkg/app/membership"
	"github.com/NeuralTrust/RiskGate/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getMembershipHandler struct {
	logger  *logrus.Logger
	manager membership.Manager
}

func NewGetMembershipHandler(logger *logrus.Logger, manager membership.Manager) Handler {
	return &getMembershipHandler{
		logger:  logger,
		manager: manager,
	}
}

// Handle @Summary Get a membership
// @Description Returns the plan, ban flag and rate limit override of a user
// @Tags Memberships
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} membership.Membership
// @Failure 500 {object} map[string]interface{} "Store error"
// @Router /api/v1/memberships/{user_id} [get]
func (h *getMembershipHandler) Handle(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("user_id"))
	m, err := h.manager.Get(c.UserContext(), userID)
	if err != nil {
		return handleError(c, h.logger, err, "failed to get membership")
	}
	return c.Status(fiber.StatusOK).JSON(m)
}

type updateMembershipHandler struct {
	logger  *logrus.Logger
	manager membership.Manager
}

func NewUpdateMembershipHandler(logger *logrus.Logger, manager membership.Manager) Handler {
	return &updateMembershipHandler{
		logger:  logger,
		manager: manager,
	}
}

// Handle @Summary Update a membership
// @Description Changes the plan or the per-minute rate limit override of a user
// @Tags Memberships
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param request body request.UpdateMembershipRequest true "Changes"
// @Success 200 {object} membership.Membership
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/memberships/{user_id} [put]
func (h *updateMembershipHandler) Handle(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("user_id"))
	var req request.UpdateMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err)
	}
	m, err := h.manager.Update(c.UserContext(), userID, req.ToUpdate())
	if err != nil {
		return handleError(c, h.logger, err, "failed to update membership")
	}
	return c.Status(fiber.StatusOK).JSON(m)
}

type banUserHandler struct {
	logger  *logrus.Logger
	manager membership.Manager
}

func NewBanUserHandler(logger *logrus.Logger, manager membership.Manager) Handler {
	return &banUserHandler{
		logger:  logger,
		manager: manager,
	}
}

// Handle @Summary Ban a user
// @Description Flags the account as banned; the guard refuses its requests with 403
// @Tags Memberships
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param request body request.BanRequest false "Reason"
// @Success 200 {object} membership.Membership
// @Router /api/v1/memberships/{user_id}/ban [post]
func (h *banUserHandler) Handle(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("user_id"))
	var req request.BanRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	m, err := h.manager.Ban(c.UserContext(), userID, strings.TrimSpace(req.Reason))
	if err != nil {
		return handleError(c, h.logger, err, "failed to ban user")
	}
	return c.Status(fiber.StatusOK).JSON(m)
}

type unbanUserHandler struct {
	logger  *logrus.Logger
	manager membership.Manager
}

func NewUnbanUserHandler(logger *logrus.Logger, manager membership.Manager) Handler {
	return &unbanUserHandler{
		logger:  logger,
		manager: manager,
	}
}

// Handle @Summary Unban a user
// @Tags Memberships
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} membership.Membership
// @Router /api/v1/memberships/{user_id}/ban [delete]
func (h *unbanUserHandler) Handle(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("user_id"))
	m, err := h.manager.Unban(c.UserContext(), userID)
	if err != nil {
		return handleError(c, h.logger, err, "failed to unban user")
	}
	return c.Status(fiber.StatusOK).JSON(m)
}
