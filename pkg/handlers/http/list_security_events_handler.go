package http

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	defaultEventsLimit = 50
	maxEventsLimit     = 500
)

type listSecurityEventsHandler struct {
	logger *logrus.Logger
	repo   securityevent.Repository
}

func NewListSecurityEventsHandler(logger *logrus.Logger, repo securityevent.Repository) Handler {
	return &listSecurityEventsHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary List security events
// @Description Newest first, filtered by type, severity, ip, user and time
// @Tags Security Events
// @Produce json
// @Param type query string false "Event type"
// @Param severity query string false "Severity (low, medium, high)"
// @Param ip query string false "IP address"
// @Param user_id query string false "User ID"
// @Param since query string false "RFC3339 lower bound"
// @Param limit query int false "Page size (max 500)"
// @Param offset query int false "Offset"
// @Success 200 {array} securityevent.SecurityEvent
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Router /api/v1/security-events [get]
func (h *listSecurityEventsHandler) Handle(c *fiber.Ctx) error {
	filter, err := parseEventFilter(c)
	if err != nil {
		return badRequest(c, err)
	}
	events, err := h.repo.List(c.UserContext(), filter)
	if err != nil {
		return handleError(c, h.logger, err, "failed to list security events")
	}
	if events == nil {
		events = []securityevent.SecurityEvent{}
	}
	return c.Status(fiber.StatusOK).JSON(events)
}

func parseEventFilter(c *fiber.Ctx) (securityevent.Filter, error) {
	filter := securityevent.Filter{
		EventType: securityevent.Type(c.Query("type")),
		Severity:  securityevent.Severity(c.Query("severity")),
		IP:        c.Query("ip"),
		UserID:    c.Query("user_id"),
		Limit:     c.QueryInt("limit", defaultEventsLimit),
		Offset:    c.QueryInt("offset", 0),
	}
	if filter.Severity != "" && !filter.Severity.Valid() {
		return filter, fmt.Errorf("invalid severity: %s", filter.Severity)
	}
	if since := c.Query("since"); since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return filter, fmt.Errorf("since must be RFC3339: %w", err)
		}
		filter.Since = t
	}
	if filter.Limit <= 0 || filter.Limit > maxEventsLimit {
		filter.Limit = defaultEventsLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return filter, nil
}
