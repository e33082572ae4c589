package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Proxy
	ForwardedHandler Handler
	ScoreHandler     Handler
	LogEventHandler  Handler
	RateLimitHandler Handler
	QuotaHandler     Handler

	// Admin
	GetVersionHandler Handler

	// Membership
	GetMembershipHandler    Handler
	UpdateMembershipHandler Handler
	BanUserHandler          Handler
	UnbanUserHandler        Handler

	// IP blocks
	CreateIPBlockHandler Handler
	DeleteIPBlockHandler Handler
	ListIPBlocksHandler  Handler

	// Security events
	ListSecurityEventsHandler Handler

	// Settings
	GetSettingsHandler    Handler
	UpdateSettingsHandler Handler

	// Jobs
	RunJobHandler Handler
}
