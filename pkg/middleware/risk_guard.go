package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/eventlog"
	"github.com/NeuralTrust/RiskGate/pkg/app/quota"
	"github.com/NeuralTrust/RiskGate/pkg/app/ratelimit"
	"github.com/NeuralTrust/RiskGate/pkg/app/scoring"
	"github.com/NeuralTrust/RiskGate/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type riskGuardMiddleware struct {
	logger     *logrus.Logger
	scorer     scoring.Scorer
	limiter    ratelimit.Limiter
	quota      quota.Checker
	recorder   eventlog.Recorder
	identity   *IdentityResolver
	quotaPaths []string
}

// NewRiskGuardMiddleware scores, logs and gates a request before it is
// forwarded. Only administrator flags, enforced rate limits and exhausted
// plan quotas stop a request; store outages never do.
func NewRiskGuardMiddleware(
	logger *logrus.Logger,
	scorer scoring.Scorer,
	limiter ratelimit.Limiter,
	checker quota.Checker,
	recorder eventlog.Recorder,
	identity *IdentityResolver,
	quotaPaths []string,
) Middleware {
	return &riskGuardMiddleware{
		logger:     logger,
		scorer:     scorer,
		limiter:    limiter,
		quota:      checker,
		recorder:   recorder,
		identity:   identity,
		quotaPaths: quotaPaths,
	}
}

func (m *riskGuardMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		now := time.Now().UTC()
		who := m.identity.Resolve(c)
		c.Locals(common.ClientIPContextKey, who.IP)
		req := ScoringRequest(c, who, now)
		log := m.logger.WithFields(logrus.Fields{
			"ip":       req.IP,
			"endpoint": req.Endpoint,
			"trace_id": c.Locals(common.TraceIdKey),
		})

		res, err := m.scorer.Score(ctx, req)
		if err != nil {
			log.WithError(err).Debug("scored without request history")
		}

		decision, err := m.limiter.Check(ctx, ratelimit.Query{
			IP:       req.IP,
			UserID:   req.UserID,
			Endpoint: req.Endpoint,
			Now:      now,
		})
		if err != nil {
			log.WithError(err).Debug("rate limit check degraded")
		}

		var verdict *quota.Verdict
		if req.SignedIn() && m.metered(req.Endpoint) && !decision.Limited {
			v, err := m.quota.CanMakeAPICall(ctx, *req.UserID, now)
			if err != nil {
				log.WithError(err).Debug("quota check degraded")
			}
			verdict = &v
		}

		outcome := m.recorder.Record(ctx, req, res)

		c.Locals(common.RiskRequestContextKey, req)
		c.Locals(common.RiskResultContextKey, res)
		c.Locals(common.RateDecisionContextKey, decision)
		c.Set(common.RiskScoreHeader, strconv.Itoa(res.Score))

		if decision.Limited {
			status := fiber.StatusTooManyRequests
			if decision.Type == ratelimit.TypeBan || decision.Type == ratelimit.TypeIPBlock {
				status = fiber.StatusForbidden
			}
			log.WithFields(logrus.Fields{
				"type":   decision.Type,
				"reason": decision.Reason,
			}).Info("request refused")
			return c.Status(status).JSON(fiber.Map{
				"error": decision.Reason,
				"type":  decision.Type,
			})
		}

		if verdict != nil {
			c.Locals(common.QuotaContextKey, *verdict)
			if !verdict.Allowed {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error":    "Plan quota exhausted",
					"plan":     verdict.Plan,
					"exceeded": verdict.Exceeded,
					"usage":    verdict.Usage,
					"limits":   verdict.Limits,
				})
			}
		}

		c.Set(common.RiskSuspiciousHeader, strconv.FormatBool(outcome.IsSuspicious))
		return c.Next()
	}
}

func (m *riskGuardMiddleware) metered(path string) bool {
	for _, prefix := range m.quotaPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
