package eventlog

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/scoring"
	"github.com/NeuralTrust/RiskGate/pkg/app/securitylog"
	"github.com/NeuralTrust/RiskGate/pkg/domain/notification"
	"github.com/NeuralTrust/RiskGate/pkg/domain/ratewindow"
	"github.com/NeuralTrust/RiskGate/pkg/domain/requestevent"
	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	"github.com/NeuralTrust/RiskGate/pkg/infra/prometheus"
	"github.com/NeuralTrust/RiskGate/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	AlertDedupWindow = 24 * time.Hour
	RateWindowSize   = time.Minute

	reviewTitle   = "Account Under Review"
	reviewMessage = "We noticed unusual activity on your account. Our team is reviewing it; no action is required from you."
)

// HitRecorder is a secondary request counter fed alongside the event store.
type HitRecorder interface {
	Record(ctx context.Context, ip string, at time.Time) error
}

// AlertClaimer grants at most one user alert per window across replicas.
type AlertClaimer interface {
	Claim(ctx context.Context, userID string, window time.Duration) (bool, error)
	Release(ctx context.Context, userID string) error
}

// Outcome is what one pass of Record wrote.
type Outcome struct {
	IsSuspicious bool                           `json:"is_suspicious"`
	Alerted      bool                           `json:"alerted"`
	Deduplicated bool                           `json:"deduplicated"`
	Events       []*securityevent.SecurityEvent `json:"events"`
}

//go:generate mockery --name=Recorder --dir=. --output=./mocks --filename=recorder_mock.go --case=underscore --with-expecter
type Recorder interface {
	// Record logs the request and applies the alert policy. Store failures are
	// logged and never returned; the guarded request always proceeds.
	Record(ctx context.Context, req scoring.Request, res scoring.Result) Outcome
}

type recorder struct {
	logger   *logrus.Logger
	requests requestevent.Repository
	windows  ratewindow.Repository
	events   securityevent.Repository
	emitter  securitylog.Emitter
	sink     notification.Sink
	settings settings.Provider
	hits     HitRecorder
	claims   AlertClaimer
	users    userLocks
}

func NewRecorder(
	logger *logrus.Logger,
	requests requestevent.Repository,
	windows ratewindow.Repository,
	events securityevent.Repository,
	emitter securitylog.Emitter,
	sink notification.Sink,
	provider settings.Provider,
	hits HitRecorder,
	claims AlertClaimer,
) Recorder {
	return &recorder{
		logger:   logger,
		requests: requests,
		windows:  windows,
		events:   events,
		emitter:  emitter,
		sink:     sink,
		settings: provider,
		hits:     hits,
		claims:   claims,
		users:    userLocks{held: make(map[string]*userLock)},
	}
}

func (r *recorder) Record(ctx context.Context, req scoring.Request, res scoring.Result) Outcome {
	cfg := r.settings.Current(ctx)
	at := req.Timestamp
	if at.IsZero() {
		at = time.Now()
	}
	log := r.logger.WithFields(logrus.Fields{
		"ip":        req.IP,
		"endpoint":  req.Endpoint,
		"bot_score": res.Score,
	})

	out := Outcome{IsSuspicious: res.Score > cfg.SuspiciousThreshold}
	event := requestevent.New(req.IP, req.Endpoint, req.UserAgent, req.Referer, req.UserID, req.Symbol, res.Score, out.IsSuspicious, at)
	if err := r.requests.Create(ctx, event); err != nil {
		log.WithError(err).Warn("failed to record request event")
		prometheus.FailOpenTotal.WithLabelValues("request_log").Inc()
	} else {
		prometheus.RequestEventsTotal.WithLabelValues(strconv.FormatBool(out.IsSuspicious)).Inc()
	}

	start, end := ratewindow.WindowFor(at, RateWindowSize)
	if err := r.windows.Increment(ctx, req.IP, req.Endpoint, start, end); err != nil {
		log.WithError(err).Warn("failed to increment rate window")
	}
	if r.hits != nil {
		if err := r.hits.Record(ctx, req.IP, at); err != nil {
			log.WithError(err).Warn("failed to record hit in sliding window")
		}
	}

	medium := out.IsSuspicious
	if res.Score > cfg.AlertThreshold && req.SignedIn() {
		unlock := r.users.lock(*req.UserID)
		switch r.claimAlert(ctx, log, *req.UserID, at) {
		case claimUnknown:
			log.Warn("alert history unavailable, logging as suspicious request")
		case claimLost:
			out.Deduplicated = true
			medium = false
		case claimWon:
			medium = false
			if alert := r.alertUser(ctx, log, req, res, cfg, at); alert != nil {
				out.Alerted = true
				out.Events = append(out.Events, alert)
			} else {
				r.releaseAlert(ctx, log, *req.UserID)
			}
		}
		unlock()
	}

	if medium {
		ev := securityevent.New(
			securityevent.TypeSuspiciousRequest,
			securityevent.SeverityMedium,
			req.IP, req.UserID,
			"Suspicious request detected",
			signalData(req, res),
			at,
		).WithIndicators(scoring.ClassifyIndicators(req.UserAgent, res.Score, cfg.Indicators))
		if err := r.emitter.Emit(ctx, ev); err != nil {
			log.WithError(err).Warn("failed to log suspicious request")
		} else {
			out.Events = append(out.Events, ev)
		}
	}
	return out
}

type claimResult int

const (
	claimUnknown claimResult = iota
	claimWon
	claimLost
)

// claimAlert decides whether this request raises the user's alert. The
// shared claim settles races between requests; the event history still
// vetoes a won claim in case the claim store lost an earlier one. Without a
// working claim store the history alone decides.
func (r *recorder) claimAlert(ctx context.Context, log *logrus.Entry, userID string, at time.Time) claimResult {
	claimed := false
	if r.claims != nil {
		won, err := r.claims.Claim(ctx, userID, AlertDedupWindow)
		switch {
		case err != nil:
			log.WithError(err).Warn("alert claim unavailable, checking alert history")
			prometheus.FailOpenTotal.WithLabelValues("alert_claim").Inc()
		case !won:
			return claimLost
		default:
			claimed = true
		}
	}

	exists, err := r.events.ExistsForUserSince(ctx, securityevent.TypeSuspiciousUserAlert, userID, at.Add(-AlertDedupWindow))
	switch {
	case err != nil && claimed:
		return claimWon
	case err != nil:
		log.WithError(err).Debug("alert history lookup failed")
		return claimUnknown
	case exists:
		return claimLost
	default:
		return claimWon
	}
}

func (r *recorder) releaseAlert(ctx context.Context, log *logrus.Entry, userID string) {
	if r.claims == nil {
		return
	}
	if err := r.claims.Release(ctx, userID); err != nil {
		log.WithError(err).Warn("failed to release alert claim")
	}
}

func (r *recorder) alertUser(
	ctx context.Context,
	log *logrus.Entry,
	req scoring.Request,
	res scoring.Result,
	cfg settings.Settings,
	at time.Time,
) *securityevent.SecurityEvent {
	data := signalData(req, res)
	if cfg.AutoBanEnabled && res.Score >= cfg.BotScoreThreshold {
		data["ban_recommended"] = true
	}
	alert := securityevent.New(
		securityevent.TypeSuspiciousUserAlert,
		securityevent.SeverityHigh,
		req.IP, req.UserID,
		"Suspicious activity from signed-in user",
		data,
		at,
	).WithIndicators(scoring.ClassifyIndicators(req.UserAgent, res.Score, cfg.Indicators))

	if err := r.emitter.Emit(ctx, alert); err != nil {
		log.WithError(err).Warn("failed to log user alert")
		return nil
	}

	n := notification.New(*req.UserID, notification.TypeAccountReview, reviewTitle, reviewMessage)
	if err := r.sink.Send(ctx, n); err != nil {
		log.WithError(err).Warn("failed to send account review notification")
	} else {
		prometheus.NotificationsTotal.WithLabelValues(string(n.Type), string(n.Priority)).Inc()
	}
	return alert
}

func signalData(req scoring.Request, res scoring.Result) map[string]interface{} {
	data := map[string]interface{}{
		"user_agent":         req.UserAgent,
		"referer":            req.Referer,
		"endpoint":           req.Endpoint,
		"bot_score":          res.Score,
		"matched_signatures": res.MatchedSignatures,
		"recent_requests":    res.RecentRequests,
	}
	if req.Symbol != nil {
		data["symbol"] = *req.Symbol
	}
	if res.Degraded {
		data["degraded"] = true
	}
	if ua := utils.ParseUserAgent(req.UserAgent, req.AcceptLanguage); ua != nil {
		data["client"] = ua.Fields()
	}
	return data
}

// userLocks serialises the alert decision per user inside one process.
type userLocks struct {
	mu   sync.Mutex
	held map[string]*userLock
}

type userLock struct {
	sync.Mutex
	refs int
}

func (u *userLocks) lock(userID string) func() {
	u.mu.Lock()
	l, ok := u.held[userID]
	if !ok {
		l = &userLock{}
		u.held[userID] = l
	}
	l.refs++
	u.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		u.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(u.held, userID)
		}
		u.mu.Unlock()
	}
}
