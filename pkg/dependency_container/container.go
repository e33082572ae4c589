package dependency_container

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/eventlog"
	"github.com/NeuralTrust/RiskGate/pkg/app/ipblock"
	"github.com/NeuralTrust/RiskGate/pkg/app/maintenance"
	"github.com/NeuralTrust/RiskGate/pkg/app/membership"
	"github.com/NeuralTrust/RiskGate/pkg/app/quota"
	"github.com/NeuralTrust/RiskGate/pkg/app/ratelimit"
	"github.com/NeuralTrust/RiskGate/pkg/app/scoring"
	"github.com/NeuralTrust/RiskGate/pkg/app/securitylog"
	appsettings "github.com/NeuralTrust/RiskGate/pkg/app/settings"
	"github.com/NeuralTrust/RiskGate/pkg/config"
	"github.com/NeuralTrust/RiskGate/pkg/domain/notification"
	"github.com/NeuralTrust/RiskGate/pkg/domain/requestevent"
	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	domainSettings "github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	handlers "github.com/NeuralTrust/RiskGate/pkg/handlers/http"
	"github.com/NeuralTrust/RiskGate/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/RiskGate/pkg/infra/cache"
	"github.com/NeuralTrust/RiskGate/pkg/infra/counter"
	"github.com/NeuralTrust/RiskGate/pkg/infra/database"
	"github.com/NeuralTrust/RiskGate/pkg/infra/exporter"
	"github.com/NeuralTrust/RiskGate/pkg/infra/httpx"
	infraNotification "github.com/NeuralTrust/RiskGate/pkg/infra/notification"
	"github.com/NeuralTrust/RiskGate/pkg/infra/repository"
	"github.com/NeuralTrust/RiskGate/pkg/infra/worker"
	"github.com/NeuralTrust/RiskGate/pkg/middleware"
	"github.com/sirupsen/logrus"
)

const exportQueueSize = 1024

type Container struct {
	Cache               cache.Client
	SettingsProvider    domainSettings.Provider
	SettingsUpdater     appsettings.Updater
	Scorer              scoring.Scorer
	Limiter             ratelimit.Limiter
	QuotaChecker        quota.Checker
	Recorder            eventlog.Recorder
	Emitter             securitylog.Emitter
	Sink                notification.Sink
	Scheduler           *maintenance.Scheduler
	ExportWorker        worker.Worker
	Exporters           []securityevent.Exporter
	JWTManager          jwt.Manager
	HandlerTransport    handlers.HandlerTransport
	MiddlewareTransport middleware.Transport
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	DB     *database.DB
}

func NewContainer(di ContainerDI) (*Container, error) {
	cacheInstance, err := cache.NewClient(cache.Config{
		Host:     di.Cfg.Redis.Host,
		Port:     di.Cfg.Redis.Port,
		Password: di.Cfg.Redis.Password,
		DB:       di.Cfg.Redis.DB,
		TLS:      di.Cfg.Redis.TLS,
	}, di.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	settingsTTL := cacheInstance.CreateTTLMap(cache.SettingsTTLName, cache.DefaultLocalCacheTTL)

	// repository
	requestRepository := repository.NewRequestEventRepository(di.DB.DB)
	securityEventRepository := repository.NewSecurityEventRepository(di.DB.DB)
	rateWindowRepository := repository.NewRateWindowRepository(di.DB.DB)
	membershipRepository := repository.NewMembershipRepository(di.DB.DB)
	settingsRepository := repository.NewRedisSettingsRepository(cacheInstance)

	// settings
	defaults, unknown := di.Cfg.RiskSettings()
	if len(unknown) > 0 {
		di.Logger.WithField("keys", unknown).Warn("ignoring unknown risk settings")
	}
	settingsProvider := appsettings.NewProvider(di.Logger, settingsRepository, defaults, settingsTTL)
	settingsUpdater := appsettings.NewUpdater(di.Logger, settingsRepository, settingsProvider)

	// request counter
	countBreaker := httpx.NewCircuitBreaker("request-counter", di.Cfg.Breaker.Timeout, di.Cfg.Breaker.MaxFailures)
	var requestCounter requestevent.Counter = requestRepository
	var hits eventlog.HitRecorder
	if di.Cfg.Counter.Backend == "redis" {
		redisCounter := counter.NewRedisCounter(cacheInstance.RedisClient(), nil)
		requestCounter = redisCounter
		hits = redisCounter
	}
	requestCounter = counter.WithBreaker(requestCounter, countBreaker)

	// security event export
	definitions := make([]exporter.Definition, 0, len(di.Cfg.Exporters))
	for _, e := range di.Cfg.Exporters {
		definitions = append(definitions, exporter.Definition{Name: e.Name, Settings: e.Settings})
	}
	exporters, err := exporter.NewLocator(
		exporter.WithFactory(exporter.NewKafkaExporter()),
	).Build(definitions)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize exporters: %w", err)
	}
	exportWorker := worker.NewWorker(di.Logger, exportQueueSize)
	exportWorker.StartWorkers(di.Cfg.Maintenance.ExportWorkers)

	sink := infraNotification.NewFanOut(
		infraNotification.NewLogSink(di.Logger),
		infraNotification.NewRedisSink(cacheInstance, di.Cfg.Notifications.Channel),
	)
	emitter := securitylog.NewEmitter(di.Logger, securityEventRepository, exportWorker, exporters...)

	// service
	scorer := scoring.NewScorer(di.Logger, requestCounter, settingsProvider)
	limiter := ratelimit.NewLimiter(
		di.Logger,
		membershipRepository,
		rateWindowRepository,
		requestCounter,
		emitter,
		sink,
		settingsProvider,
	)
	quotaChecker := quota.NewChecker(di.Logger, membershipRepository, requestRepository)
	recorder := eventlog.NewRecorder(
		di.Logger,
		requestRepository,
		rateWindowRepository,
		securityEventRepository,
		emitter,
		sink,
		settingsProvider,
		hits,
		cache.NewAlertClaims(cacheInstance.RedisClient()),
	)
	membershipManager := membership.NewManager(di.Logger, membershipRepository, sink)
	ipBlockManager := ipblock.NewManager(di.Logger, rateWindowRepository)

	// maintenance
	scheduler := maintenance.NewScheduler(di.Logger)
	scheduler.Register(
		maintenance.NewPurger(
			di.Logger,
			requestRepository,
			securityEventRepository,
			time.Duration(di.Cfg.Maintenance.RetentionDays)*24*time.Hour,
		),
		di.Cfg.Maintenance.PurgeInterval,
	)
	scheduler.Register(
		maintenance.NewPatternAnalyzer(di.Logger, requestRepository, emitter, maintenance.AnalysisConfig{
			Window:      di.Cfg.Maintenance.AnalysisInterval,
			MaxRequests: di.Cfg.Maintenance.AnalysisRequests,
			MaxAvgScore: di.Cfg.Maintenance.AnalysisAvgScore,
		}),
		di.Cfg.Maintenance.AnalysisInterval,
	)

	// upstream
	upstreamBreaker := httpx.NewCircuitBreaker("upstream", di.Cfg.Upstream.BreakerReset, di.Cfg.Upstream.MaxFailures)
	upstreamClient := httpx.NewUpstreamClient(nil, upstreamBreaker, di.Cfg.Upstream.Timeout)

	jwtManager := jwt.NewJwtManager(&di.Cfg.Server)
	identity, err := middleware.NewIdentityResolver(di.Cfg.Server.TrustedProxies, jwtManager)
	if err != nil {
		return nil, fmt.Errorf("failed to parse trusted proxies: %w", err)
	}

	// Handler Transport
	handlerTransport := handlers.HandlerTransport{
		// Proxy
		ForwardedHandler: handlers.NewForwardedHandler(di.Logger, upstreamClient, di.Cfg.Upstream.BaseURL),
		ScoreHandler:     handlers.NewScoreHandler(di.Logger, scorer),
		LogEventHandler:  handlers.NewLogEventHandler(di.Logger, scorer, recorder),
		RateLimitHandler: handlers.NewRateLimitHandler(di.Logger, limiter),
		QuotaHandler:     handlers.NewQuotaHandler(di.Logger, quotaChecker),
		// Version
		GetVersionHandler: handlers.NewGetVersionHandler(di.Logger),
		// Membership
		GetMembershipHandler:    handlers.NewGetMembershipHandler(di.Logger, membershipManager),
		UpdateMembershipHandler: handlers.NewUpdateMembershipHandler(di.Logger, membershipManager),
		BanUserHandler:          handlers.NewBanUserHandler(di.Logger, membershipManager),
		UnbanUserHandler:        handlers.NewUnbanUserHandler(di.Logger, membershipManager),
		// IP blocks
		CreateIPBlockHandler: handlers.NewCreateIPBlockHandler(di.Logger, ipBlockManager),
		DeleteIPBlockHandler: handlers.NewDeleteIPBlockHandler(di.Logger, ipBlockManager),
		ListIPBlocksHandler:  handlers.NewListIPBlocksHandler(di.Logger, ipBlockManager),
		// Security events
		ListSecurityEventsHandler: handlers.NewListSecurityEventsHandler(di.Logger, securityEventRepository),
		// Settings
		GetSettingsHandler:    handlers.NewGetSettingsHandler(di.Logger, settingsProvider),
		UpdateSettingsHandler: handlers.NewUpdateSettingsHandler(di.Logger, settingsUpdater),
		// Jobs
		RunJobHandler: handlers.NewRunJobHandler(di.Logger, scheduler),
	}

	middlewareTransport := middleware.Transport{
		RecoverMiddleware: middleware.NewPanicRecoverMiddleware(di.Logger),
		TraceMiddleware:   middleware.NewTraceMiddleware(),
		GuardMiddleware: middleware.NewRiskGuardMiddleware(
			di.Logger,
			scorer,
			limiter,
			quotaChecker,
			recorder,
			identity,
			di.Cfg.Upstream.QuotaPaths,
		),
		AdminMiddleware: middleware.NewAdminAuthMiddleware(di.Logger, jwtManager),
	}

	container := &Container{
		Cache:               cacheInstance,
		SettingsProvider:    settingsProvider,
		SettingsUpdater:     settingsUpdater,
		Scorer:              scorer,
		Limiter:             limiter,
		QuotaChecker:        quotaChecker,
		Recorder:            recorder,
		Emitter:             emitter,
		Sink:                sink,
		Scheduler:           scheduler,
		ExportWorker:        exportWorker,
		Exporters:           exporters,
		JWTManager:          jwtManager,
		HandlerTransport:    handlerTransport,
		MiddlewareTransport: middlewareTransport,
	}

	return container, nil
}

// Close drains queued exports before closing exporters and the cache.
func (c *Container) Close() error {
	c.ExportWorker.Shutdown()
	for _, e := range c.Exporters {
		e.Close()
	}
	return c.Cache.Close()
}
