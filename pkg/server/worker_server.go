package server

import (
	"context"
	"sync"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/app/maintenance"
	"github.com/NeuralTrust/RiskGate/pkg/config"
	"github.com/NeuralTrust/RiskGate/pkg/infra/worker"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	WorkerServerDI struct {
		Config    *config.Config
		Logger    *logrus.Logger
		Scheduler *maintenance.Scheduler
		Exports   worker.Worker
	}
	// WorkerServer runs the maintenance jobs and exposes only health and
	// metrics.
	WorkerServer struct {
		*BaseServer
		scheduler *maintenance.Scheduler
		exports   worker.Worker
		cancel    context.CancelFunc
		done      chan struct{}
		once      sync.Once
	}
)

func NewWorkerServer(di WorkerServerDI) *WorkerServer {
	s := &WorkerServer{
		BaseServer: NewBaseServer(di.Config, di.Logger),
		scheduler:  di.Scheduler,
		exports:    di.Exports,
		done:       make(chan struct{}),
	}
	s.Router.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"jobs":   s.scheduler.Names(),
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	return s
}

func (s *WorkerServer) Run() error {
	s.setupMetricsEndpoint()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go func() {
		defer close(s.done)
		s.scheduler.Start(ctx)
	}()
	return s.listen(s.Config.Server.WorkerPort, "worker")
}

func (s *WorkerServer) Shutdown() error {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
			<-s.done
		}
		if s.exports != nil {
			s.exports.Shutdown()
		}
	})
	return s.BaseServer.Shutdown()
}
