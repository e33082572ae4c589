package maintenance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type schedule struct {
	job      Job
	interval time.Duration
}

type Scheduler struct {
	logger *logrus.Logger
	mu     sync.Mutex
	jobs   map[string]schedule
	// running keeps one job from overlapping with itself.
	running map[string]bool
}

func NewScheduler(logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		logger:  logger,
		jobs:    make(map[string]schedule),
		running: make(map[string]bool),
	}
}

func (s *Scheduler) Register(job Job, interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.Name()] = schedule{job: job, interval: interval}
}

func (s *Scheduler) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}

// RunNow executes a registered job once, outside its ticker.
func (s *Scheduler) RunNow(ctx context.Context, name string) (Report, error) {
	s.mu.Lock()
	sc, ok := s.jobs[name]
	if !ok {
		s.mu.Unlock()
		return Report{}, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	if s.running[name] {
		s.mu.Unlock()
		return Report{}, fmt.Errorf("%w: %s", ErrJobRunning, name)
	}
	s.running[name] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running[name] = false
		s.mu.Unlock()
	}()

	start := time.Now()
	report, err := sc.job.Run(ctx)
	log := s.logger.WithFields(logrus.Fields{
		"job":      name,
		"duration": time.Since(start).String(),
	})
	if err != nil {
		prometheus.MaintenanceRuns.WithLabelValues(name, "error").Inc()
		log.WithError(err).Error("maintenance job failed")
		return report, err
	}
	prometheus.MaintenanceRuns.WithLabelValues(name, "ok").Inc()
	log.Debug("maintenance job finished")
	return report, nil
}

// Start runs every registered job on its own ticker until ctx is cancelled.
// A failed run is retried at the next tick. Start blocks.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	jobs := make([]schedule, 0, len(s.jobs))
	for _, sc := range s.jobs {
		jobs = append(jobs, sc)
	}
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, sc := range jobs {
		wg.Add(1)
		go func(sc schedule) {
			defer wg.Done()
			s.loop(ctx, sc)
		}(sc)
	}
	wg.Wait()
	s.logger.Info("maintenance scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, sc schedule) {
	ticker := time.NewTicker(sc.interval)
	defer ticker.Stop()

	s.logger.WithFields(logrus.Fields{
		"job":      sc.job.Name(),
		"interval": sc.interval.String(),
	}).Info("maintenance job scheduled")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = s.RunNow(ctx, sc.job.Name())
		}
	}
}
