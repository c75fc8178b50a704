package scheduler

import (
	"sync"

	"github.com/robfig/cron/v3"

	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
)

// Job represents a scheduled job
type Job interface {
	Run() error
	Name() string
}

// Scheduler runs background jobs on cron schedules
type Scheduler struct {
	cron   *cron.Cron
	logger coreport.Logger

	mu      sync.Mutex
	running bool
}

// New creates a new scheduler. Schedules accept an optional seconds field
// and descriptors such as "@every 5m".
func New(logger coreport.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithParser(cron.NewParser(
			cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
		))),
		logger: logger,
	}
}

// Start starts the scheduler; calling it twice is a no-op
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.cron.Start()
	s.logger.Info("Scheduler started", map[string]any{"jobs": len(s.cron.Entries())})
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped", nil)
}

// AddJob registers a job with a cron schedule
// Schedule examples:
//   - "@every 5m"          - Every 5 minutes
//   - "0 */5 * * * *"      - Every 5 minutes, on the minute
//   - "@hourly"            - Every hour
func (s *Scheduler) AddJob(schedule string, job Job) error {
	// SkipIfStillRunning keeps a slow cycle from stacking up behind itself
	wrapped := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		s.run(job)
	}))

	if _, err := s.cron.AddJob(schedule, wrapped); err != nil {
		s.logger.Error("Failed to register job", map[string]any{
			"job":      job.Name(),
			"schedule": schedule,
			"error":    err.Error(),
		})
		return err
	}

	s.logger.Info("Job registered", map[string]any{
		"job":      job.Name(),
		"schedule": schedule,
	})
	return nil
}

// RunNow executes a job immediately, outside its schedule
func (s *Scheduler) RunNow(job Job) error {
	s.logger.Info("Running job immediately", map[string]any{"job": job.Name()})
	return job.Run()
}

func (s *Scheduler) run(job Job) {
	s.logger.Debug("Running job", map[string]any{"job": job.Name()})

	if err := job.Run(); err != nil {
		s.logger.Error("Job failed", map[string]any{
			"job":   job.Name(),
			"error": err.Error(),
		})
		return
	}
	s.logger.Debug("Job completed", map[string]any{"job": job.Name()})
}
