package scheduler

import (
	"drivio/config"
	"drivio/internal/jobs"
	"drivio/shared/timezone"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler runs the recurring background jobs on cron expressions from
// configuration.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.Runner
	cfg  *config.Config
}

func New(cfg *config.Config, runner *jobs.Runner) *Scheduler {
	s := &Scheduler{
		cron: cron.New(cron.WithLocation(timezone.GetLocation())),
		jobs: runner,
		cfg:  cfg,
	}

	s.register()

	return s
}

func (s *Scheduler) register() {
	if _, err := s.cron.AddFunc(s.cfg.Scheduler.LifecycleSweep, s.jobs.LifecycleSweep); err != nil {
		log.Error().Err(err).Msg("failed to register lifecycle sweep job")
	}

	if _, err := s.cron.AddFunc(s.cfg.Scheduler.MaintenanceSweep, s.jobs.MaintenanceSweep); err != nil {
		log.Error().Err(err).Msg("failed to register maintenance sweep job")
	}
}

func (s *Scheduler) Start() {
	if !s.cfg.Scheduler.Enable {
		log.Info().Msg("scheduler disabled")

		return
	}

	s.cron.Start()
	log.Info().Msg("scheduler started")
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}
