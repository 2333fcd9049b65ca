// Package scheduler wires the cron job that periodically re-runs the
// extraction pipeline.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/joblens/joblens/internal/workers"
)

type Scheduler struct {
	cron   *cron.Cron
	worker *workers.ExtractWorker
	spec   string // cron spec, e.g. "@every 12h"
	log    *logrus.Logger
}

func New(worker *workers.ExtractWorker, spec string, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		worker: worker,
		spec:   spec,
		log:    log,
	}
}

// Start registers the job and runs one extraction immediately so a
// fresh deployment does not wait for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.worker.Run(ctx); err != nil {
			s.log.WithError(err).Error("scheduled extraction aborted")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.WithField("spec", s.spec).Info("extraction scheduler started")

	go func() {
		if err := s.worker.Run(ctx); err != nil {
			s.log.WithError(err).Error("initial extraction aborted")
		}
	}()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("extraction scheduler stopped")
}
