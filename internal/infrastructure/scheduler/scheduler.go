package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/learnaray/learnaray/internal/infrastructure/metrics"
	usecasecontract "github.com/learnaray/learnaray/internal/usecase/contract"
)

// sweepSchedule fires at midnight every day (seconds-precision spec).
const sweepSchedule = "0 0 0 * * *"

// NotificationSweeper runs the retention sweep on a cron schedule and exposes
// a Stop handle for graceful shutdown.
type NotificationSweeper struct {
	cron   *cron.Cron
	nuc    usecasecontract.INotificationUseCase
	logger usecasecontract.IAppLogger
}

func NewNotificationSweeper(nuc usecasecontract.INotificationUseCase, logger usecasecontract.IAppLogger) *NotificationSweeper {
	return &NotificationSweeper{
		cron:   cron.New(cron.WithSeconds()),
		nuc:    nuc,
		logger: logger,
	}
}

// Start registers the sweep job and starts the scheduler.
func (s *NotificationSweeper) Start() error {
	_, err := s.cron.AddFunc(sweepSchedule, s.sweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *NotificationSweeper) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(10 * time.Second):
		s.logger.Warnf("notification sweep did not finish before shutdown deadline")
	}
}

func (s *NotificationSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.nuc.SweepExpired(ctx)
	if err != nil {
		s.logger.Errorf("notification sweep failed: %v", err)
		return
	}
	metrics.NotificationsSwept.Add(float64(deleted))
	s.logger.Infof("notification sweep removed %d read notifications", deleted)
}
