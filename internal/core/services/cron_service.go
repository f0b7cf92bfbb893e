package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"snp-mealhub/internal/adapters/persistence/repositories"
)

// CronService runs scheduled maintenance jobs. Currently one job: a daily
// sweep that reports officer accounts stuck without their detail record, so
// abandoned provisioning attempts don't accumulate silently.
type CronService struct {
	cron     *cron.Cron
	userRepo repositories.UserRepository
}

// NewCronService creates a new cron service
func NewCronService(userRepo repositories.UserRepository) *CronService {
	return &CronService{
		cron:     cron.New(),
		userRepo: userRepo,
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() {
	// 08:30 daily, before the morning data-entry window opens
	_, err := s.cron.AddFunc("30 8 * * *", s.sweepPendingDetails)
	if err != nil {
		logrus.Errorf("❌ Failed to register pending-details sweep: %v", err)
		return
	}

	s.cron.Start()
	logrus.Info("🚀 Cron service started")
}

// Stop gracefully stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	logrus.Info("🛑 Cron service stopped")
}

// sweepPendingDetails logs officer accounts that never completed the detail
// form.
func (s *CronService) sweepPendingDetails() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users, err := s.userRepo.ListPendingDetails(ctx)
	if err != nil {
		logrus.Errorf("❌ Pending-details sweep failed: %v", err)
		return
	}

	if len(users) == 0 {
		return
	}

	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	logrus.Warnf("⚠️ %d officer account(s) awaiting details: %v", len(users), names)
}
