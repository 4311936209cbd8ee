package scheduler

import (
	"fmt"
	"log"

	"property-portfolio/internal/cleanup"
	"property-portfolio/internal/config"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the nightly orphan image cleanup
type Scheduler struct {
	cron      *cron.Cron
	cleanup   *cleanup.Service
	config    config.CleanupConfig
	isRunning bool
}

// NewScheduler creates a new scheduler
func NewScheduler(cleanupService *cleanup.Service, cfg config.CleanupConfig) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		cleanup: cleanupService,
		config:  cfg,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		log.Println("Scheduler: cleanup job is disabled in configuration")
		return nil
	}

	cronSpec := s.parseDailyRunTime(s.config.DailyRunTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		log.Println("Scheduler: starting cleanup job...")
		if _, err := s.RunNow(); err != nil {
			log.Printf("Scheduler: cleanup job failed: %v", err)
		} else {
			log.Println("Scheduler: cleanup job completed successfully")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Scheduler: started with daily cleanup at %s (cron: %s)", s.config.DailyRunTime, cronSpec)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler: stopped")
	}
}

// RunNow immediately executes the cleanup job (for manual trigger)
func (s *Scheduler) RunNow() (*cleanup.Result, error) {
	return s.cleanup.Run(cleanup.Config{
		GracePeriod:      s.config.GracePeriod(),
		MaxDeletionCount: s.config.MaxDeletionCount,
		DryRun:           s.config.DryRun,
	})
}

// parseDailyRunTime converts HH:MM format to cron specification
// Example: "03:00" -> "0 3 * * *" (run at 3:00 AM every day)
func (s *Scheduler) parseDailyRunTime(timeStr string) string {
	var hour, minute int
	n, _ := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute)
	if n == 2 {
		return fmt.Sprintf("%d %d * * *", minute, hour)
	}

	// Default to 3:00 AM if parsing fails
	log.Printf("Scheduler: failed to parse time '%s', using default 03:00", timeStr)
	return "0 3 * * *"
}
