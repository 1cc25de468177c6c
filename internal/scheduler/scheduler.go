package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/vouchly-dev/vouchly/db"
	"github.com/vouchly-dev/vouchly/internal/models"
	"github.com/vouchly-dev/vouchly/internal/services"
)

// Scheduler drives the periodic report digests. One daily tick: weekly
// digests go out on Mondays, monthly digests on the first of the month, each
// only to users who opted in through their notification settings.
type Scheduler struct {
	ticker *time.Ticker
	ctx    context.Context
	cancel context.CancelFunc
}

const tickInterval = 24 * time.Hour

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Scheduler) Start() {
	log.Println("Starting report scheduler...")

	s.ticker = time.NewTicker(tickInterval)

	go s.run()
}

func (s *Scheduler) Stop() {
	log.Println("Stopping report scheduler...")
	s.cancel()

	if s.ticker != nil {
		s.ticker.Stop()
	}
}

func (s *Scheduler) run() {
	defer s.ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.ticker.C:
			now := time.Now()

			if now.Weekday() == time.Monday {
				s.sendDigests("weekly")
			}

			if now.Day() == 1 {
				s.sendDigests("monthly")
			}
		}
	}
}

// sendDigests walks all users opted in for the given period and sends each a
// stats summary aggregated over their projects.
func (s *Scheduler) sendDigests(period string) {
	var users []models.User

	if err := db.DB.Find(&users).Error; err != nil {
		log.Printf("Failed to load users for %s digests: %v", period, err)
		return
	}

	sent := 0

	for _, user := range users {
		settings := user.NotificationSettings()

		if period == "weekly" && !settings.EmailWeeklyReport {
			continue
		}

		if period == "monthly" && !settings.EmailMonthlyReport {
			continue
		}

		projectCount, stats, err := services.UserStatsSummary(user.ID)
		if err != nil {
			log.Printf("Failed to aggregate stats for user %d: %v", user.ID, err)
			continue
		}

		if err := services.SendReportDigest(user, period, projectCount, stats); err != nil {
			log.Printf("Failed to send %s digest to user %d: %v", period, user.ID, err)
			continue
		}

		sent++
	}

	log.Printf("Sent %d %s digests", sent, period)
}

// Global scheduler instance
var globalScheduler *Scheduler

func Initialize() {
	globalScheduler = NewScheduler()
	globalScheduler.Start()
}

func Shutdown() {
	if globalScheduler != nil {
		globalScheduler.Stop()
	}
}
