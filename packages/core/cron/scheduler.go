package cron

import (
	"context"
	"log"
	"time"

	"prode-api/packages/core/services"

	"github.com/robfig/cron/v3"
)

// TokenCleaner purges expired refresh tokens.
type TokenCleaner interface {
	CleanExpiredTokens(ctx context.Context) (int64, error)
}

const jobTimeout = time.Minute

type Scheduler struct {
	cron         *cron.Cron
	tokens       TokenCleaner
	resultsWatch *services.ResultsWatchService
}

func NewScheduler(tokens TokenCleaner, resultsWatch *services.ResultsWatchService) *Scheduler {
	// Create cron with seconds precision and logging
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:         c,
		tokens:       tokens,
		resultsWatch: resultsWatch,
	}
}

// Start initializes and starts all scheduled jobs
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// At minute 0 of every hour
	if _, err := s.cron.AddFunc("0 0 * * * *", s.runTokenCleanup); err != nil {
		log.Printf("Error scheduling token cleanup job: %v", err)
		return err
	}

	// Every 15 minutes
	if _, err := s.cron.AddFunc("0 */15 * * * *", s.runOverdueResultsReport); err != nil {
		log.Printf("Error scheduling overdue results job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler, waiting for running jobs
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	<-s.cron.Stop().Done()
	log.Println("Cron scheduler stopped")
}

func (s *Scheduler) runTokenCleanup() {
	if s.tokens == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	deleted, err := s.tokens.CleanExpiredTokens(ctx)
	if err != nil {
		log.Printf("Error cleaning expired refresh tokens: %v", err)
		return
	}
	log.Printf("Removed %d expired refresh tokens", deleted)
}

func (s *Scheduler) runOverdueResultsReport() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	count, err := s.resultsWatch.ReportOverdueResults(ctx)
	if err != nil {
		log.Printf("Error checking overdue results: %v", err)
		return
	}
	if count == 0 {
		log.Println("No matches waiting for a result")
		return
	}
	log.Printf("%d finished matches are waiting for a result", count)
}

// RunNow runs every job once, outside of the schedule
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering scheduled jobs...")
	s.runTokenCleanup()
	s.runOverdueResultsReport()
}
