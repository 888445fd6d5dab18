package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"

	"DealSentinel/internal/analyzer"
	"DealSentinel/internal/feed"
	"DealSentinel/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the periodic price check task.
type Scheduler struct {
	Cron     *cron.Cron
	Item     string
	Feed     feed.Source
	Analyzer *analyzer.Analyzer
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, item string, src feed.Source, an *analyzer.Analyzer, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Item:     item,
		Feed:     src,
		Analyzer: an,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// Register registers the check task on the given cron spec.
func (s *Scheduler) Register(checkCron string) error {
	if _, err := s.Cron.AddFunc(checkCron, s.checkTask); err != nil {
		return fmt.Errorf("register check task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunCheckNow executes the check task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunCheckNow() {
	s.checkTask()
}

func (s *Scheduler) checkTask() {
	select {
	case <-s.Ctx.Done():
		return
	default:
	}

	log.Println("[INFO] running price check")
	price, err := s.Feed.Next()
	if err != nil {
		log.Printf("[ERROR] fetch current price: %v", err)
		return
	}

	hist, err := s.Analyzer.GenerateHistory(price)
	if err != nil {
		log.Printf("[ERROR] generate history: %v", err)
		return
	}

	rec, err := s.Analyzer.Analyze(price)
	if err != nil {
		if errors.Is(err, analyzer.ErrZeroAverage) {
			log.Printf("[WARN] analyze skipped: %v", err)
		} else {
			log.Printf("[ERROR] analyze: %v", err)
		}
		return
	}

	log.Printf("[INFO] check: item=%s price=%.2f label=%s (%s)", s.Item, price, rec.Label, rec.Explanation)

	if err := s.Recorder.RecordCheck(&recorder.CheckEvent{
		Item:        s.Item,
		Price:       price,
		Label:       string(rec.Label),
		Explanation: rec.Explanation,
		DiffPercent: rec.DiffPercent,
		Average:     rec.Average,
		MinHistory:  rec.MinHistory,
		MaxHistory:  rec.MaxHistory,
		History:     hist,
	}); err != nil {
		log.Printf("[ERROR] record check: %v", err)
	}
}
