package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"DealSentinel/internal/analyzer"
	"DealSentinel/internal/config"
	"DealSentinel/internal/feed"
	"DealSentinel/internal/recorder"
	"DealSentinel/internal/report"
	"DealSentinel/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] DealSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init analyzer
	an, err := analyzer.New(cfg.Analyzer.HistorySize)
	if err != nil {
		log.Fatalf("[FATAL] init analyzer: %v", err)
	}

	// One-shot mode: a price argument checks once and exits.
	if len(os.Args) > 1 {
		price, err := strconv.ParseFloat(os.Args[1], 64)
		if err != nil {
			log.Fatalf("[FATAL] invalid price argument %q: %v", os.Args[1], err)
		}
		hist, err := an.GenerateHistory(price)
		if err != nil {
			log.Fatalf("[FATAL] generate history: %v", err)
		}
		rec, err := an.Analyze(price)
		if err != nil {
			log.Fatalf("[FATAL] analyze: %v", err)
		}
		fmt.Println(report.FormatCheckReport(cfg.Item, rec, hist))
		return
	}

	// Init price source
	src, err := feed.NewRandomWalkSource(cfg.Feed.StartPrice, cfg.Feed.Volatility, cfg.Feed.MinPrice, time.Now().UnixNano())
	if err != nil {
		log.Fatalf("[FATAL] init price source: %v", err)
	}
	log.Printf("[INFO] price source: %s", src.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, cfg.Item, src, an, rec)
	if err := sched.Register(cfg.Schedule.CheckCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing check now")
		go sched.RunCheckNow()
	}

	log.Println("[INFO] DealSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] DealSentinel stopped")
}
