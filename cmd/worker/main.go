package main

import (
	"context"
	"log"
	"time"

	"researchhub/internal/activities"
	"researchhub/internal/ai"
	"researchhub/internal/config"
	"researchhub/internal/logging"
	"researchhub/internal/metrics"
	"researchhub/internal/providers"
	"researchhub/internal/storage"
	"researchhub/internal/workflows"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	logger, err := logging.New(cfg.LogMode)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	c, err := client.Dial(client.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		logger.Fatalw("temporal dial failed", "error", err)
	}
	defer c.Close()

	// The worker owns its own pool; analysis jobs never share a session with
	// the API process.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, err := storage.NewDB(ctx, cfg.PostgresURL)
	if err != nil {
		logger.Fatalw("database dial failed", "error", err)
	}
	defer db.Close()

	pm, err := providers.NewManager(cfg)
	if err != nil {
		logger.Fatalw("provider setup failed", "error", err)
	}
	llm, ref := pm.First()
	logger.Infow("generation provider selected", "provider", ref.Name, "configured", pm.Count())

	w := worker.New(c, cfg.TemporalTaskQueue, worker.Options{})
	workflows.Register(w)
	acts := activities.New(storage.NewAnalysisRepo(db), ai.NewService(llm, logger), &metrics.JobCounters{}, logger)
	acts.Register(w)

	logger.Infow("researchhub worker listening",
		"temporal", cfg.TemporalAddress, "queue", cfg.TemporalTaskQueue, "llm_providers", cfg.LLMProviders)
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Fatalw("worker stopped", "error", err)
	}
}
