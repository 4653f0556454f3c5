package main

import (
	"log"
	"net/http"

	"researchhub/internal/api"
	"researchhub/internal/config"
	"researchhub/internal/logging"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	logger, err := logging.New(cfg.LogMode)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	srv, err := api.NewServer(cfg, logger)
	if err != nil {
		logger.Fatalw("api startup failed", "error", err)
	}
	defer srv.Close()

	logger.Infow("researchhub api listening", "addr", cfg.APIAddr, "llm_providers", cfg.LLMProviders)
	if err := http.ListenAndServe(cfg.APIAddr, srv.Routes()); err != nil {
		logger.Fatalw("api server stopped", "error", err)
	}
}
