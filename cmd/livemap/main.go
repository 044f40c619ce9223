package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"loteamentos_api/internal/adapter/persistence/repository"
	"loteamentos_api/internal/infrastructure/database"
	"loteamentos_api/internal/infrastructure/render"
	"loteamentos_api/internal/infrastructure/storage"
	"loteamentos_api/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

const (
	defaultIntervalSeconds = 30
	minIntervalSeconds     = 5
)

// The livemap worker polls for ATIVO loteamentos flagged stale
// (livemap_sync = 0), regenerates their overlay image and publishes it.
func main() {
	interval := pollInterval()

	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	ddb := database.ConnectDynamoDB()

	renderer, err := render.NewLivemapRenderer()
	if err != nil {
		log.Fatalf("failed to create renderer: %v", err)
	}

	uc := usecase.NewLivemapUseCase(
		repository.NewLoteamentoDynamoRepository(ddb),
		repository.NewMapaDynamoRepository(ddb),
		repository.NewLoteDynamoRepository(ddb),
		renderer,
		storage.NewS3Storage(cfg),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("[x][livemap] worker started, polling every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		processados, err := uc.Run(ctx)
		if err != nil {
			log.Printf("[x][livemap] run failed: %v", err)
		} else if processados > 0 {
			log.Printf("[x][livemap] %d livemap(s) publicados", processados)
		}

		select {
		case <-ctx.Done():
			log.Printf("[x][livemap] shutting down")
			return
		case <-ticker.C:
		}
	}
}

func pollInterval() time.Duration {
	seconds := defaultIntervalSeconds
	if v := os.Getenv("LIVEMAP_INTERVAL_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			seconds = parsed
		}
	}
	if seconds < minIntervalSeconds {
		seconds = minIntervalSeconds
	}
	return time.Duration(seconds) * time.Second
}
