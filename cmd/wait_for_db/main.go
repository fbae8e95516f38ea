// Command wait_for_db blocks until PostgreSQL accepts connections, then exits 0.
// Meant to run before the server in container start scripts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-user-api/config"
	pginfra "github.com/oksasatya/go-user-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-user-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("Waiting for database...")
	if err := pginfra.WaitForDB(ctx, cfg.PostgresDSN(), cfg.DBWaitInterval, logger); err != nil {
		helpers.LogError(logger, "gave up waiting for database", err, nil)
		os.Exit(1)
	}
	fmt.Println("Database available!")
}
