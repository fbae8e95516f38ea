package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-api/config"
	userapp "github.com/oksasatya/go-user-api/internal/application"
	pginfra "github.com/oksasatya/go-user-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-user-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	email := flag.String("email", os.Getenv("SUPERUSER_EMAIL"), "superuser email")
	password := flag.String("password", os.Getenv("SUPERUSER_PASSWORD"), "superuser password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password (or SUPERUSER_EMAIL/SUPERUSER_PASSWORD) are required")
	}

	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	svc := userapp.NewService(pginfra.NewUserRepository(pool), pginfra.NewTokenRepository(pool), nil, nil, logger)
	u, err := svc.CreateSuperuser(ctx, *email, *password)
	if err != nil {
		log.Fatalf("failed to create superuser: %v", err)
	}
	helpers.LogInfo(logger, "superuser created", logrus.Fields{"id": u.ID, "email": u.Email})
}
