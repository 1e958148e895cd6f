package main

import (
	"context"
	"errors"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/chirper/config"
	"github.com/oksasatya/chirper/internal/container"
	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/domain/repository"
	"github.com/oksasatya/chirper/internal/router"
	"github.com/oksasatya/chirper/pkg/helpers"
)

const demoPassword = "password123"

var demoUsers = []struct{ Email, Name string }{
	{"alice@example.com", "Alice"},
	{"bob@example.com", "Bob"},
	{"carol@example.com", "Carol"},
}

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	container.SetConfig(cfg)
	container.SetLogger(logger)

	ctx := context.Background()
	closeStore, err := container.OpenStore(ctx, cfg)
	if err != nil {
		logger.Fatalf("store: %v", err)
	}
	defer closeStore()

	users := router.BuildRepositories().Users
	hash, err := helpers.HashPassword(demoPassword)
	if err != nil {
		logger.Fatalf("failed to hash password: %v", err)
	}

	for _, d := range demoUsers {
		log := logger.WithField("email", d.Email)
		existing, err := users.GetByEmail(ctx, d.Email)
		switch {
		case err == nil:
			log.WithField("id", existing.ID).Info("user already seeded")
			continue
		case !errors.Is(err, repository.ErrNotFound):
			log.WithError(err).Fatal("lookup failed")
		}
		u := &entity.User{Email: d.Email, Password: hash, Name: d.Name}
		if err := users.Create(ctx, u); err != nil {
			log.WithError(err).Fatal("failed to seed user")
		}
		log.WithFields(logrus.Fields{"id": u.ID, "name": u.Name, "password": demoPassword}).Info("seeded user")
	}
}
