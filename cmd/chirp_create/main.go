// Command chirp_create posts random chirps as random existing users. Each
// chirp goes through the chirp service, so other users are notified as usual.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/oksasatya/chirper/config"
	"github.com/oksasatya/chirper/internal/container"
	"github.com/oksasatya/chirper/internal/router"
	"github.com/oksasatya/chirper/pkg/helpers"
)

func main() {
	count := flag.IntP("count", "n", 1, "number of chirps to create")
	words := flag.Int("words", 12, "words per generated message")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	logger := helpers.NewLogger(cfg.AppName+"-chirp-create", cfg.Env)
	container.SetConfig(cfg)
	container.SetLogger(logger)

	if err := run(context.Background(), cfg, logger, *count, *words); err != nil {
		logger.WithError(err).Error("chirp_create failed")
		os.Exit(1)
	}
}

// run owns every resource so deferred cleanup happens before main exits.
func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger, count, words int) error {
	closeStore, err := container.OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer closeStore()

	// queue emails too when the broker is up; database notifications work without it
	if cfg.MailSendEnabled {
		if pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue); err == nil {
			defer pub.Close()
			container.SetRabbitPub(pub)
			defer container.SetRabbitPub(nil)
		} else {
			logger.WithError(err).Warn("rabbitmq unavailable, skipping emails")
		}
	}

	repos := router.BuildRepositories()
	s := &seeder{
		Users:    repos.Users,
		Chirps:   router.BuildChirpService(repos),
		Generate: sentence(words),
		Logger:   logger,
	}
	return s.Run(ctx, count)
}
