package router

import (
	"github.com/oksasatya/chirper/config"
	"github.com/oksasatya/chirper/internal/application"
	"github.com/oksasatya/chirper/internal/container"
	"github.com/oksasatya/chirper/internal/domain/event"
	repo "github.com/oksasatya/chirper/internal/domain/repository"
	pginfra "github.com/oksasatya/chirper/internal/infrastructure/postgres"
	"github.com/oksasatya/chirper/internal/infrastructure/search"
	"github.com/oksasatya/chirper/internal/infrastructure/sqlite"
	"github.com/oksasatya/chirper/internal/notification"
)

// Repositories are the store-backed repositories for the configured driver.
type Repositories struct {
	Users         repo.UserRepository
	Chirps        repo.ChirpRepository
	Notifications repo.NotificationRepository
}

// BuildRepositories picks the repository implementations for the store that
// container.OpenStore registered.
func BuildRepositories() Repositories {
	if container.GetConfig().StoreDriver == config.DriverSQLite {
		db := container.GetSQLite()
		return Repositories{
			Users:         sqlite.NewUserRepository(db),
			Chirps:        sqlite.NewChirpRepository(db),
			Notifications: sqlite.NewNotificationRepository(db),
		}
	}
	pool := container.GetPGPool()
	return Repositories{
		Users:         pginfra.NewUserRepository(pool),
		Chirps:        pginfra.NewChirpRepository(pool),
		Notifications: pginfra.NewNotificationRepository(pool),
	}
}

// BuildChirpService wires the chirp service with the new-chirp fan-out
// subscribed to its bus. Notifications always land in the database; email
// is queued as well when a RabbitMQ publisher is available.
func BuildChirpService(repos Repositories) *application.ChirpService {
	logger := container.GetLogger()

	channels := notification.MultiChannel{notification.NewDatabaseChannel(repos.Notifications)}
	if pub := container.GetRabbitPub(); pub != nil {
		channels = append(channels, notification.NewMailChannel(pub, container.GetConfig()))
	}

	bus := event.NewBus()
	bus.OnChirpCreated(notification.NewDispatcher(repos.Users, channels, logger))

	var indexer application.ChirpIndexer
	if es := container.GetES(); es != nil {
		indexer = search.NewChirpIndex(es, container.GetConfig().ESChirpsIndex)
	}
	return application.NewChirpService(repos.Chirps, bus, indexer, logger)
}
