package storage_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"tripmate/internal/infra"
	"tripmate/internal/repositories"
)

var Module = fx.Provide(ProvideRepositories)

// StorageConfig selects the persistence driver once at startup.
type StorageConfig struct {
	Driver      string
	PostgresURL string
}

// ProvideRepositories builds the recommendation and user repositories for the
// configured driver. The in-memory driver is the default and keeps records
// for the process lifetime only.
func ProvideRepositories() (repositories.RecommendationRepositoryInterface, repositories.UserRepositoryInterface, error) {
	config := getStorageConfig()

	log.Printf("Initializing %s storage", config.Driver)

	switch strings.ToLower(config.Driver) {
	case "memory":
		return repositories.NewInMemoryRecommendationRepository(), repositories.NewInMemoryUserRepository(), nil
	case "postgres":
		db, err := infra.InitPostgresql(config.PostgresURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres storage: %w", err)
		}
		return repositories.NewPostgresRecommendationRepository(db), repositories.NewPostgresUserRepository(db), nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver: %s. Use 'memory' or 'postgres'", config.Driver)
	}
}

func getStorageConfig() StorageConfig {
	return StorageConfig{
		Driver:      getEnvWithDefault("STORAGE_DRIVER", "memory"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
