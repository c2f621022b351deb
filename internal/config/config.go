package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Events   EventsConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	BodyLimit          int
}

type DatabaseConfig struct {
	Driver      string // "postgres" or "sqlite"
	Connection  string
	AutoMigrate bool
}

type CacheConfig struct {
	Driver   string // "none" (default), "memory" (single replica only) or "redis"
	TTL      time.Duration
	RedisURL string
}

type EventsConfig struct {
	Topic       string
	NatsEnabled bool
	NatsURL     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	driver := getEnv("DB_DRIVER", "postgres")
	defaultConnection := ""
	if driver == "sqlite" {
		defaultConnection = "notes.db"
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			BodyLimit:          getEnvAsInt("BODY_LIMIT_BYTES", 1024*1024),
		},
		Database: DatabaseConfig{
			Driver:      driver,
			Connection:  getEnv("DB_CONNECTION_STRING", defaultConnection),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Cache: CacheConfig{
			Driver:   getEnv("CACHE_DRIVER", "none"),
			TTL:      time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 30)) * time.Second,
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Events: EventsConfig{
			Topic:       getEnv("NOTE_EVENTS_TOPIC", "NOTE_EVENTS"),
			NatsEnabled: getEnvAsBool("NATS_ENABLED", false),
			NatsURL:     getEnv("NATS_URL", "nats://localhost:4222"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
