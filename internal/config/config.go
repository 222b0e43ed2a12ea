package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	SQLitePath  string
	PostgresURL string // si está definido, se usa PostgreSQL en vez de SQLite
	RedisAddr   string

	UseKafka     bool
	KafkaBrokers []string
	KafkaTopic   string

	CacheTTLSecs int // TTL fijo de los listados cacheados
	OutboxPeriod time.Duration
	OutboxLimit  int

	HTTPPort    string
	CORSOrigins []string
}

func LoadConfig() *Config {
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	corsOrigins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",")

	return &Config{
		SQLitePath:   getEnv("SQLITE_PATH", "./mirtech.db"),
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		UseKafka:     os.Getenv("KAFKA_BROKERS") != "",
		KafkaBrokers: kafkaBrokers,
		KafkaTopic:   getEnv("KAFKA_TOPIC", "mirtech-events"),
		CacheTTLSecs: 60,
		OutboxPeriod: 1 * time.Second,
		OutboxLimit:  10,
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		CORSOrigins:  corsOrigins,
	}
}
