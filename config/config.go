package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	AI     AIConfig
	CORS   CORSConfig
	Observ ObservabilityConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig is optional: an empty Addr means chat session memory stays
// in-process.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig is optional: an empty broker list disables event publishing
// and order notifications are logged only.
type KafkaConfig struct {
	Brokers    []string
	TopicOrder string
}

type AIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	// HistoryLimit bounds the number of prior turns replayed per session.
	HistoryLimit int
}

type CORSConfig struct {
	Origins []string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	historyLimit, _ := strconv.Atoi(getEnv("AI_HISTORY_LIMIT", "20"))

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
			Database: getEnv("DB_NAME", "storefront"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Brokers:    brokers,
			TopicOrder: getEnv("KAFKA_TOPIC_ORDER_EVENTS", "order-events"),
		},
		AI: AIConfig{
			BaseURL:      getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:       getEnv("AI_API_KEY", ""),
			Model:        getEnv("AI_MODEL", "gpt-4o-mini"),
			HistoryLimit: historyLimit,
		},
		CORS: CORSConfig{
			Origins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s, db=%s", cfg.Server.Env, cfg.Server.Port, cfg.Mongo.Database)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
