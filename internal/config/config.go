package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DBMaxConns  int    `env:"DB_MAX_CONNS" envDefault:"0"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Scorer Config
	ScorerURL             string        `env:"SCORER_URL" envDefault:"http://localhost:8000"`
	ScorerTimeout         time.Duration `env:"SCORER_TIMEOUT" envDefault:"3m"`
	PredictionWindowHours int           `env:"PREDICTION_WINDOW_HOURS" envDefault:"720"`
	MinHistoryHours       int           `env:"MIN_HISTORY_HOURS" envDefault:"168"`

	// Resource feeds Config
	BedCensusURL        string        `env:"BED_CENSUS_URL"`
	OxygenSensorURL     string        `env:"OXYGEN_SENSOR_URL"`
	TransportTrackerURL string        `env:"TRANSPORT_TRACKER_URL"`
	FeedTimeout         time.Duration `env:"FEED_TIMEOUT" envDefault:"800ms"`
	FacilityFanoutLimit int           `env:"FACILITY_FANOUT_LIMIT" envDefault:"8"`
	MinSafeOxygenPSI    float64       `env:"MIN_SAFE_OXYGEN_PSI" envDefault:"400"`

	// Alert / dispatch policy
	AlertSuppressionEnabled bool          `env:"ALERT_SUPPRESSION_ENABLED" envDefault:"true"`
	BedReservationEnabled   bool          `env:"BED_RESERVATION_ENABLED" envDefault:"true"`
	BedReservationTTL       time.Duration `env:"BED_RESERVATION_TTL" envDefault:"30m"`
	AutoDispatchPreview     bool          `env:"AUTO_DISPATCH_PREVIEW" envDefault:"true"`
	EscalationAccessTTL     time.Duration `env:"ESCALATION_ACCESS_TTL" envDefault:"24h"`

	// Notification webhook Config
	NotifyWebhookURL     string        `env:"NOTIFY_WEBHOOK_URL"`
	NotifyWebhookSecret  string        `env:"NOTIFY_WEBHOOK_SECRET"`
	NotifyWebhookTimeout time.Duration `env:"NOTIFY_WEBHOOK_TIMEOUT" envDefault:"5s"`
	NotifyMaxRetries     int           `env:"NOTIFY_MAX_RETRIES" envDefault:"3"`
	NotifyBaseDelay      time.Duration `env:"NOTIFY_BASE_DELAY" envDefault:"1s"`

	// MQTT Config
	MQTTBroker     string `env:"MQTT_BROKER"`
	MQTTClientID   string `env:"MQTT_CLIENT_ID" envDefault:"alertcare-dispatch"`
	MQTTUsername   string `env:"MQTT_USERNAME"`
	MQTTPassword   string `env:"MQTT_PASSWORD"`
	MQTTAlertTopic string `env:"MQTT_ALERT_TOPIC" envDefault:"alertcare/alerts"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DBMaxConns:  getEnvAsInt("DB_MAX_CONNS", 0),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),

		ScorerURL:             getEnv("SCORER_URL", "http://localhost:8000"),
		ScorerTimeout:         getEnvAsDuration("SCORER_TIMEOUT", 3*time.Minute),
		PredictionWindowHours: getEnvAsInt("PREDICTION_WINDOW_HOURS", 720),
		MinHistoryHours:       getEnvAsInt("MIN_HISTORY_HOURS", 168),

		BedCensusURL:        os.Getenv("BED_CENSUS_URL"),
		OxygenSensorURL:     os.Getenv("OXYGEN_SENSOR_URL"),
		TransportTrackerURL: os.Getenv("TRANSPORT_TRACKER_URL"),
		FeedTimeout:         getEnvAsDuration("FEED_TIMEOUT", 800*time.Millisecond),
		FacilityFanoutLimit: getEnvAsInt("FACILITY_FANOUT_LIMIT", 8),
		MinSafeOxygenPSI:    getEnvAsFloat("MIN_SAFE_OXYGEN_PSI", 400),

		AlertSuppressionEnabled: getEnvAsBool("ALERT_SUPPRESSION_ENABLED", true),
		BedReservationEnabled:   getEnvAsBool("BED_RESERVATION_ENABLED", true),
		BedReservationTTL:       getEnvAsDuration("BED_RESERVATION_TTL", 30*time.Minute),
		AutoDispatchPreview:     getEnvAsBool("AUTO_DISPATCH_PREVIEW", true),
		EscalationAccessTTL:     getEnvAsDuration("ESCALATION_ACCESS_TTL", 24*time.Hour),

		NotifyWebhookURL:     os.Getenv("NOTIFY_WEBHOOK_URL"),
		NotifyWebhookSecret:  os.Getenv("NOTIFY_WEBHOOK_SECRET"),
		NotifyWebhookTimeout: getEnvAsDuration("NOTIFY_WEBHOOK_TIMEOUT", 5*time.Second),
		NotifyMaxRetries:     getEnvAsInt("NOTIFY_MAX_RETRIES", 3),
		NotifyBaseDelay:      getEnvAsDuration("NOTIFY_BASE_DELAY", time.Second),

		MQTTBroker:     os.Getenv("MQTT_BROKER"),
		MQTTClientID:   getEnv("MQTT_CLIENT_ID", "alertcare-dispatch"),
		MQTTUsername:   os.Getenv("MQTT_USERNAME"),
		MQTTPassword:   os.Getenv("MQTT_PASSWORD"),
		MQTTAlertTopic: getEnv("MQTT_ALERT_TOPIC", "alertcare/alerts"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.MinHistoryHours > cfg.PredictionWindowHours {
		return nil, fmt.Errorf("MIN_HISTORY_HOURS (%d) must not exceed PREDICTION_WINDOW_HOURS (%d)", cfg.MinHistoryHours, cfg.PredictionWindowHours)
	}
	if cfg.FacilityFanoutLimit < 1 {
		cfg.FacilityFanoutLimit = 1
	}

	return cfg, nil
}

// PredictionWindow возвращает длину скользящего окна
func (c *Config) PredictionWindow() time.Duration {
	return time.Duration(c.PredictionWindowHours) * time.Hour
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
