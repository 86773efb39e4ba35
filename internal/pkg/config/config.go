package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lokalapp/lokal/internal/pkg/models"
)

// InitConfig loads configuration from the env file (local only) and the
// process environment.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "lokal")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// ONDC exchange config
	configs.ONDC.GatewayURL = GetEnv("ONDC_GATEWAY_URL", "")
	configs.ONDC.Domain = GetEnv("ONDC_DOMAIN", "ONDC:TRV10")
	configs.ONDC.Country = GetEnv("ONDC_COUNTRY", "IND")
	configs.ONDC.City = GetEnv("ONDC_CITY", "std:080")
	configs.ONDC.CoreVersion = GetEnv("ONDC_CORE_VERSION", "1.2.0")
	configs.ONDC.BapID = GetEnv("ONDC_BAP_ID", "lokal.app")
	configs.ONDC.BapURI = GetEnv("ONDC_BAP_URI", "https://api.lokal.app/ondc")
	configs.ONDC.TTL = GetEnv("ONDC_TTL", "PT30S")
	configs.ONDC.CallbackDelay = GetEnvAsDuration("ONDC_CALLBACK_DELAY", 2*time.Second)
	configs.ONDC.StepDelay = GetEnvAsDuration("ONDC_STEP_DELAY", 1*time.Second)

	// Pricing config
	configs.Pricing.Currency = GetEnv("PRICING_CURRENCY", "INR")
	configs.Pricing.AutoBaseFare = GetEnvAsFloat("PRICING_AUTO_BASE_FARE", 30)
	configs.Pricing.AutoPerKm = GetEnvAsFloat("PRICING_AUTO_PER_KM", 15)
	configs.Pricing.CarBaseFare = GetEnvAsFloat("PRICING_CAR_BASE_FARE", 60)
	configs.Pricing.CarPerKm = GetEnvAsFloat("PRICING_CAR_PER_KM", 22)
	configs.Pricing.BusFlatFare = GetEnvAsFloat("PRICING_BUS_FLAT_FARE", 25)

	// Rides lifecycle config
	configs.Rides.AutoAdvance = GetEnvAsBool("RIDES_AUTO_ADVANCE", true)
	configs.Rides.ArrivingDelay = GetEnvAsDuration("RIDES_ARRIVING_DELAY", 10*time.Second)
	configs.Rides.PickupDelay = GetEnvAsDuration("RIDES_PICKUP_DELAY", 30*time.Second)
	configs.Rides.DropDelay = GetEnvAsDuration("RIDES_DROP_DELAY", 60*time.Second)
	configs.Rides.HistoryLimit = GetEnvAsInt("RIDES_HISTORY_LIMIT", 50)

	return configs
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
