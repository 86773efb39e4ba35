package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	ONDC     ONDCConfig
	Pricing  PricingConfig
	Rides    RidesConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains structured logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// ONDCConfig contains the exchange gateway integration settings.
// CallbackDelay stands in for the asynchronous on_<action> callback window the
// real network delivers over webhooks; the sandbox returns payloads inline.
type ONDCConfig struct {
	GatewayURL    string
	Domain        string
	Country       string
	City          string
	CoreVersion   string
	BapID         string
	BapURI        string
	TTL           string
	CallbackDelay time.Duration
	StepDelay     time.Duration
}

// PricingConfig drives fallback catalog pricing from trip distance
type PricingConfig struct {
	Currency     string
	AutoBaseFare float64
	AutoPerKm    float64
	CarBaseFare  float64
	CarPerKm     float64
	BusFlatFare  float64
}

// RidesConfig contains ride lifecycle configuration. The demo deployment has
// no inbound webhook from the exchange, so status progression is timer-driven.
type RidesConfig struct {
	AutoAdvance   bool
	ArrivingDelay time.Duration // confirmed -> arriving
	PickupDelay   time.Duration // arriving -> ongoing
	DropDelay     time.Duration // ongoing -> completed
	HistoryLimit  int
}
