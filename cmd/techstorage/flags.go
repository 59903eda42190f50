package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Address          string        `env:"RUN_ADDRESS" envDefault:"localhost:8080"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"INFO"`
	DataDir          string        `env:"DATA_DIR" envDefault:"./data"`
	DatabaseURI      string        `env:"DATABASE_URI"`
	RedisAddr        string        `env:"REDIS_ADDR"`
	RedisPassword    string        `env:"REDIS_PASSWORD"`
	RedisPrefix      string        `env:"REDIS_PREFIX" envDefault:"techstorage:"`
	KafkaBrokers     string        `env:"KAFKA_BROKERS"`
	OrderEventsTopic string        `env:"ORDER_EVENTS_TOPIC" envDefault:"order-events"`
	EventWorkers     int           `env:"EVENT_WORKERS" envDefault:"2"`
	EventQueueSize   int           `env:"EVENT_QUEUE_SIZE" envDefault:"100"`
	JWTSecret        string        `env:"JWT_SECRET" envDefault:"dontexposethis"`
	JWTTTL           time.Duration `env:"JWT_TTL" envDefault:"24h"`
	AdminEmail       string        `env:"ADMIN_EMAIL" envDefault:"admin@techstorage.com"`
	PaymentDelay     time.Duration `env:"PAYMENT_DELAY" envDefault:"2s"`
	DeliveryWindow   time.Duration `env:"ESTIMATED_DELIVERY" envDefault:"120h"`
	StrictStatus     bool          `env:"ORDER_STRICT_TRANSITIONS" envDefault:"false"`
	SeedCatalog      bool          `env:"SEED_CATALOG" envDefault:"true"`
}

func NewConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("ENV JWT_SECRET must be set")
	}

	address := flag.String("a", cfg.Address, "{Host:port} for server")
	loglevel := flag.String("l", cfg.LogLevel, "Log level for server")
	dataDir := flag.String("f", cfg.DataDir, "Directory for file storage")
	databaseURI := flag.String("d", cfg.DatabaseURI, "Database connection string")
	redisAddr := flag.String("r", cfg.RedisAddr, "Redis address")
	kafkaBrokers := flag.String("k", cfg.KafkaBrokers, "Comma separated Kafka brokers")
	jwtTTL := flag.Duration("t", cfg.JWTTTL, "TTL for JWT token(e.g. 24h; 30m )")
	paymentDelay := flag.Duration("p", cfg.PaymentDelay, "Simulated payment delay")
	strict := flag.Bool("s", cfg.StrictStatus, "Reject order status changes outside the workflow")

	flag.Parse()

	cfg.Address = *address
	cfg.LogLevel = *loglevel
	cfg.DataDir = *dataDir
	cfg.DatabaseURI = *databaseURI
	cfg.RedisAddr = *redisAddr
	cfg.KafkaBrokers = *kafkaBrokers
	cfg.JWTTTL = *jwtTTL
	cfg.PaymentDelay = *paymentDelay
	cfg.StrictStatus = *strict

	return cfg, nil
}
