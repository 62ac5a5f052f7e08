package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs session tokens. TokenTTL of 0 issues tokens with
	// no expiry, the behaviour existing callers depend on.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=0"`

	// OTPMaxTries of 0 disables confirmation attempt limiting.
	OTPDigits    int           `env:"OTP_DIGITS,     default=4"`
	OTPMaxTries  int           `env:"OTP_MAX_TRIES,  default=0"`
	OTPTryWindow time.Duration `env:"OTP_TRY_WINDOW, default=1h"`

	Mail  MailConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type MailConfig struct {
	From string `env:"EMAIL_FROM, default=no-reply@userhub.io"`
	// APIKey selects the MailerSend transport; when empty, mail is
	// logged instead of delivered.
	APIKey string `env:"MAILERSEND_API_KEY"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=account_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
