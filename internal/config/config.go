package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT, default=4000"`
	GinMode  string `env:"GIN_MODE, default=debug"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET, default=change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=8h"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:5173"`

	// Bootstrap admin credentials, used only when the users table is empty.
	AdminEmail    string `env:"ADMIN_EMAIL, default=admin@tracklite.local"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin123"`

	DB DBConfig
}

type DBConfig struct {
	// Driver selects the backing store: sqlite, mysql or postgres.
	Driver   string `env:"DB_DRIVER, default=sqlite"`
	Path     string `env:"DB_PATH, default=data/task_tracker.db"`
	Host     string `env:"DB_HOST, default=localhost"`
	Port     string `env:"DB_PORT, default=3306"`
	User     string `env:"DB_USER, default=taskuser"`
	Password string `env:"DB_PASSWORD, default=taskpassword"`
	Name     string `env:"DB_NAME, default=task_tracker"`
}

// Load reads an optional .env file and then resolves the configuration
// from the environment.
func Load(ctx context.Context) (*Config, error) {
	// Missing .env is fine; the environment still wins.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
