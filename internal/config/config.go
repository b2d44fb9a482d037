package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	DBDriver   string
	DBPath     string
	DBDSN      string
}

func Default() Config {
	return Config{
		ListenAddr: ":8000",
		DBDriver:   "sqlite3",
		DBPath:     "./database/proposal_system.db",
	}
}

// Load resolves configuration once at process start: a .env file if present,
// then environment overrides on top of the defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if listen := os.Getenv("LISTEN_ADDR"); listen != "" {
		cfg.ListenAddr = listen
	}

	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		cfg.DBDriver = driver
	}

	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}

	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DBDSN = dsn
	}

	return &cfg, nil
}
