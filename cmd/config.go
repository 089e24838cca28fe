package cmd

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

// Config holds process-level settings. Values come from the environment,
// optionally seeded from a .env file; command-line flags may override them.
type Config struct {
	// RandSeed seeds the order generator. Defaults to the current time,
	// so runs differ unless a seed is pinned.
	RandSeed int64
	// PoolsFile is an optional YAML file overriding the built-in
	// generator pools. Empty means use the defaults.
	PoolsFile string
}

// LoadConfig reads configuration from the environment.
// A missing .env file is fine; explicit env vars still apply.
func LoadConfig() Config {
	_ = godotenv.Load(".env")

	config := Config{
		RandSeed:  time.Now().UnixNano(),
		PoolsFile: os.Getenv("POOLS_FILE"),
	}

	if v := os.Getenv("RAND_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("RAND_SEED must be an integer, got %q", v)
		}
		config.RandSeed = seed
	}

	return config
}
