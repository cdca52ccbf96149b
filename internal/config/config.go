package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath       string
	ListenAddr   string
	CorpusTarget int
	ClusterCount int
	RandomSeed   int64
}

// Load reads configuration from the environment, with a .env file
// picked up in development. Every field has a working default so the
// service starts on a clean machine with an empty environment.
func Load() (*Config, error) {
	// load .env in dev
	_ = godotenv.Load(".env.local")

	cfg := &Config{
		DBPath:       getEnv("ZRP_DB_PATH", "ZRP_CrimeData.db"),
		ListenAddr:   getEnv("ZRP_LISTEN_ADDR", ":8080"),
		CorpusTarget: 500,
		ClusterCount: 4,
		RandomSeed:   42,
	}

	if v := os.Getenv("ZRP_CORPUS_TARGET"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ZRP_CORPUS_TARGET %q: %w", v, err)
		}
		cfg.CorpusTarget = n
	}
	if v := os.Getenv("ZRP_CLUSTER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ZRP_CLUSTER_COUNT %q: %w", v, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("ZRP_CLUSTER_COUNT must be at least 1, got %d", n)
		}
		cfg.ClusterCount = n
	}
	if v := os.Getenv("ZRP_RANDOM_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ZRP_RANDOM_SEED %q: %w", v, err)
		}
		cfg.RandomSeed = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
