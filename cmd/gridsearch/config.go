package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys that provide flag defaults.
const (
	envAlgo     = "GRIDSEARCH_ALGO"
	envSeed     = "GRIDSEARCH_SEED"
	envEpisodes = "GRIDSEARCH_EPISODES"
)

// defaults holds flag defaults resolved from the environment.
type defaults struct {
	Algo     string // strategy name or "all"
	Seed     int64  // 0 selects the fixed default seed
	Episodes int    // 0 keeps the trainer's default
}

// loadDefaults reads .env (if present) and then the process environment.
// Malformed numbers are logged and ignored.
func loadDefaults(logger *slog.Logger) defaults {
	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not loaded", slog.Any("error", err))
	}
	return defaults{
		Algo:     getEnvWithDefault(envAlgo, "all"),
		Seed:     int64(getEnvAsInt(logger, envSeed, 0)),
		Episodes: getEnvAsInt(logger, envEpisodes, 0),
	}
}

func getEnvWithDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(logger *slog.Logger, key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Warn("ignoring malformed environment value",
			slog.String("key", key), slog.String("value", v))
		return fallback
	}
	return n
}
