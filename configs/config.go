package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// StateDir/StateName key the client-side persisted projection.
	StateDir  string
	StateName string

	// SimulateInterval is the delay between automatic order lifecycle
	// steps. Zero disables the simulator.
	SimulateInterval time.Duration
}

func LoadConfig() *Config {
	// .env is optional; env vars alone are fine.
	_ = godotenv.Load()

	return &Config{
		DBSource:         getEnv("DB_SOURCE", "foodfront.db"),
		Port:             getEnv("PORT", "8000"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           getEnvDuration("JWT_TTL", 24*time.Hour),
		StateDir:         getEnv("STATE_DIR", ".foodfront"),
		StateName:        getEnv("STATE_NAME", "food-app-store"),
		SimulateInterval: getEnvDuration("SIMULATE_INTERVAL", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
