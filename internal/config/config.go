package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBPath     string
	JWTSecret  string
	NumWorkers int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	env := Config{
		Port:       "9446",
		DBPath:     "fintrack.db",
		JWTSecret:  "dev-secret",
		NumWorkers: 4,
	}

	envPort := os.Getenv("FINTRACK_PORT")
	envDBPath := os.Getenv("FINTRACK_DB")
	envJWTSecret := os.Getenv("FINTRACK_JWT_SECRET")
	envNumWorkers := os.Getenv("FINTRACK_WORKERS")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envDBPath) != 0 {
		env.DBPath = envDBPath
	}

	if len(envJWTSecret) != 0 {
		env.JWTSecret = envJWTSecret
	}

	if len(envNumWorkers) != 0 {
		workers, err := strconv.Atoi(envNumWorkers)
		if err != nil {
			return nil, err
		}
		env.NumWorkers = workers
	}

	return &env, nil
}
