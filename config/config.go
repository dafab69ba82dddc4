package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// RedisConfig is the bootstrap redis configuration, loaded before the
// full yaml config so the cache layer can come up first.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func LoadConfig() RedisConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on process environment")
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid REDIS_DB value: %v", err)
		}
		redisDB = parsed
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	return RedisConfig{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	}
}
