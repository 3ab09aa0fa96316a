package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDriver string
	DBSource string

	JWTSecret string
	JWTTTL    time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	ttlMinutes := 60
	if v, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "60")); err == nil && v > 0 {
		ttlMinutes = v
	}

	return &Config{
		Port:               getEnv("PORT", "8000"),
		DBDriver:           getEnv("DB_DRIVER", "sqlite"),
		DBSource:           getEnv("DB_SOURCE", "database.db"),
		JWTSecret:          getEnv("JWT_SECRET_KEY", "supersecretjwt"),
		JWTTTL:             time.Duration(ttlMinutes) * time.Minute,
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  os.Getenv("GOOGLE_REDIRECT_URI"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
