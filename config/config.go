package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	Env          string
	DBPath       string
	CORSOrigins  string
	UserEmail    string
	UserName     string
	SeedDemoData bool
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:         GetEnv("PORT", "3000"),
		Env:          GetEnv("ENV", "development"),
		DBPath:       GetEnv("DB_PATH", "./data/appsus.db"),
		CORSOrigins:  GetEnv("CORS_ORIGINS", "*"),
		UserEmail:    GetEnv("MAIL_USER_EMAIL", "user@appsus.com"),
		UserName:     GetEnv("MAIL_USER_NAME", "Appsus User"),
		SeedDemoData: GetEnvBool("SEED_DEMO_DATA", true),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvBool parses a boolean variable, falling back to defaultValue when unset or malformed.
func GetEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
