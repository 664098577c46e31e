package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int
	Storage    StorageConfig
	Admin      AdminConfig

	// SessionSecret signs operator session tokens. When empty the server
	// generates a random per-process secret, invalidating operator sessions
	// across restarts.
	SessionSecret string
}

// StorageConfig describes the backend fallback chain: a hosted Postgres via
// DatabaseURL, an embedded SQLite database at SQLitePath, and a flat JSON
// file store under DataDir.
type StorageConfig struct {
	DatabaseURL string
	SQLitePath  string
	DataDir     string
}

// AdminConfig is the static operator credential set.
type AdminConfig struct {
	AdminUser        string
	PrimaryPin       string
	SecurityPin      string
	SecurityQuestion string
	SecurityAnswer   string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	storage := StorageConfig{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "data/acuestore.db"),
		DataDir:     getEnv("DATA_DIR", "data"),
	}

	admin := AdminConfig{
		AdminUser:        getEnv("ADMIN_USER", "admin"),
		PrimaryPin:       getEnv("ADMIN_PRIMARY_PIN", "291210"),
		SecurityPin:      getEnv("ADMIN_SECURITY_PIN", "505"),
		SecurityQuestion: getEnv("ADMIN_SECURITY_QUESTION", "First pet's name?"),
		SecurityAnswer:   getEnv("ADMIN_SECURITY_ANSWER", "changeme"),
	}

	return Config{
		ServerPort:    getEnvInt("SERVER_PORT", 8080),
		Storage:       storage,
		Admin:         admin,
		SessionSecret: getEnv("SESSION_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}
