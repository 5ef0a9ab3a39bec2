package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                    string
	FirebaseProjectID       string
	FirebaseCredentialsFile string
	FirebaseAPIKey          string
	StorageBucket           string
	RedisURL                string
	InstitutionDomain       string
	MaxUploadBytes          int64
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	maxUpload := int64(10 << 20) // advisory request ceiling for the upload endpoint
	if raw := os.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			maxUpload = parsed
		}
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS", ""),
		FirebaseAPIKey:          getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:           getEnv("STORAGE_BUCKET", ""),
		RedisURL:                getEnv("REDIS_URL", "redis://localhost:6379/0"),
		InstitutionDomain:       getEnv("INSTITUTION_DOMAIN", "bubt.edu"),
		MaxUploadBytes:          maxUpload,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
