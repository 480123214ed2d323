package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	FirebaseProject            string
	FirebaseServiceAccountPath string
	FirebaseServiceAccountJSON string

	// StorageDriver selects the repository backend: "firestore" or "memory".
	StorageDriver string

	StripeSecretKey string
	ClientURL       string
	CORSOrigins     []string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	StorageBucket    string
	UploadURLExpiry  time.Duration
	ServiceAccountID string

	RateLimitMessages      int
	RateLimitMessageWindow time.Duration
	RateLimitConversations int
	RateLimitConvWindow    time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	clientURL := strings.TrimRight(getEnv("CLIENT_URL", "http://localhost:3000"), "/")

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		Environment: getEnv("ENVIRONMENT", "production"),

		FirebaseProject:            getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
		FirebaseServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),

		StorageDriver: getEnv("STORAGE_DRIVER", "firestore"),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		ClientURL:       clientURL,
		CORSOrigins:     getEnvAsList("CORS_ORIGINS", []string{clientURL}),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       int(getEnvAsInt64("REDIS_DB", 0)),
		CacheTTL:      time.Duration(getEnvAsInt64("CACHE_TTL_SECONDS", 60)) * time.Second,

		StorageBucket:    getEnv("STORAGE_BUCKET", ""),
		UploadURLExpiry:  time.Duration(getEnvAsInt64("UPLOAD_URL_EXPIRY_MINUTES", 15)) * time.Minute,
		ServiceAccountID: getEnv("STORAGE_SIGNER_EMAIL", ""),

		RateLimitMessages:      int(getEnvAsInt64("RATE_LIMIT_MESSAGES", 10)),
		RateLimitMessageWindow: time.Duration(getEnvAsInt64("RATE_LIMIT_MESSAGES_WINDOW_SECONDS", 60)) * time.Second,
		RateLimitConversations: int(getEnvAsInt64("RATE_LIMIT_CONVERSATIONS", 5)),
		RateLimitConvWindow:    time.Duration(getEnvAsInt64("RATE_LIMIT_CONVERSATIONS_WINDOW_SECONDS", 3600)) * time.Second,
	}

	return config, nil
}

// IsDevelopment enables dev tokens and simulated checkout. It must be set
// explicitly; an unset ENVIRONMENT is production.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
