package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	StorageBucket   string

	AdminAccessCode   string
	SessionTTLMinutes int64

	UploadSecret   string
	MaxUploadBytes int64

	GithubUsername           string
	GithubToken              string
	GithubExclusions         []string
	GithubMinSizeKB          int64
	GithubMinStars           int64
	GithubMaxAgeDays         int64
	GithubRequireDescription bool
	GithubRequireTopics      bool
	GithubExcludeArchived    bool

	SMTPHost         string
	SMTPPort         string
	SMTPUser         string
	SMTPPassword     string
	ContactRecipient string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),

		AdminAccessCode:   getEnv("ADMIN_ACCESS_CODE", ""),
		SessionTTLMinutes: getEnvAsInt64("SESSION_TTL_MINUTES", 30),

		UploadSecret:   getEnv("UPLOAD_SECRET", ""),
		MaxUploadBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", 5<<20), // 5 MB

		GithubUsername:           getEnv("GITHUB_USERNAME", ""),
		GithubToken:              getEnv("GITHUB_TOKEN", ""),
		GithubExclusions:         getEnvAsList("GITHUB_EXCLUDE", "test,demo,playground"),
		GithubMinSizeKB:          getEnvAsInt64("GITHUB_MIN_SIZE_KB", 50),
		GithubMinStars:           getEnvAsInt64("GITHUB_MIN_STARS", 0),
		GithubMaxAgeDays:         getEnvAsInt64("GITHUB_MAX_AGE_DAYS", 0),
		GithubRequireDescription: getEnvAsBool("GITHUB_REQUIRE_DESCRIPTION", true),
		GithubRequireTopics:      getEnvAsBool("GITHUB_REQUIRE_TOPICS", false),
		GithubExcludeArchived:    getEnvAsBool("GITHUB_EXCLUDE_ARCHIVED", true),

		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUser:         getEnv("SMTP_USER", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		ContactRecipient: getEnv("CONTACT_RECIPIENT", ""),
	}

	return config, nil
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
