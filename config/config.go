package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds environment driven configuration values.
type AppConfig struct {
	AppPort  string
	SiteName string

	// Backend API the client renders state for. All persistence, auth and
	// authorization live behind it.
	BackendURL string
	// Name of the opaque session credential cookie. Only its presence is
	// inspected client side; validity is the backend's concern.
	SessionCookieName string

	AllowedOrigins     []string
	RateLimitPerMinute int

	// Gin framework configuration
	GinMode string
	GinPath string

	// Redis for the per-session user profile store
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load reads configuration from the environment, with .env support. It
// should be called once during boot.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	// Best effort; a missing .env file is fine.
	_ = godotenv.Load()

	cfg = AppConfig{
		AppPort:            getEnv("APP_PORT", "3000"),
		SiteName:           getEnv("SITE_NAME", "DevSpark Blog"),
		BackendURL:         getEnv("BACKEND_URL", "http://localhost:8080"),
		SessionCookieName:  getEnv("SESSION_COOKIE_NAME", "token"),
		AllowedOrigins:     splitCSV(getEnv("ALLOWED_ORIGINS", "*")),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		GinMode:            getEnv("GIN_MODE", "release"),
		GinPath:            getEnv("GIN_LOG_PATH", "logs/gin.log"),
		RedisHost:          getEnv("REDIS_HOST", "localhost"),
		RedisPort:          getEnvInt("REDIS_PORT", 6379),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogPath:            getEnv("LOG_PATH", "logs/app.log"),
		LogMaxSizeMB:       getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups:      getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays:      getEnvInt("LOG_MAX_AGE_DAYS", 7),
		LogCompress:        getEnvBool("LOG_COMPRESS", false),
	}

	if cfg.BackendURL == "" {
		log.Fatal("BACKEND_URL must be set")
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
