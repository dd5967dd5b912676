package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting list values
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort        string        // Application port
	DBDriver       string        // mysql, postgres or sqlite
	DBUser         string        // Database user
	DBPassword     string        // Database password
	DBHost         string        // Database host
	DBPort         string        // Database port
	DBName         string        // Database name (file path for sqlite)
	DBMaxOpenConns int           // Pool size, 0 means unlimited
	DBMaxIdleConns int           // Idle connections kept in the pool
	DBPingTimeout  time.Duration // Timeout for the db-health ping
	AutoMigrate    bool          // Create missing tables when the server boots
	RedisAddr      string        // Redis server address, empty disables the cache
	RedisPass      string        // Redis password
	RedisDB        int           // Redis database number
	CacheTTL       time.Duration // Lifetime of cached list responses
	CORSOrigins    []string      // Allowed cross-origin callers
	LogLevel       string        // logrus level name
	IsProd         bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:        getEnv("APP_PORT", "8000"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBHost:         getEnv("DB_HOST", "127.0.0.1"),
		DBPort:         os.Getenv("DB_PORT"),
		DBName:         os.Getenv("DB_NAME"),
		DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 0),
		DBMaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 2),
		DBPingTimeout:  getDuration("DB_PING_TIMEOUT", 2*time.Second),
		AutoMigrate:    os.Getenv("DB_AUTO_MIGRATE") == "true",
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPass:      os.Getenv("REDIS_PASS"),
		RedisDB:        getInt("REDIS_DB", 0),
		CacheTTL:       getDuration("CACHE_TTL", 60*time.Second),
		CORSOrigins:    getList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		IsProd:         os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// getEnv returns the variable or def when it is unset or empty
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// getDuration accepts Go duration strings ("2s") or plain seconds ("2")
func getDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

func getList(key string, def []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
