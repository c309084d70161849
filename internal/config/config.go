// internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Database struct {
		URL        string `json:"url"`
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
		LogLevel   string `json:"log_level"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port           string        `json:"port"`
		ReadTimeout    time.Duration `json:"read_timeout"`
		WriteTimeout   time.Duration `json:"write_timeout"`
		RequestTimeout time.Duration `json:"request_timeout"`
		AllowedOrigins []string      `json:"allowed_origins"`
	}
	Redis struct {
		Enabled  bool   `json:"enabled"`
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		DB       int    `json:"db"`
	} `json:"redis"`
	Session struct {
		TTL         time.Duration `json:"ttl"`
		CleanupFreq time.Duration `json:"cleanup_freq"`
	} `json:"session"`
	Entitlement struct {
		TrialLength time.Duration `json:"trial_length"`
	} `json:"entitlement"`
	Schedule struct {
		StartHour    int `json:"start_hour"`
		VisibleHours int `json:"visible_hours"`
		RowHeight    int `json:"row_height"`
		MinHeight    int `json:"min_height"`
	} `json:"schedule"`
	Email struct {
		Provider string `json:"provider"`
		From     string `json:"from"`
	} `json:"email"`
	Sendgrid struct {
		APIKey  string `json:"api_key"`
		From    string `json:"from"`
		Sandbox bool   `json:"sandbox"`
	} `json:"sendgrid"`
	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
	BaseURL string `json:"base_url"`
}

func Load() *Config {
	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "sitebook")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")
	cfg.Database.URL = getEnv("DATABASE_URL", "")
	cfg.Database.LogLevel = getEnv("DB_LOG_LEVEL", "warn")

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = getDuration("JWT_EXPIRY", time.Hour*24)

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15
	cfg.Server.RequestTimeout = getDuration("REQUEST_TIMEOUT", time.Second*15)
	cfg.Server.AllowedOrigins = []string{getEnv("CORS_ORIGIN", "http://localhost:5173")}

	// Session cache; redis is used when REDIS_HOST is set
	cfg.Redis.Host = getEnv("REDIS_HOST", "")
	cfg.Redis.Enabled = cfg.Redis.Host != ""
	cfg.Redis.Port = getEnv("REDIS_PORT", "6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)
	cfg.Session.TTL = getDuration("SESSION_TTL", time.Minute*5)
	cfg.Session.CleanupFreq = time.Minute

	cfg.Entitlement.TrialLength = getDuration("TRIAL_LENGTH", time.Hour*24*14)

	// Calendar grid
	cfg.Schedule.StartHour = getInt("SCHEDULE_START_HOUR", 5)
	cfg.Schedule.VisibleHours = getInt("SCHEDULE_VISIBLE_HOURS", 18)
	cfg.Schedule.RowHeight = getInt("SCHEDULE_ROW_HEIGHT", 64)
	cfg.Schedule.MinHeight = getInt("SCHEDULE_MIN_HEIGHT", 20)

	// Email: "sendgrid", "smtp" or "log"
	cfg.Email.Provider = getEnv("EMAIL_PROVIDER", "log")
	cfg.Email.From = getEnv("EMAIL_FROM", "noreply@sitebook.local")

	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", cfg.Email.From)
	cfg.Sendgrid.Sandbox = getEnv("SENDGRID_SANDBOX", "false") == "true"

	cfg.SMTP.Host = getEnv("SMTP_HOST", "localhost")
	cfg.SMTP.Port = getInt("SMTP_PORT", 1025)
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.From = getEnv("SMTP_FROM", cfg.Email.From)

	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:5173")

	return cfg
}

// DSN returns DATABASE_URL when set, otherwise a keyword/value connection
// string built from the DB_* variables. Both gorm and pgx accept either form.
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", raw)
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", raw)
		return defaultValue
	}
	return v
}
