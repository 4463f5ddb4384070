package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	JWTSecret string
	JWTTTL    time.Duration

	CORSAllowedOrigins []string

	MediaDir      string
	MediaBaseURL  string
	MediaMaxBytes int64

	TelegramBotToken string
	TelegramChatID   int64

	LogLevel string
	CacheTTL time.Duration
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:5174",
	"http://127.0.0.1:5174",
}

// LoadEnv reads configuration from the process environment. A .env file in the
// working directory is loaded first when present; real env vars win.
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: getenv("GIN_MODE", ""),

		DBHost: getenv("DB_HOST", "127.0.0.1"),
		DBPort: getenv("DB_PORT", "3306"),
		DBUser: getenv("DB_USER", "root"),
		DBPass: getenv("DB_PASS", ""),
		DBName: getenv("DB_NAME", "travellounge"),

		JWTSecret: getenv("JWT_SECRET", "change-me-in-production"),
		JWTTTL:    getDuration("JWT_TTL", 24*time.Hour),

		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "")),

		MediaDir:      getenv("MEDIA_DIR", "./uploads"),
		MediaBaseURL:  strings.TrimRight(getenv("MEDIA_BASE_URL", "/media"), "/"),
		MediaMaxBytes: getInt64("MEDIA_MAX_BYTES", 10<<20),

		TelegramBotToken: getenv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getInt64("TELEGRAM_CHAT_ID", 0),

		LogLevel: getenv("LOG_LEVEL", "info"),
		CacheTTL: getDuration("CACHE_TTL", 5*time.Minute),
	}
	if len(env.CORSAllowedOrigins) == 0 {
		env.CORSAllowedOrigins = append([]string(nil), defaultOrigins...)
	}
	return env
}

// DSN builds the go-sql-driver/mysql connection string.
func (e Env) DSN() string {
	return e.DBUser + ":" + e.DBPass + "@tcp(" + e.DBHost + ":" + e.DBPort + ")/" + e.DBName +
		"?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
