package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	LogMode  string // dev|prod

	DBDriver string
	DBDSN    string

	CORSOrigins []string

	// Outbound chat-completion provider.
	ChatAPIKey  string
	ChatBaseURL string
	ChatModel   string
}

// FromEnv reads configuration from the process environment, loading a local
// .env file first when one exists.
func FromEnv() Config {
	_ = godotenv.Load()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:    addr,
		LogMode:     envOr("LOG_MODE", "dev"),
		DBDriver:    envOr("DB_DRIVER", "sqlite"),
		DBDSN:       envOr("DB_DSN", ""),
		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		ChatAPIKey:  os.Getenv("CHAT_API_KEY"),
		ChatBaseURL: envOr("CHAT_BASE_URL", "https://api.openai.com"),
		ChatModel:   envOr("CHAT_MODEL", "gpt-4o-mini"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
