package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	SessionTTL  time.Duration
	CORSOrigins []string
	ContactRPS  int
	FeedBase    string
	FeedKey     string
	FeedRPS     int
	SeedWorkers int
}

// Load reads the process environment. A .env file in the working directory,
// when present, fills variables that are not already set.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    os.Getenv("MYSQL_DSN"),  // empty: built-in content
		RedisAddr:   os.Getenv("REDIS_ADDR"), // empty: in-process sessions
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		SessionTTL:  time.Duration(atoi("SESSION_TTL_SECONDS", 1800)) * time.Second,
		CORSOrigins: list(env("CORS_ORIGINS", "*")),
		ContactRPS:  atoi("CONTACT_RPS", 1),
		FeedBase:    env("FEED_BASE_URL", ""),
		FeedKey:     env("FEED_API_KEY", ""),
		FeedRPS:     atoi("FEED_RPS", 5),
		SeedWorkers: atoi("SEED_WORKERS", 4),
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 30 * time.Minute
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func list(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
