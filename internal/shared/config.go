package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	DataPath     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	Locations    []string
	ScoreWorkers int
	RateLimitRPS int
	CacheTTL     time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":"+env("PORT", "8000")),
		MetricsAddr:  env("METRICS_ADDR", ""),
		DataPath:     env("DATA_PATH", "data/reviews.csv"),
		RedisAddr:    env("REDIS_ADDR", ""),
		RedisPass:    env("REDIS_PASSWORD", ""),
		Locations:    locations(),
		ScoreWorkers: atoi("SCORE_WORKERS", 8),
		RateLimitRPS: atoi("RATE_LIMIT_RPS", 0),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR is empty; sentiment scores are recomputed on every read")
	}
	return c
}

// locations reads VALID_LOCATIONS. The separator is ';' because location
// names themselves contain commas ("Denver, Colorado").
func locations() []string {
	v := os.Getenv("VALID_LOCATIONS")
	if v == "" {
		return DefaultLocations
	}
	var out []string
	for _, p := range strings.Split(v, ";") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return DefaultLocations
	}
	return out
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
