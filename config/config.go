package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Config holds everything read from the environment at startup
type Config struct {
	Port        string
	Prod        bool
	UseHTTPS    bool
	TLSCertFile string
	TLSKeyFile  string
	LogLevel    log.Level
	SessionKey  string
	CorsOrigins []string

	CommandQueueSize int
	SweepInterval    time.Duration

	RedisURL string
	Postgres PostgresConfig
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Migrate  bool
	Verbose  bool
}

// Enabled reports whether match history should be stored at all
func (p PostgresConfig) Enabled() bool {
	return p.Host != ""
}

// Load reads the environment. Call godotenv.Load before it to pick up a .env file.
func Load() Config {
	cfg := Config{
		Port:        getenv("PORT", "8090"),
		Prod:        getbool("PROD", false),
		UseHTTPS:    getbool("USE_HTTPS", false),
		TLSCertFile: os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:  os.Getenv("TLS_KEY_FILE"),
		LogLevel:    getlevel("LOG_LEVEL", log.InfoLevel),
		SessionKey:  getenv("SESSION_KEY", "gobang-session-secret"),
		CorsOrigins: getlist("CORS_ORIGINS", []string{"*"}),

		CommandQueueSize: getint("COMMAND_QUEUE_SIZE", 1024),
		SweepInterval:    getduration("SETTLEMENT_SWEEP_INTERVAL", time.Second),

		RedisURL: os.Getenv("REDIS_URL"),
		Postgres: PostgresConfig{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     getenv("POSTGRES_PORT", "5432"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Database: os.Getenv("POSTGRES_DATABASE"),
			Migrate:  getbool("MIGRATE_POSTGRES", false),
			Verbose:  getbool("VERBOSE_POSTGRES", false),
		},
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warnf("[CONFIG] Invalid boolean %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return b
}

func getint(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warnf("[CONFIG] Invalid positive integer %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warnf("[CONFIG] Invalid duration %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getlevel(key string, fallback log.Level) log.Level {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	level, err := log.ParseLevel(v)
	if err != nil {
		log.Warnf("[CONFIG] Invalid log level %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return level
}

// Comma separated, blanks dropped
func getlist(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
