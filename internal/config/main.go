//nolint:mnd //no magic number
package config

import (
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/config"
	"github.com/xhit/go-str2duration/v2"
)

type Config struct {
	Env              string
	Port             int
	Throttle         bool
	WebURL           string
	SentryDsn        string
	SampleRate       float64
	AccessExpiry     time.Duration
	RefreshExpiry    time.Duration
	DBDsn            string
	Release          string
	SupabaseUserID   string
	SupabaseProjRef  string
	SupabaseAPIKey   string
	PSO2IndexURL     string
	ScheduleTimezone string
	RefreshInterval  time.Duration
	ReminderWindow   time.Duration
	FetchCooldown    time.Duration
	FeedSize         int
	AMQPURL          string
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.Throttle = parser.EnvBool("THROTTLE", true)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.AccessExpiry = parseDuration(
		logger,
		"ACCESS_EXPIRY",
		parser.EnvStr("ACCESS_EXPIRY", "1h"),
		time.Hour,
	)
	cfg.RefreshExpiry = parseDuration(
		logger,
		"REFRESH_EXPIRY",
		parser.EnvStr("REFRESH_EXPIRY", "7d"),
		7*24*time.Hour,
	)
	cfg.DBDsn = parser.EnvStr("DB_DSN", "postgres://postgres@localhost/postgres")
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	cfg.SupabaseUserID = parser.EnvStr("SUPABASE_USER_ID", "")
	cfg.SupabaseProjRef = parser.EnvStr("SUPABASE_PROJ_REF", "")
	cfg.SupabaseAPIKey = parser.EnvStr("SUPABASE_API_KEY", "")

	cfg.PSO2IndexURL = parser.EnvStr(
		"PSO2_INDEX_URL",
		"https://pso2.com/news/urgent-quests",
	)
	cfg.ScheduleTimezone = parser.EnvStr("SCHEDULE_TIMEZONE", "America/Los_Angeles")
	cfg.RefreshInterval = parseDuration(
		logger,
		"REFRESH_INTERVAL",
		parser.EnvStr("REFRESH_INTERVAL", "30m"),
		30*time.Minute,
	)
	cfg.ReminderWindow = parseDuration(
		logger,
		"REMINDER_WINDOW",
		parser.EnvStr("REMINDER_WINDOW", "30m"),
		30*time.Minute,
	)
	cfg.FetchCooldown = parseDuration(
		logger,
		"FETCH_COOLDOWN",
		parser.EnvStr("FETCH_COOLDOWN", "5s"),
		5*time.Second,
	)
	cfg.FeedSize = parser.EnvInt("FEED_SIZE", 50)
	cfg.AMQPURL = parser.EnvStr("AMQP_URL", "")

	return cfg
}

func parseDuration(
	logger *slog.Logger,
	key string,
	raw string,
	defaultValue time.Duration,
) time.Duration {
	duration, err := str2duration.ParseDuration(raw)
	if err != nil || duration < 0 {
		logger.Warn("invalid duration, using default", "key", key, "value", raw)
		return defaultValue
	}

	return duration
}
