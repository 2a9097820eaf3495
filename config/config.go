package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/domino14/cardvault/internal/srs"
)

type Config struct {
	DBDriver   string
	DBConnURI  string
	SQLitePath string

	ListenAddr string
	SecretKey  string
	LogLevel   string

	CacheTTL  time.Duration
	RedisAddr string

	MaxDueCards int

	Policy srs.Policy
}

// LoadDotEnv reads a .env file into the environment if one exists. Variables
// already set are left alone.
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// Load loads the configs from the given arguments. Every flag can also be
// set through its upper-case environment variable (DB_CONN_URI, etc).
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("cardvault", flag.ContinueOnError)

	def := srs.DefaultPolicy()
	var learningSteps, relearningSteps string

	fs.StringVar(&c.DBDriver, "db-driver", "postgres", "database driver: postgres or sqlite3")
	fs.StringVar(&c.DBConnURI, "db-conn-uri", "", "postgres connection uri")
	fs.StringVar(&c.SQLitePath, "sqlite-path", "cardvault.db", "sqlite database file")

	fs.StringVar(&c.ListenAddr, "listen-addr", ":8180", "address to listen on")
	fs.StringVar(&c.SecretKey, "secret-key", "", "HMAC key for verifying JWTs")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level")

	fs.DurationVar(&c.CacheTTL, "cache-ttl", 30*time.Second, "read cache ttl; 0 disables the cache")
	fs.StringVar(&c.RedisAddr, "redis-addr", "", "use redis at this address for the read cache")

	fs.IntVar(&c.MaxDueCards, "max-due-cards", 500, "maximum due cards returned per request")

	fs.StringVar(&learningSteps, "learning-steps", joinSteps(def.LearningSteps), "learning ladder in minutes")
	fs.StringVar(&relearningSteps, "relearning-steps", joinSteps(def.RelearningSteps), "relearning ladder in minutes")
	fs.IntVar(&c.Policy.GraduatingInterval, "graduating-interval", def.GraduatingInterval, "interval in minutes after leaving the ladder")
	fs.IntVar(&c.Policy.EasyInterval, "easy-interval", def.EasyInterval, "interval in minutes after an early easy")
	fs.Float64Var(&c.Policy.StartingEase, "starting-ease", def.StartingEase, "ease factor of new cards")
	fs.Float64Var(&c.Policy.MinimumEase, "minimum-ease", def.MinimumEase, "ease factor floor")
	fs.Float64Var(&c.Policy.LapseEasePenalty, "lapse-ease-penalty", def.LapseEasePenalty, "ease lost on a lapse")
	fs.Float64Var(&c.Policy.HardEasePenalty, "hard-ease-penalty", def.HardEasePenalty, "ease lost on hard")
	fs.Float64Var(&c.Policy.EasyEaseBonus, "easy-ease-bonus", def.EasyEaseBonus, "ease gained on easy")
	fs.Float64Var(&c.Policy.HardMultiplier, "hard-multiplier", def.HardMultiplier, "interval multiplier on hard")
	fs.Float64Var(&c.Policy.EasyBonus, "easy-bonus", def.EasyBonus, "extra interval multiplier on easy")
	fs.IntVar(&c.Policy.MaximumInterval, "maximum-interval", def.MaximumInterval, "interval cap in minutes")
	fs.IntVar(&c.Policy.MatureInterval, "mature-interval", def.MatureInterval, "interval in minutes at which a card counts as mature")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if c.Policy.LearningSteps, err = srs.ParseSteps(learningSteps); err != nil {
		return fmt.Errorf("learning-steps: %w", err)
	}
	if c.Policy.RelearningSteps, err = srs.ParseSteps(relearningSteps); err != nil {
		return fmt.Errorf("relearning-steps: %w", err)
	}
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	switch c.DBDriver {
	case "postgres", "sqlite3":
	default:
		return fmt.Errorf("unsupported db-driver %q", c.DBDriver)
	}
	if c.MaxDueCards < 1 {
		return fmt.Errorf("max-due-cards must be positive")
	}
	return nil
}

func joinSteps(steps []int) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, ",")
}
