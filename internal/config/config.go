package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"esg-recommender/internal/esg"

	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Scoring   ScoringConfig
	Explainer ExplainerConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	StaticDir      string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver     string
	SQLitePath string
	Host       string
	Port       string
	User       string
	Password   string
	Database   string
	Schema     string
	SSLMode    string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type ScoringConfig struct {
	Weights          esg.Weights
	PointsMultiplier float64
	DefaultUserID    int64
}

type ExplainerConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
	RequestsPerMinute  int
}

// IsDevelopment reports whether the server runs outside production
func (c *Config) IsDevelopment() bool {
	return c.Server.Env != "production"
}

// Addr returns the redis address in host:port form
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// DSN builds the PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s&search_path=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode, c.Schema)
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("STATIC_DIR", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DB_DRIVER", DriverSQLite)
	viper.SetDefault("DB_SQLITE_PATH", "esg_recommender.db")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL_SECONDS", 300)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	defaults := esg.DefaultWeights()
	viper.SetDefault("SCORING_WEIGHT_ORGANIC", defaults.Organic)
	viper.SetDefault("SCORING_WEIGHT_PACKAGING", defaults.Packaging)
	viper.SetDefault("SCORING_WEIGHT_CARBON", defaults.Carbon)
	viper.SetDefault("SCORING_WEIGHT_EFFICIENCY", defaults.Efficiency)
	viper.SetDefault("POINTS_MULTIPLIER", esg.DefaultPointsMultiplier)
	viper.SetDefault("DEFAULT_USER_ID", 1)
	viper.SetDefault("GIGACHAT_SCOPE", "GIGACHAT_API_PERS")
	viper.SetDefault("GIGACHAT_MODEL", "GigaChat")
	viper.SetDefault("GIGACHAT_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("EXPLAINER_REQUESTS_PER_MINUTE", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			Env:            viper.GetString("SERVER_ENV"),
			LogLevel:       viper.GetString("LOG_LEVEL"),
			StaticDir:      viper.GetString("STATIC_DIR"),
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(viper.GetString("DB_DRIVER")),
			SQLitePath: viper.GetString("DB_SQLITE_PATH"),
			Host:       viper.GetString("DB_HOST"),
			Port:       viper.GetString("DB_PORT"),
			User:       viper.GetString("DB_USER"),
			Password:   viper.GetString("DB_PASSWORD"),
			Database:   viper.GetString("DB_DATABASE"),
			Schema:     viper.GetString("DB_SCHEMA"),
			SSLMode:    viper.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			CacheTTL: time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
		},
		Scoring: ScoringConfig{
			Weights: esg.Weights{
				Organic:    viper.GetFloat64("SCORING_WEIGHT_ORGANIC"),
				Packaging:  viper.GetFloat64("SCORING_WEIGHT_PACKAGING"),
				Carbon:     viper.GetFloat64("SCORING_WEIGHT_CARBON"),
				Efficiency: viper.GetFloat64("SCORING_WEIGHT_EFFICIENCY"),
			},
			PointsMultiplier: viper.GetFloat64("POINTS_MULTIPLIER"),
			DefaultUserID:    viper.GetInt64("DEFAULT_USER_ID"),
		},
		Explainer: ExplainerConfig{
			APIKey:             viper.GetString("GIGACHAT_API_KEY"),
			Scope:              viper.GetString("GIGACHAT_SCOPE"),
			Model:              viper.GetString("GIGACHAT_MODEL"),
			InsecureSkipVerify: viper.GetBool("GIGACHAT_INSECURE_SKIP_VERIFY"),
			RequestsPerMinute:  viper.GetInt("EXPLAINER_REQUESTS_PER_MINUTE"),
		},
	}
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("%w: DB_SQLITE_PATH is required for the sqlite driver", ErrInvalidConfig)
		}
	case DriverPostgres:
		if c.Database.Database == "" {
			return fmt.Errorf("%w: DB_DATABASE is required for the postgres driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported DB_DRIVER %q", ErrInvalidConfig, c.Database.Driver)
	}

	if err := c.Scoring.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.Scoring.PointsMultiplier < 0 {
		return fmt.Errorf("%w: POINTS_MULTIPLIER must not be negative", ErrInvalidConfig)
	}

	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("%w: rate limit requests and window must be positive", ErrInvalidConfig)
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
