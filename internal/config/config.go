package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "INVENTORY"

// Config holds everything the server and the CLIs read at startup.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Env  string `mapstructure:"env"`
}

type DatabaseConfig struct {
	URL         string        `mapstructure:"url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	AutoMigrate bool          `mapstructure:"automigrate"`
}

type RedisConfig struct {
	Addr    string `mapstructure:"addr"`
	Enabled bool   `mapstructure:"enabled"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

const devJWTSecret = "dev-only-secret-change-me"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("database.url", "")
	v.SetDefault("database.timeout", 3*time.Second)
	v.SetDefault("database.automigrate", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("cache.ttl", 30*time.Second)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.ttl", 24*time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("ratelimit.rps", 1.0)
	v.SetDefault("ratelimit.burst", 3)
}

// Load reads defaults, an optional config file and INVENTORY_* environment variables,
// in increasing order of precedence. An optional .env file is loaded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return errors.New("config: database.url is required (INVENTORY_DATABASE_URL)")
	}
	if c.Database.Timeout <= 0 {
		return errors.New("config: database.timeout must be positive")
	}
	if c.Cache.TTL < 0 {
		return errors.New("config: cache.ttl cannot be negative")
	}
	if c.JWT.TTL <= 0 {
		return errors.New("config: jwt.ttl must be positive")
	}
	if c.JWT.Secret == "" {
		if c.IsProduction() {
			return errors.New("config: jwt.secret is required in production")
		}
		c.JWT.Secret = devJWTSecret
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("config: ratelimit.rps and ratelimit.burst must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Fields renders the non-secret part of the configuration for the startup log line.
func (c *Config) Fields() []zap.Field {
	return []zap.Field{
		zap.String("addr", c.Server.Addr),
		zap.String("environment", c.Server.Env),
		zap.Duration("db_timeout", c.Database.Timeout),
		zap.Bool("automigrate", c.Database.AutoMigrate),
		zap.String("redis_addr", c.Redis.Addr),
		zap.Bool("redis_enabled", c.Redis.Enabled),
		zap.Duration("cache_ttl", c.Cache.TTL),
		zap.Duration("jwt_ttl", c.JWT.TTL),
		zap.String("log_level", c.Log.Level),
	}
}
