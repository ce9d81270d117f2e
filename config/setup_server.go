package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	ServerAddr     string         `yaml:"serverAddr"`
	JWT            JWTConfig      `yaml:"jwt"`
	Session        SessionConfig  `yaml:"session"`
	Google         GoogleConfig   `yaml:"google"`
	Cookies        CookieConfig   `yaml:"cookies"`
	TTL            TTL            `yaml:"TTL"`
	Log            LogConfig      `yaml:"log"`
}

func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("некорректная конфигурация: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults : заполняет незаданные значения
func (c *AppConfig) ApplyDefaults() {
	if c.ServerAddr == "" {
		c.ServerAddr = ":8080"
	}
	if c.JWT.AccessTokenTTL == 0 {
		c.JWT.AccessTokenTTL = 900
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = "event-tracker-auth"
	}
	if c.Session.SlidingWindowDays == 0 {
		c.Session.SlidingWindowDays = 7
	}
	if c.Session.AbsoluteMaxDays == 0 {
		c.Session.AbsoluteMaxDays = 30
	}
	if c.Session.ShortSessionHours == 0 {
		c.Session.ShortSessionHours = 24
	}
	if c.Session.Store == "" {
		c.Session.Store = StorePostgres
	}
	if c.Cookies.RefreshPath == "" {
		c.Cookies.RefreshPath = "/api/auth"
	}
	if c.TTL.EventsCache == 0 {
		c.TTL.EventsCache = 300
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *AppConfig) Validate() error {
	if c.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key не задан")
	}
	if c.JWT.AccessTokenTTL < 0 || c.Session.SlidingWindowDays < 0 ||
		c.Session.AbsoluteMaxDays < 0 || c.Session.ShortSessionHours < 0 || c.TTL.EventsCache < 0 {
		return errors.New("длительности должны быть положительными")
	}
	if c.SlidingWindow() > c.AbsoluteMax() {
		return errors.New("session.sliding_window_days больше session.absolute_max_days")
	}
	if c.ShortSession() > c.AbsoluteMax() {
		return errors.New("session.short_session_hours больше session.absolute_max_days")
	}
	if c.AccessTokenTTL() >= c.AbsoluteMax() {
		return errors.New("jwt.access_token_ttl должен быть меньше session.absolute_max_days")
	}

	switch c.Session.Store {
	case StorePostgres, StoreRedis, StoreMemory:
	default:
		return fmt.Errorf("неизвестное хранилище сессий: %s", c.Session.Store)
	}

	return nil
}

func (c *AppConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTokenTTL) * time.Second
}

func (c *AppConfig) SlidingWindow() time.Duration {
	return time.Duration(c.Session.SlidingWindowDays) * 24 * time.Hour
}

func (c *AppConfig) AbsoluteMax() time.Duration {
	return time.Duration(c.Session.AbsoluteMaxDays) * 24 * time.Hour
}

func (c *AppConfig) ShortSession() time.Duration {
	return time.Duration(c.Session.ShortSessionHours) * time.Hour
}

func (c *AppConfig) EventsCacheTTL() time.Duration {
	return time.Duration(c.TTL.EventsCache) * time.Second
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
